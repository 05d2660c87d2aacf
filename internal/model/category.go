package model

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// PostCount is an aggregate computed at read time, never stored.
	PostCount int64 `json:"post_count"`
}
