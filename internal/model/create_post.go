package model

type CreatePostDTO struct {
	AuthorID   int64      `json:"author_id"`
	Title      string     `json:"title"`
	Content    *string    `json:"content,omitempty"`
	CategoryID *int64     `json:"category_id,omitempty"`
	TagIDs     []int64    `json:"tag_ids,omitempty"`
	Status     PostStatus `json:"status"`
}
