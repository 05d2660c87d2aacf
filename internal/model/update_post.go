package model

// UpdatePostDTO carries the permitted field changes for a post. Nil
// fields are left untouched. The author is deliberately absent: posts
// never change ownership. ReadingTime is filled in by the service when
// Content is set, it is not accepted from callers.
type UpdatePostDTO struct {
	Title       *string     `json:"title,omitempty"`
	Content     *string     `json:"content,omitempty"`
	CategoryID  *int64      `json:"category_id,omitempty"`
	TagIDs      []int64     `json:"tag_ids,omitempty"`
	Status      *PostStatus `json:"status,omitempty"`
	ReadingTime *int32      `json:"-"`
}
