package model

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

type Post struct {
	ID          int64              `json:"id"`
	AuthorID    int64              `json:"author_id"`
	Title       string             `json:"title"`
	Content     *string            `json:"content,omitempty"`
	CategoryID  *int64             `json:"category_id,omitempty"`
	Status      PostStatus         `json:"status"`
	ReadingTime int32              `json:"reading_time"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

func (s PostStatus) IsValid() error {
	switch s {
	case PostStatusDraft, PostStatusPublished:
		return nil
	}
	return fmt.Errorf("invalid post status: %s", s)
}

func (s *PostStatus) UnmarshalText(text []byte) error {
	ps := PostStatus(text)
	if err := ps.IsValid(); err != nil {
		return err
	}
	*s = ps
	return nil
}
