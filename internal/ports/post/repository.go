package post

import (
	"context"
	"time"

	"blogicum/internal/core/post"
	categoryPort "blogicum/internal/ports/category"
	userPort "blogicum/internal/ports/user"

	"github.com/gofrs/uuid"
)

// ListQuery narrows a post listing before the shared filters run.
// OnlyVisible applies the public visibility predicate (published,
// category published, publish date not in the future) and
// WithCommentCount attaches per-post comment counts and orders the
// result by publish date, newest first. Every public listing in the
// application sets both.
type ListQuery struct {
	OnlyVisible      bool
	WithCommentCount bool
	CategoryID       uuid.UUID // uuid.Nil = any category
	AuthorID         uuid.UUID // uuid.Nil = any author
	Offset           int
	Limit            int // <= 0 = no limit
}

// PostRepository is the outbound port for post storage. Find methods
// return the author and category resolved.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	Update(ctx context.Context, p *post.Post) (*post.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error)
	Count(ctx context.Context, q ListQuery) (int64, error)
	List(ctx context.Context, q ListQuery) ([]*post.Post, error)
}

type PostDTO struct {
	ID           string                     `json:"id"`
	Title        string                     `json:"title"`
	Text         string                     `json:"text"`
	PubDate      time.Time                  `json:"pub_date"`
	IsPublished  bool                       `json:"is_published"`
	Location     string                     `json:"location,omitempty"`
	CommentCount int64                      `json:"comment_count"`
	Author       *userPort.UserDTO          `json:"author"`
	Category     *categoryPort.CategoryDTO  `json:"category"`
}

func ToDTO(p *post.Post) *PostDTO {
	return &PostDTO{
		ID:           p.ID.String(),
		Title:        p.Title,
		Text:         p.Text,
		PubDate:      p.PubDate,
		IsPublished:  p.IsPublished,
		Location:     p.Location,
		CommentCount: p.CommentCount,
		Author:       userPort.ToDTO(&p.Author),
		Category:     categoryPort.ToDTO(&p.Category),
	}
}

// PostInput carries the submitted fields of the post form. The publish
// date arrives as text and is parsed by the service; the author is
// never part of the form, it is always the acting user.
type PostInput struct {
	Title      string `form:"title" json:"title" validate:"required"`
	Text       string `form:"text" json:"text" validate:"required"`
	PubDate    string `form:"pub_date" json:"pub_date" validate:"required"`
	Location   string `form:"location" json:"location"`
	CategoryID string `form:"category_id" json:"category_id" validate:"required,uuid"`
}
