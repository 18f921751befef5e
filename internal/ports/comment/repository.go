package comment

import (
	"context"
	"time"

	"blogicum/internal/core/comment"
	userPort "blogicum/internal/ports/user"

	"github.com/gofrs/uuid"
)

// CommentRepository is the outbound port for comment storage.
type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	Update(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error)
	// ListByPost returns a post's comments oldest first, authors resolved.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*comment.Comment, error)
}

type CommentDTO struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	PostID    string            `json:"post_id"`
	CreatedAt time.Time         `json:"created_at"`
	Author    *userPort.UserDTO `json:"author"`
}

func ToDTO(c *comment.Comment) *CommentDTO {
	return &CommentDTO{
		ID:        c.ID.String(),
		Text:      c.Text,
		PostID:    c.PostID.String(),
		CreatedAt: c.CreatedAt,
		Author:    userPort.ToDTO(&c.Author),
	}
}

type CommentInput struct {
	Text string `form:"text" json:"text" validate:"required"`
}
