package commentapp

import (
	"context"
	"fmt"

	commentEntity "blogicum/internal/core/comment"
	"blogicum/internal/core/errs"
	"blogicum/internal/core/policy"
	commentPort "blogicum/internal/ports/comment"
	postPort "blogicum/internal/ports/post"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository

	validate *validator.Validate
	logger   *zap.Logger
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository, logger *zap.Logger) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
		validate:          validator.New(),
		logger:            logger,
	}
}

// Add attaches a new comment by the actor to an existing post. The
// post must exist (ErrNotFound otherwise); invalid text yields
// ErrInvalidInput, which callers discard silently by redirecting back
// to the post.
func (s *CommentService) Add(ctx context.Context, actorID, postID uuid.UUID, in commentPort.CommentInput) (*commentPort.CommentDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}

	created, err := s.CommentRepository.Create(ctx, &commentEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     in.Text,
		AuthorID: actorID,
		PostID:   p.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	s.logger.Info("comment added",
		zap.String("commentID", created.ID.String()),
		zap.String("postID", postID.String()))
	return commentPort.ToDTO(created), nil
}

// GetOwned resolves a comment for its author's edit or delete page.
// The comment must belong to the post named in the URL.
func (s *CommentService) GetOwned(ctx context.Context, actorID, postID, commentID uuid.UUID) (*commentPort.CommentDTO, error) {
	c, err := s.resolve(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if !policy.IsAuthor(actorID, c) {
		return nil, errs.ErrForbidden
	}
	return commentPort.ToDTO(c), nil
}

// Update rewrites the text of the actor's own comment.
func (s *CommentService) Update(ctx context.Context, actorID, postID, commentID uuid.UUID, in commentPort.CommentInput) (*commentPort.CommentDTO, error) {
	c, err := s.resolve(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if !policy.IsAuthor(actorID, c) {
		return nil, errs.ErrForbidden
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}

	c.Text = in.Text
	updated, err := s.CommentRepository.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}
	return commentPort.ToDTO(updated), nil
}

// Delete removes the actor's own comment.
func (s *CommentService) Delete(ctx context.Context, actorID, postID, commentID uuid.UUID) error {
	c, err := s.resolve(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if !policy.IsAuthor(actorID, c) {
		return errs.ErrForbidden
	}
	if err := s.CommentRepository.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	s.logger.Info("comment deleted", zap.String("commentID", commentID.String()))
	return nil
}

// resolve loads a comment and checks it belongs to the post from the
// URL; a mismatch is a NotFound, not a forbidden.
func (s *CommentService) resolve(ctx context.Context, postID, commentID uuid.UUID) (*commentEntity.Comment, error) {
	c, err := s.CommentRepository.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if c.PostID != postID {
		return nil, errs.ErrNotFound
	}
	return c, nil
}
