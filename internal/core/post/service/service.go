package postapp

import (
	"context"
	"fmt"
	"time"

	"blogicum/internal/core/errs"
	postEntity "blogicum/internal/core/post"
	"blogicum/internal/core/policy"
	categoryPort "blogicum/internal/ports/category"
	commentPort "blogicum/internal/ports/comment"
	postPort "blogicum/internal/ports/post"
	userPort "blogicum/internal/ports/user"
	"blogicum/pkg/pagination"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// pubDateLayouts accepted from the post form, datetime-local first.
var pubDateLayouts = []string{"2006-01-02T15:04", "2006-01-02 15:04", time.RFC3339}

type PostService struct {
	PostRepository     postPort.PostRepository
	CategoryRepository categoryPort.CategoryRepository
	UserRepository     userPort.UserRepository
	CommentRepository  commentPort.CommentRepository

	pager    pagination.Pager
	validate *validator.Validate
	logger   *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	categoryRepo categoryPort.CategoryRepository,
	userRepo userPort.UserRepository,
	commentRepo commentPort.CommentRepository,
	pager pagination.Pager,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository:     postRepo,
		CategoryRepository: categoryRepo,
		UserRepository:     userRepo,
		CommentRepository:  commentRepo,
		pager:              pager,
		validate:           validator.New(),
		logger:             logger,
	}
}

// listPage runs the shared listing pipeline: count, clamp the page,
// fetch the slice. Every paginated view goes through here so the
// visibility toggles cannot drift between pages.
func (s *PostService) listPage(ctx context.Context, q postPort.ListQuery, page int) (*pagination.Page[*postPort.PostDTO], error) {
	total, err := s.PostRepository.Count(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("counting posts: %w", err)
	}

	offset, meta := s.pager.Window(total, page)
	q.Offset = offset
	q.Limit = s.pager.PageSize

	posts, err := s.PostRepository.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	items := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		items = append(items, postPort.ToDTO(p))
	}
	return &pagination.Page[*postPort.PostDTO]{Items: items, Metadata: meta}, nil
}

// Index returns the public front page: visible posts, comment counts,
// newest first.
func (s *PostService) Index(ctx context.Context, page int) (*pagination.Page[*postPort.PostDTO], error) {
	return s.listPage(ctx, postPort.ListQuery{
		OnlyVisible:      true,
		WithCommentCount: true,
	}, page)
}

// CategoryPosts resolves a published category by slug and lists its
// visible posts. Unpublished and missing categories both yield
// ErrNotFound.
func (s *PostService) CategoryPosts(ctx context.Context, slug string, page int) (*categoryPort.CategoryDTO, *pagination.Page[*postPort.PostDTO], error) {
	cat, err := s.CategoryRepository.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	listing, err := s.listPage(ctx, postPort.ListQuery{
		OnlyVisible:      true,
		WithCommentCount: true,
		CategoryID:       cat.ID,
	}, page)
	if err != nil {
		return nil, nil, err
	}
	return categoryPort.ToDTO(cat), listing, nil
}

// ProfilePosts lists a user's posts. The owner sees everything they
// wrote, including unpublished and future-dated posts; everyone else
// gets the public filter.
func (s *PostService) ProfilePosts(ctx context.Context, username string, actorID uuid.UUID, page int) (*userPort.UserDTO, *pagination.Page[*postPort.PostDTO], error) {
	owner, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	listing, err := s.listPage(ctx, postPort.ListQuery{
		OnlyVisible:      owner.ID != actorID,
		WithCommentCount: true,
		AuthorID:         owner.ID,
	}, page)
	if err != nil {
		return nil, nil, err
	}
	return userPort.ToDTO(owner), listing, nil
}

// Detail resolves a single post. The author always sees their own
// post; for anyone else a post that fails the visibility predicate is
// indistinguishable from a missing one.
func (s *PostService) Detail(ctx context.Context, actorID, postID uuid.UUID) (*postPort.DetailDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !policy.IsAuthor(actorID, p) && !p.VisibleAt(time.Now()) {
		return nil, errs.ErrNotFound
	}

	comments, err := s.CommentRepository.ListByPost(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	dto := &postPort.DetailDTO{Post: postPort.ToDTO(p)}
	dto.Post.CommentCount = int64(len(comments))
	dto.Comments = make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dto.Comments = append(dto.Comments, commentPort.ToDTO(c))
	}
	return dto, nil
}

// Create persists a new post authored by the actor.
func (s *PostService) Create(ctx context.Context, actorID uuid.UUID, in postPort.PostInput) (*postPort.PostDTO, error) {
	p, err := s.fromInput(ctx, in)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.Must(uuid.NewV4())
	p.AuthorID = actorID

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	// the form never carries author data, resolve it for the DTO
	author, err := s.UserRepository.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	created.Author = *author

	s.logger.Info("post created",
		zap.String("postID", created.ID.String()),
		zap.String("authorID", actorID.String()))
	return postPort.ToDTO(created), nil
}

// GetOwned resolves a post for its author's edit or delete page. A
// non-author gets ErrForbidden so the caller can fall back to the
// detail redirect.
func (s *PostService) GetOwned(ctx context.Context, actorID, postID uuid.UUID) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !policy.IsAuthor(actorID, p) {
		return nil, errs.ErrForbidden
	}
	return postPort.ToDTO(p), nil
}

// Update overwrites the form-editable fields of the actor's own post.
func (s *PostService) Update(ctx context.Context, actorID, postID uuid.UUID, in postPort.PostInput) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !policy.IsAuthor(actorID, p) {
		return nil, errs.ErrForbidden
	}

	fields, err := s.fromInput(ctx, in)
	if err != nil {
		return nil, err
	}
	p.Title = fields.Title
	p.Text = fields.Text
	p.PubDate = fields.PubDate
	p.Location = fields.Location
	p.CategoryID = fields.CategoryID
	p.Category = fields.Category

	updated, err := s.PostRepository.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}
	return postPort.ToDTO(updated), nil
}

// Delete removes the actor's own post.
func (s *PostService) Delete(ctx context.Context, actorID, postID uuid.UUID) error {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if !policy.IsAuthor(actorID, p) {
		return errs.ErrForbidden
	}
	if err := s.PostRepository.Delete(ctx, p.ID); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	s.logger.Info("post deleted", zap.String("postID", postID.String()))
	return nil
}

// Categories lists every category for the post form's choice field.
func (s *PostService) Categories(ctx context.Context) ([]*categoryPort.CategoryDTO, error) {
	cats, err := s.CategoryRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	out := make([]*categoryPort.CategoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryPort.ToDTO(c))
	}
	return out, nil
}

// fromInput validates the form and resolves its references. All
// failures map to ErrInvalidInput so controllers re-render the form.
func (s *PostService) fromInput(ctx context.Context, in postPort.PostInput) (*postEntity.Post, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}

	pubDate, err := parsePubDate(in.PubDate)
	if err != nil {
		return nil, fmt.Errorf("%w: pub_date: %v", errs.ErrInvalidInput, err)
	}

	catID, err := uuid.FromString(in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: category_id: %v", errs.ErrInvalidInput, err)
	}
	cat, err := s.CategoryRepository.FindByID(ctx, catID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown category", errs.ErrInvalidInput)
	}

	return &postEntity.Post{
		Title:       in.Title,
		Text:        in.Text,
		PubDate:     pubDate,
		IsPublished: true,
		Location:    in.Location,
		CategoryID:  cat.ID,
		Category:    *cat,
	}, nil
}

func parsePubDate(raw string) (time.Time, error) {
	var err error
	for _, layout := range pubDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
