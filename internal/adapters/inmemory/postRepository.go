// Package inmemory holds map-backed implementations of the repository
// ports. They keep the visibility and ordering semantics of the gorm
// adapters and back the service and handler tests.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"blogicum/internal/core/errs"
	"blogicum/internal/core/post"
	postPort "blogicum/internal/ports/post"

	"github.com/gofrs/uuid"
)

type PostRepository struct {
	mu       sync.RWMutex
	posts    map[uuid.UUID]*post.Post
	comments *CommentRepository
}

func NewPostRepository(comments *CommentRepository) *PostRepository {
	return &PostRepository{
		posts:    make(map[uuid.UUID]*post.Post),
		comments: comments,
	}
}

func (r *PostRepository) Create(_ context.Context, p *post.Post) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *p
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.posts[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *PostRepository) Update(_ context.Context, p *post.Post) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[p.ID]; !ok {
		return nil, errs.ErrNotFound
	}
	cp := *p
	r.posts[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *PostRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	return nil
}

func (r *PostRepository) FindByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	out := *p
	return &out, nil
}

func (r *PostRepository) Count(ctx context.Context, q postPort.ListQuery) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.match(q))), nil
}

func (r *PostRepository) List(ctx context.Context, q postPort.ListQuery) ([]*post.Post, error) {
	r.mu.RLock()
	matched := r.match(q)
	r.mu.RUnlock()

	if q.WithCommentCount {
		for _, p := range matched {
			p.CommentCount = r.comments.countByPost(p.ID)
		}
		sort.Slice(matched, func(i, j int) bool {
			return matched[i].PubDate.After(matched[j].PubDate)
		})
	}

	if q.Offset > 0 {
		if q.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[q.Offset:]
	}
	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

// match applies the narrowing fields and the shared visibility
// predicate, returning copies.
func (r *PostRepository) match(q postPort.ListQuery) []*post.Post {
	now := time.Now()
	var out []*post.Post
	for _, p := range r.posts {
		if q.CategoryID != uuid.Nil && p.CategoryID != q.CategoryID {
			continue
		}
		if q.AuthorID != uuid.Nil && p.AuthorID != q.AuthorID {
			continue
		}
		if q.OnlyVisible && !p.VisibleAt(now) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out
}
