package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"blogicum/internal/core/comment"
	"blogicum/internal/core/errs"

	"github.com/gofrs/uuid"
)

type CommentRepository struct {
	mu       sync.RWMutex
	comments map[uuid.UUID]*comment.Comment
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{comments: make(map[uuid.UUID]*comment.Comment)}
}

func (r *CommentRepository) Create(_ context.Context, c *comment.Comment) (*comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *c
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.comments[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *CommentRepository) Update(_ context.Context, c *comment.Comment) (*comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[c.ID]; !ok {
		return nil, errs.ErrNotFound
	}
	cp := *c
	r.comments[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *CommentRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.comments, id)
	return nil
}

func (r *CommentRepository) FindByID(_ context.Context, id uuid.UUID) (*comment.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.comments[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (r *CommentRepository) ListByPost(_ context.Context, postID uuid.UUID) ([]*comment.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*comment.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *CommentRepository) countByPost(postID uuid.UUID) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, c := range r.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n
}
