package inmemory

import (
	"context"
	"sort"
	"sync"

	"blogicum/internal/core/category"
	"blogicum/internal/core/errs"

	"github.com/gofrs/uuid"
)

type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]*category.Category
}

func NewCategoryRepository(categories ...*category.Category) *CategoryRepository {
	r := &CategoryRepository{categories: make(map[uuid.UUID]*category.Category)}
	for _, c := range categories {
		cp := *c
		r.categories[cp.ID] = &cp
	}
	return r
}

func (r *CategoryRepository) FindPublishedBySlug(_ context.Context, slug string) (*category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Slug == slug && c.IsPublished {
			out := *c
			return &out, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (r *CategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (r *CategoryRepository) List(_ context.Context) ([]*category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*category.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
