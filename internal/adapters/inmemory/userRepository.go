package inmemory

import (
	"context"
	"sync"

	"blogicum/internal/core/errs"
	"blogicum/internal/core/user"

	"github.com/gofrs/uuid"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*user.User
}

func NewUserRepository(users ...*user.User) *UserRepository {
	r := &UserRepository{users: make(map[uuid.UUID]*user.User)}
	for _, u := range users {
		cp := *u
		r.users[cp.ID] = &cp
	}
	return r
}

func (r *UserRepository) Create(_ context.Context, u *user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *u
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *UserRepository) Update(_ context.Context, u *user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return nil, errs.ErrNotFound
	}
	cp := *u
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, errs.ErrNotFound
}
