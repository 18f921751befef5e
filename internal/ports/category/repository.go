package category

import (
	"context"

	"blogicum/internal/core/category"

	"github.com/gofrs/uuid"
)

// CategoryRepository is the outbound port for category lookups. The
// blog core never writes categories.
type CategoryRepository interface {
	// FindPublishedBySlug resolves a category visible to listings.
	// Unpublished categories behave exactly like missing ones.
	FindPublishedBySlug(ctx context.Context, slug string) (*category.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error)
	List(ctx context.Context) ([]*category.Category, error)
}

type CategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func ToDTO(c *category.Category) *CategoryDTO {
	return &CategoryDTO{ID: c.ID.String(), Name: c.Name, Slug: c.Slug}
}
