package database

import (
	"context"
	"errors"

	"blogicum/internal/core/category"
	"blogicum/internal/core/errs"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// CategoryRepositoryDatabase implements categoryPort.CategoryRepository
// on gorm. Reads only.
type CategoryRepositoryDatabase struct {
	db *gorm.DB
}

func NewCategoryRepositoryDatabase(db *gorm.DB) *CategoryRepositoryDatabase {
	return &CategoryRepositoryDatabase{db: db}
}

func (repo *CategoryRepositoryDatabase) FindPublishedBySlug(ctx context.Context, slug string) (*category.Category, error) {
	var c category.Category
	err := repo.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (repo *CategoryRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	var c category.Category
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (repo *CategoryRepositoryDatabase) List(ctx context.Context) ([]*category.Category, error) {
	var cats []*category.Category
	if err := repo.db.WithContext(ctx).Order("name").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}
