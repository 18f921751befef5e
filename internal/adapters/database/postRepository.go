package database

import (
	"context"
	"errors"
	"time"

	"blogicum/internal/core/errs"
	"blogicum/internal/core/post"
	postPort "blogicum/internal/ports/post"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// PostRepositoryDatabase implements postPort.PostRepository on gorm.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

// visibleScope is the SQL twin of post.VisibleAt. Both must change
// together.
func visibleScope(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN categories ON categories.id = posts.category_id").
			Where("posts.pub_date <= ? AND posts.is_published = ? AND categories.is_published = ?", now, true, true)
	}
}

func (repo *PostRepositoryDatabase) query(q postPort.ListQuery) *gorm.DB {
	db := repo.db.Model(&post.Post{})
	if q.CategoryID != uuid.Nil {
		db = db.Where("posts.category_id = ?", q.CategoryID)
	}
	if q.AuthorID != uuid.Nil {
		db = db.Where("posts.author_id = ?", q.AuthorID)
	}
	if q.OnlyVisible {
		db = db.Scopes(visibleScope(time.Now()))
	}
	return db
}

func (repo *PostRepositoryDatabase) Count(ctx context.Context, q postPort.ListQuery) (int64, error) {
	var n int64
	if err := repo.query(q).WithContext(ctx).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (repo *PostRepositoryDatabase) List(ctx context.Context, q postPort.ListQuery) ([]*post.Post, error) {
	db := repo.query(q).WithContext(ctx).
		Preload("Author").
		Preload("Category")

	if q.WithCommentCount {
		db = db.
			Select("posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count").
			Order("posts.pub_date DESC")
	}
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}

	var posts []*post.Post
	if err := db.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	var p post.Post
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Where("id = ?", id).Delete(&post.Post{}).Error
}
