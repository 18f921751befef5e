package post

import (
	"time"

	"blogicum/internal/core/category"
	"blogicum/internal/core/user"

	"github.com/gofrs/uuid"
)

type Post struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title       string    `gorm:"not null"`
	Text        string    `gorm:"type:text;not null"`
	PubDate     time.Time `gorm:"not null;index"`
	IsPublished bool      `gorm:"not null;default:true"`
	Location    string
	AuthorID    uuid.UUID         `gorm:"type:char(36);not null;index"`
	Author      user.User         `gorm:"foreignkey:AuthorID"`
	CategoryID  uuid.UUID         `gorm:"type:char(36);not null;index"`
	Category    category.Category `gorm:"foreignkey:CategoryID"`
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime"`

	// CommentCount is filled by listing queries, it is not a column.
	CommentCount int64 `gorm:"->;-:migration"`
}

// VisibleAt reports whether the post is publicly visible at the given
// moment. The same predicate backs every public listing and the
// non-author detail view; the SQL variant in the database adapter must
// stay in lockstep with it.
func (p *Post) VisibleAt(now time.Time) bool {
	return p.IsPublished && p.Category.IsPublished && !p.PubDate.After(now)
}

// OwnerID implements policy.Owned.
func (p *Post) OwnerID() uuid.UUID { return p.AuthorID }
