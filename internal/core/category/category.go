package category

import (
	"time"

	"github.com/gofrs/uuid"
)

// Category is read-only from the blog core: categories are created and
// toggled out of band, posts only reference them.
type Category struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	Name        string    `gorm:"not null"`
	Slug        string    `gorm:"unique;not null"`
	IsPublished bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
