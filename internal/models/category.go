package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryKindRequired = errors.New("category kind is required to choose the partition")
)

// Category is a user-scoped transaction category. Expense categories and
// income sources live in separate partitions keyed by Kind, mirroring the
// per-type collections of the upstream store. Name uniqueness within
// (user, kind) is advisory only and not enforced at the store level.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_categories_user_kind" json:"user_id"`
	Kind      string    `gorm:"type:varchar(10);not null;index:idx_categories_user_kind" json:"kind"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return ErrUserIDRequired
	}

	if c.Kind == "" {
		return ErrCategoryKindRequired
	}

	if !IsValidKind(c.Kind) {
		return ErrInvalidKind
	}

	if c.Name == "" {
		return ErrCategoryNameRequired
	}

	if len(c.Name) > 100 {
		return ErrCategoryNameLong
	}

	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}
