package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCategoryRequest is the payload for adding a category explicitly
type CreateCategoryRequest struct {
	Kind string `json:"kind" validate:"required,oneof=expense income"`
	Name string `json:"name" validate:"required,max=100"`
}

// RenameCategoryRequest is the payload for changing a category's name
type RenameCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CategoryResponse is the wire representation of a category
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ListCategoriesResponse represents the response for listing categories
// of a single kind, ordered by name.
type ListCategoriesResponse struct {
	Kind       string             `json:"kind"`
	Categories []CategoryResponse `json:"categories"`
}
