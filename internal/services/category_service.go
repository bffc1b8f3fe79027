package services

import (
	"log/slog"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

// CreateCategory creates a category in the user's kind partition
func (s *categoryService) CreateCategory(userID uuid.UUID, kind, name string) (*models.Category, error) {
	category := &models.Category{
		UserID: userID,
		Kind:   kind,
		Name:   name,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	slog.Info("category created",
		"category_id", category.ID,
		"user_id", userID,
		"kind", kind)

	return category, nil
}

// ListCategories lists the user's categories of one kind, name ascending
func (s *categoryService) ListCategories(userID uuid.UUID, kind string) ([]models.Category, error) {
	if !models.IsValidKind(kind) {
		return nil, models.ErrInvalidKind
	}

	return s.categoryRepo.GetByUserAndKind(userID, kind)
}

// RenameCategory updates a category's name. The kind partition is fixed at
// creation; moving a category between kinds is not supported.
func (s *categoryService) RenameCategory(userID, categoryID uuid.UUID, name string) (*models.Category, error) {
	if name == "" {
		return nil, models.ErrCategoryNameRequired
	}
	if len(name) > 100 {
		return nil, models.ErrCategoryNameLong
	}

	category, err := s.getOwned(userID, categoryID)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Update(category.ID, map[string]interface{}{"name": name}); err != nil {
		return nil, err
	}

	return s.categoryRepo.GetByID(category.ID)
}

// DeleteCategory removes an owned category. Transactions referencing the
// category keep their stored name.
func (s *categoryService) DeleteCategory(userID, categoryID uuid.UUID) error {
	category, err := s.getOwned(userID, categoryID)
	if err != nil {
		return err
	}

	return s.categoryRepo.Delete(category.ID)
}

func (s *categoryService) getOwned(userID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}

	if category.UserID != userID {
		return nil, repositories.ErrCategoryNotFound
	}

	return category, nil
}
