package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrClosureNotFound = errors.New("closure snapshot not found")
)

// closureRepository implements ClosureRepositoryInterface
type closureRepository struct {
	db *gorm.DB
}

// NewClosureRepository creates a new closure snapshot repository
func NewClosureRepository(db *gorm.DB) ClosureRepositoryInterface {
	return &closureRepository{
		db: db,
	}
}

// Create writes a new snapshot document
func (r *closureRepository) Create(snapshot *models.ClosureSnapshot) error {
	if err := r.db.Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to create closure snapshot: %w", err)
	}
	return nil
}

// GetByKey retrieves a snapshot by its derived period key
func (r *closureRepository) GetByKey(key string) (*models.ClosureSnapshot, error) {
	var snapshot models.ClosureSnapshot
	if err := r.db.Where("period_key = ?", key).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClosureNotFound
		}
		return nil, fmt.Errorf("failed to get closure snapshot: %w", err)
	}
	return &snapshot, nil
}

// UpdateByKey applies a partial update to the snapshot with the given key
func (r *closureRepository) UpdateByKey(key string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.db.Model(&models.ClosureSnapshot{}).
		Where("period_key = ?", key).
		Updates(fields)

	if result.Error != nil {
		return fmt.Errorf("failed to update closure snapshot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrClosureNotFound
	}
	return nil
}

// GetLatest retrieves the user's most recently closed snapshot
func (r *closureRepository) GetLatest(userID uuid.UUID) (*models.ClosureSnapshot, error) {
	var snapshot models.ClosureSnapshot
	if err := r.db.
		Where("user_id = ?", userID).
		Order("closed_at DESC").
		First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClosureNotFound
		}
		return nil, fmt.Errorf("failed to get latest closure snapshot: %w", err)
	}
	return &snapshot, nil
}
