package repositories

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction store operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	// ListPage returns one fixed-size page of a user's transactions of the
	// given kind, ordered by occurrence time descending. A nil cursor starts
	// from the newest record; the returned cursor is nil when the page is
	// empty. Callers combine the cursor with the page length to detect
	// exhaustion.
	ListPage(userID uuid.UUID, kind string, cursor *models.PageCursor) ([]models.Transaction, *models.PageCursor, error)
	// GetOpenInRange returns not-yet-closed transactions of the given kind
	// with occurredAt in [start, end).
	GetOpenInRange(userID uuid.UUID, kind string, start, end time.Time) ([]models.Transaction, error)
	Update(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
	// MarkClosed flips closed=true on every given transaction as a single
	// all-or-nothing batch. An empty id list is a no-op.
	MarkClosed(ids []uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category store operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	// GetByUserAndKind lists a user's categories within one kind partition,
	// ordered by name ascending.
	GetByUserAndKind(userID uuid.UUID, kind string) ([]models.Category, error)
	Update(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// ClosureRepositoryInterface defines the contract for closure snapshot store operations
type ClosureRepositoryInterface interface {
	Create(snapshot *models.ClosureSnapshot) error
	GetByKey(key string) (*models.ClosureSnapshot, error)
	UpdateByKey(key string, fields map[string]interface{}) error
	// GetLatest returns the user's most recent snapshot by closing time.
	GetLatest(userID uuid.UUID) (*models.ClosureSnapshot, error)
}

// UserRepositoryInterface defines the contract for user store operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
