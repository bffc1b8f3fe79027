package services

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionInput carries the fields accepted when recording a transaction
type TransactionInput struct {
	Kind         string
	Amount       decimal.Decimal
	CategoryName string
	Note         string
	OccurredAt   time.Time
}

// TransactionUpdate carries the fields a transaction edit may change.
// Nil fields are left untouched; kind, owner, and the closed flag are never
// editable.
type TransactionUpdate struct {
	Amount       *decimal.Decimal
	CategoryName *string
	Note         *string
	OccurredAt   *time.Time
}

// TransactionServiceInterface defines transaction entry and listing operations
type TransactionServiceInterface interface {
	// RecordTransaction validates and stores a new open transaction. When the
	// entered category name has no case-sensitive match among the user's
	// categories of that kind, a category is created on first use.
	RecordTransaction(userID uuid.UUID, input TransactionInput) (*models.Transaction, error)
	// ListTransactions returns one page of the user's transactions plus the
	// continuation cursor for the next page (nil on an empty page).
	ListTransactions(userID uuid.UUID, kind string, cursor *models.PageCursor) ([]models.Transaction, *models.PageCursor, error)
	// EditTransaction applies a partial update. Edits never create categories,
	// even when the new name is unknown.
	EditTransaction(userID, transactionID uuid.UUID, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uuid.UUID) error
}

// CategoryServiceInterface defines category management operations
type CategoryServiceInterface interface {
	CreateCategory(userID uuid.UUID, kind, name string) (*models.Category, error)
	ListCategories(userID uuid.UUID, kind string) ([]models.Category, error)
	RenameCategory(userID, categoryID uuid.UUID, name string) (*models.Category, error)
	DeleteCategory(userID, categoryID uuid.UUID) error
}

// ClosureServiceInterface defines the period-closing operations
type ClosureServiceInterface interface {
	// ClosePeriod aggregates the user's open transactions with occurredAt in
	// [rangeStart, rangeEnd), merges the result into the snapshot keyed by
	// (user, rangeEnd day), and marks the aggregated transactions closed as
	// one atomic batch.
	ClosePeriod(userID uuid.UUID, periodLabel string, rangeStart, rangeEnd time.Time) error
	// LatestClosure returns the user's most recent snapshot, or
	// ErrClosureNotFound when the user has never closed a period.
	LatestClosure(userID uuid.UUID) (*models.ClosureSnapshot, error)
	// ClosureByPeriodEnd looks a snapshot up by its derived key.
	ClosureByPeriodEnd(userID uuid.UUID, periodEnd time.Time) (*models.ClosureSnapshot, error)
}

// TokenServiceInterface defines JWT handling for the identity collaborator
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MetricsRecorderInterface abstracts metric collection for services
type MetricsRecorderInterface interface {
	RecordTransactionCreated(kind string)
	RecordCategoryAutoCreated(kind string)
	RecordClosureRun(status string)
	ObserveClosureDuration(duration time.Duration)
	ObserveClosureBatchSize(size int)
}
