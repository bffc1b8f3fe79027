package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	KindExpense = "expense"
	KindIncome  = "income"
)

// TransactionPageSize is the fixed page size for transaction listings.
const TransactionPageSize = 10

var (
	ErrInvalidKind      = errors.New("invalid transaction kind")
	ErrInvalidAmount    = errors.New("transaction amount must be positive")
	ErrCategoryRequired = errors.New("category name is required")
	ErrUserIDRequired   = errors.New("user ID is required")
	ErrNoteTooLong      = errors.New("note too long")
	ErrCategoryNameLong = errors.New("category name too long")
)

// Transaction is a single income or expense record. The two variants share one
// table and are distinguished by Kind; CategoryName holds the expense category
// or the income source, depending on the variant.
type Transaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind         string          `gorm:"type:varchar(10);not null;index" json:"kind"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CategoryName string          `gorm:"type:varchar(100);not null" json:"category_name"`
	Note         string          `gorm:"type:text" json:"note,omitempty"`
	OccurredAt   time.Time       `gorm:"not null;index" json:"occurred_at"`
	Closed       bool            `gorm:"not null;default:false;index" json:"closed"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	if t.OccurredAt.IsZero() {
		t.OccurredAt = now
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	// Map-based updates carry an empty struct; field values are validated
	// upstream in the service layer.
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrUserIDRequired
	}

	if !IsValidKind(t.Kind) {
		return ErrInvalidKind
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.CategoryName == "" {
		return ErrCategoryRequired
	}

	if len(t.CategoryName) > 100 {
		return ErrCategoryNameLong
	}

	if len(t.Note) > 500 {
		return ErrNoteTooLong
	}

	return nil
}

// IsExpense returns true for the expense variant
func (t *Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// IsIncome returns true for the income variant
func (t *Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidKind checks if the transaction kind is valid
func IsValidKind(kind string) bool {
	switch kind {
	case KindExpense, KindIncome:
		return true
	default:
		return false
	}
}
