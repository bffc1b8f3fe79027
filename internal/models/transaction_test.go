package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid expense",
			transaction: Transaction{
				UserID:       validUserID,
				Kind:         KindExpense,
				Amount:       decimal.NewFromFloat(42.50),
				CategoryName: "Groceries",
				Note:         "weekly shop",
			},
		},
		{
			name: "valid income",
			transaction: Transaction{
				UserID:       validUserID,
				Kind:         KindIncome,
				Amount:       decimal.NewFromFloat(2000),
				CategoryName: "Salary",
			},
		},
		{
			name: "missing user ID",
			transaction: Transaction{
				Kind:         KindExpense,
				Amount:       decimal.NewFromFloat(10),
				CategoryName: "Groceries",
			},
			wantErr: ErrUserIDRequired,
		},
		{
			name: "unknown kind",
			transaction: Transaction{
				UserID:       validUserID,
				Kind:         "transfer",
				Amount:       decimal.NewFromFloat(10),
				CategoryName: "Groceries",
			},
			wantErr: ErrInvalidKind,
		},
		{
			name: "zero amount",
			transaction: Transaction{
				UserID:       validUserID,
				Kind:         KindExpense,
				Amount:       decimal.Zero,
				CategoryName: "Groceries",
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			transaction: Transaction{
				UserID:       validUserID,
				Kind:         KindExpense,
				Amount:       decimal.NewFromFloat(-5),
				CategoryName: "Groceries",
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "missing category",
			transaction: Transaction{
				UserID: validUserID,
				Kind:   KindExpense,
				Amount: decimal.NewFromFloat(10),
			},
			wantErr: ErrCategoryRequired,
		},
		{
			name: "category name too long",
			transaction: Transaction{
				UserID:       validUserID,
				Kind:         KindExpense,
				Amount:       decimal.NewFromFloat(10),
				CategoryName: strings.Repeat("x", 101),
			},
			wantErr: ErrCategoryNameLong,
		},
		{
			name: "note too long",
			transaction: Transaction{
				UserID:       validUserID,
				Kind:         KindExpense,
				Amount:       decimal.NewFromFloat(10),
				CategoryName: "Groceries",
				Note:         strings.Repeat("x", 501),
			},
			wantErr: ErrNoteTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_KindHelpers(t *testing.T) {
	expense := Transaction{Kind: KindExpense}
	income := Transaction{Kind: KindIncome}

	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())
	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())
}

func TestIsValidKind(t *testing.T) {
	assert.True(t, IsValidKind(KindExpense))
	assert.True(t, IsValidKind(KindIncome))
	assert.False(t, IsValidKind(""))
	assert.False(t, IsValidKind("transfer"))
	assert.False(t, IsValidKind("Expense"))
}

func TestCursorFor(t *testing.T) {
	assert.Nil(t, CursorFor(nil))
	assert.Nil(t, CursorFor([]Transaction{}))

	first := Transaction{ID: uuid.New()}
	last := Transaction{ID: uuid.New()}

	cursor := CursorFor([]Transaction{first, last})
	assert.NotNil(t, cursor)
	assert.Equal(t, last.ID, cursor.ID)
}
