package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// periodKeyDateLayout is the day-precision format used in snapshot keys,
// zero-padded DD-MM-YYYY.
const periodKeyDateLayout = "02-01-2006"

// ClosureSnapshot is the aggregate produced by closing a reporting period.
// One row exists per (user, period-end day); repeated closures sharing the
// key accumulate into the same snapshot. Balance is always recomputed from
// the stored totals, never mutated independently.
type ClosureSnapshot struct {
	PeriodKey            string          `gorm:"type:varchar(120);primary_key" json:"period_key"`
	UserID               uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	PeriodLabel          string          `gorm:"type:varchar(100)" json:"period_label"`
	TotalIncome          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_income"`
	TotalExpense         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_expense"`
	Balance              decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance"`
	LargestIncomeNote    string          `gorm:"type:text" json:"largest_income_note,omitempty"`
	LargestIncomeAmount  decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"largest_income_amount"`
	LargestExpenseNote   string          `gorm:"type:text" json:"largest_expense_note,omitempty"`
	LargestExpenseAmount decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"largest_expense_amount"`
	ClosedAt             time.Time       `gorm:"not null;index" json:"closed_at"`
}

// PeriodKey derives the deterministic snapshot identity from the owning user
// and the closure range's end date, formatted to day granularity. Ranges that
// end on the same day therefore target the same snapshot.
func PeriodKey(userID uuid.UUID, periodEnd time.Time) string {
	return fmt.Sprintf("%s-%s", userID, periodEnd.Format(periodKeyDateLayout))
}

// HasLargestIncome reports whether an income candidate has been recorded.
// A zero amount is treated as absent.
func (s *ClosureSnapshot) HasLargestIncome() bool {
	return s.LargestIncomeAmount.IsPositive()
}

// HasLargestExpense reports whether an expense candidate has been recorded.
func (s *ClosureSnapshot) HasLargestExpense() bool {
	return s.LargestExpenseAmount.IsPositive()
}

// TableName returns the table name for ClosureSnapshot
func (s *ClosureSnapshot) TableName() string {
	return "closure_snapshots"
}
