package dto

import "time"

// ClosePeriodRequest is the payload for closing a reporting period.
// RangeStart is inclusive, RangeEnd exclusive.
type ClosePeriodRequest struct {
	PeriodLabel string    `json:"period_label" validate:"required,max=100"`
	RangeStart  time.Time `json:"range_start" validate:"required"`
	RangeEnd    time.Time `json:"range_end" validate:"required"`
}

// ClosureSnapshotResponse is the wire representation of an accumulated
// period snapshot.
type ClosureSnapshotResponse struct {
	PeriodKey          string    `json:"period_key"`
	PeriodLabel        string    `json:"period_label"`
	TotalIncome        string    `json:"total_income"`
	TotalExpense       string    `json:"total_expense"`
	Balance            string    `json:"balance"`
	LargestIncomeNote  string    `json:"largest_income_note,omitempty"`
	LargestIncome      string    `json:"largest_income,omitempty"`
	LargestExpenseNote string    `json:"largest_expense_note,omitempty"`
	LargestExpense     string    `json:"largest_expense,omitempty"`
	ClosedAt           time.Time `json:"closed_at"`
}
