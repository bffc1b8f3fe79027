package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTransactionRequest is the payload for recording a new transaction.
// Amount arrives as a decimal string to avoid float rounding on the wire.
type CreateTransactionRequest struct {
	Kind         string     `json:"kind" validate:"required,oneof=expense income"`
	Amount       string     `json:"amount" validate:"required,money"`
	CategoryName string     `json:"category_name" validate:"required,max=100"`
	Note         string     `json:"note" validate:"max=500"`
	OccurredAt   *time.Time `json:"occurred_at"`
}

// UpdateTransactionRequest is the payload for a partial transaction edit.
// Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	Amount       *string    `json:"amount" validate:"omitempty,money"`
	CategoryName *string    `json:"category_name" validate:"omitempty,max=100"`
	Note         *string    `json:"note" validate:"omitempty,max=500"`
	OccurredAt   *time.Time `json:"occurred_at"`
}

// TransactionResponse is the wire representation of a transaction
type TransactionResponse struct {
	ID           uuid.UUID `json:"id"`
	Kind         string    `json:"kind"`
	Amount       string    `json:"amount"`
	CategoryName string    `json:"category_name"`
	Note         string    `json:"note,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
	Closed       bool      `json:"closed"`
	CreatedAt    time.Time `json:"created_at"`
}

// PaginationInfo contains pagination metadata. HasMore mirrors the
// page-shorter-than-limit signal so callers may check either it or the
// cursor.
type PaginationInfo struct {
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
	Limit      int    `json:"limit"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}
