package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// cursorData represents the data encoded in a pagination cursor
type cursorData struct {
	OccurredAt    time.Time `json:"occurred_at"`
	TransactionID uuid.UUID `json:"transaction_id"`
}

// encodeCursor creates a cursor string from the last item of a page
func encodeCursor(cursor *models.PageCursor) string {
	if cursor == nil {
		return ""
	}

	data := cursorData{
		OccurredAt:    cursor.OccurredAt,
		TransactionID: cursor.ID,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(jsonData)
}

// decodeCursor decodes a cursor string back into a page cursor
func decodeCursor(cursor string) (*models.PageCursor, error) {
	if cursor == "" {
		return nil, nil
	}

	jsonData, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	var data cursorData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("invalid cursor format: %w", err)
	}

	return &models.PageCursor{OccurredAt: data.OccurredAt, ID: data.TransactionID}, nil
}

// CreateTransaction records a new expense or income entry
// @Summary Record a transaction
// @Description Record an expense or income entry; the category is created on first use
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction to record"
// @Success 201 {object} dto.TransactionResponse "Recorded transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails("Amount must be a decimal number"))
	}

	input := services.TransactionInput{
		Kind:         req.Kind,
		Amount:       amount,
		CategoryName: req.CategoryName,
		Note:         req.Note,
	}
	if req.OccurredAt != nil {
		input.OccurredAt = *req.OccurredAt
	}

	transaction, err := h.transactionService.RecordTransaction(userID, input)
	if err != nil {
		switch err {
		case models.ErrInvalidKind:
			return SendError(c, errors.TransactionInvalidKind)
		case models.ErrInvalidAmount:
			return SendError(c, errors.TransactionInvalidAmount)
		case models.ErrCategoryRequired, models.ErrNoteTooLong, models.ErrCategoryNameLong:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// ListTransactions retrieves one kind's entries, newest first, page by page
// @Summary List transactions
// @Description Retrieve the caller's transactions of one kind with cursor-based pagination
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param kind query string true "Transaction kind" Enums(expense, income)
// @Param cursor query string false "Pagination cursor for next page"
// @Success 200 {object} dto.ListTransactionsResponse "Transaction page"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid cursor or VALIDATION_001 - Invalid kind"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	kind := c.QueryParam("kind")
	if !models.IsValidKind(kind) {
		return SendError(c, errors.TransactionInvalidKind, errors.WithDetails("kind must be 'expense' or 'income'"))
	}

	cursor, err := decodeCursor(c.QueryParam("cursor"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidCursor)
	}

	transactions, nextCursor, err := h.transactionService.ListTransactions(userID, kind, cursor)
	if err != nil {
		return SendSystemError(c, err)
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, toTransactionResponse(&transactions[i]))
	}

	response := dto.ListTransactionsResponse{
		Transactions: items,
		Pagination: dto.PaginationInfo{
			HasMore:    len(transactions) == models.TransactionPageSize,
			NextCursor: encodeCursor(nextCursor),
			Limit:      models.TransactionPageSize,
		},
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateTransaction applies a partial edit to an open transaction
// @Summary Edit a transaction
// @Description Change the amount, category, note or date of one of the caller's transactions
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	update := services.TransactionUpdate{
		CategoryName: req.CategoryName,
		Note:         req.Note,
		OccurredAt:   req.OccurredAt,
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails("Amount must be a decimal number"))
		}
		update.Amount = &amount
	}

	transaction, err := h.transactionService.EditTransaction(userID, transactionID, update)
	if err != nil {
		switch err {
		case repositories.ErrTransactionNotFound:
			return SendError(c, errors.TransactionNotFound)
		case models.ErrInvalidAmount:
			return SendError(c, errors.TransactionInvalidAmount)
		case services.ErrNothingToUpdate, models.ErrCategoryRequired, models.ErrNoteTooLong, models.ErrCategoryNameLong:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DeleteTransaction removes one of the caller's transactions
// @Summary Delete a transaction
// @Tags Transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID (UUID)"
// @Success 204 "Transaction deleted"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toTransactionResponse(t *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:           t.ID,
		Kind:         t.Kind,
		Amount:       t.Amount.String(),
		CategoryName: t.CategoryName,
		Note:         t.Note,
		OccurredAt:   t.OccurredAt,
		Closed:       t.Closed,
		CreatedAt:    t.CreatedAt,
	}
}
