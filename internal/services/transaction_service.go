package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNothingToUpdate = errors.New("no fields to update")
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
	}
}

// RecordTransaction validates and stores a new open transaction, creating the
// entered category on first use.
func (s *transactionService) RecordTransaction(userID uuid.UUID, input TransactionInput) (*models.Transaction, error) {
	if userID == uuid.Nil {
		return nil, models.ErrUserIDRequired
	}
	if !models.IsValidKind(input.Kind) {
		return nil, models.ErrInvalidKind
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, models.ErrInvalidAmount
	}
	if input.CategoryName == "" {
		return nil, models.ErrCategoryRequired
	}

	// Auto-create on initial entry only; the edit path deliberately never
	// registers new categories.
	if err := s.resolveCategory(userID, input.Kind, input.CategoryName); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:       userID,
		Kind:         input.Kind,
		Amount:       input.Amount,
		CategoryName: input.CategoryName,
		Note:         input.Note,
		OccurredAt:   input.OccurredAt,
		Closed:       false,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to record transaction",
			"user_id", userID,
			"kind", input.Kind,
			"error", err)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordTransactionCreated(input.Kind)
	}

	slog.Info("transaction recorded",
		"transaction_id", transaction.ID,
		"user_id", userID,
		"kind", transaction.Kind,
		"amount", transaction.Amount.String())

	return transaction, nil
}

// resolveCategory creates the category when the entered name has no exact
// case-sensitive match among the user's categories of that kind. Name
// comparison races between two concurrent creations can yield duplicates;
// uniqueness within (user, kind) is advisory.
func (s *transactionService) resolveCategory(userID uuid.UUID, kind, name string) error {
	categories, err := s.categoryRepo.GetByUserAndKind(userID, kind)
	if err != nil {
		return fmt.Errorf("failed to look up categories: %w", err)
	}

	for i := range categories {
		if categories[i].Name == name {
			return nil
		}
	}

	category := &models.Category{
		UserID: userID,
		Kind:   kind,
		Name:   name,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return fmt.Errorf("failed to auto-create category: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordCategoryAutoCreated(kind)
	}

	slog.Info("category created on first use",
		"category_id", category.ID,
		"user_id", userID,
		"kind", kind,
		"name", name)

	return nil
}

// ListTransactions returns one page of the user's transactions
func (s *transactionService) ListTransactions(userID uuid.UUID, kind string, cursor *models.PageCursor) ([]models.Transaction, *models.PageCursor, error) {
	if !models.IsValidKind(kind) {
		return nil, nil, models.ErrInvalidKind
	}

	return s.transactionRepo.ListPage(userID, kind, cursor)
}

// EditTransaction applies a partial update to an owned transaction
func (s *transactionService) EditTransaction(userID, transactionID uuid.UUID, update TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.getOwned(userID, transactionID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})

	if update.Amount != nil {
		if update.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, models.ErrInvalidAmount
		}
		fields["amount"] = *update.Amount
	}
	if update.CategoryName != nil {
		if *update.CategoryName == "" {
			return nil, models.ErrCategoryRequired
		}
		fields["category_name"] = *update.CategoryName
	}
	if update.Note != nil {
		fields["note"] = *update.Note
	}
	if update.OccurredAt != nil {
		fields["occurred_at"] = *update.OccurredAt
	}

	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}

	if err := s.transactionRepo.Update(transaction.ID, fields); err != nil {
		return nil, err
	}

	return s.transactionRepo.GetByID(transaction.ID)
}

// DeleteTransaction removes an owned transaction permanently
func (s *transactionService) DeleteTransaction(userID, transactionID uuid.UUID) error {
	transaction, err := s.getOwned(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.transactionRepo.Delete(transaction.ID); err != nil {
		return err
	}

	slog.Info("transaction deleted",
		"transaction_id", transactionID,
		"user_id", userID)

	return nil
}

// getOwned fetches a transaction and hides other users' records behind
// not-found.
func (s *transactionService) getOwned(userID, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(transactionID)
	if err != nil {
		return nil, err
	}

	if transaction.UserID != userID {
		return nil, repositories.ErrTransactionNotFound
	}

	return transaction, nil
}
