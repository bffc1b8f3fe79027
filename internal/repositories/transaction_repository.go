package repositories

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// ListPage retrieves one page of a user's transactions with keyset pagination
func (r *transactionRepository) ListPage(userID uuid.UUID, kind string, cursor *models.PageCursor) ([]models.Transaction, *models.PageCursor, error) {
	var transactions []models.Transaction

	query := r.db.Where("user_id = ? AND kind = ?", userID, kind)

	if cursor != nil {
		// Strictly after the cursor position in (occurred_at desc, id desc)
		// order.
		query = query.Where(
			"occurred_at < ? OR (occurred_at = ? AND id < ?)",
			cursor.OccurredAt, cursor.OccurredAt, cursor.ID,
		)
	}

	if err := query.
		Order("occurred_at DESC").
		Order("id DESC").
		Limit(models.TransactionPageSize).
		Find(&transactions).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, models.CursorFor(transactions), nil
}

// GetOpenInRange retrieves open transactions within [start, end)
func (r *transactionRepository) GetOpenInRange(userID uuid.UUID, kind string, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.
		Where("user_id = ? AND kind = ? AND occurred_at >= ? AND occurred_at < ? AND closed = ?",
			userID, kind, start, end, false).
		Order("occurred_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get open transactions in range: %w", err)
	}
	return transactions, nil
}

// Update applies a partial update to a transaction
func (r *transactionRepository) Update(id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction permanently
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// MarkClosed marks the given transactions closed in one atomic batch
func (r *transactionRepository) MarkClosed(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Transaction{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"closed":     true,
				"updated_at": time.Now(),
			})

		if result.Error != nil {
			return fmt.Errorf("failed to mark transactions closed: %w", result.Error)
		}
		// All-or-nothing: a partial match rolls the batch back.
		if result.RowsAffected != int64(len(ids)) {
			return fmt.Errorf("marked %d of %d transactions closed: %w",
				result.RowsAffected, len(ids), ErrTransactionNotFound)
		}
		return nil
	})
}
