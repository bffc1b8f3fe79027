package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRange = errors.New("range start must be before range end")
)

type closureService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	closureRepo     repositories.ClosureRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewClosureService creates a new closure service
func NewClosureService(
	transactionRepo repositories.TransactionRepositoryInterface,
	closureRepo repositories.ClosureRepositoryInterface,
	metrics MetricsRecorderInterface,
) ClosureServiceInterface {
	return &closureService{
		transactionRepo: transactionRepo,
		closureRepo:     closureRepo,
		metrics:         metrics,
	}
}

// ClosePeriod aggregates open transactions in [rangeStart, rangeEnd) into the
// snapshot keyed by (user, rangeEnd day) and marks them closed. Closed rows
// are excluded from the range queries, so re-running over the same range adds
// zero; overlapping ranges that still contain open rows accumulate into the
// shared key.
func (s *closureService) ClosePeriod(userID uuid.UUID, periodLabel string, rangeStart, rangeEnd time.Time) error {
	if !rangeStart.Before(rangeEnd) {
		return ErrInvalidRange
	}

	started := time.Now()

	// Two independent reads, no cross-query snapshot isolation. A row
	// inserted between them lands in the next closure run.
	expenses, err := s.transactionRepo.GetOpenInRange(userID, models.KindExpense, rangeStart, rangeEnd)
	if err != nil {
		s.recordRun("error")
		return fmt.Errorf("failed to query open expenses: %w", err)
	}

	incomes, err := s.transactionRepo.GetOpenInRange(userID, models.KindIncome, rangeStart, rangeEnd)
	if err != nil {
		s.recordRun("error")
		return fmt.Errorf("failed to query open incomes: %w", err)
	}

	totalExpense := sumAmounts(expenses)
	totalIncome := sumAmounts(incomes)
	balance := totalIncome.Sub(totalExpense)

	largestExpense := largestOf(expenses)
	largestIncome := largestOf(incomes)

	key := models.PeriodKey(userID, rangeEnd)

	if err := s.mergeSnapshot(userID, key, periodLabel, totalIncome, totalExpense, balance, largestIncome, largestExpense); err != nil {
		s.recordRun("error")
		return err
	}

	ids := make([]uuid.UUID, 0, len(expenses)+len(incomes))
	for i := range expenses {
		ids = append(ids, expenses[i].ID)
	}
	for i := range incomes {
		ids = append(ids, incomes[i].ID)
	}

	if err := s.transactionRepo.MarkClosed(ids); err != nil {
		s.recordRun("error")
		return fmt.Errorf("failed to mark transactions closed: %w", err)
	}

	slog.Info("period closed",
		"user_id", userID,
		"period_key", key,
		"expenses", len(expenses),
		"incomes", len(incomes),
		"total_expense", totalExpense.String(),
		"total_income", totalIncome.String(),
		"balance", balance.String())

	s.recordRun("success")
	if s.metrics != nil {
		s.metrics.ObserveClosureDuration(time.Since(started))
		s.metrics.ObserveClosureBatchSize(len(ids))
	}

	return nil
}

// mergeSnapshot creates the snapshot on first closure of a key and
// accumulates into it on every later closure sharing the key. There is no
// optimistic lock on the read-modify-write: concurrent closures for one user
// are last-write-wins, which is acceptable for a rare per-user operation.
func (s *closureService) mergeSnapshot(
	userID uuid.UUID,
	key, periodLabel string,
	totalIncome, totalExpense, balance decimal.Decimal,
	largestIncome, largestExpense *models.Transaction,
) error {
	existing, err := s.closureRepo.GetByKey(key)
	if err != nil && !errors.Is(err, repositories.ErrClosureNotFound) {
		return fmt.Errorf("failed to read closure snapshot: %w", err)
	}

	now := time.Now()

	if existing == nil {
		snapshot := &models.ClosureSnapshot{
			PeriodKey:    key,
			UserID:       userID,
			PeriodLabel:  periodLabel,
			TotalIncome:  totalIncome,
			TotalExpense: totalExpense,
			Balance:      balance,
			ClosedAt:     now,
		}
		if largestIncome != nil {
			snapshot.LargestIncomeNote = largestIncome.Note
			snapshot.LargestIncomeAmount = largestIncome.Amount
		}
		if largestExpense != nil {
			snapshot.LargestExpenseNote = largestExpense.Note
			snapshot.LargestExpenseAmount = largestExpense.Amount
		}

		if err := s.closureRepo.Create(snapshot); err != nil {
			return fmt.Errorf("failed to create closure snapshot: %w", err)
		}
		return nil
	}

	newTotalIncome := existing.TotalIncome.Add(totalIncome)
	newTotalExpense := existing.TotalExpense.Add(totalExpense)

	fields := map[string]interface{}{
		"total_income":  newTotalIncome,
		"total_expense": newTotalExpense,
		"balance":       newTotalIncome.Sub(newTotalExpense),
		"closed_at":     now,
	}

	// A stored "largest" survives unless the new candidate strictly exceeds
	// it; a missing candidate counts as zero.
	if largestIncome != nil && largestIncome.Amount.GreaterThan(existing.LargestIncomeAmount) {
		fields["largest_income_note"] = largestIncome.Note
		fields["largest_income_amount"] = largestIncome.Amount
	}
	if largestExpense != nil && largestExpense.Amount.GreaterThan(existing.LargestExpenseAmount) {
		fields["largest_expense_note"] = largestExpense.Note
		fields["largest_expense_amount"] = largestExpense.Amount
	}

	if err := s.closureRepo.UpdateByKey(key, fields); err != nil {
		return fmt.Errorf("failed to update closure snapshot: %w", err)
	}
	return nil
}

// LatestClosure returns the user's most recent snapshot
func (s *closureService) LatestClosure(userID uuid.UUID) (*models.ClosureSnapshot, error) {
	snapshot, err := s.closureRepo.GetLatest(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrClosureNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get latest closure: %w", err)
	}
	return snapshot, nil
}

// ClosureByPeriodEnd looks a snapshot up by its derived key
func (s *closureService) ClosureByPeriodEnd(userID uuid.UUID, periodEnd time.Time) (*models.ClosureSnapshot, error) {
	snapshot, err := s.closureRepo.GetByKey(models.PeriodKey(userID, periodEnd))
	if err != nil {
		if errors.Is(err, repositories.ErrClosureNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get closure by period end: %w", err)
	}
	return snapshot, nil
}

func (s *closureService) recordRun(status string) {
	if s.metrics != nil {
		s.metrics.RecordClosureRun(status)
	}
}

func sumAmounts(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for i := range transactions {
		total = total.Add(transactions[i].Amount)
	}
	return total
}

// largestOf returns the maximum-amount transaction. Ties keep the first
// record in store-returned order; an empty slice yields nil.
func largestOf(transactions []models.Transaction) *models.Transaction {
	var largest *models.Transaction
	for i := range transactions {
		if largest == nil || transactions[i].Amount.GreaterThan(largest.Amount) {
			largest = &transactions[i]
		}
	}
	return largest
}
