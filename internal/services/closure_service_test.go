package services_test

import (
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"
	"fintrack/internal/repositories/repository_mocks"
	"fintrack/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ClosureServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTxnRepo     *repository_mocks.MockTransactionRepositoryInterface
	mockClosureRepo *repository_mocks.MockClosureRepositoryInterface
	mockMetrics     *service_mocks.MockMetricsRecorderInterface
	service         services.ClosureServiceInterface

	userID     uuid.UUID
	rangeStart time.Time
	rangeEnd   time.Time
}

func TestClosureServiceSuite(t *testing.T) {
	suite.Run(t, new(ClosureServiceTestSuite))
}

func (s *ClosureServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTxnRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockClosureRepo = repository_mocks.NewMockClosureRepositoryInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = services.NewClosureService(s.mockTxnRepo, s.mockClosureRepo, s.mockMetrics)

	s.userID = uuid.New()
	s.rangeStart = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	s.rangeEnd = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
}

func (s *ClosureServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ClosureServiceTestSuite) transaction(kind string, amount float64, note string) models.Transaction {
	return models.Transaction{
		ID:           uuid.New(),
		UserID:       s.userID,
		Kind:         kind,
		Amount:       decimal.NewFromFloat(amount),
		CategoryName: gofakeit.Word(),
		Note:         note,
		OccurredAt:   gofakeit.DateRange(s.rangeStart, s.rangeEnd.Add(-time.Hour)),
	}
}

func (s *ClosureServiceTestSuite) expectRanges(expenses, incomes []models.Transaction) {
	s.mockTxnRepo.EXPECT().
		GetOpenInRange(s.userID, models.KindExpense, s.rangeStart, s.rangeEnd).
		Return(expenses, nil)
	s.mockTxnRepo.EXPECT().
		GetOpenInRange(s.userID, models.KindIncome, s.rangeStart, s.rangeEnd).
		Return(incomes, nil)
}

func (s *ClosureServiceTestSuite) expectSuccessMetrics() {
	s.mockMetrics.EXPECT().RecordClosureRun("success")
	s.mockMetrics.EXPECT().ObserveClosureDuration(gomock.Any())
	s.mockMetrics.EXPECT().ObserveClosureBatchSize(gomock.Any())
}

func (s *ClosureServiceTestSuite) TestClosePeriod_FirstClosureCreatesSnapshot() {
	expenses := []models.Transaction{
		s.transaction(models.KindExpense, 30.50, "groceries"),
		s.transaction(models.KindExpense, 19.50, "bus pass"),
	}
	incomes := []models.Transaction{
		s.transaction(models.KindIncome, 200.00, "salary"),
	}

	s.expectRanges(expenses, incomes)

	key := models.PeriodKey(s.userID, s.rangeEnd)
	s.mockClosureRepo.EXPECT().GetByKey(key).Return(nil, repositories.ErrClosureNotFound)

	var created *models.ClosureSnapshot
	s.mockClosureRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(snapshot *models.ClosureSnapshot) error {
		created = snapshot
		return nil
	})

	expectedIDs := []uuid.UUID{expenses[0].ID, expenses[1].ID, incomes[0].ID}
	s.mockTxnRepo.EXPECT().MarkClosed(expectedIDs).Return(nil)
	s.expectSuccessMetrics()

	err := s.service.ClosePeriod(s.userID, "March 2025", s.rangeStart, s.rangeEnd)

	s.NoError(err)
	s.Require().NotNil(created)
	s.Equal(key, created.PeriodKey)
	s.Equal(s.userID, created.UserID)
	s.Equal("March 2025", created.PeriodLabel)
	s.True(created.TotalExpense.Equal(decimal.NewFromFloat(50.00)))
	s.True(created.TotalIncome.Equal(decimal.NewFromFloat(200.00)))
	s.True(created.Balance.Equal(decimal.NewFromFloat(150.00)))
	s.Equal("groceries", created.LargestExpenseNote)
	s.True(created.LargestExpenseAmount.Equal(decimal.NewFromFloat(30.50)))
	s.Equal("salary", created.LargestIncomeNote)
	s.True(created.LargestIncomeAmount.Equal(decimal.NewFromFloat(200.00)))
}

func (s *ClosureServiceTestSuite) TestClosePeriod_AccumulatesIntoExistingSnapshot() {
	expenses := []models.Transaction{
		s.transaction(models.KindExpense, 50.00, "late receipt"),
	}

	s.expectRanges(expenses, []models.Transaction{})

	key := models.PeriodKey(s.userID, s.rangeEnd)
	existing := &models.ClosureSnapshot{
		PeriodKey:            key,
		UserID:               s.userID,
		TotalIncome:          decimal.NewFromFloat(300.00),
		TotalExpense:         decimal.NewFromFloat(100.00),
		Balance:              decimal.NewFromFloat(200.00),
		LargestExpenseNote:   "rent",
		LargestExpenseAmount: decimal.NewFromFloat(80.00),
	}
	s.mockClosureRepo.EXPECT().GetByKey(key).Return(existing, nil)

	var fields map[string]interface{}
	s.mockClosureRepo.EXPECT().UpdateByKey(key, gomock.Any()).DoAndReturn(func(_ string, f map[string]interface{}) error {
		fields = f
		return nil
	})

	s.mockTxnRepo.EXPECT().MarkClosed([]uuid.UUID{expenses[0].ID}).Return(nil)
	s.expectSuccessMetrics()

	err := s.service.ClosePeriod(s.userID, "March 2025", s.rangeStart, s.rangeEnd)

	s.NoError(err)
	s.Require().NotNil(fields)
	s.True(fields["total_expense"].(decimal.Decimal).Equal(decimal.NewFromFloat(150.00)))
	s.True(fields["total_income"].(decimal.Decimal).Equal(decimal.NewFromFloat(300.00)))
	s.True(fields["balance"].(decimal.Decimal).Equal(decimal.NewFromFloat(150.00)))
}

func (s *ClosureServiceTestSuite) TestClosePeriod_LargerCandidateReplacesStoredLargest() {
	expenses := []models.Transaction{
		s.transaction(models.KindExpense, 120.00, "new car tire"),
	}

	s.expectRanges(expenses, []models.Transaction{})

	key := models.PeriodKey(s.userID, s.rangeEnd)
	existing := &models.ClosureSnapshot{
		PeriodKey:            key,
		UserID:               s.userID,
		TotalExpense:         decimal.NewFromFloat(80.00),
		LargestExpenseNote:   "rent",
		LargestExpenseAmount: decimal.NewFromFloat(80.00),
	}
	s.mockClosureRepo.EXPECT().GetByKey(key).Return(existing, nil)

	var fields map[string]interface{}
	s.mockClosureRepo.EXPECT().UpdateByKey(key, gomock.Any()).DoAndReturn(func(_ string, f map[string]interface{}) error {
		fields = f
		return nil
	})

	s.mockTxnRepo.EXPECT().MarkClosed(gomock.Any()).Return(nil)
	s.expectSuccessMetrics()

	err := s.service.ClosePeriod(s.userID, "March 2025", s.rangeStart, s.rangeEnd)

	s.NoError(err)
	s.Equal("new car tire", fields["largest_expense_note"])
	s.True(fields["largest_expense_amount"].(decimal.Decimal).Equal(decimal.NewFromFloat(120.00)))
}

func (s *ClosureServiceTestSuite) TestClosePeriod_EqualCandidateKeepsStoredLargest() {
	expenses := []models.Transaction{
		s.transaction(models.KindExpense, 80.00, "challenger"),
	}

	s.expectRanges(expenses, []models.Transaction{})

	key := models.PeriodKey(s.userID, s.rangeEnd)
	existing := &models.ClosureSnapshot{
		PeriodKey:            key,
		UserID:               s.userID,
		TotalExpense:         decimal.NewFromFloat(80.00),
		LargestExpenseNote:   "rent",
		LargestExpenseAmount: decimal.NewFromFloat(80.00),
	}
	s.mockClosureRepo.EXPECT().GetByKey(key).Return(existing, nil)

	var fields map[string]interface{}
	s.mockClosureRepo.EXPECT().UpdateByKey(key, gomock.Any()).DoAndReturn(func(_ string, f map[string]interface{}) error {
		fields = f
		return nil
	})

	s.mockTxnRepo.EXPECT().MarkClosed(gomock.Any()).Return(nil)
	s.expectSuccessMetrics()

	err := s.service.ClosePeriod(s.userID, "March 2025", s.rangeStart, s.rangeEnd)

	s.NoError(err)
	s.NotContains(fields, "largest_expense_note")
	s.NotContains(fields, "largest_expense_amount")
}

func (s *ClosureServiceTestSuite) TestClosePeriod_TieWithinBatchKeepsFirst() {
	expenses := []models.Transaction{
		s.transaction(models.KindExpense, 50.00, "small"),
		s.transaction(models.KindExpense, 120.00, "first big"),
		s.transaction(models.KindExpense, 120.00, "second big"),
	}

	s.expectRanges(expenses, []models.Transaction{})

	key := models.PeriodKey(s.userID, s.rangeEnd)
	s.mockClosureRepo.EXPECT().GetByKey(key).Return(nil, repositories.ErrClosureNotFound)

	var created *models.ClosureSnapshot
	s.mockClosureRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(snapshot *models.ClosureSnapshot) error {
		created = snapshot
		return nil
	})

	s.mockTxnRepo.EXPECT().MarkClosed(gomock.Any()).Return(nil)
	s.expectSuccessMetrics()

	err := s.service.ClosePeriod(s.userID, "March 2025", s.rangeStart, s.rangeEnd)

	s.NoError(err)
	s.Equal("first big", created.LargestExpenseNote)
	s.True(created.LargestExpenseAmount.Equal(decimal.NewFromFloat(120.00)))
}

func (s *ClosureServiceTestSuite) TestClosePeriod_EmptyRangeStillWritesSnapshot() {
	s.expectRanges([]models.Transaction{}, []models.Transaction{})

	key := models.PeriodKey(s.userID, s.rangeEnd)
	s.mockClosureRepo.EXPECT().GetByKey(key).Return(nil, repositories.ErrClosureNotFound)

	var created *models.ClosureSnapshot
	s.mockClosureRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(snapshot *models.ClosureSnapshot) error {
		created = snapshot
		return nil
	})

	s.mockTxnRepo.EXPECT().MarkClosed([]uuid.UUID{}).Return(nil)
	s.expectSuccessMetrics()

	err := s.service.ClosePeriod(s.userID, "March 2025", s.rangeStart, s.rangeEnd)

	s.NoError(err)
	s.True(created.TotalIncome.IsZero())
	s.True(created.TotalExpense.IsZero())
	s.True(created.Balance.IsZero())
	s.Empty(created.LargestIncomeNote)
	s.Empty(created.LargestExpenseNote)
	s.True(created.LargestIncomeAmount.IsZero())
	s.True(created.LargestExpenseAmount.IsZero())
}

func (s *ClosureServiceTestSuite) TestClosePeriod_InvalidRange() {
	err := s.service.ClosePeriod(s.userID, "March 2025", s.rangeEnd, s.rangeStart)
	s.ErrorIs(err, services.ErrInvalidRange)

	err = s.service.ClosePeriod(s.userID, "March 2025", s.rangeStart, s.rangeStart)
	s.ErrorIs(err, services.ErrInvalidRange)
}

func (s *ClosureServiceTestSuite) TestClosePeriod_ExpenseQueryError() {
	s.mockTxnRepo.EXPECT().
		GetOpenInRange(s.userID, models.KindExpense, s.rangeStart, s.rangeEnd).
		Return(nil, errors.New("connection reset"))
	s.mockMetrics.EXPECT().RecordClosureRun("error")

	err := s.service.ClosePeriod(s.userID, "March 2025", s.rangeStart, s.rangeEnd)

	s.Error(err)
	s.Contains(err.Error(), "failed to query open expenses")
}

func (s *ClosureServiceTestSuite) TestClosePeriod_MarkClosedErrorPropagates() {
	expenses := []models.Transaction{
		s.transaction(models.KindExpense, 10.00, "coffee"),
	}

	s.expectRanges(expenses, []models.Transaction{})

	key := models.PeriodKey(s.userID, s.rangeEnd)
	s.mockClosureRepo.EXPECT().GetByKey(key).Return(nil, repositories.ErrClosureNotFound)
	s.mockClosureRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.mockTxnRepo.EXPECT().MarkClosed(gomock.Any()).Return(errors.New("batch update failed"))
	s.mockMetrics.EXPECT().RecordClosureRun("error")

	err := s.service.ClosePeriod(s.userID, "March 2025", s.rangeStart, s.rangeEnd)

	s.Error(err)
	s.Contains(err.Error(), "failed to mark transactions closed")
}

func (s *ClosureServiceTestSuite) TestClosePeriod_SnapshotReadErrorPropagates() {
	s.expectRanges([]models.Transaction{}, []models.Transaction{})

	key := models.PeriodKey(s.userID, s.rangeEnd)
	s.mockClosureRepo.EXPECT().GetByKey(key).Return(nil, errors.New("connection reset"))
	s.mockMetrics.EXPECT().RecordClosureRun("error")

	err := s.service.ClosePeriod(s.userID, "March 2025", s.rangeStart, s.rangeEnd)

	s.Error(err)
	s.Contains(err.Error(), "failed to read closure snapshot")
}

func (s *ClosureServiceTestSuite) TestLatestClosure() {
	snapshot := &models.ClosureSnapshot{
		PeriodKey: models.PeriodKey(s.userID, s.rangeEnd),
		UserID:    s.userID,
	}
	s.mockClosureRepo.EXPECT().GetLatest(s.userID).Return(snapshot, nil)

	result, err := s.service.LatestClosure(s.userID)

	s.NoError(err)
	s.Equal(snapshot, result)
}

func (s *ClosureServiceTestSuite) TestLatestClosure_NoneYet() {
	s.mockClosureRepo.EXPECT().GetLatest(s.userID).Return(nil, repositories.ErrClosureNotFound)

	result, err := s.service.LatestClosure(s.userID)

	s.ErrorIs(err, repositories.ErrClosureNotFound)
	s.Nil(result)
}

func (s *ClosureServiceTestSuite) TestClosureByPeriodEnd_UsesDerivedKey() {
	key := models.PeriodKey(s.userID, s.rangeEnd)
	snapshot := &models.ClosureSnapshot{PeriodKey: key, UserID: s.userID}
	s.mockClosureRepo.EXPECT().GetByKey(key).Return(snapshot, nil)

	result, err := s.service.ClosureByPeriodEnd(s.userID, s.rangeEnd)

	s.NoError(err)
	s.Equal(snapshot, result)
}
