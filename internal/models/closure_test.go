package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPeriodKey_Format(t *testing.T) {
	userID := uuid.MustParse("a2e8ff74-26de-4fc9-8f44-3dbd0f1f4a2f")
	periodEnd := time.Date(2025, 3, 5, 23, 59, 0, 0, time.UTC)

	key := PeriodKey(userID, periodEnd)

	// Day and month are zero-padded, day granularity only
	assert.Equal(t, "a2e8ff74-26de-4fc9-8f44-3dbd0f1f4a2f-05-03-2025", key)
}

func TestPeriodKey_SameDayCollapses(t *testing.T) {
	userID := uuid.New()
	morning := time.Date(2025, 3, 5, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 5, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, PeriodKey(userID, morning), PeriodKey(userID, evening))
}

func TestPeriodKey_DistinctPerUserAndDay(t *testing.T) {
	day := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	assert.NotEqual(t, PeriodKey(uuid.New(), day), PeriodKey(uuid.New(), day))
	userID := uuid.New()
	assert.NotEqual(t, PeriodKey(userID, day), PeriodKey(userID, day.AddDate(0, 0, 1)))
}

func TestClosureSnapshot_LargestPresence(t *testing.T) {
	snapshot := ClosureSnapshot{}
	assert.False(t, snapshot.HasLargestIncome())
	assert.False(t, snapshot.HasLargestExpense())

	snapshot.LargestIncomeAmount = decimal.NewFromFloat(10)
	assert.True(t, snapshot.HasLargestIncome())
	assert.False(t, snapshot.HasLargestExpense())

	snapshot.LargestExpenseAmount = decimal.NewFromFloat(0.01)
	assert.True(t, snapshot.HasLargestExpense())
}
