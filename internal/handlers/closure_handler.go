package handlers

import (
	"net/http"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ClosureHandler handles period-closing HTTP requests
type ClosureHandler struct {
	closureService services.ClosureServiceInterface
}

// NewClosureHandler creates a new closure handler
func NewClosureHandler(closureService services.ClosureServiceInterface) *ClosureHandler {
	return &ClosureHandler{closureService: closureService}
}

// ClosePeriod aggregates the caller's open transactions in a date range
// into an accumulated snapshot and marks them closed
// @Summary Close a reporting period
// @Description Sum open expenses and incomes with occurred_at in [range_start, range_end), merge the totals into the snapshot for the range end date, and mark the transactions closed
// @Tags Closures
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ClosePeriodRequest true "Period to close"
// @Success 200 {object} dto.ClosureSnapshotResponse "Accumulated snapshot after the run"
// @Failure 400 {object} errors.ErrorResponse "CLOSURE_002 - Invalid range"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "CLOSURE_003 - Closing run failed"
// @Router /closures [post]
func (h *ClosureHandler) ClosePeriod(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ClosePeriodRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if err := h.closureService.ClosePeriod(userID, req.PeriodLabel, req.RangeStart, req.RangeEnd); err != nil {
		if err == services.ErrInvalidRange {
			return SendError(c, errors.ClosureInvalidRange)
		}
		return SendError(c, errors.ClosureFailed, errors.WithDetails(err.Error()))
	}

	snapshot, err := h.closureService.ClosureByPeriodEnd(userID, req.RangeEnd)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toClosureResponse(snapshot))
}

// LatestClosure returns the caller's most recent snapshot
// @Summary Latest closure snapshot
// @Tags Closures
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ClosureSnapshotResponse "Most recent snapshot"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "CLOSURE_001 - No closures yet"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /closures/latest [get]
func (h *ClosureHandler) LatestClosure(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	snapshot, err := h.closureService.LatestClosure(userID)
	if err != nil {
		if err == repositories.ErrClosureNotFound {
			return SendError(c, errors.ClosureNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toClosureResponse(snapshot))
}

// GetClosure returns the snapshot for one period end date
// @Summary Closure snapshot by period end
// @Tags Closures
// @Security BearerAuth
// @Produce json
// @Param period_end query string true "Period end date (YYYY-MM-DD)"
// @Success 200 {object} dto.ClosureSnapshotResponse "Snapshot for the period"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid date"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "CLOSURE_001 - Snapshot not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /closures [get]
func (h *ClosureHandler) GetClosure(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	periodEndStr := c.QueryParam("period_end")
	periodEnd, err := time.Parse("2006-01-02", periodEndStr)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("period_end must use YYYY-MM-DD"))
	}

	snapshot, err := h.closureService.ClosureByPeriodEnd(userID, periodEnd)
	if err != nil {
		if err == repositories.ErrClosureNotFound {
			return SendError(c, errors.ClosureNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toClosureResponse(snapshot))
}

func toClosureResponse(snapshot *models.ClosureSnapshot) dto.ClosureSnapshotResponse {
	resp := dto.ClosureSnapshotResponse{
		PeriodKey:    snapshot.PeriodKey,
		PeriodLabel:  snapshot.PeriodLabel,
		TotalIncome:  snapshot.TotalIncome.String(),
		TotalExpense: snapshot.TotalExpense.String(),
		Balance:      snapshot.Balance.String(),
		ClosedAt:     snapshot.ClosedAt,
	}
	if snapshot.HasLargestIncome() {
		resp.LargestIncomeNote = snapshot.LargestIncomeNote
		resp.LargestIncome = snapshot.LargestIncomeAmount.String()
	}
	if snapshot.HasLargestExpense() {
		resp.LargestExpenseNote = snapshot.LargestExpenseNote
		resp.LargestExpense = snapshot.LargestExpenseAmount.String()
	}
	return resp
}
