package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
	"github.com/expenzo/expenzo-backend/utils/errors"
)

// GetBudget handler
// @Summary Get the caller's budget tracker
// @Description Returns the tracker, creating it with default budgets on first access
// @Tags Budget
// @Produce json
// @Success 200 {object} model.BudgetTracker
// @Router /api/budget [get]
// @Security BearerAuth
func (s *RestHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tracker, err := s.BudgetApp.GetBudget(ctx, viewerID(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, tracker)
}

// UpdateBudgetSettings handler
// @Summary Update budget limits
// @Description Patch the total and/or per-category budgets
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body model.UpdateBudgetSettingsRequest true "Settings Request"
// @Success 200 {object} model.BudgetTracker
// @Failure 400 {object} transport.errorBody
// @Router /api/budget/settings [put]
// @Security BearerAuth
func (s *RestHandler) UpdateBudgetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UpdateBudgetSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	tracker, err := s.BudgetApp.UpdateSettings(ctx, viewerID(ctx), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, tracker)
}

// AddBudgetExpense handler
// @Summary Record an expense
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body model.AddBudgetExpenseRequest true "Expense Request"
// @Success 200 {object} model.BudgetTracker
// @Failure 400 {object} transport.errorBody
// @Router /api/budget/expense [post]
// @Security BearerAuth
func (s *RestHandler) AddBudgetExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AddBudgetExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	tracker, err := s.BudgetApp.AddExpense(ctx, viewerID(ctx), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, tracker)
}

// RemoveBudgetExpense handler
// @Summary Remove a recorded expense
// @Tags Budget
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} model.BudgetTracker
// @Failure 404 {object} transport.errorBody
// @Router /api/budget/expense/{id} [delete]
// @Security BearerAuth
func (s *RestHandler) RemoveBudgetExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tracker, err := s.BudgetApp.RemoveExpense(ctx, viewerID(ctx), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, tracker)
}
