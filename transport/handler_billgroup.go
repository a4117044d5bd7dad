package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
	"github.com/expenzo/expenzo-backend/utils/errors"
)

// GetBillGroup handler
// @Summary Get the caller's bill group
// @Description Returns the group, creating it on first access
// @Tags BillGroup
// @Produce json
// @Success 200 {object} model.BillGroup
// @Router /api/billgroup [get]
// @Security BearerAuth
func (s *RestHandler) GetBillGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	group, err := s.BillGroupApp.GetGroup(ctx, viewerID(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, group)
}

// AddPerson handler
// @Summary Add a person to the group
// @Tags BillGroup
// @Accept json
// @Produce json
// @Param request body model.AddPersonRequest true "Person Request"
// @Success 200 {object} model.BillGroup
// @Failure 400 {object} transport.errorBody
// @Router /api/billgroup/person [post]
// @Security BearerAuth
func (s *RestHandler) AddPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AddPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	group, err := s.BillGroupApp.AddPerson(ctx, viewerID(ctx), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, group)
}

// RemovePerson handler
// @Summary Remove a person from the group
// @Tags BillGroup
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} model.BillGroup
// @Failure 404 {object} transport.errorBody
// @Router /api/billgroup/person/{id} [delete]
// @Security BearerAuth
func (s *RestHandler) RemovePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	group, err := s.BillGroupApp.RemovePerson(ctx, viewerID(ctx), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, group)
}

// AddBillExpense handler
// @Summary Add a shared expense
// @Tags BillGroup
// @Accept json
// @Produce json
// @Param request body model.AddBillExpenseRequest true "Expense Request"
// @Success 200 {object} model.BillGroup
// @Failure 400 {object} transport.errorBody
// @Router /api/billgroup/expense [post]
// @Security BearerAuth
func (s *RestHandler) AddBillExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AddBillExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	group, err := s.BillGroupApp.AddExpense(ctx, viewerID(ctx), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, group)
}

// RemoveBillExpense handler
// @Summary Remove a shared expense
// @Tags BillGroup
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} model.BillGroup
// @Failure 404 {object} transport.errorBody
// @Router /api/billgroup/expense/{id} [delete]
// @Security BearerAuth
func (s *RestHandler) RemoveBillExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	group, err := s.BillGroupApp.RemoveExpense(ctx, viewerID(ctx), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, group)
}

// ResetBillGroup handler
// @Summary Delete the caller's bill group
// @Description The next access recreates an empty group
// @Tags BillGroup
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router /api/billgroup/reset [delete]
// @Security BearerAuth
func (s *RestHandler) ResetBillGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.BillGroupApp.Reset(ctx, viewerID(ctx)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.MessageResponse{Message: "Bill group reset successfully"})
}
