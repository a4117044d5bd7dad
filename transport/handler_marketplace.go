package transport

import (
	"encoding/json"
	"net/http"

	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
	utilsContext "github.com/expenzo/expenzo-backend/utils/context"
	"github.com/expenzo/expenzo-backend/utils/errors"
	validatorx "github.com/expenzo/expenzo-backend/utils/validator"
)

// ListItems handler
// @Summary List marketplace items
// @Description List every listing, newest first, with ownership annotation
// @Tags Marketplace
// @Produce json
// @Success 200 {array} model.MarketplaceItem
// @Router /api/marketplace/items [get]
func (s *RestHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := s.MarketplaceApp.ListItems(ctx, viewerID(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, items)
}

// GetItem handler
// @Summary Get a marketplace item
// @Tags Marketplace
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} model.MarketplaceItem
// @Failure 404 {object} transport.errorBody
// @Router /api/marketplace/items/{id} [get]
func (s *RestHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrItemNotFound))
		return
	}

	item, err := s.MarketplaceApp.GetItem(ctx, id, viewerID(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, item)
}

// CreateItem handler
// @Summary List an item for sale
// @Tags Marketplace
// @Accept json
// @Produce json
// @Param request body model.MarketplaceItemRequest true "Item Request"
// @Success 201 {object} model.ItemResponse
// @Failure 400 {object} model.ValidationErrorResponse
// @Failure 401 {object} transport.errorBody
// @Router /api/marketplace/items [post]
// @Security BearerAuth
func (s *RestHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utilsContext.GetIdentity(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
		return
	}

	var req model.MarketplaceItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	item, err := s.MarketplaceApp.CreateItem(ctx, identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, model.ItemResponse{
		Message: "Item listed successfully",
		Item:    *item,
	})
}

// UpdateItem handler
// @Summary Update a listing
// @Tags Marketplace
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body model.MarketplaceItemRequest true "Item Request"
// @Success 200 {object} model.ItemResponse
// @Failure 403 {object} transport.errorBody
// @Failure 404 {object} transport.errorBody
// @Router /api/marketplace/items/{id} [put]
// @Security BearerAuth
func (s *RestHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrItemNotFound))
		return
	}

	var req model.MarketplaceItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	item, err := s.MarketplaceApp.UpdateItem(ctx, id, viewerID(ctx), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.ItemResponse{
		Message: "Item updated successfully",
		Item:    *item,
	})
}

// DeleteItem handler
// @Summary Delete a listing
// @Tags Marketplace
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} model.MessageResponse
// @Failure 403 {object} transport.errorBody
// @Failure 404 {object} transport.errorBody
// @Router /api/marketplace/items/{id} [delete]
// @Security BearerAuth
func (s *RestHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrItemNotFound))
		return
	}

	if err := s.MarketplaceApp.DeleteItem(ctx, id, viewerID(ctx)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.MessageResponse{Message: "Item deleted successfully"})
}

// ListMyItems handler
// @Summary List the caller's items
// @Tags Marketplace
// @Produce json
// @Success 200 {array} model.MarketplaceItem
// @Router /api/marketplace/my-items [get]
// @Security BearerAuth
func (s *RestHandler) ListMyItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := s.MarketplaceApp.ListMyItems(ctx, viewerID(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, items)
}
