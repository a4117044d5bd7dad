package marketplace

import (
	"context"

	"go.uber.org/zap"

	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
	marketplacerepo "github.com/expenzo/expenzo-backend/repository/marketplace"
	"github.com/expenzo/expenzo-backend/utils/errors"
	"github.com/expenzo/expenzo-backend/utils/logger"
)

type MarketplaceApp interface {
	ListItems(ctx context.Context, viewerID uint64) ([]model.MarketplaceItem, error)
	GetItem(ctx context.Context, id, viewerID uint64) (*model.MarketplaceItem, error)
	CreateItem(ctx context.Context, owner model.Identity, req *model.MarketplaceItemRequest) (*model.MarketplaceItem, error)
	UpdateItem(ctx context.Context, id, callerID uint64, req *model.MarketplaceItemRequest) (*model.MarketplaceItem, error)
	DeleteItem(ctx context.Context, id, callerID uint64) error
	ListMyItems(ctx context.Context, userID uint64) ([]model.MarketplaceItem, error)
}

type marketplaceAppImpl struct {
	itemRepo marketplacerepo.MarketplaceRepository
}

func NewMarketplaceApp(itemRepo marketplacerepo.MarketplaceRepository) MarketplaceApp {
	return &marketplaceAppImpl{itemRepo: itemRepo}
}

// ListItems returns every listing, newest first. viewerID 0 means an
// anonymous caller; isOwner is then false on every record.
func (s *marketplaceAppImpl) ListItems(ctx context.Context, viewerID uint64) ([]model.MarketplaceItem, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		logger.Error("[ListItems] err itemRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	for i := range items {
		items[i].IsOwner = viewerID != 0 && items[i].UserID == viewerID
	}
	return items, nil
}

func (s *marketplaceAppImpl) GetItem(ctx context.Context, id, viewerID uint64) (*model.MarketplaceItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetItem] err itemRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrItemNotFound)
	}

	item.IsOwner = viewerID != 0 && item.UserID == viewerID
	return item, nil
}

func (s *marketplaceAppImpl) CreateItem(ctx context.Context, owner model.Identity, req *model.MarketplaceItemRequest) (*model.MarketplaceItem, error) {
	condition := req.Condition
	if condition == "" {
		condition = constant.DefaultItemCondition
	}
	category := req.Category
	if category == "" {
		category = constant.DefaultItemCategory
	}

	item := &model.MarketplaceItem{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Image:       req.Image,
		Condition:   condition,
		Category:    category,
		SellerPhone: req.SellerPhone,
		UserID:      owner.UserID,
		SellerName:  owner.Name,
		SellerEmail: owner.Email,
	}

	item, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		logger.Error("[CreateItem] err itemRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	item.IsOwner = true
	return item, nil
}

func (s *marketplaceAppImpl) UpdateItem(ctx context.Context, id, callerID uint64, req *model.MarketplaceItemRequest) (*model.MarketplaceItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateItem] err itemRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrItemNotFound)
	}
	if item.UserID != callerID {
		return nil, errors.SetCustomError(constant.ErrNotItemOwner)
	}

	// Full replace, except condition and category keep their stored value
	// when omitted.
	item.Title = req.Title
	item.Description = req.Description
	item.Price = *req.Price
	item.Image = req.Image
	if req.Condition != "" {
		item.Condition = req.Condition
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	item.SellerPhone = req.SellerPhone

	if err := s.itemRepo.Update(ctx, item); err != nil {
		logger.Error("[UpdateItem] err itemRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	item.IsOwner = true
	return item, nil
}

func (s *marketplaceAppImpl) DeleteItem(ctx context.Context, id, callerID uint64) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteItem] err itemRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if item == nil {
		return errors.SetCustomError(constant.ErrItemNotFound)
	}
	if item.UserID != callerID {
		return errors.SetCustomError(constant.ErrNotItemOwner)
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteItem] err itemRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	return nil
}

func (s *marketplaceAppImpl) ListMyItems(ctx context.Context, userID uint64) ([]model.MarketplaceItem, error) {
	items, err := s.itemRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListMyItems] err itemRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	for i := range items {
		items[i].IsOwner = true
	}
	return items, nil
}
