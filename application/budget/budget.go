package budget

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
	budgetrepo "github.com/expenzo/expenzo-backend/repository/budget"
	"github.com/expenzo/expenzo-backend/utils/errors"
	"github.com/expenzo/expenzo-backend/utils/logger"
)

type BudgetApp interface {
	GetBudget(ctx context.Context, userID uint64) (*model.BudgetTracker, error)
	UpdateSettings(ctx context.Context, userID uint64, req *model.UpdateBudgetSettingsRequest) (*model.BudgetTracker, error)
	AddExpense(ctx context.Context, userID uint64, req *model.AddBudgetExpenseRequest) (*model.BudgetTracker, error)
	RemoveExpense(ctx context.Context, userID uint64, expenseID string) (*model.BudgetTracker, error)
}

type budgetAppImpl struct {
	budgetRepo budgetrepo.BudgetRepository
}

func NewBudgetApp(budgetRepo budgetrepo.BudgetRepository) BudgetApp {
	return &budgetAppImpl{budgetRepo: budgetRepo}
}

func defaultTracker(userID uint64) *model.BudgetTracker {
	return &model.BudgetTracker{
		UserID:      userID,
		TotalBudget: constant.DefaultTotalBudget,
		CategoryBudgets: model.CategoryBudgets{
			Food:           constant.DefaultFoodBudget,
			Transportation: constant.DefaultTransportationBudget,
			Entertainment:  constant.DefaultEntertainmentBudget,
			Other:          constant.DefaultOtherBudget,
		},
		Expenses: model.BudgetExpenseList{},
	}
}

func validCategory(category string) bool {
	for _, c := range constant.BudgetCategories {
		if c == category {
			return true
		}
	}
	return false
}

// GetBudget lazily materializes the caller's tracker with the default
// budgets on first touch.
func (s *budgetAppImpl) GetBudget(ctx context.Context, userID uint64) (*model.BudgetTracker, error) {
	tracker, err := s.budgetRepo.GetOrCreate(ctx, defaultTracker(userID))
	if err != nil {
		logger.Error("[GetBudget] err budgetRepo.GetOrCreate", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	return tracker, nil
}

// UpdateSettings patches totalBudget and/or categoryBudgets independently.
// On first-ever creation, values missing from the request fall back to the
// defaults.
func (s *budgetAppImpl) UpdateSettings(ctx context.Context, userID uint64, req *model.UpdateBudgetSettingsRequest) (*model.BudgetTracker, error) {
	tracker, err := s.budgetRepo.GetByUser(ctx, userID)
	if err != nil {
		logger.Error("[UpdateSettings] err budgetRepo.GetByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	if tracker == nil {
		fresh := defaultTracker(userID)
		if req.TotalBudget != nil {
			fresh.TotalBudget = req.TotalBudget.Float64()
		}
		if req.CategoryBudgets != nil {
			fresh.CategoryBudgets = *req.CategoryBudgets
		}

		tracker, err = s.budgetRepo.GetOrCreate(ctx, fresh)
		if err != nil {
			logger.Error("[UpdateSettings] err budgetRepo.GetOrCreate", zap.String("error", err.Error()))
			return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
		}
		return tracker, nil
	}

	if req.TotalBudget != nil {
		tracker.TotalBudget = req.TotalBudget.Float64()
	}
	if req.CategoryBudgets != nil {
		tracker.CategoryBudgets = *req.CategoryBudgets
	}

	if err := s.budgetRepo.Save(ctx, tracker); err != nil {
		logger.Error("[UpdateSettings] err budgetRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	return tracker, nil
}

func (s *budgetAppImpl) AddExpense(ctx context.Context, userID uint64, req *model.AddBudgetExpenseRequest) (*model.BudgetTracker, error) {
	amount := req.Amount.Float64()

	if req.Category == "" || amount == 0 {
		return nil, errors.SetCustomError(constant.ErrCategoryAmountRequired)
	}
	if amount < 0 {
		return nil, errors.SetCustomError(constant.ErrAmountNotPositive)
	}
	if !validCategory(req.Category) {
		return nil, errors.SetCustomError(constant.ErrInvalidCategory)
	}

	tracker, err := s.budgetRepo.GetOrCreate(ctx, defaultTracker(userID))
	if err != nil {
		logger.Error("[AddExpense] err budgetRepo.GetOrCreate", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	description := req.Description
	if description == "" {
		description = constant.DefaultExpenseDescription
	}

	// Date is stamped server-side; clients cannot backdate entries.
	tracker.Expenses = append(tracker.Expenses, model.BudgetExpense{
		ID:          uuid.NewString(),
		Category:    req.Category,
		Amount:      amount,
		Description: description,
		Date:        time.Now(),
	})

	if err := s.budgetRepo.Save(ctx, tracker); err != nil {
		logger.Error("[AddExpense] err budgetRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	return tracker, nil
}

// RemoveExpense is idempotent: an id that is not in the tracker leaves the
// document unchanged.
func (s *budgetAppImpl) RemoveExpense(ctx context.Context, userID uint64, expenseID string) (*model.BudgetTracker, error) {
	tracker, err := s.budgetRepo.GetByUser(ctx, userID)
	if err != nil {
		logger.Error("[RemoveExpense] err budgetRepo.GetByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if tracker == nil {
		return nil, errors.SetCustomError(constant.ErrBudgetNotFound)
	}

	expenses := make(model.BudgetExpenseList, 0, len(tracker.Expenses))
	for _, e := range tracker.Expenses {
		if e.ID != expenseID {
			expenses = append(expenses, e)
		}
	}
	tracker.Expenses = expenses

	if err := s.budgetRepo.Save(ctx, tracker); err != nil {
		logger.Error("[RemoveExpense] err budgetRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	return tracker, nil
}
