package budget_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	appbudget "github.com/expenzo/expenzo-backend/application/budget"
	"github.com/expenzo/expenzo-backend/constant"
	budgetmocks "github.com/expenzo/expenzo-backend/mocks/repository/budget"
	"github.com/expenzo/expenzo-backend/model"
	cerr "github.com/expenzo/expenzo-backend/utils/errors"
)

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()

	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s (%s), want %s", ce.ErrorCode(), ce.Error(), constant.ErrorTypeCode[want])
	}
}

func flexFloat(t *testing.T, raw string) model.FlexFloat {
	t.Helper()

	var f model.FlexFloat
	if err := f.UnmarshalJSON([]byte(raw)); err != nil {
		t.Fatalf("flexFloat(%s): %v", raw, err)
	}
	return f
}

func isDefaultTracker(tr *model.BudgetTracker) bool {
	return tr.UserID == 7 &&
		tr.TotalBudget == constant.DefaultTotalBudget &&
		tr.CategoryBudgets.Food == constant.DefaultFoodBudget &&
		tr.CategoryBudgets.Transportation == constant.DefaultTransportationBudget &&
		tr.CategoryBudgets.Entertainment == constant.DefaultEntertainmentBudget &&
		tr.CategoryBudgets.Other == constant.DefaultOtherBudget
}

func TestBudgetApp_GetBudget(t *testing.T) {
	budgetRepo := budgetmocks.NewBudgetRepository(t)
	budgetRepo.
		On("GetOrCreate", mock.Anything, mock.MatchedBy(isDefaultTracker)).
		Return(&model.BudgetTracker{ID: 1, UserID: 7, TotalBudget: constant.DefaultTotalBudget}, nil).
		Once()
	app := appbudget.NewBudgetApp(budgetRepo)

	got, err := app.GetBudget(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetBudget() error = %v", err)
	}
	if got.TotalBudget != constant.DefaultTotalBudget {
		t.Fatalf("totalBudget = %v", got.TotalBudget)
	}
}

func TestBudgetApp_UpdateSettings(t *testing.T) {
	total := flexFloat(t, `"1500"`)

	type fields struct {
		budgetRepo *budgetmocks.BudgetRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.UpdateBudgetSettingsRequest
		mockCall func(f fields)
		check    func(t *testing.T, got *model.BudgetTracker)
	}{
		{
			name:   "success: first touch fills missing values from defaults",
			fields: fields{budgetRepo: budgetmocks.NewBudgetRepository(t)},
			req:    &model.UpdateBudgetSettingsRequest{TotalBudget: &total},
			mockCall: func(f fields) {
				f.budgetRepo.
					On("GetByUser", mock.Anything, uint64(7)).
					Return(nil, nil).
					Once()
				f.budgetRepo.
					On("GetOrCreate", mock.Anything, mock.MatchedBy(func(tr *model.BudgetTracker) bool {
						return tr.TotalBudget == 1500 && tr.CategoryBudgets.Food == constant.DefaultFoodBudget
					})).
					Return(&model.BudgetTracker{ID: 1, UserID: 7, TotalBudget: 1500}, nil).
					Once()
			},
			check: func(t *testing.T, got *model.BudgetTracker) {
				if got.TotalBudget != 1500 {
					t.Fatalf("totalBudget = %v", got.TotalBudget)
				}
			},
		},
		{
			name:   "success: category patch keeps stored total",
			fields: fields{budgetRepo: budgetmocks.NewBudgetRepository(t)},
			req: &model.UpdateBudgetSettingsRequest{
				CategoryBudgets: &model.CategoryBudgets{Food: 400, Transportation: 150, Entertainment: 80, Other: 70},
			},
			mockCall: func(f fields) {
				f.budgetRepo.
					On("GetByUser", mock.Anything, uint64(7)).
					Return(&model.BudgetTracker{ID: 1, UserID: 7, TotalBudget: 2000}, nil).
					Once()
				f.budgetRepo.
					On("Save", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			check: func(t *testing.T, got *model.BudgetTracker) {
				if got.TotalBudget != 2000 {
					t.Fatalf("totalBudget = %v, want untouched", got.TotalBudget)
				}
				if got.CategoryBudgets.Food != 400 {
					t.Fatalf("food budget = %v", got.CategoryBudgets.Food)
				}
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.mockCall(tt.fields)
			app := appbudget.NewBudgetApp(tt.fields.budgetRepo)

			got, err := app.UpdateSettings(context.Background(), 7, tt.req)
			if err != nil {
				t.Fatalf("UpdateSettings() error = %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestBudgetApp_AddExpense(t *testing.T) {
	type fields struct {
		budgetRepo *budgetmocks.BudgetRepository
	}
	tests := []struct {
		name        string
		fields      fields
		req         *model.AddBudgetExpenseRequest
		mockCall    func(f fields)
		check       func(t *testing.T, got *model.BudgetTracker)
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name:        "error: missing category",
			fields:      fields{budgetRepo: budgetmocks.NewBudgetRepository(t)},
			req:         &model.AddBudgetExpenseRequest{Amount: flexFloat(t, `10`)},
			wantErr:     true,
			wantErrType: constant.ErrCategoryAmountRequired,
		},
		{
			name:        "error: zero amount reads as missing",
			fields:      fields{budgetRepo: budgetmocks.NewBudgetRepository(t)},
			req:         &model.AddBudgetExpenseRequest{Category: "Food", Amount: flexFloat(t, `0`)},
			wantErr:     true,
			wantErrType: constant.ErrCategoryAmountRequired,
		},
		{
			name:        "error: negative amount",
			fields:      fields{budgetRepo: budgetmocks.NewBudgetRepository(t)},
			req:         &model.AddBudgetExpenseRequest{Category: "Food", Amount: flexFloat(t, `-5`)},
			wantErr:     true,
			wantErrType: constant.ErrAmountNotPositive,
		},
		{
			name:        "error: unknown category",
			fields:      fields{budgetRepo: budgetmocks.NewBudgetRepository(t)},
			req:         &model.AddBudgetExpenseRequest{Category: "Rent", Amount: flexFloat(t, `10`)},
			wantErr:     true,
			wantErrType: constant.ErrInvalidCategory,
		},
		{
			name:   "success: blank description gets the default",
			fields: fields{budgetRepo: budgetmocks.NewBudgetRepository(t)},
			req:    &model.AddBudgetExpenseRequest{Category: "Food", Amount: flexFloat(t, `"12.5"`)},
			mockCall: func(f fields) {
				f.budgetRepo.
					On("GetOrCreate", mock.Anything, mock.MatchedBy(isDefaultTracker)).
					Return(&model.BudgetTracker{ID: 1, UserID: 7, Expenses: model.BudgetExpenseList{}}, nil).
					Once()
				f.budgetRepo.
					On("Save", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			check: func(t *testing.T, got *model.BudgetTracker) {
				if len(got.Expenses) != 1 {
					t.Fatalf("expenses = %d, want 1", len(got.Expenses))
				}
				e := got.Expenses[0]
				if e.Category != "Food" || e.Amount != 12.5 {
					t.Fatalf("expense = %+v", e)
				}
				if e.Description != constant.DefaultExpenseDescription {
					t.Fatalf("description = %q", e.Description)
				}
				if e.ID == "" {
					t.Fatal("expense id not assigned")
				}
				if time.Since(e.Date) > time.Minute {
					t.Fatalf("date not stamped: %v", e.Date)
				}
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appbudget.NewBudgetApp(tt.fields.budgetRepo)

			got, err := app.AddExpense(context.Background(), 7, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddExpense() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
				return
			}
			tt.check(t, got)
		})
	}
}

func TestBudgetApp_RemoveExpense(t *testing.T) {
	type fields struct {
		budgetRepo *budgetmocks.BudgetRepository
	}
	tests := []struct {
		name         string
		fields       fields
		expenseID    string
		mockCall     func(f fields)
		wantExpenses int
		wantErr      bool
		wantErrType  constant.ErrorType
	}{
		{
			name:      "error: no tracker yet",
			fields:    fields{budgetRepo: budgetmocks.NewBudgetRepository(t)},
			expenseID: "e1",
			mockCall: func(f fields) {
				f.budgetRepo.
					On("GetByUser", mock.Anything, uint64(7)).
					Return(nil, nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrBudgetNotFound,
		},
		{
			name:      "success: unknown id is a no-op",
			fields:    fields{budgetRepo: budgetmocks.NewBudgetRepository(t)},
			expenseID: "missing",
			mockCall: func(f fields) {
				f.budgetRepo.
					On("GetByUser", mock.Anything, uint64(7)).
					Return(&model.BudgetTracker{ID: 1, UserID: 7, Expenses: model.BudgetExpenseList{{ID: "e1"}}}, nil).
					Once()
				f.budgetRepo.
					On("Save", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			wantExpenses: 1,
		},
		{
			name:      "success: matching id is filtered out",
			fields:    fields{budgetRepo: budgetmocks.NewBudgetRepository(t)},
			expenseID: "e1",
			mockCall: func(f fields) {
				f.budgetRepo.
					On("GetByUser", mock.Anything, uint64(7)).
					Return(&model.BudgetTracker{ID: 1, UserID: 7, Expenses: model.BudgetExpenseList{{ID: "e1"}, {ID: "e2"}}}, nil).
					Once()
				f.budgetRepo.
					On("Save", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			wantExpenses: 1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appbudget.NewBudgetApp(tt.fields.budgetRepo)

			got, err := app.RemoveExpense(context.Background(), 7, tt.expenseID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RemoveExpense() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
				return
			}
			if len(got.Expenses) != tt.wantExpenses {
				t.Fatalf("expenses = %d, want %d", len(got.Expenses), tt.wantExpenses)
			}
		})
	}
}
