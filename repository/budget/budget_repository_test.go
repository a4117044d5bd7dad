package budget

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
)

func newRepoWithMock(t *testing.T) (BudgetRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewBudgetRepository(sqlx.NewDb(db, "mysql")), mock
}

func budgetColumns() []string {
	return []string{"id", "user_id", "total_budget", "category_budgets", "expenses", "created_at", "updated_at"}
}

func testDefaults() *model.BudgetTracker {
	return &model.BudgetTracker{
		UserID:      7,
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

// First touch must go through the upsert on the unique user_id key followed
// by a re-select, never a plain INSERT or a find-then-create pair.
func TestBudgetRepository_GetOrCreate_FirstTouch(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(createBudgetQuery)).
		WithArgs(int64(7), float64(constant.DefaultTotalBudget), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(getBudgetQuery)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(budgetColumns()).
			AddRow(1, 7, float64(constant.DefaultTotalBudget),
				[]byte(`{"Food":300,"Transportation":200,"Entertainment":100,"Other":100}`),
				[]byte(`[]`), time.Now(), nil))

	got, err := repo.GetOrCreate(context.Background(), testDefaults())
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if got.ID != 1 || got.TotalBudget != constant.DefaultTotalBudget {
		t.Fatalf("tracker = %+v", got)
	}
	if got.CategoryBudgets.Food != constant.DefaultFoodBudget {
		t.Fatalf("category budgets not scanned: %+v", got.CategoryBudgets)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// When the row already exists the upsert is a no-op and the caller gets the
// persisted tracker back, not the defaults it passed in. Two concurrent
// first-touch calls therefore converge on one row.
func TestBudgetRepository_GetOrCreate_ExistingRowWins(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(createBudgetQuery)).
		WithArgs(int64(7), float64(constant.DefaultTotalBudget), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(getBudgetQuery)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(budgetColumns()).
			AddRow(3, 7, 2500.0,
				[]byte(`{"Food":900,"Transportation":200,"Entertainment":100,"Other":100}`),
				[]byte(`[{"id":"e1","category":"Food","amount":12.5,"description":"Lunch","date":"2026-08-01T12:00:00Z"}]`),
				time.Now(), nil))

	got, err := repo.GetOrCreate(context.Background(), testDefaults())
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if got.ID != 3 || got.TotalBudget != 2500 || got.CategoryBudgets.Food != 900 {
		t.Fatalf("defaults overwrote the persisted tracker: %+v", got)
	}
	if len(got.Expenses) != 1 || got.Expenses[0].ID != "e1" {
		t.Fatalf("expenses = %+v", got.Expenses)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBudgetRepository_GetByUser_NoRows(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(getBudgetQuery)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(budgetColumns()))

	got, err := repo.GetByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByUser() error = %v", err)
	}
	if got != nil {
		t.Fatalf("tracker = %+v, want nil", got)
	}
}
