package budget

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/expenzo/expenzo-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BudgetRepository interface {
	GetByUser(ctx context.Context, userID uint64) (*model.BudgetTracker, error)
	GetOrCreate(ctx context.Context, defaults *model.BudgetTracker) (*model.BudgetTracker, error)
	Save(ctx context.Context, data *model.BudgetTracker) error
}

func NewBudgetRepository(conn *sqlx.DB) BudgetRepository {
	return &SQL{conn: conn}
}

const (
	getBudgetQuery = `SELECT id, user_id, total_budget, category_budgets, expenses, created_at, updated_at FROM budget_tracker WHERE user_id = ?`

	// Atomic create-if-absent on the unique user_id key; concurrent
	// first-touch requests converge on a single tracker.
	createBudgetQuery = `INSERT INTO budget_tracker (user_id, total_budget, category_budgets, expenses, created_at)
VALUES (?, ?, ?, ?, NOW())
ON DUPLICATE KEY UPDATE id = id`

	saveBudgetQuery = `UPDATE budget_tracker SET total_budget = ?, category_budgets = ?, expenses = ?, updated_at = NOW() WHERE id = ?`
)

func (s *SQL) GetByUser(ctx context.Context, userID uint64) (*model.BudgetTracker, error) {
	var tracker model.BudgetTracker
	if err := s.conn.QueryRowxContext(ctx, getBudgetQuery, userID).StructScan(&tracker); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &tracker, nil
}

// GetOrCreate inserts the provided defaults when no tracker exists yet and
// returns whatever row ends up persisted.
func (s *SQL) GetOrCreate(ctx context.Context, defaults *model.BudgetTracker) (*model.BudgetTracker, error) {
	if _, err := s.conn.ExecContext(ctx, createBudgetQuery,
		defaults.UserID, defaults.TotalBudget, defaults.CategoryBudgets, defaults.Expenses); err != nil {
		return nil, err
	}
	return s.GetByUser(ctx, defaults.UserID)
}

func (s *SQL) Save(ctx context.Context, data *model.BudgetTracker) error {
	_, err := s.conn.ExecContext(ctx, saveBudgetQuery, data.TotalBudget, data.CategoryBudgets, data.Expenses, data.ID)
	return err
}
