package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// BudgetTracker is the one-per-user budget document.
type BudgetTracker struct {
	ID              uint64            `db:"id" json:"id"`
	UserID          uint64            `db:"user_id" json:"userId"`
	TotalBudget     float64           `db:"total_budget" json:"totalBudget"`
	CategoryBudgets CategoryBudgets   `db:"category_budgets" json:"categoryBudgets"`
	Expenses        BudgetExpenseList `db:"expenses" json:"expenses"`
	CreatedAt       time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt       *time.Time        `db:"updated_at" json:"updatedAt,omitempty"`
}

// CategoryBudgets holds the per-category limits. The category set is fixed.
type CategoryBudgets struct {
	Food           float64 `json:"Food"`
	Transportation float64 `json:"Transportation"`
	Entertainment  float64 `json:"Entertainment"`
	Other          float64 `json:"Other"`
}

func (c CategoryBudgets) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *CategoryBudgets) Scan(src interface{}) error {
	return scanJSON(src, c)
}

type BudgetExpense struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

type UpdateBudgetSettingsRequest struct {
	TotalBudget     *FlexFloat       `json:"totalBudget"`
	CategoryBudgets *CategoryBudgets `json:"categoryBudgets"`
}

type AddBudgetExpenseRequest struct {
	Category    string    `json:"category"`
	Amount      FlexFloat `json:"amount"`
	Description string    `json:"description"`
}
