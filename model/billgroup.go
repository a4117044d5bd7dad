package model

import "time"

// BillGroup is the one-per-user shared-bill document. People and expenses
// live as JSON arrays inside the row; the whole document is rewritten on
// every mutation (last write wins, matching the store contract).
type BillGroup struct {
	ID        uint64          `db:"id" json:"id"`
	UserID    uint64          `db:"user_id" json:"userId"`
	GroupName string          `db:"group_name" json:"groupName"`
	People    PersonList      `db:"people" json:"people"`
	Expenses  BillExpenseList `db:"expenses" json:"expenses"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time      `db:"updated_at" json:"updatedAt,omitempty"`
}

type Person struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Note           string  `json:"note"`
	InitialBalance float64 `json:"initialBalance"`
}

// BillExpense stores split inputs only; settlement is computed client-side.
type BillExpense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Payer       string    `json:"payer"`
	Date        time.Time `json:"date"`
	SplitType   string    `json:"splitType"`
	Shares      ShareMap  `json:"shares"`
}

type AddPersonRequest struct {
	Name           string    `json:"name"`
	Note           string    `json:"note"`
	InitialBalance FlexFloat `json:"initialBalance"`
}

type AddBillExpenseRequest struct {
	Description string     `json:"description"`
	Amount      FlexFloat  `json:"amount"`
	Payer       string     `json:"payer"`
	Date        *time.Time `json:"date"`
	SplitType   string     `json:"splitType"`
	Shares      ShareMap   `json:"shares"`
}
