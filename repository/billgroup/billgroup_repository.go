package billgroup

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BillGroupRepository interface {
	GetByUser(ctx context.Context, userID uint64) (*model.BillGroup, error)
	GetOrCreate(ctx context.Context, userID uint64) (*model.BillGroup, error)
	Save(ctx context.Context, data *model.BillGroup) error
	DeleteByUser(ctx context.Context, userID uint64) error
}

func NewBillGroupRepository(conn *sqlx.DB) BillGroupRepository {
	return &SQL{conn: conn}
}

const (
	getGroupQuery = `SELECT id, user_id, group_name, people, expenses, created_at, updated_at FROM bill_group WHERE user_id = ?`

	// Atomic create-if-absent: the unique key on user_id makes concurrent
	// first-touch requests converge on a single row.
	createGroupQuery = `INSERT INTO bill_group (user_id, group_name, people, expenses, created_at)
VALUES (?, ?, ?, ?, NOW())
ON DUPLICATE KEY UPDATE id = id`

	// Whole-document write: last write wins on people/expenses.
	saveGroupQuery = `UPDATE bill_group SET group_name = ?, people = ?, expenses = ?, updated_at = NOW() WHERE id = ?`

	deleteGroupQuery = `DELETE FROM bill_group WHERE user_id = ?`
)

func (s *SQL) GetByUser(ctx context.Context, userID uint64) (*model.BillGroup, error) {
	var group model.BillGroup
	if err := s.conn.QueryRowxContext(ctx, getGroupQuery, userID).StructScan(&group); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (s *SQL) GetOrCreate(ctx context.Context, userID uint64) (*model.BillGroup, error) {
	fresh := &model.BillGroup{
		UserID:    userID,
		GroupName: constant.DefaultGroupName,
		People:    model.PersonList{},
		Expenses:  model.BillExpenseList{},
	}

	if _, err := s.conn.ExecContext(ctx, createGroupQuery, fresh.UserID, fresh.GroupName, fresh.People, fresh.Expenses); err != nil {
		return nil, err
	}
	return s.GetByUser(ctx, userID)
}

func (s *SQL) Save(ctx context.Context, data *model.BillGroup) error {
	_, err := s.conn.ExecContext(ctx, saveGroupQuery, data.GroupName, data.People, data.Expenses, data.ID)
	return err
}

func (s *SQL) DeleteByUser(ctx context.Context, userID uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteGroupQuery, userID)
	return err
}
