package otp

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/expenzo/expenzo-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OTPRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.OTPEntity, error)
	Replace(ctx context.Context, data *model.OTPEntity) error
	DeleteByID(ctx context.Context, id uint64) error
	DeleteByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (int64, error)
}

func NewOTPRepository(conn *sqlx.DB) OTPRepository {
	return &SQL{conn: conn}
}

const (
	getOTPByEmailQuery = `SELECT id, email, code, name, password, expires_at, created_at FROM otp WHERE email = ?`

	// The unique key on email keeps at most one pending code per address;
	// a reissue overwrites the previous row in place.
	replaceOTPQuery = `INSERT INTO otp (email, code, name, password, expires_at, created_at)
VALUES (?, ?, ?, ?, ?, NOW())
ON DUPLICATE KEY UPDATE code = VALUES(code), name = VALUES(name), password = VALUES(password), expires_at = VALUES(expires_at)`

	deleteOTPQuery = `DELETE FROM otp WHERE id = ?`
)

func (s *SQL) GetByEmail(ctx context.Context, email string) (*model.OTPEntity, error) {
	var entity model.OTPEntity
	if err := s.conn.QueryRowxContext(ctx, getOTPByEmailQuery, email).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Replace(ctx context.Context, data *model.OTPEntity) error {
	_, err := s.conn.ExecContext(ctx, replaceOTPQuery, data.Email, data.Code, data.Name, data.Password, data.ExpiresAt)
	return err
}

func (s *SQL) DeleteByID(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteOTPQuery, id)
	return err
}

// DeleteByIDTx removes the pending row inside a transaction and reports how
// many rows went away. A zero count means another request consumed the code
// first.
func (s *SQL) DeleteByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (int64, error) {
	result, err := tx.ExecContext(ctx, deleteOTPQuery, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
