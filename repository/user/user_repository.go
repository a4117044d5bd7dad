package user

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/expenzo/expenzo-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	SetResetToken(ctx context.Context, userID uint64, token string, expiresAt time.Time) error
	ResetPassword(ctx context.Context, userID uint64, passwordHash string) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (name, email, password_hash, verified, created_at) VALUES (?, ?, ?, ?, NOW())`
	getUserBase     = `SELECT id, name, email, password_hash, verified, reset_password_token, reset_password_expire, created_at, updated_at FROM user WHERE true`

	setResetTokenQuery = `UPDATE user SET reset_password_token = ?, reset_password_expire = ?, updated_at = NOW() WHERE id = ?`

	// Clearing the token alongside the new hash makes reset tokens
	// single-use.
	resetPasswordQuery = `UPDATE user SET password_hash = ?, reset_password_token = NULL, reset_password_expire = NULL, updated_at = NOW() WHERE id = ?`
)

// CreateTx inserts a user inside the caller's transaction. Registration is
// the only writer, and the insert must commit atomically with the OTP
// consumption.
func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := tx.ExecContext(ctx, insertUserQuery, data.Name, data.Email, data.PasswordHash, data.Verified)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) SetResetToken(ctx context.Context, userID uint64, token string, expiresAt time.Time) error {
	_, err := s.conn.ExecContext(ctx, setResetTokenQuery, token, expiresAt, userID)
	return err
}

func (s *SQL) ResetPassword(ctx context.Context, userID uint64, passwordHash string) error {
	_, err := s.conn.ExecContext(ctx, resetPasswordQuery, passwordHash, userID)
	return err
}
