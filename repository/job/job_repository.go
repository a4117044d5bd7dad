package job

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/expenzo/expenzo-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type JobRepository interface {
	List(ctx context.Context) ([]model.Job, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Job, error)
	GetByID(ctx context.Context, id uint64) (*model.Job, error)
	Create(ctx context.Context, data *model.Job) (*model.Job, error)
	Update(ctx context.Context, data *model.Job) error
	Delete(ctx context.Context, id uint64) error
}

func NewJobRepository(conn *sqlx.DB) JobRepository {
	return &SQL{conn: conn}
}

const (
	jobColumns = `id, title, company, description, job_type, location, hourly_rate, requirements, contact_email, contact_phone, user_id, poster_name, poster_email, created_at, updated_at`

	listJobsQuery       = `SELECT ` + jobColumns + ` FROM job ORDER BY created_at DESC, id DESC`
	listJobsByUserQuery = `SELECT ` + jobColumns + ` FROM job WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	getJobQuery         = `SELECT ` + jobColumns + ` FROM job WHERE id = ?`

	insertJobQuery = `INSERT INTO job (title, company, description, job_type, location, hourly_rate, requirements, contact_email, contact_phone, user_id, poster_name, poster_email, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	// user_id, poster_name and poster_email are immutable after creation.
	updateJobQuery = `UPDATE job SET title = ?, company = ?, description = ?, job_type = ?, location = ?, hourly_rate = ?, requirements = ?, contact_email = ?, contact_phone = ?, updated_at = NOW() WHERE id = ?`

	deleteJobQuery = `DELETE FROM job WHERE id = ?`
)

func (s *SQL) List(ctx context.Context) ([]model.Job, error) {
	return s.queryJobs(ctx, listJobsQuery)
}

func (s *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.Job, error) {
	return s.queryJobs(ctx, listJobsByUserQuery, userID)
}

func (s *SQL) queryJobs(ctx context.Context, query string, args ...any) ([]model.Job, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]model.Job, 0)
	for rows.Next() {
		var j model.Job
		if err := rows.StructScan(&j); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Job, error) {
	var j model.Job
	if err := s.conn.QueryRowxContext(ctx, getJobQuery, id).StructScan(&j); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &j, nil
}

func (s *SQL) Create(ctx context.Context, data *model.Job) (*model.Job, error) {
	result, err := s.conn.ExecContext(ctx, insertJobQuery,
		data.Title, data.Company, data.Description, data.JobType, data.Location,
		data.HourlyRate, data.Requirements, data.ContactEmail, data.ContactPhone,
		data.UserID, data.PosterName, data.PosterEmail)
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

func (s *SQL) Update(ctx context.Context, data *model.Job) error {
	_, err := s.conn.ExecContext(ctx, updateJobQuery,
		data.Title, data.Company, data.Description, data.JobType, data.Location,
		data.HourlyRate, data.Requirements, data.ContactEmail, data.ContactPhone,
		data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteJobQuery, id)
	return err
}
