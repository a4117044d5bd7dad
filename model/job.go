package model

import "time"

// Job is a job posting. Same ownership contract as MarketplaceItem;
// PosterName/PosterEmail are creation-time snapshots.
type Job struct {
	ID           uint64     `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Company      string     `db:"company" json:"company"`
	Description  string     `db:"description" json:"description"`
	JobType      string     `db:"job_type" json:"jobType"`
	Location     string     `db:"location" json:"location"`
	HourlyRate   *float64   `db:"hourly_rate" json:"hourlyRate,omitempty"`
	Requirements StringList `db:"requirements" json:"requirements"`
	ContactEmail string     `db:"contact_email" json:"contactEmail"`
	ContactPhone *string    `db:"contact_phone" json:"contactPhone,omitempty"`
	UserID       uint64     `db:"user_id" json:"userId"`
	PosterName   string     `db:"poster_name" json:"posterName"`
	PosterEmail  string     `db:"poster_email" json:"posterEmail"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
	IsOwner      bool       `db:"-" json:"isOwner"`
}

type JobRequest struct {
	Title        string   `json:"title" validate:"required,min=3,max=100"`
	Company      string   `json:"company" validate:"required,max=100"`
	Description  string   `json:"description" validate:"required,min=20,max=2000"`
	JobType      string   `json:"jobType" validate:"required,oneof=full-time part-time contract freelance internship temporary"`
	Location     string   `json:"location" validate:"required,max=200"`
	HourlyRate   *float64 `json:"hourlyRate" validate:"omitempty,gte=0"`
	Requirements []string `json:"requirements" validate:"omitempty,dive,required"`
	ContactEmail string   `json:"contactEmail" validate:"required,email"`
	ContactPhone string   `json:"contactPhone" validate:"omitempty,min=10,max=15,phone_number"`
}

type JobResponse struct {
	Message string `json:"message"`
	Job     Job    `json:"job"`
}
