package model

import "time"

// UserEntity represents the user table entity. The password hash and reset
// token fields never serialize to JSON.
type UserEntity struct {
	ID                  uint64     `db:"id" json:"id"`
	Name                string     `db:"name" json:"name"`
	Email               string     `db:"email" json:"email"`
	PasswordHash        string     `db:"password_hash" json:"-"`
	Verified            bool       `db:"verified" json:"verified"`
	ResetPasswordToken  *string    `db:"reset_password_token" json:"-"`
	ResetPasswordExpire *time.Time `db:"reset_password_expire" json:"-"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

// Identity is the authenticated caller attached to the request context by
// the auth guard. Name is a snapshot taken at token issuance; it is copied
// into denormalized seller/poster fields and is not refreshed if the user
// renames themselves later.
type Identity struct {
	UserID uint64
	Email  string
	Name   string
}

// AuthUser is the public shape of a user in auth responses.
type AuthUser struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SendOTPRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50,person_name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,password_strength"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,password_strength"`
}

// OTPResponse covers send-otp and resend-otp. DevOTP and Warning are only
// set when dispatch failed and the insecure dev fallback is enabled.
type OTPResponse struct {
	Message string `json:"message"`
	DevOTP  string `json:"devOTP,omitempty"`
	Warning string `json:"warning,omitempty"`
}

type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
