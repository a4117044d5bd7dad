package model

import "time"

// OTPEntity is a pending registration: the code plus the name and plaintext
// password held until verification promotes them into a user row. At most
// one row exists per email; reissues replace the previous one.
type OTPEntity struct {
	ID        uint64    `db:"id" json:"-"`
	Email     string    `db:"email" json:"email"`
	Code      string    `db:"code" json:"-"`
	Name      string    `db:"name" json:"name"`
	Password  string    `db:"password" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
