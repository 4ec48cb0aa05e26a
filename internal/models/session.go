package models

import "time"

// Session is an active login session created by the auth subsystem when a
// token is issued. This service only reads sessions: a syntactically valid
// JWT without a live session row is rejected.
type Session struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Token     string    `json:"-" db:"token"` // never expose
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
