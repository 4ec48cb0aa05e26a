package database

import (
	"github.com/conferia/booking-backend/internal/models"
)

// SessionRepository reads login sessions created by the auth subsystem.
// A token whose signature verifies but that has no session row is
// treated as logged out.
type SessionRepository struct {
	db DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// GetByToken retrieves the session associated with a token. Returns
// sql.ErrNoRows when no session exists for the token.
func (r *SessionRepository) GetByToken(token string) (*models.Session, error) {
	query := `
		SELECT id, user_id, token, created_at, updated_at
		FROM sessions
		WHERE token = $1
	`

	session := &models.Session{}
	if err := r.db.Get(session, query, token); err != nil {
		return nil, err
	}
	return session, nil
}
