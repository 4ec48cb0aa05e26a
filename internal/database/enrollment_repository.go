package database

import (
	"database/sql"

	"github.com/conferia/booking-backend/internal/models"
)

// EnrollmentRepository reads enrollment and ticket data owned by the
// registration subsystem. This service never writes to these tables.
type EnrollmentRepository struct {
	db DB
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// GetWithTicketByUserID retrieves a user's enrollment together with its
// ticket and the ticket type's eligibility flags. Enrollment.Ticket is
// nil when the user enrolled but holds no ticket. Returns sql.ErrNoRows
// when the user has no enrollment.
func (r *EnrollmentRepository) GetWithTicketByUserID(userID int64) (*models.Enrollment, error) {
	query := `
		SELECT e.id, e.user_id, e.created_at,
			   t.id, t.status, t.ticket_type_id, tt.is_remote, tt.includes_hotel
		FROM enrollments e
		LEFT JOIN tickets t ON t.enrollment_id = e.id
		LEFT JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE e.user_id = $1
		ORDER BY t.created_at DESC
		LIMIT 1
	`

	enrollment := &models.Enrollment{}
	var ticketID sql.NullInt64
	var status sql.NullString
	var ticketTypeID sql.NullInt64
	var isRemote sql.NullBool
	var includesHotel sql.NullBool

	err := r.db.QueryRow(query, userID).Scan(
		&enrollment.ID, &enrollment.UserID, &enrollment.CreatedAt,
		&ticketID, &status, &ticketTypeID, &isRemote, &includesHotel,
	)
	if err != nil {
		return nil, err
	}

	if ticketID.Valid {
		enrollment.Ticket = &models.Ticket{
			ID:            ticketID.Int64,
			Status:        models.TicketStatus(status.String),
			TicketTypeID:  ticketTypeID.Int64,
			IsRemote:      isRemote.Bool,
			IncludesHotel: includesHotel.Bool,
		}
	}

	return enrollment, nil
}
