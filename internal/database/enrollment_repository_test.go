package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/conferia/booking-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrollmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "created_at",
		"ticket_id", "status", "ticket_type_id", "is_remote", "includes_hotel",
	})
}

func TestGetWithTicketByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEnrollmentRepository(db)

	t.Run("Paid Hotel Ticket", func(t *testing.T) {
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM enrollments e`).
			WithArgs(int64(7)).
			WillReturnRows(enrollmentRows().AddRow(
				int64(1), int64(7), now,
				int64(5), "PAID", int64(2), false, true,
			))

		enrollment, err := repo.GetWithTicketByUserID(7)
		require.NoError(t, err)
		assert.Equal(t, int64(1), enrollment.ID)
		require.NotNil(t, enrollment.Ticket)
		assert.Equal(t, models.TicketPaid, enrollment.Ticket.Status)
		assert.True(t, enrollment.Ticket.Eligible())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Enrollment Without Ticket", func(t *testing.T) {
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM enrollments e`).
			WithArgs(int64(7)).
			WillReturnRows(enrollmentRows().AddRow(
				int64(1), int64(7), now,
				nil, nil, nil, nil, nil,
			))

		enrollment, err := repo.GetWithTicketByUserID(7)
		require.NoError(t, err)
		assert.Nil(t, enrollment.Ticket)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Enrollment", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM enrollments e`).
			WithArgs(int64(7)).
			WillReturnError(sql.ErrNoRows)

		enrollment, err := repo.GetWithTicketByUserID(7)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, enrollment)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTicketEligible(t *testing.T) {
	tests := []struct {
		name   string
		ticket models.Ticket
		want   bool
	}{
		{"paid in-person with hotel", models.Ticket{Status: models.TicketPaid, IsRemote: false, IncludesHotel: true}, true},
		{"reserved", models.Ticket{Status: models.TicketReserved, IsRemote: false, IncludesHotel: true}, false},
		{"remote", models.Ticket{Status: models.TicketPaid, IsRemote: true, IncludesHotel: true}, false},
		{"no hotel", models.Ticket{Status: models.TicketPaid, IsRemote: false, IncludesHotel: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ticket.Eligible())
		})
	}
}
