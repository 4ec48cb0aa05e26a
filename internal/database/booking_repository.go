package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/conferia/booking-backend/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// scanner abstracts *sql.Row and *sql.Rows for shared scan helpers
type scanner interface {
	Scan(dest ...interface{}) error
}

// BookingRepository handles database operations for the bookings table
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingWithRoomColumns = `
	b.id, b.reference, b.user_id, b.room_id, b.created_at, b.updated_at,
	r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
`

// GetByUserID retrieves the user's booking joined with its room.
// Returns sql.ErrNoRows when the user has no booking.
func (r *BookingRepository) GetByUserID(userID int64) (*models.BookingWithRoom, error) {
	query := `
		SELECT ` + bookingWithRoomColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
		ORDER BY b.created_at
		LIMIT 1
	`

	return scanBookingWithRoom(r.db.QueryRow(query, userID))
}

// GetByID retrieves a booking by its id
func (r *BookingRepository) GetByID(bookingID int64) (*models.Booking, error) {
	query := `
		SELECT id, reference, user_id, room_id, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	booking := &models.Booking{}
	if err := r.db.Get(booking, query, bookingID); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetByRoomID retrieves all bookings referencing a room, oldest first
func (r *BookingRepository) GetByRoomID(roomID int64) ([]models.BookingWithRoom, error) {
	query := `
		SELECT ` + bookingWithRoomColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.room_id = $1
		ORDER BY b.created_at
	`

	rows, err := r.db.Query(query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.BookingWithRoom{}
	for rows.Next() {
		booking, err := scanBookingWithRoom(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}

	return bookings, rows.Err()
}

// CreateWithRoomLock inserts a booking after re-checking room capacity
// inside a single transaction. The SELECT ... FOR UPDATE on the room row
// serializes concurrent attempts on the same room, so two requests racing
// for the last slot cannot both pass the capacity check.
//
// Returns sql.ErrNoRows when the room does not exist, ErrRoomFull when
// occupancy already meets capacity, and ErrDuplicateBooking when the
// unique index on user_id rejects the insert.
func (r *BookingRepository) CreateWithRoomLock(userID, roomID int64) (*models.Booking, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := lockRoomAndCount(tx, roomID); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		Reference: uuid.New().String(),
		UserID:    userID,
		RoomID:    roomID,
	}

	err = tx.QueryRow(`
		INSERT INTO bookings (reference, user_id, room_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, booking.Reference, booking.UserID, booking.RoomID).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateBooking
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	return booking, nil
}

// ReassignWithRoomLock moves an existing booking to another room under
// the same locked capacity check as CreateWithRoomLock.
//
// Returns sql.ErrNoRows when the target room or the booking does not
// exist, and ErrRoomFull when the target room is at capacity.
func (r *BookingRepository) ReassignWithRoomLock(bookingID, roomID int64) (*models.Booking, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := lockRoomAndCount(tx, roomID); err != nil {
		return nil, err
	}

	booking := &models.Booking{ID: bookingID, RoomID: roomID}
	err = tx.QueryRow(`
		UPDATE bookings
		SET room_id = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING reference, user_id, created_at, updated_at
	`, bookingID, roomID).
		Scan(&booking.Reference, &booking.UserID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking update: %w", err)
	}

	return booking, nil
}

// lockRoomAndCount locks the room row and verifies capacity exceeds the
// current booking count
func lockRoomAndCount(tx interface {
	Get(dest interface{}, query string, args ...interface{}) error
}, roomID int64) error {
	var capacity int
	if err := tx.Get(&capacity, `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`, roomID); err != nil {
		return err
	}

	var count int
	if err := tx.Get(&count, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID); err != nil {
		return fmt.Errorf("failed to count room bookings: %w", err)
	}

	if count >= capacity {
		return ErrRoomFull
	}

	return nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// scanBookingWithRoom scans a booking joined with its room
func scanBookingWithRoom(row scanner) (*models.BookingWithRoom, error) {
	booking := &models.BookingWithRoom{}

	err := row.Scan(
		&booking.ID, &booking.Reference, &booking.UserID, &booking.RoomID,
		&booking.CreatedAt, &booking.UpdatedAt,
		&booking.Room.ID, &booking.Room.Name, &booking.Room.Capacity,
		&booking.Room.HotelID, &booking.Room.CreatedAt, &booking.Room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return booking, nil
}
