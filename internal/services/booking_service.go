package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/conferia/booking-backend/internal/database"
	"github.com/conferia/booking-backend/internal/models"
)

// BookingService decides whether a booking read or write may proceed.
// Checks run in order enrollment -> ticket eligibility -> duplicate ->
// room existence -> capacity: identity and eligibility failures are
// cheaper and more specific than the locked capacity check, so they go
// first.
type BookingService struct {
	bookingRepo    *database.BookingRepository
	roomRepo       *database.RoomRepository
	enrollmentRepo *database.EnrollmentRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(
	bookingRepo *database.BookingRepository,
	roomRepo *database.RoomRepository,
	enrollmentRepo *database.EnrollmentRepository,
) *BookingService {
	return &BookingService{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// GetBooking returns the user's booking joined with its room.
func (s *BookingService) GetBooking(userID int64) (*models.BookingWithRoom, error) {
	booking, err := s.bookingRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return booking, nil
}

// CreateBooking books a room for the user after validating enrollment,
// ticket eligibility, duplicate bookings, room existence and capacity.
func (s *BookingService) CreateBooking(userID, roomID int64) (*models.Booking, error) {
	enrollment, err := s.enrollmentRepo.GetWithTicketByUserID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch enrollment: %w", err)
	}

	// A missing ticket is an eligibility failure, not a missing entity:
	// the user's identity (enrollment) exists, their ticket just does
	// not permit a hotel booking.
	if enrollment.Ticket == nil || !enrollment.Ticket.Eligible() {
		return nil, ErrNotAllowed
	}

	if _, err := s.bookingRepo.GetByUserID(userID); err == nil {
		return nil, ErrAlreadyBooked
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing booking: %w", err)
	}

	if _, err := s.roomRepo.GetByID(roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}

	booking, err := s.bookingRepo.CreateWithRoomLock(userID, roomID)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrRoomFull):
			return nil, ErrNotAllowed
		case errors.Is(err, database.ErrDuplicateBooking):
			return nil, ErrAlreadyBooked
		case errors.Is(err, sql.ErrNoRows):
			// Room deleted between the existence check and the lock.
			return nil, ErrNotFound
		default:
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
	}

	return booking, nil
}

// UpdateBooking moves the user's booking to another room. The booking
// must exist and belong to the calling user; the target room must exist
// and have free capacity.
func (s *BookingService) UpdateBooking(bookingID, userID, roomID int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, ErrNotAllowed
	}

	if _, err := s.roomRepo.GetByID(roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}

	updated, err := s.bookingRepo.ReassignWithRoomLock(bookingID, roomID)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrRoomFull):
			return nil, ErrNotAllowed
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, fmt.Errorf("failed to update booking: %w", err)
		}
	}

	return updated, nil
}
