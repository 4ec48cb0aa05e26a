// Package database holds the sqlx repositories. Absence of a row is
// reported as sql.ErrNoRows; domain failures detected inside the
// repositories use the sentinel errors below so higher layers can
// distinguish them with errors.Is.
package database

import "errors"

// ErrRoomFull is returned when a create or reassign would push a room
// past its capacity. The check runs inside the same transaction as the
// write, with the room row locked.
var ErrRoomFull = errors.New("room capacity exhausted")

// ErrDuplicateBooking is returned when the unique index on
// bookings.user_id rejects an insert.
var ErrDuplicateBooking = errors.New("user already has a booking")
