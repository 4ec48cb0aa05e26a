package services

import "errors"

// Error taxonomy exposed by the booking service. Handlers translate
// these with errors.Is; anything outside this set is a server fault.
var (
	// ErrNotFound means a referenced entity (booking, enrollment, room)
	// does not exist. Maps to 404.
	ErrNotFound = errors.New("not found")

	// ErrNotAllowed is a business-rule rejection: ineligible ticket,
	// a booking owned by another user, or a room at capacity. Maps to 403.
	ErrNotAllowed = errors.New("booking not authorized")

	// ErrAlreadyBooked means the user already holds a booking and must
	// update it instead of creating another. Maps to 409.
	ErrAlreadyBooked = errors.New("user already has a booking")
)
