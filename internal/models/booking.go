package models

import "time"

// Room represents a bookable hotel room. Rooms are managed by the hotel
// administration tooling; this service only reads them.
type Room struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Capacity  int       `json:"capacity" db:"capacity"`
	HotelID   int64     `json:"hotelId" db:"hotel_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Booking assigns a user to a room. At most one booking exists per user,
// backed by a unique index on bookings.user_id.
type Booking struct {
	ID        int64     `json:"id" db:"id"`
	Reference string    `json:"reference" db:"reference"`
	UserID    int64     `json:"userId" db:"user_id"`
	RoomID    int64     `json:"roomId" db:"room_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// BookingWithRoom is a booking joined with its room for display.
type BookingWithRoom struct {
	Booking
	Room Room `json:"room"`
}
