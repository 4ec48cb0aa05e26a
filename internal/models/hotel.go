package models

import "time"

// Hotel groups rooms. Read-only here, owned by the hotel administration
// tooling.
type Hotel struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// RoomWithOccupancy is a room plus its current booking count, used when
// listing a hotel's rooms so clients can show availability.
type RoomWithOccupancy struct {
	Room
	BookedCount int `json:"bookedCount" db:"booked_count"`
}

// HotelWithRooms is a hotel joined with its rooms and their occupancy.
type HotelWithRooms struct {
	Hotel
	Rooms []RoomWithOccupancy `json:"rooms"`
}
