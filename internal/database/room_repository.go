package database

import (
	"github.com/conferia/booking-backend/internal/models"
)

// RoomRepository handles read access to the rooms table. Rooms are never
// created or mutated by this service.
type RoomRepository struct {
	db DB
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetByID retrieves a room by id. Returns sql.ErrNoRows when the room
// does not exist; callers treat that as an invalid room reference, not a
// failure.
func (r *RoomRepository) GetByID(roomID int64) (*models.Room, error) {
	query := `
		SELECT id, name, capacity, hotel_id, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	room := &models.Room{}
	if err := r.db.Get(room, query, roomID); err != nil {
		return nil, err
	}
	return room, nil
}
