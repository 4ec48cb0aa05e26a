package database

import (
	"github.com/conferia/booking-backend/internal/models"
)

// HotelRepository handles read access to the hotels table
type HotelRepository struct {
	db DB
}

// NewHotelRepository creates a new HotelRepository
func NewHotelRepository(db DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// GetAll retrieves every hotel
func (r *HotelRepository) GetAll() ([]models.Hotel, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		ORDER BY name
	`

	hotels := []models.Hotel{}
	if err := r.db.Select(&hotels, query); err != nil {
		return nil, err
	}
	return hotels, nil
}

// GetWithRooms retrieves a hotel and its rooms with current booking
// counts. Returns sql.ErrNoRows when the hotel does not exist.
func (r *HotelRepository) GetWithRooms(hotelID int64) (*models.HotelWithRooms, error) {
	hotel := &models.HotelWithRooms{}
	err := r.db.Get(&hotel.Hotel, `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		WHERE id = $1
	`, hotelID)
	if err != nil {
		return nil, err
	}

	rooms := []models.RoomWithOccupancy{}
	err = r.db.Select(&rooms, `
		SELECT r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at,
			   COUNT(b.id) AS booked_count
		FROM rooms r
		LEFT JOIN bookings b ON b.room_id = r.id
		WHERE r.hotel_id = $1
		GROUP BY r.id
		ORDER BY r.name
	`, hotelID)
	if err != nil {
		return nil, err
	}

	hotel.Rooms = rooms
	return hotel, nil
}
