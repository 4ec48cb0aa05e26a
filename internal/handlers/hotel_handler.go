package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/conferia/booking-backend/internal/database"
	"github.com/gin-gonic/gin"
)

// HotelHandler serves hotel and room browsing for room selection
type HotelHandler struct {
	hotelRepo *database.HotelRepository
}

// NewHotelHandler creates a new HotelHandler
func NewHotelHandler(hotelRepo *database.HotelRepository) *HotelHandler {
	return &HotelHandler{hotelRepo: hotelRepo}
}

// GetHotels lists all hotels
// GET /api/v1/hotels
func (h *HotelHandler) GetHotels(c *gin.Context) {
	hotels, err := h.hotelRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hotels"})
		return
	}

	c.JSON(http.StatusOK, hotels)
}

// GetHotelWithRooms retrieves a hotel and its rooms with occupancy
// GET /api/v1/hotels/:hotelId
func (h *HotelHandler) GetHotelWithRooms(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotel id"})
		return
	}

	hotel, err := h.hotelRepo.GetWithRooms(hotelID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hotel"})
		return
	}

	c.JSON(http.StatusOK, hotel)
}
