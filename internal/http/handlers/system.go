package handlers

import (
	"net/http"

	"tripbook/internal/store"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	Users    *store.UserStore
	Flights  *store.FlightStore
	Hotels   *store.HotelStore
	Bookings *store.BookingStore
}

// GET /api/health
func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/stats
func (h SystemHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"totalUsers":    h.Users.Count(),
		"totalFlights":  h.Flights.Count(),
		"totalHotels":   h.Hotels.Count(),
		"totalBookings": h.Bookings.Count(),
	})
}
