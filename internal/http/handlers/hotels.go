package handlers

import (
	"net/http"

	"tripbook/internal/domain"
	"tripbook/internal/store"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	Hotels *store.HotelStore
}

// GET /api/hotels
func (h HotelHandler) List(c *gin.Context) {
	q := store.HotelQuery{
		City:     c.Query("city"),
		Name:     c.Query("name"),
		MinPrice: FloatQuery(c, "minPrice"),
		MaxPrice: FloatQuery(c, "maxPrice"),
		Sort:     c.Query("sort"),
	}
	c.JSON(http.StatusOK, h.Hotels.Query(q))
}

// GET /api/hotels/:id
func (h HotelHandler) Get(c *gin.Context) {
	id, ok := IDParamOrError(c, "Hotel")
	if !ok {
		return
	}
	hotel, found := h.Hotels.ByID(id)
	if !found {
		RespondError(c, http.StatusNotFound, "Hotel not found")
		return
	}
	c.JSON(http.StatusOK, hotel)
}

type hotelRequest struct {
	Name           string  `json:"name"`
	City           string  `json:"city"`
	PricePerNight  float64 `json:"pricePerNight"`
	AvailableRooms int     `json:"availableRooms"`
	Rating         float64 `json:"rating"`
}

// POST /api/hotels (auth)
func (h HotelHandler) Create(c *gin.Context) {
	var req hotelRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	hotel := h.Hotels.Insert(domain.Hotel{
		Name:           req.Name,
		City:           req.City,
		PricePerNight:  req.PricePerNight,
		AvailableRooms: req.AvailableRooms,
		Rating:         req.Rating,
	})
	c.JSON(http.StatusOK, hotel)
}
