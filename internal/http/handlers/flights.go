package handlers

import (
	"net/http"

	"tripbook/internal/domain"
	"tripbook/internal/store"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	Flights *store.FlightStore
}

// GET /api/flights
func (h FlightHandler) List(c *gin.Context) {
	q := store.FlightQuery{
		From:     c.Query("from"),
		To:       c.Query("to"),
		MinPrice: FloatQuery(c, "minPrice"),
		MaxPrice: FloatQuery(c, "maxPrice"),
		Sort:     c.Query("sort"),
	}
	c.JSON(http.StatusOK, h.Flights.Query(q))
}

// GET /api/flights/:id
func (h FlightHandler) Get(c *gin.Context) {
	id, ok := IDParamOrError(c, "Flight")
	if !ok {
		return
	}
	flight, found := h.Flights.ByID(id)
	if !found {
		RespondError(c, http.StatusNotFound, "Flight not found")
		return
	}
	c.JSON(http.StatusOK, flight)
}

type flightRequest struct {
	Airline       string  `json:"airline"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Price         float64 `json:"price"`
}

// POST /api/flights (auth)
func (h FlightHandler) Create(c *gin.Context) {
	var req flightRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	flight := h.Flights.Insert(domain.Flight{
		Airline:       req.Airline,
		From:          req.From,
		To:            req.To,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Price:         req.Price,
	})
	c.JSON(http.StatusOK, flight)
}
