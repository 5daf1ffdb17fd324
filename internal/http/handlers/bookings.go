package handlers

import (
	"net/http"

	"tripbook/internal/domain"
	"tripbook/internal/http/middleware"
	"tripbook/internal/services"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Bookings services.BookingService
	Docs     services.DocsService
}

type bookingRequest struct {
	Type   string `json:"type"`
	ItemID int64  `json:"itemId"`
}

// POST /api/bookings (auth)
func (h BookingHandler) Create(c *gin.Context) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := h.Bookings.Create(middleware.CurrentUserID(c), domain.BookingType(req.Type), req.ItemID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking confirmed",
		"booking": booking,
	})
}

// GET /api/bookings (auth)
func (h BookingHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Bookings.ListForUser(middleware.CurrentUserID(c)))
}

// DELETE /api/bookings/:id (auth)
func (h BookingHandler) Cancel(c *gin.Context) {
	id, ok := IDParamOrError(c, "Booking")
	if !ok {
		return
	}
	if err := h.Bookings.Cancel(middleware.CurrentUserID(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

// GET /api/bookings/:id/ticket (auth)
func (h BookingHandler) Ticket(c *gin.Context) {
	h.sendPDF(c, h.Docs.GenerateTicket)
}

// GET /api/bookings/:id/invoice (auth)
func (h BookingHandler) Invoice(c *gin.Context) {
	h.sendPDF(c, h.Docs.GenerateInvoice)
}

func (h BookingHandler) sendPDF(c *gin.Context, generate func(userID, bookingID int64) ([]byte, string, error)) {
	id, ok := IDParamOrError(c, "Booking")
	if !ok {
		return
	}
	pdf, filename, err := generate(middleware.CurrentUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
