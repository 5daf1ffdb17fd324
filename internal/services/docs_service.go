package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"tripbook/internal/domain"
	"tripbook/internal/store"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders PDF documents (e-ticket, invoice) for a booking.
type DocsService struct {
	Bookings *store.BookingStore
	Flights  *store.FlightStore
	Hotels   *store.HotelStore
}

type bookingDocData struct {
	BookingID int64
	Type      domain.BookingType
	BookedAt  time.Time
	Title     string // item name: airline or hotel name
	Route     string // "Delhi -> Mumbai" or the hotel city
	Schedule  string
	Price     float64
}

// GenerateTicket builds the e-ticket PDF for one of the caller's bookings.
// Bookings of other users and bookings whose item no longer resolves are
// both not found.
func (s DocsService) GenerateTicket(userID, bookingID int64) ([]byte, string, error) {
	data, err := s.loadBookingDocData(userID, bookingID)
	if err != nil {
		return nil, "", err
	}
	return buildTicketPDF(data)
}

func (s DocsService) GenerateInvoice(userID, bookingID int64) ([]byte, string, error) {
	data, err := s.loadBookingDocData(userID, bookingID)
	if err != nil {
		return nil, "", err
	}
	return buildInvoicePDF(data)
}

func (s DocsService) loadBookingDocData(userID, bookingID int64) (bookingDocData, error) {
	b, ok := s.Bookings.Get(userID, bookingID)
	if !ok {
		return bookingDocData{}, domain.NotFoundError{Resource: "booking"}
	}

	data := bookingDocData{BookingID: b.ID, Type: b.Type, BookedAt: b.CreatedAt}
	switch b.Type {
	case domain.BookingFlight:
		f, ok := s.Flights.ByID(b.ItemID)
		if !ok {
			return bookingDocData{}, domain.NotFoundError{Resource: "flight"}
		}
		data.Title = f.Airline
		data.Route = fmt.Sprintf("%s -> %s", f.From, f.To)
		data.Schedule = fmt.Sprintf("%s - %s", f.DepartureTime, f.ArrivalTime)
		data.Price = f.Price
	case domain.BookingHotel:
		h, ok := s.Hotels.ByID(b.ItemID)
		if !ok {
			return bookingDocData{}, domain.NotFoundError{Resource: "hotel"}
		}
		data.Title = h.Name
		data.Route = h.City
		data.Schedule = fmt.Sprintf("per night, %d rooms available", h.AvailableRooms)
		data.Price = h.PricePerNight
	default:
		return bookingDocData{}, domain.NotFoundError{Resource: "booking"}
	}
	return data, nil
}

func buildTicketPDF(d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking code : TRP-%d", d.BookingID),
		fmt.Sprintf("Type         : %s", d.Type),
		fmt.Sprintf("Item         : %s", safe(d.Title, "-")),
		fmt.Sprintf("Route        : %s", safe(d.Route, "-")),
		fmt.Sprintf("Schedule     : %s", safe(d.Schedule, "-")),
		fmt.Sprintf("Booked at    : %s", d.BookedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this e-ticket on arrival.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "render e-ticket", Err: err}
	}

	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", d.BookingID, safeFilenamePart(d.Title))
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Invoice no : INV-%d", d.BookingID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Item:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	desc := fmt.Sprintf("1) %s booking: %s (%s)", d.Type, safe(d.Title, "-"), safe(d.Route, "-"))
	pdf.MultiCell(0, 6, desc, "", "", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", d.Price))
	pdf.Ln(12)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "render invoice", Err: err}
	}

	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", d.BookingID, safeFilenamePart(d.Title))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "booking"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return replacer.Replace(s)
}
