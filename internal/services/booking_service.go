package services

import (
	"tripbook/internal/domain"
	"tripbook/internal/store"
)

type BookingService struct {
	Bookings *store.BookingStore
	Flights  *store.FlightStore
	Hotels   *store.HotelStore
}

// Create records a booking for userID. The item id is not checked against
// the catalog; a booking may refer to an item that never existed. Known gap
// inherited from the system this replaces, kept until product decides
// otherwise.
func (s BookingService) Create(userID int64, typ domain.BookingType, itemID int64) (domain.Booking, error) {
	if !typ.Valid() {
		return domain.Booking{}, domain.ValidationError{Msg: "Invalid booking type"}
	}
	return s.Bookings.Add(userID, typ, itemID), nil
}

// ListForUser returns the caller's bookings with the referenced catalog item
// attached. Unresolvable items come back with nil details rather than an
// error.
func (s BookingService) ListForUser(userID int64) []domain.BookingWithDetails {
	bookings := s.Bookings.ListByUser(userID)
	out := make([]domain.BookingWithDetails, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, domain.BookingWithDetails{
			Booking: b,
			Details: s.resolveItem(b),
		})
	}
	return out
}

// Cancel removes a booking owned by userID. Someone else's booking and a
// nonexistent one are both reported as not found.
func (s BookingService) Cancel(userID, bookingID int64) error {
	if !s.Bookings.Remove(userID, bookingID) {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func (s BookingService) resolveItem(b domain.Booking) any {
	switch b.Type {
	case domain.BookingFlight:
		if f, ok := s.Flights.ByID(b.ItemID); ok {
			return f
		}
	case domain.BookingHotel:
		if h, ok := s.Hotels.ByID(b.ItemID); ok {
			return h
		}
	}
	return nil
}
