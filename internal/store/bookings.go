package store

import (
	"sync"
	"time"

	"tripbook/internal/domain"
)

type BookingStore struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	nextID   int64
}

func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

func (s *BookingStore) Add(userID int64, typ domain.BookingType, itemID int64) domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	b := domain.Booking{
		ID:        s.nextID,
		UserID:    userID,
		Type:      typ,
		ItemID:    itemID,
		CreatedAt: time.Now(),
	}
	s.bookings = append(s.bookings, b)
	return b
}

func (s *BookingStore) ListByUser(userID int64) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// Get returns a booking only when it belongs to userID. A booking owned by
// someone else reads the same as one that does not exist.
func (s *BookingStore) Get(userID, bookingID int64) (domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == bookingID && b.UserID == userID {
			return b, true
		}
	}
	return domain.Booking{}, false
}

// Remove deletes the booking if it exists and is owned by userID.
func (s *BookingStore) Remove(userID, bookingID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID == bookingID && b.UserID == userID {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return true
		}
	}
	return false
}

func (s *BookingStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}
