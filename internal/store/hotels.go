package store

import (
	"sort"
	"strings"
	"sync"

	"tripbook/internal/domain"
)

// HotelQuery filters hotel searches: exact city match, substring name match,
// inclusive price-per-night range. All case-insensitive, AND-composed.
type HotelQuery struct {
	City     string
	Name     string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
}

type HotelStore struct {
	mu     sync.RWMutex
	hotels []domain.Hotel
	nextID int64
}

func NewHotelStore() *HotelStore {
	return &HotelStore{}
}

func (s *HotelStore) Insert(h domain.Hotel) domain.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	h.ID = s.nextID
	s.hotels = append(s.hotels, h)
	return h
}

func (s *HotelStore) ByID(id int64) (domain.Hotel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.hotels {
		if h.ID == id {
			return h, true
		}
	}
	return domain.Hotel{}, false
}

func (s *HotelStore) Query(q HotelQuery) []domain.Hotel {
	s.mu.RLock()
	result := make([]domain.Hotel, 0, len(s.hotels))
	for _, h := range s.hotels {
		if q.City != "" && !strings.EqualFold(h.City, q.City) {
			continue
		}
		if q.Name != "" && !strings.Contains(strings.ToLower(h.Name), strings.ToLower(q.Name)) {
			continue
		}
		if q.MinPrice != nil && h.PricePerNight < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && h.PricePerNight > *q.MaxPrice {
			continue
		}
		result = append(result, h)
	}
	s.mu.RUnlock()

	switch q.Sort {
	case "low":
		sort.SliceStable(result, func(i, j int) bool { return result[i].PricePerNight < result[j].PricePerNight })
	case "high":
		sort.SliceStable(result, func(i, j int) bool { return result[i].PricePerNight > result[j].PricePerNight })
	}
	return result
}

func (s *HotelStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.hotels)
}
