package store

import (
	"sort"
	"strings"
	"sync"

	"tripbook/internal/domain"
)

// FlightQuery is the filter set for flight searches. Filters compose with
// AND; zero values mean "no constraint".
type FlightQuery struct {
	From     string
	To       string
	MinPrice *float64
	MaxPrice *float64
	Sort     string // "low" | "high" | anything else keeps insertion order
}

type FlightStore struct {
	mu      sync.RWMutex
	flights []domain.Flight
	nextID  int64
}

func NewFlightStore() *FlightStore {
	return &FlightStore{}
}

func (s *FlightStore) Insert(f domain.Flight) domain.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	f.ID = s.nextID
	s.flights = append(s.flights, f)
	return f
}

func (s *FlightStore) ByID(id int64) (domain.Flight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.flights {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Flight{}, false
}

// Query returns a fresh slice on every call; sorting never touches the
// stored insertion order.
func (s *FlightStore) Query(q FlightQuery) []domain.Flight {
	s.mu.RLock()
	result := make([]domain.Flight, 0, len(s.flights))
	for _, f := range s.flights {
		if q.From != "" && !strings.EqualFold(f.From, q.From) {
			continue
		}
		if q.To != "" && !strings.EqualFold(f.To, q.To) {
			continue
		}
		if q.MinPrice != nil && f.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && f.Price > *q.MaxPrice {
			continue
		}
		result = append(result, f)
	}
	s.mu.RUnlock()

	switch q.Sort {
	case "low":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case "high":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	}
	return result
}

func (s *FlightStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flights)
}
