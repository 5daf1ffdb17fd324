package domain

import "time"

// BookingType distinguishes what a booking refers to.
type BookingType string

const (
	BookingFlight BookingType = "flight"
	BookingHotel  BookingType = "hotel"
)

func (t BookingType) Valid() bool {
	return t == BookingFlight || t == BookingHotel
}

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) ToPublic() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

type Flight struct {
	ID            int64   `json:"id"`
	Airline       string  `json:"airline"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Price         float64 `json:"price"`
}

type Hotel struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	City           string  `json:"city"`
	PricePerNight  float64 `json:"pricePerNight"`
	AvailableRooms int     `json:"availableRooms"`
	Rating         float64 `json:"rating"`
}

type Booking struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"userId"`
	Type      BookingType `json:"type"`
	ItemID    int64       `json:"itemId"`
	CreatedAt time.Time   `json:"createdAt"`
}

// BookingWithDetails is a booking joined with the catalog item it refers to.
// Details is nil when the item cannot be resolved.
type BookingWithDetails struct {
	Booking
	Details any `json:"details"`
}
