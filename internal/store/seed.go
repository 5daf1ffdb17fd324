package store

import (
	"tripbook/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData loads the static catalog and the default admin account the
// API ships with. Called once at startup, before the server accepts traffic.
func SeedDemoData(users *UserStore, flights *FlightStore, hotels *HotelStore) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	users.Add(domain.User{Name: "Admin", Email: "admin@trip.com", PasswordHash: string(hash)})

	for _, f := range []domain.Flight{
		{Airline: "IndiGo", From: "Delhi", To: "Mumbai", DepartureTime: "2025-10-26T09:00:00", ArrivalTime: "2025-10-26T11:00:00", Price: 5500},
		{Airline: "Air India", From: "Bangalore", To: "Chennai", DepartureTime: "2025-10-26T07:30:00", ArrivalTime: "2025-10-26T08:30:00", Price: 3200},
		{Airline: "SpiceJet", From: "Hyderabad", To: "Pune", DepartureTime: "2025-10-27T10:00:00", ArrivalTime: "2025-10-27T12:00:00", Price: 4200},
		{Airline: "Vistara", From: "Delhi", To: "Kolkata", DepartureTime: "2025-10-28T13:00:00", ArrivalTime: "2025-10-28T15:30:00", Price: 6300},
		{Airline: "GoAir", From: "Chennai", To: "Delhi", DepartureTime: "2025-10-28T06:00:00", ArrivalTime: "2025-10-28T08:45:00", Price: 5800},
		{Airline: "AirAsia", From: "Mumbai", To: "Goa", DepartureTime: "2025-10-29T09:00:00", ArrivalTime: "2025-10-29T10:10:00", Price: 3000},
		{Airline: "IndiGo", From: "Delhi", To: "Goa", DepartureTime: "2025-10-29T12:00:00", ArrivalTime: "2025-10-29T14:15:00", Price: 7200},
	} {
		flights.Insert(f)
	}

	for _, h := range []domain.Hotel{
		{Name: "Taj Palace", City: "Delhi", PricePerNight: 9500, AvailableRooms: 12, Rating: 4.8},
		{Name: "Marriott", City: "Mumbai", PricePerNight: 7800, AvailableRooms: 8, Rating: 4.5},
		{Name: "Leela Palace", City: "Bangalore", PricePerNight: 10200, AvailableRooms: 10, Rating: 4.9},
		{Name: "Novotel", City: "Hyderabad", PricePerNight: 6300, AvailableRooms: 15, Rating: 4.4},
		{Name: "Grand Hyatt", City: "Goa", PricePerNight: 8900, AvailableRooms: 4, Rating: 4.6},
		{Name: "Holiday Inn", City: "Pune", PricePerNight: 5800, AvailableRooms: 9, Rating: 4.2},
	} {
		hotels.Insert(h)
	}

	return nil
}
