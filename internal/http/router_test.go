package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripbook/internal/config"
	"tripbook/internal/http/handlers"
	"tripbook/internal/services"
	"tripbook/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := store.NewUserStore()
	flights := store.NewFlightStore()
	hotels := store.NewHotelStore()
	bookings := store.NewBookingStore()
	require.NoError(t, store.SeedDemoData(users, flights, hotels))

	tokens := services.TokenService{Secret: []byte("test-secret")}
	authSvc := services.AuthService{Users: users, Tokens: tokens}
	bookingSvc := services.BookingService{Bookings: bookings, Flights: flights, Hotels: hotels}
	docsSvc := services.DocsService{Bookings: bookings, Flights: flights, Hotels: hotels}

	return NewRouter(config.Env{}, tokens, Handlers{
		Auth:     handlers.AuthHandler{Auth: authSvc},
		Flights:  handlers.FlightHandler{Flights: flights},
		Hotels:   handlers.HotelHandler{Hotels: hotels},
		Bookings: handlers.BookingHandler{Bookings: bookingSvc, Docs: docsSvc},
		System:   handlers.SystemHandler{Users: users, Flights: flights, Hotels: hotels, Bookings: bookings},
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

func loginAs(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ana", "email": "ana@example.com", "password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reg struct {
		Message string `json:"message"`
		User    struct {
			ID    int64  `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, w, &reg)
	require.Equal(t, "Registered successfully", reg.Message)
	require.Equal(t, int64(2), reg.User.ID) // admin is seeded as id 1

	// duplicate email is rejected regardless of name/password
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Else", "email": "ana@example.com", "password": "other",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	token := loginAs(t, r, "ana@example.com", "hunter2")

	w = doJSON(t, r, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	decodeBody(t, w, &profile)
	require.Equal(t, int64(2), profile.ID)
	require.Equal(t, "Ana", profile.Name)
	require.Equal(t, "ana@example.com", profile.Email)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []gin.H{
		{"email": "admin@trip.com", "password": "wrong"},
		{"email": "ghost@trip.com", "password": "admin123"},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", body)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Message string `json:"message"`
		}
		decodeBody(t, w, &resp)
		require.Equal(t, "Invalid credentials", resp.Message)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/api/profile"},
		{http.MethodPost, "/api/flights"},
		{http.MethodPost, "/api/hotels"},
		{http.MethodPost, "/api/bookings"},
		{http.MethodGet, "/api/bookings"},
		{http.MethodDelete, "/api/bookings/1"},
	} {
		w := doJSON(t, r, tc.method, tc.path, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)

		w = doJSON(t, r, tc.method, tc.path, "not-a-token", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s with bad token", tc.method, tc.path)
	}
}

func TestFlightSearchAndLookup(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/flights?from=Delhi&maxPrice=6000", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var flights []struct {
		ID    int64   `json:"id"`
		Price float64 `json:"price"`
	}
	decodeBody(t, w, &flights)
	require.Len(t, flights, 1)
	require.Equal(t, int64(1), flights[0].ID)

	w = doJSON(t, r, http.MethodGet, "/api/flights/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/flights/99", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHotelSearchSorted(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/hotels?sort=low", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var hotels []struct {
		Name          string  `json:"name"`
		PricePerNight float64 `json:"pricePerNight"`
	}
	decodeBody(t, w, &hotels)
	require.Len(t, hotels, 6)
	require.Equal(t, "Holiday Inn", hotels[0].Name)
	require.Equal(t, "Leela Palace", hotels[5].Name)
}

func TestAuthenticatedCatalogInsert(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r, "admin@trip.com", "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/flights", token, gin.H{
		"airline": "Akasa Air", "from": "Pune", "to": "Delhi",
		"departureTime": "2025-11-01T08:00:00", "arrivalTime": "2025-11-01T10:00:00",
		"price": 4800,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, w, &created)
	require.Equal(t, int64(8), created.ID) // seven seeded flights precede it

	w = doJSON(t, r, http.MethodPost, "/api/hotels", token, gin.H{
		"name": "Ibis", "city": "Pune", "pricePerNight": 3500,
		"availableRooms": 20, "rating": 4.0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &created)
	require.Equal(t, int64(7), created.ID)
}

func TestBookingLifecycle(t *testing.T) {
	r := newTestRouter(t)

	// two separate users
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ana", "email": "ana@example.com", "password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)
	anaToken := loginAs(t, r, "ana@example.com", "hunter2")
	adminToken := loginAs(t, r, "admin@trip.com", "admin123")

	w = doJSON(t, r, http.MethodPost, "/api/bookings", anaToken, gin.H{"type": "flight", "itemId": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Message string `json:"message"`
		Booking struct {
			ID     int64 `json:"id"`
			UserID int64 `json:"userId"`
		} `json:"booking"`
	}
	decodeBody(t, w, &created)
	require.Equal(t, "Booking confirmed", created.Message)
	require.Equal(t, int64(1), created.Booking.ID)

	// invalid type
	w = doJSON(t, r, http.MethodPost, "/api/bookings", anaToken, gin.H{"type": "cruise", "itemId": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// listing shows resolved details and only the caller's bookings
	w = doJSON(t, r, http.MethodGet, "/api/bookings", anaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []struct {
		ID      int64           `json:"id"`
		Details json.RawMessage `json:"details"`
	}
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	require.Contains(t, string(list[0].Details), "IndiGo")

	w = doJSON(t, r, http.MethodGet, "/api/bookings", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &list)
	require.Empty(t, list)

	// another user cannot cancel it
	path := fmt.Sprintf("/api/bookings/%d", created.Booking.ID)
	w = doJSON(t, r, http.MethodDelete, path, adminToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// the owner can
	w = doJSON(t, r, http.MethodDelete, path, anaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bookings", anaToken, nil)
	decodeBody(t, w, &list)
	require.Empty(t, list)
}

func TestBookingTicketPDF(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r, "admin@trip.com", "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", token, gin.H{"type": "hotel", "itemId": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/1/ticket", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.NotEmpty(t, w.Body.Bytes())

	w = doJSON(t, r, http.MethodGet, "/api/bookings/1/invoice", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestStats(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r, "admin@trip.com", "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", token, gin.H{"type": "flight", "itemId": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalUsers    int `json:"totalUsers"`
		TotalFlights  int `json:"totalFlights"`
		TotalHotels   int `json:"totalHotels"`
		TotalBookings int `json:"totalBookings"`
	}
	decodeBody(t, w, &stats)
	require.Equal(t, 1, stats.TotalUsers)
	require.Equal(t, 7, stats.TotalFlights)
	require.Equal(t, 6, stats.TotalHotels)
	require.Equal(t, 1, stats.TotalBookings)
}

func TestNoRouteReturnsJSON(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/nope", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "route not found")
}
