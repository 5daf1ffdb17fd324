package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripbook/internal/config"
	router "tripbook/internal/http"
	"tripbook/internal/http/handlers"
	"tripbook/internal/services"
	"tripbook/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	users := store.NewUserStore()
	flights := store.NewFlightStore()
	hotels := store.NewHotelStore()
	bookings := store.NewBookingStore()

	if err := store.SeedDemoData(users, flights, hotels); err != nil {
		log.Fatalf("seed data: %v", err)
	}

	tokens := services.TokenService{Secret: []byte(env.JWTSecret)}
	authSvc := services.AuthService{Users: users, Tokens: tokens}
	bookingSvc := services.BookingService{Bookings: bookings, Flights: flights, Hotels: hotels}
	docsSvc := services.DocsService{Bookings: bookings, Flights: flights, Hotels: hotels}

	r := router.NewRouter(env, tokens, router.Handlers{
		Auth:     handlers.AuthHandler{Auth: authSvc},
		Flights:  handlers.FlightHandler{Flights: flights},
		Hotels:   handlers.HotelHandler{Hotels: hotels},
		Bookings: handlers.BookingHandler{Bookings: bookingSvc, Docs: docsSvc},
		System:   handlers.SystemHandler{Users: users, Flights: flights, Hotels: hotels, Bookings: bookings},
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Println("server stopped.")
}
