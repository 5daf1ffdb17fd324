package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"tripbook/internal/config"
	h "tripbook/internal/http/handlers"
	"tripbook/internal/http/middleware"
	"tripbook/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the route handlers the router mounts.
type Handlers struct {
	Auth     h.AuthHandler
	Flights  h.FlightHandler
	Hotels   h.HotelHandler
	Bookings h.BookingHandler
	System   h.SystemHandler
}

func NewRouter(env config.Env, tokens services.TokenService, handlers Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	requireAuth := middleware.RequireAuth(tokens)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.System.Health)
		api.GET("/stats", handlers.System.Stats)

		auth := api.Group("/auth")
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		api.GET("/profile", requireAuth, handlers.Auth.Profile)

		flights := api.Group("/flights")
		flights.GET("", handlers.Flights.List)
		flights.GET("/:id", handlers.Flights.Get)
		flights.POST("", requireAuth, handlers.Flights.Create)

		hotels := api.Group("/hotels")
		hotels.GET("", handlers.Hotels.List)
		hotels.GET("/:id", handlers.Hotels.Get)
		hotels.POST("", requireAuth, handlers.Hotels.Create)

		bookings := api.Group("/bookings", requireAuth)
		bookings.POST("", handlers.Bookings.Create)
		bookings.GET("", handlers.Bookings.List)
		bookings.DELETE("/:id", handlers.Bookings.Cancel)
		bookings.GET("/:id/ticket", handlers.Bookings.Ticket)
		bookings.GET("/:id/invoice", handlers.Bookings.Invoice)
	}

	return r
}

func corsMiddleware(env config.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           24 * time.Hour,
	}
	if len(env.CORSOrigins) > 0 {
		cfg.AllowOrigins = env.CORSOrigins
		cfg.AllowCredentials = true
	} else {
		cfg.AllowAllOrigins = true
	}
	return cors.New(cfg)
}
