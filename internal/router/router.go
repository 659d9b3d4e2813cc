// Package router wires handlers and middleware onto the Echo
// instance. Route groups mirror the access model: public browse,
// token-based auth, OWNER catalog management and CUSTOMER booking.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/kinoplex/multiplex-booking/internal/config"
	"github.com/kinoplex/multiplex-booking/internal/handler"
	"github.com/kinoplex/multiplex-booking/internal/middleware"
)

// Deps bundles everything route registration needs.
type Deps struct {
	Auth    *handler.AuthHandler
	Public  *handler.PublicHandler
	Owner   *handler.OwnerHandler
	Booking *handler.BookingHandler

	JWTSecret string
	Redis     *redis.Client // may be nil; rate limit and cache degrade
}

// Register sets up all routes on e.
func Register(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)

	rl := middleware.NewTokenBucket(config.LoadRateLimitConfig(), d.Redis)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), d.Redis)

	// Auth endpoints are unauthenticated but rate limited so
	// credential stuffing can't run unthrottled.
	auth := e.Group("/v1/auth", rl)
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/refresh", d.Auth.Refresh)
	auth.POST("/logout", d.Auth.Logout)

	// Public browse endpoints: no auth, cached reads.
	pub := e.Group("/v1", rl, cache)
	pub.GET("/cinemas", d.Public.GetCinemas)
	pub.GET("/cinemas/:cinema/halls", d.Public.GetHalls)
	pub.GET("/cinemas/:cinema/programme", d.Public.GetProgramme)
	pub.GET("/cinemas/:cinema/movies", d.Public.SearchMovies)
	pub.GET("/screenings/:id/seats", d.Public.GetScreeningSeats)
	pub.GET("/screenings/:id/free-seats", d.Public.GetFreeSeats)

	// Any authenticated user.
	me := e.Group("/v1", rl, middleware.JWTAuth(d.JWTSecret), middleware.RequireRole("OWNER", "CUSTOMER"))
	me.GET("/me", d.Auth.Me)

	// Catalog management, owners only.
	owner := e.Group("/v1", rl, middleware.JWTAuth(d.JWTSecret), middleware.RequireRole("OWNER"))
	owner.POST("/cinemas", d.Owner.CreateCinema)
	owner.POST("/cinemas/:cinema/halls", d.Owner.CreateHall)
	owner.POST("/cinemas/:cinema/screenings", d.Owner.CreateScreening)

	// Booking flow, customers only.
	customer := e.Group("/v1", rl, middleware.JWTAuth(d.JWTSecret), middleware.RequireRole("CUSTOMER"))
	customer.POST("/screenings/:id/reservations", d.Booking.ReserveSeats)
	customer.DELETE("/reservations/:id", d.Booking.CancelReservation)
	customer.POST("/screenings/:id/orders", d.Booking.BuyTickets)
	customer.GET("/my-tickets", d.Booking.MyTickets)
}
