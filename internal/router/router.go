// Package router wires HTTP routes to handlers and applies the auth,
// caching and rate limiting middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/team2/university-room-booking/internal/config"
	"github.com/team2/university-room-booking/internal/handler"
	"github.com/team2/university-room-booking/internal/middleware"
	"github.com/team2/university-room-booking/internal/model"
)

// Handlers groups everything the router needs to register the API.
type Handlers struct {
	Auth         *handler.AuthHandler
	Bookings     *handler.BookingHandler
	Availability *handler.AvailabilityHandler
	History      *handler.HistoryHandler
	Rooms        *handler.RoomHandler
	Buildings    *handler.BuildingHandler
	Departments  *handler.DepartmentHandler
	Features     *handler.FeatureHandler
	Holidays     *handler.HolidayHandler
}

// Register mounts every route on the Echo instance.  Rate limiting
// applies to the whole API; the response cache covers read-only
// catalog endpoints.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	// auth endpoints need no session
	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/refresh-access", h.Auth.RefreshAccess)
	auth.POST("/logout", h.Auth.Logout)

	// everything below requires a valid access token
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))
	protected.GET("/me", h.Auth.Me)

	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	requester := middleware.RequireRole(model.RoleStudent, model.RoleFacultyMember)
	admin := middleware.RequireRole(model.RoleAdmin)
	anyRole := middleware.RequireRole(model.RoleStudent, model.RoleFacultyMember, model.RoleAdmin)

	// booking lifecycle
	protected.POST("/bookings", h.Bookings.Create, requester)
	protected.POST("/bookings/:id/cancel", h.Bookings.Cancel, requester)
	protected.POST("/bookings/:id/approve", h.Bookings.Approve, admin)
	protected.POST("/bookings/:id/reject", h.Bookings.Reject, admin)
	protected.GET("/bookings/status/:status", h.Bookings.ByStatus, admin)
	protected.GET("/bookings/users/:userId/recurring-bookings", h.Bookings.TopRooms, anyRole)

	// availability
	protected.POST("/rooms/:id/availability", h.Availability.FreeSlots, anyRole)
	protected.POST("/availability/room/:name", h.Availability.RoomAvailable, anyRole)

	// audit trail
	protected.GET("/booking-history", h.History.List, admin)

	// catalog reads, cached
	protected.GET("/rooms", h.Rooms.List, anyRole, cache)
	protected.GET("/rooms/:id", h.Rooms.Get, anyRole, cache)
	protected.GET("/buildings", h.Buildings.List, anyRole, cache)
	protected.GET("/buildings/:id", h.Buildings.Get, anyRole, cache)
	protected.GET("/departments", h.Departments.List, anyRole, cache)
	protected.GET("/departments/:id", h.Departments.Get, anyRole, cache)
	protected.GET("/room-features", h.Features.List, anyRole, cache)
	protected.GET("/holidays", h.Holidays.List, anyRole, cache)

	// catalog writes, admin only
	protected.POST("/rooms", h.Rooms.Create, admin)
	protected.PUT("/rooms/:id", h.Rooms.Update, admin)
	protected.DELETE("/rooms/:id", h.Rooms.Delete, admin)
	protected.POST("/buildings", h.Buildings.Create, admin)
	protected.PUT("/buildings/:id", h.Buildings.Update, admin)
	protected.DELETE("/buildings/:id", h.Buildings.Delete, admin)
	protected.POST("/departments", h.Departments.Create, admin)
	protected.PUT("/departments/:id", h.Departments.Update, admin)
	protected.DELETE("/departments/:id", h.Departments.Delete, admin)
	protected.POST("/room-features", h.Features.Create, admin)
	protected.PUT("/room-features/:id", h.Features.Update, admin)
	protected.DELETE("/room-features/:id", h.Features.Delete, admin)
	protected.POST("/holidays", h.Holidays.Create, admin)
	protected.PUT("/holidays/:id", h.Holidays.Update, admin)
	protected.DELETE("/holidays/:name", h.Holidays.DeleteByName, admin)
}
