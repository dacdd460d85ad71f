package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/team2/university-room-booking/internal/booking"
)

// actorFromContext rebuilds the booking.Actor from the claims JWTAuth
// stored in the request context.
func actorFromContext(c echo.Context) (booking.Actor, bool) {
	var a booking.Actor
	switch v := c.Get("user_id").(type) {
	case float64:
		a.ID = uint64(v)
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return a, false
		}
		a.ID = id
	default:
		return a, false
	}
	if s, ok := c.Get("username").(string); ok {
		a.Username = s
	}
	role, ok := c.Get("role").(string)
	if !ok || a.ID == 0 {
		return a, false
	}
	a.Role = role
	return a, true
}

// writeBookingError maps engine error kinds to HTTP responses.
func writeBookingError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, booking.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, booking.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, booking.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, booking.ErrForbidden):
		status = http.StatusForbidden
	}
	if status == http.StatusInternalServerError {
		return c.JSON(status, echo.Map{"error": "internal error"})
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
