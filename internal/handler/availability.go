package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/team2/university-room-booking/internal/booking"
)

// AvailabilityHandler answers free-slot and availability queries.
type AvailabilityHandler struct {
	Svc *booking.Service
}

func NewAvailabilityHandler(svc *booking.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

type windowReq struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// FreeSlots lists the gaps between active bookings of a room inside the
// requested window.
func (h *AvailabilityHandler) FreeSlots(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req windowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	slots, err := h.Svc.FreeSlotsForRoom(c.Request().Context(), id, req.StartTime.UTC(), req.EndTime.UTC())
	if err != nil {
		return writeBookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"room_id": id, "free_slots": slots})
}

// RoomAvailable reports whether a room, addressed by name, is free for
// the whole window.
func (h *AvailabilityHandler) RoomAvailable(c echo.Context) error {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room name required"})
	}
	var req windowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	free, err := h.Svc.IsRoomAvailable(c.Request().Context(), name, req.StartTime.UTC(), req.EndTime.UTC())
	if err != nil {
		return writeBookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"room": name, "available": free})
}
