package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/team2/university-room-booking/internal/booking"
	"github.com/team2/university-room-booking/internal/model"
)

// HistoryHandler serves the booking audit trail.
type HistoryHandler struct {
	Svc *booking.Service
}

func NewHistoryHandler(svc *booking.Service) *HistoryHandler {
	return &HistoryHandler{Svc: svc}
}

// List returns audit entries, newest first, filtered by any combination
// of user_id, booking_id, status, date_from and date_to query params.
// Dates are RFC 3339.
func (h *HistoryHandler) List(c echo.Context) error {
	var f booking.HistoryFilter

	if s := c.QueryParam("user_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user_id"})
		}
		f.UserID = &id
	}
	if s := c.QueryParam("booking_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking_id"})
		}
		f.BookingID = &id
	}
	if s := c.QueryParam("status"); s != "" {
		status := strings.ToUpper(strings.TrimSpace(s))
		if !model.ValidStatus(status) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
		}
		f.Status = &status
	}
	if s := c.QueryParam("date_from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date_from"})
		}
		t = t.UTC()
		f.DateFrom = &t
	}
	if s := c.QueryParam("date_to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date_to"})
		}
		t = t.UTC()
		f.DateTo = &t
	}

	entries, err := h.Svc.AuditTrail(c.Request().Context(), f)
	if err != nil {
		return writeBookingError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}
