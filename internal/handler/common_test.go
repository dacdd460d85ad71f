package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/team2/university-room-booking/internal/booking"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWriteBookingErrorMapsKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &booking.Error{Kind: booking.ErrNotFound, Message: "room not found"}, http.StatusNotFound},
		{"conflict", &booking.Error{Kind: booking.ErrConflict, Message: "overlap"}, http.StatusConflict},
		{"bad request", &booking.Error{Kind: booking.ErrBadRequest, Message: "bad window"}, http.StatusBadRequest},
		{"forbidden", &booking.Error{Kind: booking.ErrForbidden, Message: "not yours"}, http.StatusForbidden},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext()
			if err := writeBookingError(c, tc.err); err != nil {
				t.Fatalf("writeBookingError: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestActorFromContext(t *testing.T) {
	c, _ := newTestContext()
	// JWT numeric claims arrive as float64
	c.Set("user_id", float64(7))
	c.Set("username", "alice")
	c.Set("role", "STUDENT")

	actor, ok := actorFromContext(c)
	if !ok {
		t.Fatal("actor not resolved")
	}
	if actor.ID != 7 || actor.Username != "alice" || actor.Role != "STUDENT" {
		t.Fatalf("actor = %+v", actor)
	}

	empty, _ := newTestContext()
	if _, ok := actorFromContext(empty); ok {
		t.Fatal("actor resolved from empty context")
	}
}
