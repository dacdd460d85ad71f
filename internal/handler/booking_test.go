package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/team2/university-room-booking/internal/booking"
	"github.com/team2/university-room-booking/internal/model"
)

// Minimal stores: just enough engine surface for the handler tests.

type stubRooms struct{}

func (stubRooms) FindByID(context.Context, uint64) (*model.Room, error)   { return nil, nil }
func (stubRooms) FindByName(context.Context, string) (*model.Room, error) { return nil, nil }
func (stubRooms) FindAll(context.Context) ([]model.Room, error)           { return nil, nil }

type stubBookings struct {
	usage map[uint64][]model.RoomUsage
}

func (stubBookings) FindByID(context.Context, uint64) (*model.Booking, error) { return nil, nil }
func (stubBookings) FindByStatus(context.Context, string) ([]model.Booking, error) {
	return nil, nil
}
func (stubBookings) ExistsOverlap(context.Context, uint64, []string, time.Time, time.Time) (bool, error) {
	return false, nil
}
func (stubBookings) FindOverlapping(context.Context, uint64, []string, time.Time, time.Time) ([]model.Booking, error) {
	return nil, nil
}
func (stubBookings) CreateWithHistory(context.Context, *model.Booking, *model.HistoryEntry) error {
	return nil
}
func (stubBookings) UpdateStatusWithHistory(context.Context, *model.Booking, *model.HistoryEntry) error {
	return nil
}
func (s stubBookings) CountByRoomForUser(_ context.Context, userID uint64, limit int) ([]model.RoomUsage, error) {
	out := s.usage[userID]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubHolidays struct{}

func (stubHolidays) FindOverlapping(context.Context, time.Time, time.Time) ([]model.Holiday, error) {
	return nil, nil
}

type stubHistory struct{}

func (stubHistory) FindWithFilters(context.Context, booking.HistoryFilter) ([]model.HistoryEntry, error) {
	return nil, nil
}

func topRoomsContext(userID string, actorID float64, role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/bookings/users/:userId/recurring-bookings")
	c.SetParamNames("userId")
	c.SetParamValues(userID)
	c.Set("user_id", actorID)
	c.Set("username", "someone")
	c.Set("role", role)
	return c, rec
}

func TestTopRoomsUserIDParameter(t *testing.T) {
	svc := booking.NewService(stubRooms{}, stubBookings{
		usage: map[uint64][]model.RoomUsage{
			7: {{RoomID: 1, Count: 5}, {RoomID: 2, Count: 2}},
		},
	}, stubHolidays{}, stubHistory{})
	h := NewBookingHandler(svc, nil)

	cases := []struct {
		name     string
		userID   string
		actorID  float64
		role     string
		want     int
		wantRows int
	}{
		{"own rooms", "7", 7, model.RoleStudent, http.StatusOK, 2},
		{"admin queries another user", "7", 9, model.RoleAdmin, http.StatusOK, 2},
		{"student queries another user", "7", 3, model.RoleStudent, http.StatusForbidden, 0},
		{"faculty queries another user", "7", 3, model.RoleFacultyMember, http.StatusForbidden, 0},
		{"bad user id", "zero", 7, model.RoleStudent, http.StatusBadRequest, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := topRoomsContext(tc.userID, tc.actorID, tc.role)
			if err := h.TopRooms(c); err != nil {
				t.Fatalf("TopRooms: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
			if tc.want == http.StatusOK {
				var rows []model.RoomUsage
				if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if len(rows) != tc.wantRows {
					t.Fatalf("rows = %v, want %d entries", rows, tc.wantRows)
				}
			}
		})
	}
}
