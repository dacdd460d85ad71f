package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/team2/university-room-booking/internal/model"
	"github.com/team2/university-room-booking/internal/schedule"
)

// ----- in-memory stores -----

type memRooms struct {
	rooms []model.Room
}

func (m *memRooms) FindByID(_ context.Context, id uint64) (*model.Room, error) {
	for i := range m.rooms {
		if m.rooms[i].ID == id {
			r := m.rooms[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memRooms) FindByName(_ context.Context, name string) (*model.Room, error) {
	for i := range m.rooms {
		if m.rooms[i].Name == name {
			r := m.rooms[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memRooms) FindAll(_ context.Context) ([]model.Room, error) {
	out := make([]model.Room, len(m.rooms))
	copy(out, m.rooms)
	return out, nil
}

type memBookings struct {
	bookings []model.Booking
	history  []model.HistoryEntry
	nextID   uint64
}

func (m *memBookings) FindByID(_ context.Context, id uint64) (*model.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (m *memBookings) FindByStatus(_ context.Context, status string) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range m.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func hasStatus(statuses []string, s string) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

func (m *memBookings) ExistsOverlap(_ context.Context, roomID uint64, statuses []string, start, end time.Time) (bool, error) {
	for _, b := range m.bookings {
		if b.RoomID == roomID && hasStatus(statuses, b.Status) &&
			schedule.Overlaps(b.StartTime, b.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memBookings) FindOverlapping(_ context.Context, roomID uint64, statuses []string, start, end time.Time) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range m.bookings {
		if b.RoomID == roomID && hasStatus(statuses, b.Status) &&
			schedule.Overlaps(b.StartTime, b.EndTime, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) CreateWithHistory(_ context.Context, b *model.Booking, h *model.HistoryEntry) error {
	m.nextID++
	b.ID = m.nextID
	h.BookingID = b.ID
	m.bookings = append(m.bookings, *b)
	m.history = append(m.history, *h)
	return nil
}

func (m *memBookings) UpdateStatusWithHistory(_ context.Context, b *model.Booking, h *model.HistoryEntry) error {
	for i := range m.bookings {
		if m.bookings[i].ID == b.ID {
			m.bookings[i].Status = b.Status
			m.history = append(m.history, *h)
			return nil
		}
	}
	return errors.New("booking not found")
}

func (m *memBookings) CountByRoomForUser(_ context.Context, userID uint64, limit int) ([]model.RoomUsage, error) {
	counts := map[uint64]int64{}
	for _, b := range m.bookings {
		if b.UserID == userID {
			counts[b.RoomID]++
		}
	}
	var out []model.RoomUsage
	for roomID, n := range counts {
		out = append(out, model.RoomUsage{RoomID: roomID, Count: n})
	}
	// selection sort by count desc, room id asc; small n in tests
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Count > out[i].Count ||
				(out[j].Count == out[i].Count && out[j].RoomID < out[i].RoomID) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memHolidays struct {
	holidays []model.Holiday
}

func (m *memHolidays) FindOverlapping(_ context.Context, start, end time.Time) ([]model.Holiday, error) {
	var out []model.Holiday
	for _, h := range m.holidays {
		if schedule.Overlaps(h.StartDate, h.EndDate, start, end) {
			out = append(out, h)
		}
	}
	return out, nil
}

type memHistory struct {
	bookings *memBookings
}

func (m *memHistory) FindWithFilters(_ context.Context, f HistoryFilter) ([]model.HistoryEntry, error) {
	var out []model.HistoryEntry
	for _, h := range m.bookings.history {
		if f.UserID != nil && h.UserID != *f.UserID {
			continue
		}
		if f.BookingID != nil && h.BookingID != *f.BookingID {
			continue
		}
		if f.Status != nil && h.Status != *f.Status {
			continue
		}
		if f.DateFrom != nil && h.At.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && h.At.After(*f.DateTo) {
			continue
		}
		out = append(out, h)
	}
	// newest first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// ----- fixtures -----

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func day(d, h int) time.Time {
	return time.Date(2025, 3, d, h, 0, 0, 0, time.UTC)
}

func newTestService(rooms []model.Room, holidays []model.Holiday) (*Service, *memBookings) {
	mb := &memBookings{}
	s := NewService(
		&memRooms{rooms: rooms},
		mb,
		&memHolidays{holidays: holidays},
		&memHistory{bookings: mb},
	)
	s.now = func() time.Time { return testNow }
	return s, mb
}

func u64(v uint64) *uint64 { return &v }
func str(v string) *string { return &v }

var (
	student = Actor{ID: 1, Username: "alice", Role: model.RoleStudent}
	faculty = Actor{ID: 2, Username: "bob", Role: model.RoleFacultyMember}
	admin   = Actor{ID: 9, Username: "root", Role: model.RoleAdmin}
)

func defaultRooms() []model.Room {
	return []model.Room{
		{ID: 1, Name: "A-101", Type: model.RoomTypeClassroom, Capacity: 30, Available: true, BuildingID: 1, FeatureIDs: []uint64{1}},
		{ID: 2, Name: "A-102", Type: model.RoomTypeClassroom, Capacity: 30, Available: true, BuildingID: 1, FeatureIDs: []uint64{1, 2}},
		{ID: 3, Name: "B-201", Type: model.RoomTypeLab, Capacity: 20, Available: true, BuildingID: 2, FeatureIDs: []uint64{2, 3}},
		{ID: 4, Name: "B-202", Type: model.RoomTypeLab, Capacity: 20, Available: false, BuildingID: 2, FeatureIDs: []uint64{2, 3}},
	}
}

func mustCreate(t *testing.T, s *Service, actor Actor, req CreateRequest) *model.Booking {
	t.Helper()
	b, err := s.Create(context.Background(), actor, req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return b
}

// ----- tests -----

func TestCreateExplicitRoom(t *testing.T) {
	s, mb := newTestService(defaultRooms(), nil)

	b := mustCreate(t, s, student, CreateRequest{
		RoomID:    u64(1),
		StartTime: day(10, 10),
		EndTime:   day(10, 12),
		Purpose:   "algorithms lecture",
	})

	if b.ID == 0 {
		t.Fatal("expected generated booking id")
	}
	if b.Status != model.StatusPending {
		t.Fatalf("status = %s, want PENDING", b.Status)
	}
	if b.RoomID != 1 || b.UserID != student.ID {
		t.Fatalf("unexpected booking %+v", b)
	}
	if len(mb.history) != 1 {
		t.Fatalf("history entries = %d, want 1", len(mb.history))
	}
	h := mb.history[0]
	if h.BookingID != b.ID || h.Status != model.StatusPending || h.ActorID != student.ID {
		t.Fatalf("unexpected history entry %+v", h)
	}
}

func TestCreateValidation(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)

	cases := []struct {
		name string
		req  CreateRequest
		kind error
	}{
		{
			name: "end before start",
			req:  CreateRequest{RoomID: u64(1), StartTime: day(10, 12), EndTime: day(10, 10), Purpose: "x"},
			kind: ErrBadRequest,
		},
		{
			name: "zero length",
			req:  CreateRequest{RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 10), Purpose: "x"},
			kind: ErrBadRequest,
		},
		{
			name: "blank purpose",
			req:  CreateRequest{RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "   "},
			kind: ErrBadRequest,
		},
		{
			name: "unknown room",
			req:  CreateRequest{RoomID: u64(99), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "x"},
			kind: ErrNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), student, tc.req)
			if !errors.Is(err, tc.kind) {
				t.Fatalf("err = %v, want kind %v", err, tc.kind)
			}
		})
	}
}

func TestCreateMissingFeatures(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)

	// room 1 has feature 1 only
	_, err := s.Create(context.Background(), student, CreateRequest{
		RoomID:             u64(1),
		RequiredFeatureIDs: []uint64{1, 2},
		StartTime:          day(10, 10),
		EndTime:            day(10, 12),
		Purpose:            "needs projector",
	})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("err = %v, want bad request", err)
	}
	// the message names the missing feature, not the satisfied one
	if msg := err.Error(); !strings.Contains(msg, "[2]") {
		t.Fatalf("message %q does not name missing feature 2", msg)
	}
}

func TestCreateOverlapConflict(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)

	mustCreate(t, s, student, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "first",
	})

	// [11,13) overlaps [10,12)
	_, err := s.Create(context.Background(), faculty, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 11), EndTime: day(10, 13), Purpose: "second",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}

	// back-to-back [12,13) does not
	if _, err := s.Create(context.Background(), faculty, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 12), EndTime: day(10, 13), Purpose: "after",
	}); err != nil {
		t.Fatalf("back-to-back booking rejected: %v", err)
	}

	// a different room is unaffected
	if _, err := s.Create(context.Background(), faculty, CreateRequest{
		RoomID: u64(2), StartTime: day(10, 11), EndTime: day(10, 13), Purpose: "other room",
	}); err != nil {
		t.Fatalf("other room rejected: %v", err)
	}
}

func TestCreateHolidayConflict(t *testing.T) {
	s, _ := newTestService(defaultRooms(), []model.Holiday{
		{ID: 1, Name: "Founders Day", StartDate: day(10, 0), EndDate: day(11, 0)},
	})

	_, err := s.Create(context.Background(), student, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "x",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
	if got := err.Error(); got != "booking falls on a holiday: Founders Day" {
		t.Fatalf("message = %q", got)
	}

	// the day after is fine
	if _, err := s.Create(context.Background(), student, CreateRequest{
		RoomID: u64(1), StartTime: day(11, 10), EndTime: day(11, 12), Purpose: "x",
	}); err != nil {
		t.Fatalf("post-holiday booking rejected: %v", err)
	}
}

func TestCreateAutoSelect(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)

	// occupy room 1 so auto-select must skip it
	mustCreate(t, s, faculty, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "taken",
	})

	b := mustCreate(t, s, student, CreateRequest{
		RoomType:  str(model.RoomTypeClassroom),
		StartTime: day(10, 10),
		EndTime:   day(10, 12),
		Purpose:   "study group",
	})
	if b.RoomID != 2 {
		t.Fatalf("auto-selected room %d, want 2", b.RoomID)
	}
}

func TestCreateAutoSelectFilters(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)

	// feature 3 exists only on labs; room 4 is unavailable, so room 3 wins
	b := mustCreate(t, s, student, CreateRequest{
		RequiredFeatureIDs: []uint64{3},
		StartTime:          day(10, 10),
		EndTime:            day(10, 12),
		Purpose:            "experiment",
	})
	if b.RoomID != 3 {
		t.Fatalf("auto-selected room %d, want 3", b.RoomID)
	}

	// no room offers feature 99
	_, err := s.Create(context.Background(), student, CreateRequest{
		RequiredFeatureIDs: []uint64{99},
		StartTime:          day(10, 10),
		EndTime:            day(10, 12),
		Purpose:            "impossible",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestCreateAutoSelectNeverPicksUnavailable(t *testing.T) {
	rooms := defaultRooms()
	// make every room except the unavailable lab busy elsewhere
	s, _ := newTestService(rooms, nil)
	for _, id := range []uint64{1, 2, 3} {
		mustCreate(t, s, faculty, CreateRequest{
			RoomID: u64(id), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "busy",
		})
	}
	_, err := s.Create(context.Background(), student, CreateRequest{
		StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "anything",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want not found (room 4 is unavailable)", err)
	}
}

func TestApprove(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)
	b := mustCreate(t, s, student, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "x",
	})

	approved, err := s.Approve(context.Background(), admin, b.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.Status != model.StatusApproved {
		t.Fatalf("status = %s, want APPROVED", approved.Status)
	}

	// approving twice is a bad request naming the current status
	_, err = s.Approve(context.Background(), admin, b.ID)
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("second approve err = %v, want bad request", err)
	}
}

func TestApproveRechecksHolidays(t *testing.T) {
	hols := &memHolidays{}
	mb := &memBookings{}
	s := NewService(&memRooms{rooms: defaultRooms()}, mb, hols, &memHistory{bookings: mb})
	s.now = func() time.Time { return testNow }

	b := mustCreate(t, s, student, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "x",
	})

	// a blackout declared after submission blocks approval
	hols.holidays = append(hols.holidays, model.Holiday{
		ID: 1, Name: "Snow Day", StartDate: day(10, 0), EndDate: day(11, 0),
	})
	_, err := s.Approve(context.Background(), admin, b.ID)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}

	got, _ := s.findBooking(context.Background(), b.ID)
	if got.Status != model.StatusPending {
		t.Fatalf("status changed to %s despite failed approval", got.Status)
	}
}

func TestReject(t *testing.T) {
	s, mb := newTestService(defaultRooms(), nil)
	b := mustCreate(t, s, student, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "x",
	})

	// reason is mandatory
	if _, err := s.Reject(context.Background(), admin, b.ID, "  "); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("blank reason err = %v, want bad request", err)
	}

	rejected, err := s.Reject(context.Background(), admin, b.ID, "double booked event")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if rejected.Status != model.StatusRejected {
		t.Fatalf("status = %s, want REJECTED", rejected.Status)
	}
	last := mb.history[len(mb.history)-1]
	if last.Reason != "double booked event" || last.ActorID != admin.ID {
		t.Fatalf("unexpected audit entry %+v", last)
	}

	// rejecting after a decision is a bad request
	if _, err := s.Reject(context.Background(), admin, b.ID, "again"); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("second reject err = %v, want bad request", err)
	}
}

func TestRejectAfterApprove(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)
	b := mustCreate(t, s, student, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "x",
	})
	if _, err := s.Approve(context.Background(), admin, b.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if _, err := s.Reject(context.Background(), admin, b.ID, "changed my mind"); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("reject after approve err = %v, want bad request", err)
	}
}

func TestCancel(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)
	b := mustCreate(t, s, student, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "x",
	})

	// only the owner may cancel
	if _, err := s.Cancel(context.Background(), faculty, b.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-owner cancel err = %v, want forbidden", err)
	}

	cancelled, err := s.Cancel(context.Background(), student, b.ID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if cancelled.Status != model.StatusCancelled {
		t.Fatalf("status = %s, want CANCELLED", cancelled.Status)
	}

	// cancelling a cancelled booking is a bad request
	if _, err := s.Cancel(context.Background(), student, b.ID); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("second cancel err = %v, want bad request", err)
	}
}

func TestCancelApprovedBooking(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)
	b := mustCreate(t, s, student, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "x",
	})
	if _, err := s.Approve(context.Background(), admin, b.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if _, err := s.Cancel(context.Background(), student, b.ID); err != nil {
		t.Fatalf("cancel of approved booking: %v", err)
	}
}

func TestCancelAfterStartTime(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)
	b := mustCreate(t, s, student, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "x",
	})

	// clock at exactly the start time: too late already
	s.now = func() time.Time { return day(10, 10) }
	if _, err := s.Cancel(context.Background(), student, b.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("cancel at start err = %v, want forbidden", err)
	}

	s.now = func() time.Time { return day(10, 11) }
	if _, err := s.Cancel(context.Background(), student, b.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("cancel after start err = %v, want forbidden", err)
	}
}

func TestCancelledBookingFreesTheSlot(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)
	b := mustCreate(t, s, student, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "x",
	})
	if _, err := s.Cancel(context.Background(), student, b.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if _, err := s.Create(context.Background(), faculty, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "reuse",
	}); err != nil {
		t.Fatalf("rebooking a cancelled slot failed: %v", err)
	}
}

func TestTopRooms(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)

	book := func(roomID uint64, d, h int) {
		mustCreate(t, s, student, CreateRequest{
			RoomID: u64(roomID), StartTime: day(d, h), EndTime: day(d, h+1), Purpose: "x",
		})
	}
	book(1, 10, 8)
	book(1, 10, 10)
	book(1, 10, 12)
	book(2, 11, 8)
	book(2, 11, 10)
	book(3, 12, 8)
	// another user's bookings never count
	mustCreate(t, s, faculty, CreateRequest{
		RoomID: u64(3), StartTime: day(12, 10), EndTime: day(12, 11), Purpose: "x",
	})

	got, err := s.TopRooms(context.Background(), student.ID, 2)
	if err != nil {
		t.Fatalf("TopRooms: %v", err)
	}
	want := []model.RoomUsage{{RoomID: 1, Count: 3}, {RoomID: 2, Count: 2}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	// non-positive limit falls back to 3
	all, err := s.TopRooms(context.Background(), student.ID, 0)
	if err != nil {
		t.Fatalf("TopRooms: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("default limit returned %d rows, want 3", len(all))
	}
}

func TestAuditTrailFilters(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)
	b1 := mustCreate(t, s, student, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "x",
	})
	b2 := mustCreate(t, s, faculty, CreateRequest{
		RoomID: u64(2), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "y",
	})
	if _, err := s.Approve(context.Background(), admin, b1.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	byBooking, err := s.AuditTrail(context.Background(), HistoryFilter{BookingID: &b1.ID})
	if err != nil {
		t.Fatalf("AuditTrail: %v", err)
	}
	if len(byBooking) != 2 {
		t.Fatalf("entries for booking %d = %d, want 2", b1.ID, len(byBooking))
	}
	// newest first
	if byBooking[0].Status != model.StatusApproved || byBooking[1].Status != model.StatusPending {
		t.Fatalf("unexpected order: %+v", byBooking)
	}

	status := model.StatusPending
	pending, err := s.AuditTrail(context.Background(), HistoryFilter{UserID: &b2.UserID, Status: &status})
	if err != nil {
		t.Fatalf("AuditTrail: %v", err)
	}
	if len(pending) != 1 || pending[0].BookingID != b2.ID {
		t.Fatalf("unexpected filtered entries: %+v", pending)
	}
}

func TestAuditTrailDateRange(t *testing.T) {
	s, _ := newTestService(defaultRooms(), nil)

	// Three entries at distinct times: created Mar 1, created Mar 5,
	// approved Mar 8.
	b1 := mustCreate(t, s, student, CreateRequest{
		RoomID: u64(1), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "x",
	})
	s.now = func() time.Time { return day(5, 9) }
	b2 := mustCreate(t, s, faculty, CreateRequest{
		RoomID: u64(2), StartTime: day(10, 10), EndTime: day(10, 12), Purpose: "y",
	})
	s.now = func() time.Time { return day(8, 9) }
	if _, err := s.Approve(context.Background(), admin, b1.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	from := day(9, 0)
	none, err := s.AuditTrail(context.Background(), HistoryFilter{DateFrom: &from})
	if err != nil {
		t.Fatalf("AuditTrail: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("entries after %v = %+v, want none", from, none)
	}

	from, to := day(2, 0), day(6, 0)
	mid, err := s.AuditTrail(context.Background(), HistoryFilter{DateFrom: &from, DateTo: &to})
	if err != nil {
		t.Fatalf("AuditTrail: %v", err)
	}
	if len(mid) != 1 || mid[0].BookingID != b2.ID || mid[0].Status != model.StatusPending {
		t.Fatalf("entries in [%v, %v] = %+v, want the pending entry for booking %d", from, to, mid, b2.ID)
	}
}
