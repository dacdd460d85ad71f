package booking

import (
	"context"
	"sort"
	"time"

	"github.com/team2/university-room-booking/internal/model"
	"github.com/team2/university-room-booking/internal/schedule"
)

// FreeSlotsForRoom returns the ordered free sub-intervals of
// [start, end) for a room after subtracting every active booking that
// overlaps the window.  Windows starting in the past are rejected; that
// is a policy choice for the public availability endpoint, not a
// correctness requirement.
func (s *Service) FreeSlotsForRoom(ctx context.Context, roomID uint64, start, end time.Time) ([]schedule.Interval, error) {
	if !end.After(start) {
		return nil, badRequestf("end time must be after start time")
	}
	if start.Before(s.now()) {
		return nil, badRequestf("cannot request availability in the past")
	}
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, notFoundf("room not found with id %d", roomID)
	}

	bookings, err := s.bookings.FindOverlapping(ctx, roomID, model.ActiveStatuses, start, end)
	if err != nil {
		return nil, err
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].StartTime.Before(bookings[j].StartTime)
	})
	busy := make([]schedule.Interval, len(bookings))
	for i, b := range bookings {
		busy[i] = schedule.Interval{Start: b.StartTime, End: b.EndTime}
	}
	return schedule.FreeSlots(start, end, busy), nil
}

// IsRoomAvailable reports whether the room named roomName has no active
// booking overlapping [start, end).
func (s *Service) IsRoomAvailable(ctx context.Context, roomName string, start, end time.Time) (bool, error) {
	if !end.After(start) {
		return false, badRequestf("end date must be after start date")
	}
	room, err := s.rooms.FindByName(ctx, roomName)
	if err != nil {
		return false, err
	}
	if room == nil {
		return false, notFoundf("room not found")
	}
	overlaps, err := s.bookings.ExistsOverlap(ctx, room.ID, model.ActiveStatuses, start, end)
	if err != nil {
		return false, err
	}
	return !overlaps, nil
}

// BookingsByStatus lists all bookings currently in the given status.
func (s *Service) BookingsByStatus(ctx context.Context, status string) ([]model.Booking, error) {
	if !model.ValidStatus(status) {
		return nil, badRequestf("unknown booking status: %s", status)
	}
	return s.bookings.FindByStatus(ctx, status)
}
