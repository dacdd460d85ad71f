package model

import "time"

// Booking lifecycle statuses.  PENDING is the initial state; APPROVED,
// REJECTED and CANCELLED are reached through the transitions implemented
// in the booking package.  Only PENDING and APPROVED block other bookings
// on the same room.
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

// ActiveStatuses are the statuses that occupy a room for conflict
// detection.  Callers must not mutate the slice.
var ActiveStatuses = []string{StatusPending, StatusApproved}

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Booking is a reservation of one room for a half-open time window
// [StartTime, EndTime).  EndTime must be after StartTime.  Two bookings
// on the same room conflict iff their windows overlap and both carry an
// active status.
type Booking struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	RoomID    uint64    `json:"room_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Purpose   string    `json:"purpose"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry is one immutable audit record of a booking status change.
// Entries are appended exactly once per transition and never updated or
// deleted.  UserID is the booking's owner; ActorID is whoever performed
// the transition (an admin rejecting a student's booking differs from the
// owner cancelling their own).
type HistoryEntry struct {
	ID        uint64    `json:"id"`
	BookingID uint64    `json:"booking_id"`
	UserID    uint64    `json:"user_id"`
	ActorID   uint64    `json:"actor_id"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	At        time.Time `json:"at"`
}

// RoomUsage is one row of the top-recurring-rooms aggregation: how many
// bookings a user has made for a room.
type RoomUsage struct {
	RoomID uint64 `json:"room_id"`
	Count  int64  `json:"count"`
}
