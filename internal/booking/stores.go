package booking

import (
	"context"
	"time"

	"github.com/team2/university-room-booking/internal/model"
)

// RoomStore is the engine's view of room persistence.  FindByID and
// FindAll must return rooms with FeatureIDs populated.  Lookups return
// (nil, nil) when no row matches; the engine converts that to a NotFound
// error with a domain message.
type RoomStore interface {
	FindByID(ctx context.Context, id uint64) (*model.Room, error)
	FindByName(ctx context.Context, name string) (*model.Room, error)
	FindAll(ctx context.Context) ([]model.Room, error)
}

// BookingStore is the engine's view of booking persistence.  The
// *WithHistory methods must perform the booking write and the history
// append in one atomic unit: a booking without its audit entry (or the
// reverse) must never be observable.  CreateWithHistory assigns the
// generated booking ID to both the booking and the history entry's
// BookingID.  FindByID returns (nil, nil) when no row matches.
type BookingStore interface {
	FindByID(ctx context.Context, id uint64) (*model.Booking, error)
	FindByStatus(ctx context.Context, status string) ([]model.Booking, error)
	ExistsOverlap(ctx context.Context, roomID uint64, statuses []string, start, end time.Time) (bool, error)
	FindOverlapping(ctx context.Context, roomID uint64, statuses []string, start, end time.Time) ([]model.Booking, error)
	CreateWithHistory(ctx context.Context, b *model.Booking, h *model.HistoryEntry) error
	UpdateStatusWithHistory(ctx context.Context, b *model.Booking, h *model.HistoryEntry) error
	CountByRoomForUser(ctx context.Context, userID uint64, limit int) ([]model.RoomUsage, error)
}

// HolidayStore yields blackout periods overlapping a window.
type HolidayStore interface {
	FindOverlapping(ctx context.Context, start, end time.Time) ([]model.Holiday, error)
}

// HistoryStore reads the append-only audit trail.
type HistoryStore interface {
	FindWithFilters(ctx context.Context, f HistoryFilter) ([]model.HistoryEntry, error)
}

// HistoryFilter narrows an audit trail query.  Nil fields match
// everything; results are ordered by timestamp descending.
type HistoryFilter struct {
	UserID    *uint64
	BookingID *uint64
	Status    *string
	DateFrom  *time.Time
	DateTo    *time.Time
}
