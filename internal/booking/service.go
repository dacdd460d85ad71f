package booking

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/team2/university-room-booking/internal/model"
)

// Booking policy bounds carried over from the reservation rules document.
// They are published for clients and admin tooling; the engine itself does
// not enforce them.
const (
	MaxHorizon  = 90 * 24 * time.Hour
	MinDuration = time.Hour
	MaxDuration = 4 * time.Hour
)

// Actor identifies the authenticated user performing an operation.  The
// transport layer resolves identity once (from the access token) and
// passes it in; the engine never consults ambient auth state.
type Actor struct {
	ID       uint64
	Username string
	Role     string
}

// CreateRequest describes one booking creation.  RoomID and RoomType are
// optional: with RoomID set the named room is booked directly, otherwise
// the engine auto-selects the first conflict-free available room matching
// RoomType (when set) and RequiredFeatureIDs.
type CreateRequest struct {
	RoomID             *uint64
	RoomType           *string
	RequiredFeatureIDs []uint64
	StartTime          time.Time
	EndTime            time.Time
	Purpose            string
}

// Service is the booking engine.  All state-changing operations
// serialize per room via an internal keyed mutex held across the
// conflict check and the write.
type Service struct {
	rooms    RoomStore
	bookings BookingStore
	holidays HolidayStore
	history  HistoryStore
	locks    *roomLocks
	now      func() time.Time
}

// NewService wires the engine to its stores.  All stores must be non-nil.
func NewService(rooms RoomStore, bookings BookingStore, holidays HolidayStore, history HistoryStore) *Service {
	if rooms == nil || bookings == nil || holidays == nil || history == nil {
		panic("nil store passed to booking.NewService")
	}
	return &Service{
		rooms:    rooms,
		bookings: bookings,
		holidays: holidays,
		history:  history,
		locks:    newRoomLocks(),
		now:      time.Now,
	}
}

// Create validates the request, resolves a room, checks blackout periods
// and conflicts, and persists a new PENDING booking together with its
// first audit entry.  The returned booking carries the generated ID.
func (s *Service) Create(ctx context.Context, actor Actor, req CreateRequest) (*model.Booking, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, badRequestf("end time must be after start time")
	}
	if strings.TrimSpace(req.Purpose) == "" {
		return nil, badRequestf("purpose is required")
	}

	// Always validate against holidays first.
	if err := s.checkHolidayConflicts(ctx, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	var room *model.Room
	if req.RoomID != nil {
		r, err := s.rooms.FindByID(ctx, *req.RoomID)
		if err != nil {
			return nil, err
		}
		if r == nil {
			return nil, notFoundf("room not found")
		}
		if missing := r.MissingFeatures(req.RequiredFeatureIDs); len(missing) > 0 {
			log.Printf("booking.features.missing roomId=%d missing=%v", r.ID, missing)
			return nil, badRequestf("room is missing required features: %v", missing)
		}
		room = r
	}

	if room != nil {
		mu := s.locks.lock(room.ID)
		defer mu.Unlock()
		overlaps, err := s.bookings.ExistsOverlap(ctx, room.ID, model.ActiveStatuses, req.StartTime, req.EndTime)
		if err != nil {
			return nil, err
		}
		if overlaps {
			log.Printf("booking.overlap.conflict roomId=%d start=%s end=%s", room.ID, req.StartTime, req.EndTime)
			return nil, conflictf("requested time overlaps with an existing booking")
		}
		return s.persistNew(ctx, actor, room, req)
	}

	// No explicit room: first-fit search over available candidates.
	return s.createAutoSelected(ctx, actor, req)
}

// createAutoSelected enumerates available rooms filtered by optional type
// and required features, and books the first one with no active
// overlapping booking.  The candidate order is the store's FindAll order:
// stable, but not ranked by capacity or fit.
func (s *Service) createAutoSelected(ctx context.Context, actor Actor, req CreateRequest) (*model.Booking, error) {
	all, err := s.rooms.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	candidates := make([]*model.Room, 0, len(all))
	for i := range all {
		r := &all[i]
		if !r.Available {
			continue
		}
		if req.RoomType != nil && *req.RoomType != r.Type {
			continue
		}
		if !r.HasFeatures(req.RequiredFeatureIDs) {
			continue
		}
		candidates = append(candidates, r)
	}

	for _, candidate := range candidates {
		booked, err := func() (*model.Booking, error) {
			mu := s.locks.lock(candidate.ID)
			defer mu.Unlock()
			overlaps, err := s.bookings.ExistsOverlap(ctx, candidate.ID, model.ActiveStatuses, req.StartTime, req.EndTime)
			if err != nil {
				return nil, err
			}
			if overlaps {
				return nil, nil
			}
			return s.persistNew(ctx, actor, candidate, req)
		}()
		if err != nil {
			return nil, err
		}
		if booked != nil {
			log.Printf("booking.room.autoselect.success selectedRoomId=%d featuresCount=%d", candidate.ID, len(req.RequiredFeatureIDs))
			return booked, nil
		}
	}

	log.Printf("booking.create.no-available-rooms featuresCount=%d start=%s end=%s",
		len(req.RequiredFeatureIDs), req.StartTime, req.EndTime)
	return nil, notFoundf("no available rooms match the requested criteria and time period")
}

// persistNew writes the PENDING booking and its creation audit entry in
// one atomic store call.  Callers hold the room lock.
func (s *Service) persistNew(ctx context.Context, actor Actor, room *model.Room, req CreateRequest) (*model.Booking, error) {
	b := &model.Booking{
		UserID:    actor.ID,
		RoomID:    room.ID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Purpose:   req.Purpose,
		Status:    model.StatusPending,
	}
	h := &model.HistoryEntry{
		UserID:  actor.ID,
		ActorID: actor.ID,
		Status:  model.StatusPending,
		At:      s.now().UTC(),
	}
	if err := s.bookings.CreateWithHistory(ctx, b, h); err != nil {
		return nil, err
	}
	log.Printf("booking.create.success bookingId=%d userId=%d roomId=%d start=%s end=%s status=%s",
		b.ID, actor.ID, room.ID, b.StartTime, b.EndTime, b.Status)
	return b, nil
}

// Approve moves a PENDING booking to APPROVED.  Holidays are re-checked
// because a blackout period may have been declared after the booking was
// submitted; the room conflict is not re-checked, relying on creation
// having been the only writer for that window.
func (s *Service) Approve(ctx context.Context, actor Actor, bookingID uint64) (*model.Booking, error) {
	b, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != model.StatusPending {
		log.Printf("booking.approve.denied bookingId=%d actor=%s currentStatus=%s", bookingID, actor.Username, b.Status)
		return nil, badRequestf("only PENDING bookings can be approved (current status: %s)", b.Status)
	}
	if err := s.checkHolidayConflicts(ctx, b.StartTime, b.EndTime); err != nil {
		return nil, err
	}
	return s.transition(ctx, actor, b, model.StatusApproved, "")
}

// Reject moves a PENDING booking to REJECTED.  A reason is required and
// is recorded on the audit entry.
func (s *Service) Reject(ctx context.Context, actor Actor, bookingID uint64, reason string) (*model.Booking, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, badRequestf("rejection reason is required")
	}
	b, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != model.StatusPending {
		log.Printf("booking.reject.denied bookingId=%d actor=%s currentStatus=%s", bookingID, actor.Username, b.Status)
		return nil, badRequestf("only pending bookings can be rejected (current status: %s)", b.Status)
	}
	return s.transition(ctx, actor, b, model.StatusRejected, reason)
}

// Cancel moves a PENDING or APPROVED booking to CANCELLED.  Only the
// booking's owner may cancel, and only strictly before the start time.
func (s *Service) Cancel(ctx context.Context, actor Actor, bookingID uint64) (*model.Booking, error) {
	b, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != actor.ID {
		log.Printf("booking.cancel.denied bookingId=%d actor=%s reason=NOT_OWNER", bookingID, actor.Username)
		return nil, forbiddenf("you don't have permission to cancel this booking")
	}
	if !s.now().Before(b.StartTime) {
		log.Printf("booking.cancel.denied bookingId=%d actor=%s reason=AFTER_START_TIME", bookingID, actor.Username)
		return nil, forbiddenf("booking cannot be cancelled after start time")
	}
	if b.Status != model.StatusPending && b.Status != model.StatusApproved {
		log.Printf("booking.cancel.denied bookingId=%d actor=%s reason=INVALID_STATUS currentStatus=%s", bookingID, actor.Username, b.Status)
		return nil, badRequestf("booking cannot be cancelled in status: %s", b.Status)
	}
	return s.transition(ctx, actor, b, model.StatusCancelled, "")
}

// transition persists the status change and its audit entry atomically.
func (s *Service) transition(ctx context.Context, actor Actor, b *model.Booking, status, reason string) (*model.Booking, error) {
	b.Status = status
	h := &model.HistoryEntry{
		BookingID: b.ID,
		UserID:    b.UserID,
		ActorID:   actor.ID,
		Status:    status,
		Reason:    reason,
		At:        s.now().UTC(),
	}
	if err := s.bookings.UpdateStatusWithHistory(ctx, b, h); err != nil {
		return nil, err
	}
	log.Printf("booking.transition.success bookingId=%d actor=%s status=%s", b.ID, actor.Username, status)
	return b, nil
}

// TopRooms aggregates userID's bookings by room and returns at most limit
// rows ordered by booking count descending.  A non-positive limit is
// normalized to 3.  Tie order among equal counts is store-defined.
func (s *Service) TopRooms(ctx context.Context, userID uint64, limit int) ([]model.RoomUsage, error) {
	if limit <= 0 {
		limit = 3
	}
	return s.bookings.CountByRoomForUser(ctx, userID, limit)
}

// AuditTrail returns audit entries matching the filter, newest first.
func (s *Service) AuditTrail(ctx context.Context, f HistoryFilter) ([]model.HistoryEntry, error) {
	return s.history.FindWithFilters(ctx, f)
}

func (s *Service) findBooking(ctx context.Context, id uint64) (*model.Booking, error) {
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFoundf("booking not found with id %d", id)
	}
	return b, nil
}

// checkHolidayConflicts fails with a Conflict naming every blackout
// period intersecting the window.
func (s *Service) checkHolidayConflicts(ctx context.Context, start, end time.Time) error {
	overlapping, err := s.holidays.FindOverlapping(ctx, start, end)
	if err != nil {
		return err
	}
	if len(overlapping) == 0 {
		return nil
	}
	names := make([]string, len(overlapping))
	for i, h := range overlapping {
		names[i] = h.Name
	}
	joined := strings.Join(names, ", ")
	log.Printf("booking.holiday.conflict count=%d names=%s start=%s end=%s", len(overlapping), joined, start, end)
	return conflictf("booking falls on a holiday: %s", joined)
}
