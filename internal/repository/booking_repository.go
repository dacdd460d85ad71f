// This file implements persistence for bookings and their audit trail.
// State-changing writes (create, status transition) always pair the
// booking row mutation with a booking_history insert inside one
// transaction, so a booking can never be observed without its audit
// entry.  All timestamps are stored in UTC DATETIMEs.

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/team2/university-room-booking/internal/booking"
	"github.com/team2/university-room-booking/internal/model"
)

// BookingRepo manages the bookings and booking_history tables.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle for callers that need to span
// repositories in one transaction.
func (r *BookingRepo) DB() *sql.DB { return r.db }

const bookingCols = `id, user_id, room_id, start_time, end_time, purpose, status, created_at`

func scanBooking(row interface{ Scan(...any) error }) (*model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.StartTime, &b.EndTime, &b.Purpose, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindByID returns the booking or (nil, nil) when absent.
func (r *BookingRepo) FindByID(ctx context.Context, id uint64) (*model.Booking, error) {
	q := `SELECT ` + bookingCols + ` FROM bookings WHERE id = ?`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return b, err
}

// FindByStatus returns every booking in the given status, newest first.
func (r *BookingRepo) FindByStatus(ctx context.Context, status string) ([]model.Booking, error) {
	q := `SELECT ` + bookingCols + ` FROM bookings WHERE status = ? ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

// statusPlaceholders renders "?, ?, ..." and the matching args for an
// IN clause over statuses.
func statusPlaceholders(statuses []string) (string, []any) {
	ph := make([]string, len(statuses))
	args := make([]any, len(statuses))
	for i, s := range statuses {
		ph[i] = "?"
		args[i] = s
	}
	return strings.Join(ph, ", "), args
}

// ExistsOverlap reports whether any booking on the room with one of the
// given statuses overlaps the half-open window [start, end).  The
// half-open comparison (start_time < end AND end_time > start) means a
// booking ending exactly at `start` does not count.
func (r *BookingRepo) ExistsOverlap(ctx context.Context, roomID uint64, statuses []string, start, end time.Time) (bool, error) {
	ph, args := statusPlaceholders(statuses)
	q := fmt.Sprintf(`SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE room_id = ? AND status IN (%s) AND start_time < ? AND end_time > ?)`, ph)
	full := append([]any{roomID}, args...)
	full = append(full, end, start)
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, full...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// FindOverlapping returns bookings on the room with one of the given
// statuses overlapping [start, end), ordered by start_time ascending.
func (r *BookingRepo) FindOverlapping(ctx context.Context, roomID uint64, statuses []string, start, end time.Time) ([]model.Booking, error) {
	ph, args := statusPlaceholders(statuses)
	q := fmt.Sprintf(`SELECT `+bookingCols+` FROM bookings
		WHERE room_id = ? AND status IN (%s) AND start_time < ? AND end_time > ?
		ORDER BY start_time ASC`, ph)
	full := append([]any{roomID}, args...)
	full = append(full, end, start)
	rows, err := r.db.QueryContext(ctx, q, full...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

// ExistsByRoom reports whether any booking (any status) references the
// room.  Used to block room deletion.
func (r *BookingRepo) ExistsByRoom(ctx context.Context, roomID uint64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM bookings WHERE room_id = ?)`, roomID).Scan(&exists)
	return exists, err
}

// CreateWithHistory inserts the booking and its creation audit entry in
// one transaction.  The generated booking ID is assigned to both b.ID
// and h.BookingID before the history insert.
func (r *BookingRepo) CreateWithHistory(ctx context.Context, b *model.Booking, h *model.HistoryEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (user_id, room_id, start_time, end_time, purpose, status) VALUES (?, ?, ?, ?, ?, ?)`,
		b.UserID, b.RoomID, b.StartTime, b.EndTime, b.Purpose, b.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	h.BookingID = b.ID

	if err := insertHistoryTx(ctx, tx, h); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// UpdateStatusWithHistory updates the booking's status and appends the
// audit entry in one transaction.
func (r *BookingRepo) UpdateStatusWithHistory(ctx context.Context, b *model.Booking, h *model.HistoryEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = ? WHERE id = ?`, b.Status, b.ID); err != nil {
		return err
	}
	if err := insertHistoryTx(ctx, tx, h); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func insertHistoryTx(ctx context.Context, tx *sql.Tx, h *model.HistoryEntry) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO booking_history (booking_id, user_id, actor_id, status, reason, at) VALUES (?, ?, ?, ?, ?, ?)`,
		h.BookingID, h.UserID, h.ActorID, h.Status, h.Reason, h.At)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)
	return nil
}

// CountByRoomForUser aggregates the user's bookings by room, ordered by
// booking count descending, at most limit rows.  Tie order among equal
// counts follows room id ascending so repeated calls stay stable.
func (r *BookingRepo) CountByRoomForUser(ctx context.Context, userID uint64, limit int) ([]model.RoomUsage, error) {
	q := `SELECT room_id, COUNT(id) AS cnt FROM bookings
		WHERE user_id = ?
		GROUP BY room_id
		ORDER BY cnt DESC, room_id ASC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.RoomUsage
	for rows.Next() {
		var u model.RoomUsage
		if err := rows.Scan(&u.RoomID, &u.Count); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// compile-time check that BookingRepo satisfies the engine's store.
var _ booking.BookingStore = (*BookingRepo)(nil)
