package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/team2/university-room-booking/internal/booking"
	"github.com/team2/university-room-booking/internal/model"
)

// HistoryRepo reads the append-only booking_history table.  Writes go
// through BookingRepo so they share the booking's transaction.
type HistoryRepo struct {
	db *sql.DB
}

// NewHistoryRepo returns a HistoryRepo bound to the given database.
func NewHistoryRepo(db *sql.DB) *HistoryRepo { return &HistoryRepo{db: db} }

// FindWithFilters returns audit entries matching every non-nil filter
// field, ordered by timestamp descending.  The WHERE clause is built
// only from set filters so an empty filter returns the whole trail.
func (r *HistoryRepo) FindWithFilters(ctx context.Context, f booking.HistoryFilter) ([]model.HistoryEntry, error) {
	var conds []string
	var args []any
	if f.UserID != nil {
		conds = append(conds, "user_id = ?")
		args = append(args, *f.UserID)
	}
	if f.BookingID != nil {
		conds = append(conds, "booking_id = ?")
		args = append(args, *f.BookingID)
	}
	if f.Status != nil {
		conds = append(conds, "status = ?")
		args = append(args, *f.Status)
	}
	if f.DateFrom != nil {
		conds = append(conds, "at >= ?")
		args = append(args, *f.DateFrom)
	}
	if f.DateTo != nil {
		conds = append(conds, "at <= ?")
		args = append(args, *f.DateTo)
	}

	q := `SELECT id, booking_id, user_id, actor_id, status, reason, at FROM booking_history`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY at DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.HistoryEntry
	for rows.Next() {
		var h model.HistoryEntry
		if err := rows.Scan(&h.ID, &h.BookingID, &h.UserID, &h.ActorID, &h.Status, &h.Reason, &h.At); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

var _ booking.HistoryStore = (*HistoryRepo)(nil)
