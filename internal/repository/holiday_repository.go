package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/team2/university-room-booking/internal/booking"
	"github.com/team2/university-room-booking/internal/model"
)

// HolidayRepo manages the holidays (blackout periods) table.
type HolidayRepo struct {
	db *sql.DB
}

// NewHolidayRepo returns a HolidayRepo bound to the given database.
func NewHolidayRepo(db *sql.DB) *HolidayRepo { return &HolidayRepo{db: db} }

const holidayCols = `id, name, start_date, end_date`

// FindOverlapping returns every holiday whose half-open window overlaps
// [start, end).
func (r *HolidayRepo) FindOverlapping(ctx context.Context, start, end time.Time) ([]model.Holiday, error) {
	q := `SELECT ` + holidayCols + ` FROM holidays WHERE start_date < ? AND end_date > ? ORDER BY start_date ASC`
	rows, err := r.db.QueryContext(ctx, q, end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Holiday
	for rows.Next() {
		var h model.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.StartDate, &h.EndDate); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// FindAll lists every holiday ordered by start date.
func (r *HolidayRepo) FindAll(ctx context.Context) ([]model.Holiday, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+holidayCols+` FROM holidays ORDER BY start_date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Holiday
	for rows.Next() {
		var h model.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.StartDate, &h.EndDate); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// FindByID returns the holiday or (nil, nil) when absent.
func (r *HolidayRepo) FindByID(ctx context.Context, id uint64) (*model.Holiday, error) {
	var h model.Holiday
	err := r.db.QueryRowContext(ctx, `SELECT `+holidayCols+` FROM holidays WHERE id = ?`, id).
		Scan(&h.ID, &h.Name, &h.StartDate, &h.EndDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// FindByName returns the holiday or (nil, nil) when absent.
func (r *HolidayRepo) FindByName(ctx context.Context, name string) (*model.Holiday, error) {
	var h model.Holiday
	err := r.db.QueryRowContext(ctx, `SELECT `+holidayCols+` FROM holidays WHERE name = ?`, name).
		Scan(&h.ID, &h.Name, &h.StartDate, &h.EndDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create inserts the holiday and assigns the generated ID.
func (r *HolidayRepo) Create(ctx context.Context, h *model.Holiday) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO holidays (name, start_date, end_date) VALUES (?, ?, ?)`,
		h.Name, h.StartDate, h.EndDate)
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

// Update rewrites the holiday row.
func (r *HolidayRepo) Update(ctx context.Context, h *model.Holiday) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE holidays SET name = ?, start_date = ?, end_date = ? WHERE id = ?`,
		h.Name, h.StartDate, h.EndDate, h.ID)
	return err
}

// DeleteByName removes the holiday with the given name and reports
// whether a row was deleted.
func (r *HolidayRepo) DeleteByName(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE name = ?`, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ booking.HolidayStore = (*HolidayRepo)(nil)
