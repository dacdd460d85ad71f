package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/team2/university-room-booking/internal/model"
)

// FeatureRepo manages the room_features table.
type FeatureRepo struct {
	db *sql.DB
}

// NewFeatureRepo returns a FeatureRepo bound to the given database.
func NewFeatureRepo(db *sql.DB) *FeatureRepo { return &FeatureRepo{db: db} }

// FindByID returns the feature or (nil, nil) when absent.
func (r *FeatureRepo) FindByID(ctx context.Context, id uint64) (*model.RoomFeature, error) {
	var f model.RoomFeature
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM room_features WHERE id = ?`, id).Scan(&f.ID, &f.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindAll lists every feature ordered by name.
func (r *FeatureRepo) FindAll(ctx context.Context) ([]model.RoomFeature, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM room_features ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.RoomFeature
	for rows.Next() {
		var f model.RoomFeature
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// CountByIDs returns how many of the given feature IDs exist.  Room
// creation uses this to validate a feature set in one query.
func (r *FeatureRepo) CountByIDs(ctx context.Context, ids []uint64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	q := `SELECT COUNT(*) FROM room_features WHERE id IN (`
	args := make([]any, len(ids))
	for i, id := range ids {
		if i > 0 {
			q += ", "
		}
		q += "?"
		args[i] = id
	}
	q += ")"
	var n int
	err := r.db.QueryRowContext(ctx, q, args...).Scan(&n)
	return n, err
}

// ExistsByName reports whether a feature with the name exists, excluding
// one id (zero to exclude nothing).
func (r *FeatureRepo) ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM room_features WHERE name = ? AND id <> ?)`, name, excludeID).Scan(&exists)
	return exists, err
}

// Create inserts the feature and assigns the generated ID.
func (r *FeatureRepo) Create(ctx context.Context, f *model.RoomFeature) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO room_features (name) VALUES (?)`, f.Name)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return nil
}

// Update rewrites the feature row.
func (r *FeatureRepo) Update(ctx context.Context, f *model.RoomFeature) error {
	_, err := r.db.ExecContext(ctx, `UPDATE room_features SET name = ? WHERE id = ?`, f.Name, f.ID)
	return err
}

// Delete removes the feature.  Returns ErrConflict while any room still
// references it.
func (r *FeatureRepo) Delete(ctx context.Context, id uint64) error {
	var inUse bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM room_feature_links WHERE feature_id = ?)`, id).Scan(&inUse); err != nil {
		return err
	}
	if inUse {
		return ErrConflict
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM room_features WHERE id = ?`, id)
	return err
}
