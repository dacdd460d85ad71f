package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/team2/university-room-booking/internal/model"
)

// BuildingRepo manages the buildings table.
type BuildingRepo struct {
	db *sql.DB
}

// NewBuildingRepo returns a BuildingRepo bound to the given database.
func NewBuildingRepo(db *sql.DB) *BuildingRepo { return &BuildingRepo{db: db} }

// FindByID returns the building or (nil, nil) when absent.
func (r *BuildingRepo) FindByID(ctx context.Context, id uint64) (*model.Building, error) {
	var b model.Building
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, department_id FROM buildings WHERE id = ?`, id).
		Scan(&b.ID, &b.Name, &b.DepartmentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindAll lists every building ordered by name.
func (r *BuildingRepo) FindAll(ctx context.Context) ([]model.Building, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, department_id FROM buildings ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Building
	for rows.Next() {
		var b model.Building
		if err := rows.Scan(&b.ID, &b.Name, &b.DepartmentID); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ExistsByName reports whether a building with the name exists,
// excluding one id (zero to exclude nothing).
func (r *BuildingRepo) ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM buildings WHERE name = ? AND id <> ?)`, name, excludeID).Scan(&exists)
	return exists, err
}

// Create inserts the building and assigns the generated ID.
func (r *BuildingRepo) Create(ctx context.Context, b *model.Building) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO buildings (name, department_id) VALUES (?, ?)`, b.Name, b.DepartmentID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// Update rewrites the building row.
func (r *BuildingRepo) Update(ctx context.Context, b *model.Building) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE buildings SET name = ?, department_id = ? WHERE id = ?`, b.Name, b.DepartmentID, b.ID)
	return err
}

// Delete removes the building.  Returns ErrConflict while rooms still
// reference it.
func (r *BuildingRepo) Delete(ctx context.Context, id uint64) error {
	var inUse bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM rooms WHERE building_id = ?)`, id).Scan(&inUse); err != nil {
		return err
	}
	if inUse {
		return ErrConflict
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM buildings WHERE id = ?`, id)
	return err
}
