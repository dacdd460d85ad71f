package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/team2/university-room-booking/internal/model"
)

// DepartmentRepo manages the departments table.
type DepartmentRepo struct {
	db *sql.DB
}

// NewDepartmentRepo returns a DepartmentRepo bound to the given database.
func NewDepartmentRepo(db *sql.DB) *DepartmentRepo { return &DepartmentRepo{db: db} }

// FindByID returns the department or (nil, nil) when absent.
func (r *DepartmentRepo) FindByID(ctx context.Context, id uint64) (*model.Department, error) {
	var d model.Department
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM departments WHERE id = ?`, id).Scan(&d.ID, &d.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindAll lists every department ordered by name.
func (r *DepartmentRepo) FindAll(ctx context.Context) ([]model.Department, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM departments ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Department
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ExistsByName reports whether a department with the name exists,
// excluding one id (zero to exclude nothing).
func (r *DepartmentRepo) ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM departments WHERE name = ? AND id <> ?)`, name, excludeID).Scan(&exists)
	return exists, err
}

// Create inserts the department and assigns the generated ID.
func (r *DepartmentRepo) Create(ctx context.Context, d *model.Department) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO departments (name) VALUES (?)`, d.Name)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	return nil
}

// Update rewrites the department row.
func (r *DepartmentRepo) Update(ctx context.Context, d *model.Department) error {
	_, err := r.db.ExecContext(ctx, `UPDATE departments SET name = ? WHERE id = ?`, d.Name, d.ID)
	return err
}

// Delete removes the department.  Returns ErrConflict while buildings
// still reference it.
func (r *DepartmentRepo) Delete(ctx context.Context, id uint64) error {
	var inUse bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM buildings WHERE department_id = ?)`, id).Scan(&inUse); err != nil {
		return err
	}
	if inUse {
		return ErrConflict
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM departments WHERE id = ?`, id)
	return err
}
