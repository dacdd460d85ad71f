package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/team2/university-room-booking/internal/booking"
	"github.com/team2/university-room-booking/internal/model"
)

// RoomRepo manages the rooms table and the room_feature_links join
// table.  Every read returns rooms with FeatureIDs populated so the
// booking engine can validate required features without extra queries.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomCols = `id, name, type, capacity, available, building_id`

func scanRoom(row interface{ Scan(...any) error }) (*model.Room, error) {
	var r model.Room
	if err := row.Scan(&r.ID, &r.Name, &r.Type, &r.Capacity, &r.Available, &r.BuildingID); err != nil {
		return nil, err
	}
	return &r, nil
}

// FindByID returns the room with features loaded, or (nil, nil) when
// absent.
func (r *RoomRepo) FindByID(ctx context.Context, id uint64) (*model.Room, error) {
	room, err := scanRoom(r.db.QueryRowContext(ctx, `SELECT `+roomCols+` FROM rooms WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	room.FeatureIDs, err = r.featureIDs(ctx, room.ID)
	return room, err
}

// FindByName returns the room with the given name, or (nil, nil) when
// absent.  Room names are unique per building; the availability check
// endpoint addresses rooms by name, so lookups take the first match.
func (r *RoomRepo) FindByName(ctx context.Context, name string) (*model.Room, error) {
	room, err := scanRoom(r.db.QueryRowContext(ctx,
		`SELECT `+roomCols+` FROM rooms WHERE name = ? ORDER BY id ASC LIMIT 1`, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	room.FeatureIDs, err = r.featureIDs(ctx, room.ID)
	return room, err
}

// FindAll returns every room ordered by id, each with its feature IDs.
// The stable order makes auto-selection deterministic.
func (r *RoomRepo) FindAll(ctx context.Context) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+roomCols+` FROM rooms ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Room
	index := make(map[uint64]int)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		index[room.ID] = len(out)
		out = append(out, *room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	links, err := r.db.QueryContext(ctx, `SELECT room_id, feature_id FROM room_feature_links`)
	if err != nil {
		return nil, err
	}
	defer links.Close()
	for links.Next() {
		var roomID, featureID uint64
		if err := links.Scan(&roomID, &featureID); err != nil {
			return nil, err
		}
		if i, ok := index[roomID]; ok {
			out[i].FeatureIDs = append(out[i].FeatureIDs, featureID)
		}
	}
	return out, links.Err()
}

func (r *RoomRepo) featureIDs(ctx context.Context, roomID uint64) ([]uint64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT feature_id FROM room_feature_links WHERE room_id = ? ORDER BY feature_id ASC`, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ExistsByNameInBuilding reports whether a room with the name already
// exists in the building, optionally excluding one room id (for
// updates).
func (r *RoomRepo) ExistsByNameInBuilding(ctx context.Context, name string, buildingID, excludeID uint64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM rooms WHERE name = ? AND building_id = ? AND id <> ?)`,
		name, buildingID, excludeID).Scan(&exists)
	return exists, err
}

// Create inserts the room and its feature links in one transaction and
// assigns the generated ID.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
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
		`INSERT INTO rooms (name, type, capacity, available, building_id) VALUES (?, ?, ?, ?, ?)`,
		room.Name, room.Type, room.Capacity, room.Available, room.BuildingID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	room.ID = uint64(id)
	if err := replaceFeatureLinksTx(ctx, tx, room.ID, room.FeatureIDs); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Update rewrites the room row and replaces its feature links in one
// transaction.
func (r *RoomRepo) Update(ctx context.Context, room *model.Room) error {
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
		`UPDATE rooms SET name = ?, type = ?, capacity = ?, available = ?, building_id = ? WHERE id = ?`,
		room.Name, room.Type, room.Capacity, room.Available, room.BuildingID, room.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM room_feature_links WHERE room_id = ?`, room.ID); err != nil {
		return err
	}
	if err := replaceFeatureLinksTx(ctx, tx, room.ID, room.FeatureIDs); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func replaceFeatureLinksTx(ctx context.Context, tx *sql.Tx, roomID uint64, featureIDs []uint64) error {
	for _, fid := range featureIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO room_feature_links (room_id, feature_id) VALUES (?, ?)`, roomID, fid); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the room and its feature links.  Callers must check
// for referencing bookings first.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
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
	if _, err := tx.ExecContext(ctx, `DELETE FROM room_feature_links WHERE room_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

var _ booking.RoomStore = (*RoomRepo)(nil)
