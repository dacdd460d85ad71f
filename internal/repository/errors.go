// Package repository implements MySQL persistence for every store the
// service uses.  Sentinel errors defined here let handlers distinguish
// failure scenarios without string matching: ErrConflict signals that an
// operation cannot proceed due to dependent records (deleting a room
// with bookings, a feature still linked to rooms), ErrDuplicate signals
// a uniqueness violation.
package repository

import "errors"

// ErrConflict is returned when a delete or update cannot be performed
// because of conflicting state.  Handlers translate this into HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrDuplicate is returned when an insert or update violates a
// uniqueness guarantee (room name per building, department name, feature
// name, holiday name, username/email).  Handlers translate this into
// HTTP 400 or 409 depending on the resource.
var ErrDuplicate = errors.New("duplicate")

// ErrUsernameExists and ErrEmailExists distinguish which credential
// collided during registration.
var (
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)
