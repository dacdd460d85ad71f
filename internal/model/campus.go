package model

// Department groups buildings under a university department.  Names are
// unique across the table.
type Department struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// Building is a physical building owned by a department.  Rooms reference
// their building by ID; the reverse room list is resolved by query, not
// kept on the struct.
type Building struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"` // unique
	DepartmentID uint64 `json:"department_id"`
}

// RoomFeature is a capability a room can offer (projector, whiteboard,
// video conferencing, ...).  Booking requests may name required feature
// IDs; a feature cannot be deleted while any room still references it.
type RoomFeature struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"` // unique
}
