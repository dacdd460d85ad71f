package model

// Room types as stored in rooms.type.
const (
	RoomTypeClassroom      = "CLASSROOM"
	RoomTypeLectureHall    = "LECTURE_HALL"
	RoomTypeLab            = "LAB"
	RoomTypeConferenceRoom = "CONFERENCE_ROOM"
	RoomTypeAuditorium     = "AUDITORIUM"
)

// ValidRoomType reports whether s is one of the known room types.
func ValidRoomType(s string) bool {
	switch s {
	case RoomTypeClassroom, RoomTypeLectureHall, RoomTypeLab,
		RoomTypeConferenceRoom, RoomTypeAuditorium:
		return true
	}
	return false
}

// Room represents a bookable room.  Available is an administrative
// override independent of scheduling: an unavailable room is never
// auto-selected, regardless of its booking calendar.  FeatureIDs holds
// the IDs from the room_feature_links join table; the booking engine only
// needs the IDs, never the feature rows themselves.
//
// Invariant: Capacity >= 1.
type Room struct {
	ID         uint64   `json:"id"`
	Name       string   `json:"name"` // unique per building
	Type       string   `json:"type"`
	Capacity   int      `json:"capacity"`
	Available  bool     `json:"available"`
	BuildingID uint64   `json:"building_id"`
	FeatureIDs []uint64 `json:"feature_ids"`
}

// HasFeatures reports whether the room offers every feature in required.
func (r *Room) HasFeatures(required []uint64) bool {
	if len(required) == 0 {
		return true
	}
	have := make(map[uint64]struct{}, len(r.FeatureIDs))
	for _, id := range r.FeatureIDs {
		have[id] = struct{}{}
	}
	for _, id := range required {
		if _, ok := have[id]; !ok {
			return false
		}
	}
	return true
}

// MissingFeatures returns the required feature IDs the room does not
// offer, in the order they were requested.
func (r *Room) MissingFeatures(required []uint64) []uint64 {
	have := make(map[uint64]struct{}, len(r.FeatureIDs))
	for _, id := range r.FeatureIDs {
		have[id] = struct{}{}
	}
	var missing []uint64
	for _, id := range required {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
