// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingStatusChangedEvent is published whenever a booking enters a new
// status (created as PENDING, approved, rejected or cancelled).  It carries
// enough context for downstream consumers to log or notify without querying
// the primary database.
type BookingStatusChangedEvent struct {
	BookingID uint64 `json:"booking_id"`
	UserID    uint64 `json:"user_id"`
	ActorID   uint64 `json:"actor_id"`
	RoomID    uint64 `json:"room_id"`
	RoomName  string `json:"room_name"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
	StartsAt  string `json:"starts_at"`
	EndsAt    string `json:"ends_at"`
	ChangedAt string `json:"changed_at"`
}
