package model

import "time"

// Holiday is a blackout period during which no booking may overlap.  The
// window is half-open [StartDate, EndDate); EndDate must be after
// StartDate.  Windows may touch or be disjoint; the booking engine treats
// the set as given and never merges them.
type Holiday struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
