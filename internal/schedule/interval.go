// Package schedule provides the time interval arithmetic shared by the
// booking conflict checks and the room availability calculator.  All
// intervals are half-open [Start, End): an interval ending at 10:00 does
// not overlap one starting at 10:00, so back-to-back bookings never
// collide.
package schedule

import "time"

// Interval is a half-open time window [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether the half-open windows [aStart, aEnd) and
// [bStart, bEnd) intersect.  Zero-length windows never overlap anything.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FreeSlots returns the ordered gaps inside [windowStart, windowEnd) not
// covered by busy.  Busy intervals must be sorted ascending by Start but
// need not be deduplicated or disjoint: the cursor only ever moves
// forward, so intervals contained in an earlier one are absorbed.  The
// returned slots are disjoint, ordered, and sub-intervals of the window.
func FreeSlots(windowStart, windowEnd time.Time, busy []Interval) []Interval {
	free := make([]Interval, 0, len(busy)+1)
	cursor := windowStart
	for _, b := range busy {
		if cursor.Before(b.Start) {
			free = append(free, Interval{Start: cursor, End: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(windowEnd) {
		free = append(free, Interval{Start: cursor, End: windowEnd})
	}
	return free
}
