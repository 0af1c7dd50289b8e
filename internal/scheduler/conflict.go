package scheduler

// Booking represents a room reservation in the booking engine domain. Start
// and End form the half-open interval [Start, End) on Date.
type Booking struct {
	ID     string
	RoomID string
	Title  string
	Date   string
	Start  TimeOfDay
	End    TimeOfDay
}

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) intersect. Adjacent intervals sharing a boundary do not
// overlap.
func Overlaps(startA, endA, startB, endB TimeOfDay) bool {
	return startA < endB && endA > startB
}

// FindConflict returns the first existing booking, in input order, whose
// interval overlaps the candidate's on the same room and date. Bookings with
// a different room or date never conflict, and excludeID is skipped so a
// booking can be re-validated against the rest of the collection.
func FindConflict(candidate Booking, existing []Booking, excludeID string) *Booking {
	for i := range existing {
		b := &existing[i]
		if b.RoomID != candidate.RoomID || b.Date != candidate.Date {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if Overlaps(candidate.Start, candidate.End, b.Start, b.End) {
			return b
		}
	}
	return nil
}
