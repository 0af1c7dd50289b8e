package scheduler

// Default operating day template: 08:00 through 18:00 in 30 minute steps.
const (
	DefaultStartHour       = 8
	DefaultEndHour         = 18
	DefaultIntervalMinutes = 30
)

// SlotAvailability describes one slot-width cell of the operating day for a
// room on a date. Booking is set to the first overlapping booking when the
// cell is unavailable.
type SlotAvailability struct {
	Slot      TimeOfDay
	End       TimeOfDay
	Available bool
	Booking   *Booking
}

// GenerateTimeSlots produces every boundary time from startHour:00 through
// endHour:00 inclusive, stepping by intervalMinutes. Non-positive or inverted
// arguments fall back to the default template. The default arguments yield 21
// boundaries: 08:00, 08:30, ..., 17:30, 18:00.
func GenerateTimeSlots(startHour, endHour, intervalMinutes int) []TimeOfDay {
	if startHour < 0 || endHour > 24 || startHour >= endHour || intervalMinutes <= 0 {
		startHour = DefaultStartHour
		endHour = DefaultEndHour
		intervalMinutes = DefaultIntervalMinutes
	}

	start := startHour * 60
	end := endHour * 60
	slots := make([]TimeOfDay, 0, (end-start)/intervalMinutes+1)
	for at := start; at < end; at += intervalMinutes {
		slots = append(slots, TimeOfDay(at))
	}
	slots = append(slots, TimeOfDay(end))
	return slots
}

// Availability derives the per-cell availability for a room on a date. Each
// consecutive boundary pair [slots[i], slots[i+1]) forms one cell; a cell is
// unavailable iff it overlaps a booking for the room and date. The scan is
// linear per cell over the room/date-filtered bookings, which is fine at this
// scale; a sorted merge over the booking intervals would be the next step if
// rosters grew by orders of magnitude.
func Availability(roomID, date string, bookings []Booking, slots []TimeOfDay) []SlotAvailability {
	if len(slots) < 2 {
		return nil
	}

	relevant := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.RoomID == roomID && b.Date == date {
			relevant = append(relevant, b)
		}
	}

	cells := make([]SlotAvailability, 0, len(slots)-1)
	for i := 0; i+1 < len(slots); i++ {
		cell := SlotAvailability{Slot: slots[i], End: slots[i+1], Available: true}
		for j := range relevant {
			if Overlaps(cell.Slot, cell.End, relevant[j].Start, relevant[j].End) {
				cell.Available = false
				cell.Booking = &relevant[j]
				break
			}
		}
		cells = append(cells, cell)
	}
	return cells
}
