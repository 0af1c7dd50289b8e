package application

import "time"

// Room represents a catalog entry for a physical meeting room. Capacity is
// informational only; no attendee count is modelled, so it is never enforced.
type Room struct {
	ID        string
	Name      string
	Capacity  int
	CreatedAt time.Time
}

// BookingInput captures caller provided booking fields exactly as submitted.
// Every field is validated before it reaches the conflict engine.
type BookingInput struct {
	RoomID    string
	Title     string
	Date      string
	StartTime string
	EndTime   string
}

// Booking represents an accepted room reservation. StartTime and EndTime form
// the half-open interval [StartTime, EndTime) on Date.
type Booking struct {
	ID        string
	RoomID    string
	Title     string
	Date      string
	StartTime string
	EndTime   string
	CreatedAt time.Time
}

// CreateBookingParams wraps the data required to create a booking.
type CreateBookingParams struct {
	Input BookingInput
}

// GroupMode selects how the overview groups bookings.
type GroupMode string

const (
	// GroupModeDate groups bookings by calendar date, chronologically.
	GroupModeDate GroupMode = "date"
	// GroupModeRoom groups bookings by room in canonical catalog order.
	GroupModeRoom GroupMode = "room"
)

// OverviewParams wraps the data required to build the booking overview.
// RoomID and Date are optional filters; empty values match everything.
type OverviewParams struct {
	GroupBy GroupMode
	RoomID  string
	Date    string
}

// OverviewGroup is one group of the overview view model. Key is a date or a
// room id depending on the grouping mode.
type OverviewGroup struct {
	Key      string
	Bookings []Booking
}

// AvailabilityParams wraps the data required to compute slot availability.
type AvailabilityParams struct {
	RoomID string
	Date   string
}

// SlotAvailability describes one slot-width cell of the operating day.
// Booking is set to the first overlapping booking when the cell is taken.
type SlotAvailability struct {
	Slot      string
	End       string
	Available bool
	Booking   *Booking
}

// SlotTemplate configures the operating day partition used for availability.
// The zero value selects the default 08:00-18:00 day in 30 minute steps.
type SlotTemplate struct {
	StartHour       int
	EndHour         int
	IntervalMinutes int
}
