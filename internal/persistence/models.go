package persistence

import "time"

// Room represents a meeting room catalog entry. Rooms are loaded once from
// seed data and never mutated afterwards.
type Room struct {
	ID        string
	Name      string
	Capacity  int
	CreatedAt time.Time
}

// Booking represents a stored room reservation. Date is "YYYY-MM-DD" and the
// time fields are zero-padded 24-hour "HH:MM" strings forming the half-open
// interval [StartTime, EndTime). All three are validated before a booking
// reaches the repository.
type Booking struct {
	ID        string
	RoomID    string
	Title     string
	Date      string
	StartTime string
	EndTime   string
	CreatedAt time.Time
}
