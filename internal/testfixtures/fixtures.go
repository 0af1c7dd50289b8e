// Package testfixtures provides deterministic builders, clocks, and id
// generators shared by tests across the module.
package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/roombooking/internal/application"
	"github.com/example/roombooking/internal/persistence"
	"github.com/example/roombooking/internal/scheduler"
)

var (
	roomCounter    uint64
	bookingCounter uint64
)

var referenceTime = time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// ----------------------------- Room fixtures -----------------------------

// RoomFixture represents a deterministic room record that can be materialised
// for application or persistence tests.
type RoomFixture struct {
	ID        string
	Name      string
	Capacity  int
	CreatedAt time.Time
}

// RoomOption configures the generated room fixture.
type RoomOption func(*RoomFixture)

// NewRoomFixture returns a deterministic room fixture with optional overrides.
func NewRoomFixture(opts ...RoomOption) RoomFixture {
	idx := atomic.AddUint64(&roomCounter, 1)
	fixture := RoomFixture{
		ID:        fmt.Sprintf("room-%03d", idx),
		Name:      fmt.Sprintf("Room %03d", idx),
		Capacity:  4 + int(idx%8),
		CreatedAt: referenceTime.Add(time.Duration(idx) * time.Minute),
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithRoomID overrides the generated room ID.
func WithRoomID(id string) RoomOption {
	return func(f *RoomFixture) {
		f.ID = id
	}
}

// WithRoomName overrides the generated room name.
func WithRoomName(name string) RoomOption {
	return func(f *RoomFixture) {
		f.Name = name
	}
}

// WithRoomCapacity overrides the generated capacity.
func WithRoomCapacity(capacity int) RoomOption {
	return func(f *RoomFixture) {
		f.Capacity = capacity
	}
}

// WithRoomCreatedAt sets the created timestamp on the fixture.
func WithRoomCreatedAt(t time.Time) RoomOption {
	return func(f *RoomFixture) {
		f.CreatedAt = t
	}
}

// Application returns the fixture as an application.Room value.
func (f RoomFixture) Application() application.Room {
	return application.Room{
		ID:        f.ID,
		Name:      f.Name,
		Capacity:  f.Capacity,
		CreatedAt: f.CreatedAt,
	}
}

// Persistence returns the fixture as a persistence.Room value.
func (f RoomFixture) Persistence() persistence.Room {
	return persistence.Room{
		ID:        f.ID,
		Name:      f.Name,
		Capacity:  f.Capacity,
		CreatedAt: f.CreatedAt,
	}
}

// ---------------------------- Booking fixtures ---------------------------

// BookingFixture represents a deterministic booking record. Date is
// "YYYY-MM-DD" and the time fields are "HH:MM" strings forming the half-open
// interval [StartTime, EndTime).
type BookingFixture struct {
	ID        string
	RoomID    string
	Title     string
	Date      string
	StartTime string
	EndTime   string
	CreatedAt time.Time
}

// BookingOption configures the generated booking fixture.
type BookingOption func(*BookingFixture)

// NewBookingFixture returns a deterministic booking fixture. Successive
// fixtures occupy consecutive non-overlapping hour slots on the same date so
// that default fixtures never conflict with each other.
func NewBookingFixture(opts ...BookingOption) BookingFixture {
	idx := atomic.AddUint64(&bookingCounter, 1)
	startHour := 8 + int((idx-1)%10)
	fixture := BookingFixture{
		ID:        fmt.Sprintf("booking-%03d", idx),
		RoomID:    "room-001",
		Title:     fmt.Sprintf("Booking %03d", idx),
		Date:      "2026-02-03",
		StartTime: fmt.Sprintf("%02d:00", startHour),
		EndTime:   fmt.Sprintf("%02d:00", startHour+1),
		CreatedAt: referenceTime.Add(time.Duration(idx) * time.Minute),
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithBookingID overrides the generated booking ID.
func WithBookingID(id string) BookingOption {
	return func(f *BookingFixture) {
		f.ID = id
	}
}

// WithBookingRoomID overrides the room the booking belongs to.
func WithBookingRoomID(roomID string) BookingOption {
	return func(f *BookingFixture) {
		f.RoomID = roomID
	}
}

// WithBookingTitle overrides the generated title.
func WithBookingTitle(title string) BookingOption {
	return func(f *BookingFixture) {
		f.Title = title
	}
}

// WithBookingDate overrides the booking date.
func WithBookingDate(date string) BookingOption {
	return func(f *BookingFixture) {
		f.Date = date
	}
}

// WithBookingTimes sets the start and end times on the fixture.
func WithBookingTimes(start, end string) BookingOption {
	return func(f *BookingFixture) {
		f.StartTime = start
		f.EndTime = end
	}
}

// WithBookingCreatedAt sets the created timestamp on the fixture.
func WithBookingCreatedAt(t time.Time) BookingOption {
	return func(f *BookingFixture) {
		f.CreatedAt = t
	}
}

// Application returns the fixture as an application.Booking value.
func (f BookingFixture) Application() application.Booking {
	return application.Booking{
		ID:        f.ID,
		RoomID:    f.RoomID,
		Title:     f.Title,
		Date:      f.Date,
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
		CreatedAt: f.CreatedAt,
	}
}

// Persistence returns the fixture as a persistence.Booking value.
func (f BookingFixture) Persistence() persistence.Booking {
	return persistence.Booking{
		ID:        f.ID,
		RoomID:    f.RoomID,
		Title:     f.Title,
		Date:      f.Date,
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
		CreatedAt: f.CreatedAt,
	}
}

// Input returns the fixture as an application.BookingInput.
func (f BookingFixture) Input() application.BookingInput {
	return application.BookingInput{
		RoomID:    f.RoomID,
		Title:     f.Title,
		Date:      f.Date,
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
	}
}

// Scheduler returns the fixture as a scheduler.Booking value. It panics on
// malformed times, which is acceptable for fixture data under test control.
func (f BookingFixture) Scheduler() scheduler.Booking {
	start, err := scheduler.ParseTimeOfDay(f.StartTime)
	if err != nil {
		panic(fmt.Sprintf("testfixtures: invalid start time %q: %v", f.StartTime, err))
	}
	end, err := scheduler.ParseTimeOfDay(f.EndTime)
	if err != nil {
		panic(fmt.Sprintf("testfixtures: invalid end time %q: %v", f.EndTime, err))
	}
	return scheduler.Booking{
		ID:     f.ID,
		RoomID: f.RoomID,
		Title:  f.Title,
		Date:   f.Date,
		Start:  start,
		End:    end,
	}
}
