// Package seed provides the static data the booking service starts from.
// Stored state is process-lifetime only, so the seeder runs on every start:
// it resets the store, loads the room roster, and loads the initial bookings.
package seed

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/example/roombooking/internal/persistence"
	"github.com/example/roombooking/internal/scheduler"
	"gopkg.in/yaml.v3"
)

// Room is one seed roster entry.
type Room struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
}

// Booking is one pre-existing reservation in the seed data.
type Booking struct {
	ID        string `yaml:"id"`
	RoomID    string `yaml:"room_id"`
	Title     string `yaml:"title"`
	Date      string `yaml:"date"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
}

// Data is a complete seed roster.
type Data struct {
	Rooms    []Room    `yaml:"rooms"`
	Bookings []Booking `yaml:"bookings"`
}

// Default returns the built-in roster used when no seed file is configured.
func Default() Data {
	return Data{
		Rooms: []Room{
			{ID: "room-1", Name: "Conference Room A", Capacity: 10},
			{ID: "room-2", Name: "Conference Room B", Capacity: 6},
			{ID: "room-3", Name: "Meeting Room 1", Capacity: 4},
			{ID: "room-4", Name: "Board Room", Capacity: 12},
		},
		Bookings: []Booking{
			{ID: "booking-1", RoomID: "room-1", Title: "Team Standup", Date: "2026-02-03", StartTime: "09:00", EndTime: "10:00"},
			{ID: "booking-2", RoomID: "room-1", Title: "Sprint Planning", Date: "2026-02-03", StartTime: "14:00", EndTime: "16:00"},
			{ID: "booking-3", RoomID: "room-2", Title: "Client Meeting", Date: "2026-02-03", StartTime: "10:00", EndTime: "11:30"},
			{ID: "booking-4", RoomID: "room-3", Title: "1-on-1 Review", Date: "2026-02-04", StartTime: "13:00", EndTime: "14:00"},
		},
	}
}

// LoadFile reads a YAML seed roster from path.
func LoadFile(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return data, nil
}

// Validate checks the roster for structural problems: blank or duplicate ids,
// non-positive capacities, dangling room references, malformed dates or
// times, inverted ranges, and overlapping bookings.
func (d Data) Validate() error {
	if len(d.Rooms) == 0 {
		return fmt.Errorf("seed: at least one room is required")
	}

	roomIDs := make(map[string]struct{}, len(d.Rooms))
	for _, room := range d.Rooms {
		if strings.TrimSpace(room.ID) == "" {
			return fmt.Errorf("seed: room with blank id")
		}
		if strings.TrimSpace(room.Name) == "" {
			return fmt.Errorf("seed: room %s has a blank name", room.ID)
		}
		if room.Capacity <= 0 {
			return fmt.Errorf("seed: room %s has non-positive capacity %d", room.ID, room.Capacity)
		}
		if _, dup := roomIDs[room.ID]; dup {
			return fmt.Errorf("seed: duplicate room id %s", room.ID)
		}
		roomIDs[room.ID] = struct{}{}
	}

	accepted := make([]scheduler.Booking, 0, len(d.Bookings))
	bookingIDs := make(map[string]struct{}, len(d.Bookings))
	for _, booking := range d.Bookings {
		if strings.TrimSpace(booking.ID) == "" {
			return fmt.Errorf("seed: booking with blank id")
		}
		if _, dup := bookingIDs[booking.ID]; dup {
			return fmt.Errorf("seed: duplicate booking id %s", booking.ID)
		}
		bookingIDs[booking.ID] = struct{}{}
		if _, ok := roomIDs[booking.RoomID]; !ok {
			return fmt.Errorf("seed: booking %s references unknown room %s", booking.ID, booking.RoomID)
		}
		if strings.TrimSpace(booking.Title) == "" {
			return fmt.Errorf("seed: booking %s has a blank title", booking.ID)
		}

		candidate, err := toEngineBooking(booking)
		if err != nil {
			return fmt.Errorf("seed: booking %s: %w", booking.ID, err)
		}
		if !scheduler.IsValidTimeRange(candidate.Start, candidate.End) {
			return fmt.Errorf("seed: booking %s has end %s not after start %s", booking.ID, booking.EndTime, booking.StartTime)
		}
		if conflict := scheduler.FindConflict(candidate, accepted, ""); conflict != nil {
			return fmt.Errorf("seed: booking %s overlaps booking %s", booking.ID, conflict.ID)
		}
		accepted = append(accepted, candidate)
	}

	return nil
}

// Apply resets the store and loads the roster. The roster must have passed
// Validate; repository constraint errors still surface if it has not.
func Apply(ctx context.Context, data Data, store interface {
	Reset(ctx context.Context) error
}, rooms persistence.RoomRepository, bookings persistence.BookingRepository, now func() time.Time) error {
	if now == nil {
		now = time.Now
	}
	if err := store.Reset(ctx); err != nil {
		return fmt.Errorf("seed: failed to reset store: %w", err)
	}

	createdAt := now().UTC()
	for _, room := range data.Rooms {
		record := persistence.Room{
			ID:        room.ID,
			Name:      strings.TrimSpace(room.Name),
			Capacity:  room.Capacity,
			CreatedAt: createdAt,
		}
		if err := rooms.CreateRoom(ctx, record); err != nil {
			return fmt.Errorf("seed: failed to create room %s: %w", room.ID, err)
		}
	}
	for _, booking := range data.Bookings {
		record := persistence.Booking{
			ID:        booking.ID,
			RoomID:    booking.RoomID,
			Title:     strings.TrimSpace(booking.Title),
			Date:      booking.Date,
			StartTime: booking.StartTime,
			EndTime:   booking.EndTime,
			CreatedAt: createdAt,
		}
		if err := bookings.CreateBooking(ctx, record); err != nil {
			return fmt.Errorf("seed: failed to create booking %s: %w", booking.ID, err)
		}
	}
	return nil
}

func toEngineBooking(booking Booking) (scheduler.Booking, error) {
	date, err := scheduler.ParseDate(booking.Date)
	if err != nil {
		return scheduler.Booking{}, err
	}
	start, err := scheduler.ParseTimeOfDay(booking.StartTime)
	if err != nil {
		return scheduler.Booking{}, err
	}
	end, err := scheduler.ParseTimeOfDay(booking.EndTime)
	if err != nil {
		return scheduler.Booking{}, err
	}
	return scheduler.Booking{
		ID:     booking.ID,
		RoomID: booking.RoomID,
		Title:  booking.Title,
		Date:   date,
		Start:  start,
		End:    end,
	}, nil
}
