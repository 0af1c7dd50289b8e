package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default roster should validate, got: %v", err)
	}
	data := Default()
	if len(data.Rooms) != 4 || len(data.Bookings) != 4 {
		t.Errorf("default roster has %d rooms and %d bookings, want 4 and 4", len(data.Rooms), len(data.Bookings))
	}
}

func TestValidate(t *testing.T) {
	base := func() Data { return Default() }

	cases := []struct {
		name    string
		mutate  func(*Data)
		wantErr string
	}{
		{
			name:    "no rooms",
			mutate:  func(d *Data) { d.Rooms = nil },
			wantErr: "at least one room",
		},
		{
			name:    "non-positive capacity",
			mutate:  func(d *Data) { d.Rooms[0].Capacity = 0 },
			wantErr: "non-positive capacity",
		},
		{
			name:    "duplicate room id",
			mutate:  func(d *Data) { d.Rooms[1].ID = d.Rooms[0].ID },
			wantErr: "duplicate room id",
		},
		{
			name:    "duplicate booking id",
			mutate:  func(d *Data) { d.Bookings[1].ID = d.Bookings[0].ID },
			wantErr: "duplicate booking id",
		},
		{
			name:    "dangling room reference",
			mutate:  func(d *Data) { d.Bookings[0].RoomID = "ghost" },
			wantErr: "unknown room",
		},
		{
			name:    "blank title",
			mutate:  func(d *Data) { d.Bookings[0].Title = "  " },
			wantErr: "blank title",
		},
		{
			name:    "malformed time",
			mutate:  func(d *Data) { d.Bookings[0].StartTime = "9:00" },
			wantErr: "invalid time",
		},
		{
			name:    "malformed date",
			mutate:  func(d *Data) { d.Bookings[0].Date = "03-02-2026" },
			wantErr: "invalid date",
		},
		{
			name:    "inverted range",
			mutate:  func(d *Data) { d.Bookings[0].StartTime, d.Bookings[0].EndTime = "10:00", "09:00" },
			wantErr: "not after start",
		},
		{
			name: "overlapping bookings",
			mutate: func(d *Data) {
				d.Bookings[1].Date = d.Bookings[0].Date
				d.Bookings[1].RoomID = d.Bookings[0].RoomID
				d.Bookings[1].StartTime = "09:30"
				d.Bookings[1].EndTime = "10:30"
			},
			wantErr: "overlaps",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := base()
			tc.mutate(&data)
			err := data.Validate()
			if err == nil {
				t.Fatal("Validate should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}

	t.Run("adjacent bookings are accepted", func(t *testing.T) {
		data := base()
		data.Bookings[1].Date = data.Bookings[0].Date
		data.Bookings[1].RoomID = data.Bookings[0].RoomID
		data.Bookings[1].StartTime = data.Bookings[0].EndTime
		data.Bookings[1].EndTime = "11:00"
		if err := data.Validate(); err != nil {
			t.Errorf("adjacent bookings should validate, got: %v", err)
		}
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("well-formed file parses", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		content := `
rooms:
  - id: atlas
    name: Atlas
    capacity: 6
bookings:
  - id: b1
    room_id: atlas
    title: Sprint Planning
    date: "2026-02-03"
    start_time: "09:00"
    end_time: "10:00"
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write seed file: %v", err)
		}

		data, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile returned error: %v", err)
		}
		if len(data.Rooms) != 1 || data.Rooms[0].ID != "atlas" || data.Rooms[0].Capacity != 6 {
			t.Errorf("rooms = %+v", data.Rooms)
		}
		if len(data.Bookings) != 1 || data.Bookings[0].Title != "Sprint Planning" {
			t.Errorf("bookings = %+v", data.Bookings)
		}
		if err := data.Validate(); err != nil {
			t.Errorf("parsed roster should validate, got: %v", err)
		}
	})

	t.Run("missing file reports an error", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Fatal("LoadFile should fail for a missing file")
		}
	})

	t.Run("malformed yaml reports an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		if err := os.WriteFile(path, []byte("rooms: [unclosed"), 0o644); err != nil {
			t.Fatalf("failed to write seed file: %v", err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Fatal("LoadFile should fail for malformed yaml")
		}
	})
}
