package sqlite

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/example/roombooking/internal/persistence"
	"github.com/example/roombooking/internal/testfixtures"
)

var testDatabaseSeq atomic.Uint64

// newTestStore opens a migrated store backed by a uniquely named in-memory
// database so tests never observe each other's rows.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:test-%d?mode=memory&cache=shared", testDatabaseSeq.Add(1))
	store, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open(%q) returned error: %v", dsn, err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close returned error: %v", err)
		}
	})
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}
	return store
}

func storedRoom(id, name string, capacity int) persistence.Room {
	return testfixtures.NewRoomFixture(
		testfixtures.WithRoomID(id),
		testfixtures.WithRoomName(name),
		testfixtures.WithRoomCapacity(capacity),
		testfixtures.WithRoomCreatedAt(testfixtures.ReferenceTime()),
	).Persistence()
}

func seedRoom(t *testing.T, store *Store, id, name string, capacity int) {
	t.Helper()
	if err := NewRoomRepository(store).CreateRoom(context.Background(), storedRoom(id, name, capacity)); err != nil {
		t.Fatalf("CreateRoom(%q) returned error: %v", id, err)
	}
}

func TestRoomRepository(t *testing.T) {
	t.Run("create and get round trip", func(t *testing.T) {
		store := newTestStore(t)
		seedRoom(t, store, "atlas", "Atlas", 6)

		room, err := NewRoomRepository(store).GetRoom(context.Background(), "atlas")
		if err != nil {
			t.Fatalf("GetRoom returned error: %v", err)
		}
		if room.Name != "Atlas" || room.Capacity != 6 {
			t.Errorf("GetRoom = %+v, want Atlas with capacity 6", room)
		}
	})

	t.Run("get missing room reports not found", func(t *testing.T) {
		store := newTestStore(t)
		if _, err := NewRoomRepository(store).GetRoom(context.Background(), "nope"); !errors.Is(err, persistence.ErrNotFound) {
			t.Errorf("GetRoom error = %v, want ErrNotFound", err)
		}
	})

	t.Run("duplicate id violates constraint", func(t *testing.T) {
		store := newTestStore(t)
		seedRoom(t, store, "atlas", "Atlas", 6)
		err := NewRoomRepository(store).CreateRoom(context.Background(), storedRoom("atlas", "Atlas II", 4))
		if !errors.Is(err, persistence.ErrConstraintViolation) {
			t.Errorf("CreateRoom duplicate error = %v, want ErrConstraintViolation", err)
		}
	})

	t.Run("non-positive capacity is rejected", func(t *testing.T) {
		store := newTestStore(t)
		err := NewRoomRepository(store).CreateRoom(context.Background(), storedRoom("tiny", "Tiny", 0))
		if !errors.Is(err, persistence.ErrConstraintViolation) {
			t.Errorf("CreateRoom zero capacity error = %v, want ErrConstraintViolation", err)
		}
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		store := newTestStore(t)
		for _, id := range []string{"zenith", "atlas", "nova"} {
			seedRoom(t, store, id, id, 4)
		}

		rooms, err := NewRoomRepository(store).ListRooms(context.Background())
		if err != nil {
			t.Fatalf("ListRooms returned error: %v", err)
		}
		want := []string{"zenith", "atlas", "nova"}
		if len(rooms) != len(want) {
			t.Fatalf("len(rooms) = %d, want %d", len(rooms), len(want))
		}
		for i, id := range want {
			if rooms[i].ID != id {
				t.Errorf("rooms[%d].ID = %q, want %q", i, rooms[i].ID, id)
			}
		}
	})
}

func testStoredBooking(id, roomID, date, start, end string) persistence.Booking {
	return testfixtures.NewBookingFixture(
		testfixtures.WithBookingID(id),
		testfixtures.WithBookingRoomID(roomID),
		testfixtures.WithBookingTitle("Booking "+id),
		testfixtures.WithBookingDate(date),
		testfixtures.WithBookingTimes(start, end),
		testfixtures.WithBookingCreatedAt(testfixtures.ReferenceTime()),
	).Persistence()
}

func TestBookingRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get round trip", func(t *testing.T) {
		store := newTestStore(t)
		seedRoom(t, store, "atlas", "Atlas", 6)
		repo := NewBookingRepository(store)

		if err := repo.CreateBooking(ctx, testStoredBooking("b1", "atlas", "2026-02-03", "09:00", "10:00")); err != nil {
			t.Fatalf("CreateBooking returned error: %v", err)
		}

		booking, err := repo.GetBooking(ctx, "b1")
		if err != nil {
			t.Fatalf("GetBooking returned error: %v", err)
		}
		if booking.RoomID != "atlas" || booking.Date != "2026-02-03" || booking.StartTime != "09:00" || booking.EndTime != "10:00" {
			t.Errorf("GetBooking = %+v", booking)
		}
	})

	t.Run("dangling room reference violates constraint", func(t *testing.T) {
		store := newTestStore(t)
		err := NewBookingRepository(store).CreateBooking(ctx, testStoredBooking("b1", "ghost", "2026-02-03", "09:00", "10:00"))
		if !errors.Is(err, persistence.ErrConstraintViolation) {
			t.Errorf("CreateBooking dangling room error = %v, want ErrConstraintViolation", err)
		}
	})

	t.Run("list filters by room and date in insertion order", func(t *testing.T) {
		store := newTestStore(t)
		seedRoom(t, store, "atlas", "Atlas", 6)
		seedRoom(t, store, "nova", "Nova", 10)
		repo := NewBookingRepository(store)

		inserts := []persistence.Booking{
			testStoredBooking("b2", "atlas", "2026-02-03", "14:00", "16:00"),
			testStoredBooking("b1", "atlas", "2026-02-03", "09:00", "10:00"),
			testStoredBooking("b3", "nova", "2026-02-03", "09:00", "10:00"),
			testStoredBooking("b4", "atlas", "2026-02-04", "09:00", "10:00"),
		}
		for _, booking := range inserts {
			if err := repo.CreateBooking(ctx, booking); err != nil {
				t.Fatalf("CreateBooking(%q) returned error: %v", booking.ID, err)
			}
		}

		cases := []struct {
			name   string
			filter persistence.BookingFilter
			want   []string
		}{
			{"no filter", persistence.BookingFilter{}, []string{"b2", "b1", "b3", "b4"}},
			{"by room", persistence.BookingFilter{RoomID: "atlas"}, []string{"b2", "b1", "b4"}},
			{"by date", persistence.BookingFilter{Date: "2026-02-03"}, []string{"b2", "b1", "b3"}},
			{"by room and date", persistence.BookingFilter{RoomID: "atlas", Date: "2026-02-03"}, []string{"b2", "b1"}},
			{"no matches", persistence.BookingFilter{RoomID: "ghost"}, nil},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				bookings, err := repo.ListBookings(ctx, tc.filter)
				if err != nil {
					t.Fatalf("ListBookings returned error: %v", err)
				}
				if len(bookings) != len(tc.want) {
					t.Fatalf("len(bookings) = %d, want %d", len(bookings), len(tc.want))
				}
				for i, id := range tc.want {
					if bookings[i].ID != id {
						t.Errorf("bookings[%d].ID = %q, want %q", i, bookings[i].ID, id)
					}
				}
			})
		}
	})

	t.Run("delete removes the booking", func(t *testing.T) {
		store := newTestStore(t)
		seedRoom(t, store, "atlas", "Atlas", 6)
		repo := NewBookingRepository(store)

		if err := repo.CreateBooking(ctx, testStoredBooking("b1", "atlas", "2026-02-03", "09:00", "10:00")); err != nil {
			t.Fatalf("CreateBooking returned error: %v", err)
		}
		if err := repo.DeleteBooking(ctx, "b1"); err != nil {
			t.Fatalf("DeleteBooking returned error: %v", err)
		}
		if _, err := repo.GetBooking(ctx, "b1"); !errors.Is(err, persistence.ErrNotFound) {
			t.Errorf("GetBooking after delete error = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete of unknown booking reports not found", func(t *testing.T) {
		store := newTestStore(t)
		if err := NewBookingRepository(store).DeleteBooking(ctx, "ghost"); !errors.Is(err, persistence.ErrNotFound) {
			t.Errorf("DeleteBooking error = %v, want ErrNotFound", err)
		}
	})
}

func TestStoreReset(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	seedRoom(t, store, "atlas", "Atlas", 6)
	repo := NewBookingRepository(store)
	if err := repo.CreateBooking(ctx, testStoredBooking("b1", "atlas", "2026-02-03", "09:00", "10:00")); err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}

	rooms, err := NewRoomRepository(store).ListRooms(ctx)
	if err != nil {
		t.Fatalf("ListRooms returned error: %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("len(rooms) after reset = %d, want 0", len(rooms))
	}
	bookings, err := repo.ListBookings(ctx, persistence.BookingFilter{})
	if err != nil {
		t.Fatalf("ListBookings returned error: %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("len(bookings) after reset = %d, want 0", len(bookings))
	}
}
