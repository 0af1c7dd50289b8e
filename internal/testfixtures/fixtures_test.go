package testfixtures

import (
	"testing"
	"time"
)

func TestClockDefaultsToReferenceTime(t *testing.T) {
	clock := NewClock(time.Time{})
	if !clock.Now().Equal(ReferenceTime()) {
		t.Fatalf("expected ReferenceTime, got %v", clock.Now())
	}
}

func TestClockAdvanceAndSet(t *testing.T) {
	start := time.Date(2026, time.March, 14, 9, 26, 0, 0, time.UTC)
	clock := NewClock(start)

	updated := clock.Advance(90 * time.Minute)
	if !updated.Equal(start.Add(90 * time.Minute)) {
		t.Fatalf("advance returned %v", updated)
	}

	clock.Set(start.Add(2 * time.Hour))
	if got := clock.Now(); !got.Equal(start.Add(2 * time.Hour)) {
		t.Fatalf("expected %v, got %v", start.Add(2*time.Hour), got)
	}
}

func TestIDGeneratorProducesSequentialIDs(t *testing.T) {
	gen := NewIDGenerator("entity")

	first := gen.Next()
	second := gen.Next()

	if first != "entity-1" || second != "entity-2" {
		t.Fatalf("unexpected identifiers: %q, %q", first, second)
	}
}

func TestIDGeneratorCanReset(t *testing.T) {
	gen := NewIDGenerator("resource")
	_ = gen.Next()
	gen.SetCounter(0)

	if next := gen.Next(); next != "resource-1" {
		t.Fatalf("expected resource-1 after reset, got %q", next)
	}
}

func TestBookingFixtureConversions(t *testing.T) {
	fixture := NewBookingFixture(
		WithBookingID("booking-x"),
		WithBookingRoomID("room-x"),
		WithBookingTitle("Planning"),
		WithBookingDate("2026-02-10"),
		WithBookingTimes("09:30", "11:00"),
	)

	app := fixture.Application()
	if app.ID != "booking-x" || app.StartTime != "09:30" {
		t.Fatalf("unexpected application booking: %+v", app)
	}

	stored := fixture.Persistence()
	if stored.RoomID != "room-x" || stored.EndTime != "11:00" {
		t.Fatalf("unexpected persistence booking: %+v", stored)
	}

	engine := fixture.Scheduler()
	if engine.Start.String() != "09:30" || engine.End.String() != "11:00" {
		t.Fatalf("unexpected engine booking: %+v", engine)
	}
	if engine.Date != "2026-02-10" {
		t.Fatalf("unexpected engine date: %q", engine.Date)
	}
}

func TestDefaultBookingFixturesDoNotOverlap(t *testing.T) {
	first := NewBookingFixture().Scheduler()
	second := NewBookingFixture().Scheduler()

	if first.Date == second.Date && first.RoomID == second.RoomID {
		if overlap := first.Start < second.End && first.End > second.Start; overlap {
			t.Fatalf("default fixtures overlap: %+v vs %+v", first, second)
		}
	}
}
