package persistence

import "context"

// RoomRepository exposes read and seed operations for the room catalog.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room Room) error
	GetRoom(ctx context.Context, id string) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
}

// BookingFilter narrows booking queries. Empty fields match everything.
type BookingFilter struct {
	RoomID string
	Date   string
}

// BookingRepository stores room reservations. ListBookings returns bookings
// in insertion order so conflict reporting stays deterministic.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking Booking) error
	GetBooking(ctx context.Context, id string) (Booking, error)
	ListBookings(ctx context.Context, filter BookingFilter) ([]Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}
