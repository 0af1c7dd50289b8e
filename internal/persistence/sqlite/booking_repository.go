package sqlite

import (
	"context"
	"time"

	"github.com/example/roombooking/internal/persistence"
)

// BookingRepository implements persistence.BookingRepository using SQLite.
type BookingRepository struct {
	store *Store
}

// NewBookingRepository creates a booking repository bound to the store.
func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

// CreateBooking inserts a new booking. The room reference is enforced by the
// foreign key, so a dangling room id surfaces as ErrConstraintViolation.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking persistence.Booking) error {
	if booking.ID == "" {
		return persistence.ErrConstraintViolation
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO bookings (id, room_id, title, date, start_time, end_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.store.db.ExecContext(ctx, query,
		booking.ID,
		booking.RoomID,
		booking.Title,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.CreatedAt.UTC().Format(time.RFC3339),
	)
	return mapError(err)
}

// GetBooking retrieves a booking by id.
func (r *BookingRepository) GetBooking(ctx context.Context, id string) (persistence.Booking, error) {
	const query = `
		SELECT id, room_id, title, date, start_time, end_time, created_at
		FROM bookings
		WHERE id = ?
	`
	row := r.store.db.QueryRowContext(ctx, query, id)
	booking, err := scanBooking(row)
	if err != nil {
		return persistence.Booking{}, mapError(err)
	}
	return booking, nil
}

// ListBookings returns bookings matching the filter in insertion order.
func (r *BookingRepository) ListBookings(ctx context.Context, filter persistence.BookingFilter) ([]persistence.Booking, error) {
	query := `
		SELECT id, room_id, title, date, start_time, end_time, created_at
		FROM bookings
	`
	conditions := ""
	args := make([]any, 0, 2)
	if filter.RoomID != "" {
		conditions = " WHERE room_id = ?"
		args = append(args, filter.RoomID)
	}
	if filter.Date != "" {
		if conditions == "" {
			conditions = " WHERE date = ?"
		} else {
			conditions += " AND date = ?"
		}
		args = append(args, filter.Date)
	}
	query += conditions + " ORDER BY rowid"

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var bookings []persistence.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, mapError(err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return bookings, nil
}

// DeleteBooking removes a booking by id, reporting ErrNotFound when no row
// matched.
func (r *BookingRepository) DeleteBooking(ctx context.Context, id string) error {
	result, err := r.store.db.ExecContext(ctx, "DELETE FROM bookings WHERE id = ?", id)
	if err != nil {
		return mapError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

func scanBooking(row rowScanner) (persistence.Booking, error) {
	var booking persistence.Booking
	var createdAt string
	if err := row.Scan(&booking.ID, &booking.RoomID, &booking.Title, &booking.Date, &booking.StartTime, &booking.EndTime, &createdAt); err != nil {
		return persistence.Booking{}, err
	}
	if parsed, err := time.Parse(time.RFC3339, createdAt); err == nil {
		booking.CreatedAt = parsed
	}
	return booking, nil
}
