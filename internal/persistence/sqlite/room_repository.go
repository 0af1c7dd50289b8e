package sqlite

import (
	"context"
	"time"

	"github.com/example/roombooking/internal/persistence"
)

// RoomRepository implements persistence.RoomRepository using SQLite.
type RoomRepository struct {
	store *Store
}

// NewRoomRepository creates a room repository bound to the store.
func NewRoomRepository(store *Store) *RoomRepository {
	return &RoomRepository{store: store}
}

// CreateRoom inserts a new room into the catalog.
func (r *RoomRepository) CreateRoom(ctx context.Context, room persistence.Room) error {
	if room.ID == "" || room.Capacity <= 0 {
		return persistence.ErrConstraintViolation
	}
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO rooms (id, name, capacity, created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.store.db.ExecContext(ctx, query,
		room.ID,
		room.Name,
		room.Capacity,
		room.CreatedAt.UTC().Format(time.RFC3339),
	)
	return mapError(err)
}

// GetRoom retrieves a room by id.
func (r *RoomRepository) GetRoom(ctx context.Context, id string) (persistence.Room, error) {
	const query = `
		SELECT id, name, capacity, created_at
		FROM rooms
		WHERE id = ?
	`
	row := r.store.db.QueryRowContext(ctx, query, id)
	room, err := scanRoom(row)
	if err != nil {
		return persistence.Room{}, mapError(err)
	}
	return room, nil
}

// ListRooms returns the catalog in insertion order.
func (r *RoomRepository) ListRooms(ctx context.Context) ([]persistence.Room, error) {
	const query = `
		SELECT id, name, capacity, created_at
		FROM rooms
		ORDER BY rowid
	`
	rows, err := r.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var rooms []persistence.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, mapError(err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return rooms, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (persistence.Room, error) {
	var room persistence.Room
	var createdAt string
	if err := row.Scan(&room.ID, &room.Name, &room.Capacity, &createdAt); err != nil {
		return persistence.Room{}, err
	}
	if parsed, err := time.Parse(time.RFC3339, createdAt); err == nil {
		room.CreatedAt = parsed
	}
	return room, nil
}
