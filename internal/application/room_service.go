package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/roombooking/internal/persistence"
)

// RoomRepository captures the persistence operations needed by the service.
type RoomRepository interface {
	GetRoom(ctx context.Context, id string) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
}

// RoomService exposes the read-only room catalog. Rooms are immutable after
// seeding, so there are no write operations.
type RoomService struct {
	rooms  RoomRepository
	logger *slog.Logger
}

// NewRoomService constructs a room service with the provided repository.
func NewRoomService(rooms RoomRepository) *RoomService {
	return NewRoomServiceWithLogger(rooms, nil)
}

// NewRoomServiceWithLogger constructs a room service with a specified logger.
func NewRoomServiceWithLogger(rooms RoomRepository, logger *slog.Logger) *RoomService {
	return &RoomService{rooms: rooms, logger: defaultLogger(logger)}
}

func (s *RoomService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "RoomService", operation, attrs...)
}

// GetRoom retrieves a single catalog entry.
func (s *RoomService) GetRoom(ctx context.Context, roomID string) (Room, error) {
	if s == nil {
		return Room{}, fmt.Errorf("RoomService is nil")
	}
	if s.rooms == nil {
		return Room{}, fmt.Errorf("room repository not configured")
	}

	logger := s.loggerWith(ctx, "GetRoom", "room_id", roomID)
	room, err := s.rooms.GetRoom(ctx, roomID)
	if err != nil {
		err = mapRoomRepoError(err)
		logger.ErrorContext(ctx, "failed to get room", "error", err, "error_kind", ErrorKind(err))
		return Room{}, err
	}
	return room, nil
}

// ListRooms enumerates the catalog in canonical seed order.
func (s *RoomService) ListRooms(ctx context.Context) ([]Room, error) {
	if s == nil {
		return nil, fmt.Errorf("RoomService is nil")
	}
	if s.rooms == nil {
		return nil, fmt.Errorf("room repository not configured")
	}

	logger := s.loggerWith(ctx, "ListRooms")
	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		err = mapRoomRepoError(err)
		logger.ErrorContext(ctx, "failed to list rooms", "error", err, "error_kind", ErrorKind(err))
		return nil, err
	}
	logger.With("result_count", len(rooms)).InfoContext(ctx, "rooms listed")
	return rooms, nil
}

func mapRoomRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, persistence.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
