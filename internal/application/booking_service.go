package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/roombooking/internal/persistence"
	"github.com/example/roombooking/internal/scheduler"
)

// BookingRepository captures the persistence interactions needed by the
// service. ListBookings must return bookings in stable insertion order so
// conflict reporting stays deterministic.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking Booking) (Booking, error)
	GetBooking(ctx context.Context, id string) (Booking, error)
	ListBookings(ctx context.Context, filter BookingRepositoryFilter) ([]Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// BookingRepositoryFilter narrows queries issued to the booking repository.
// Empty fields match everything.
type BookingRepositoryFilter struct {
	RoomID string
	Date   string
}

// RoomCatalog exposes the room lookups needed by booking operations.
type RoomCatalog interface {
	RoomExists(ctx context.Context, id string) (bool, error)
	ListRooms(ctx context.Context) ([]Room, error)
}

// BookingService orchestrates validation, conflict detection, and persistence
// for booking operations. The conflict engine itself stays pure; the service
// parses caller input at the boundary so engine arithmetic never sees
// malformed strings.
type BookingService struct {
	bookings    BookingRepository
	rooms       RoomCatalog
	slots       []scheduler.TimeOfDay
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewBookingService wires dependencies for booking operations.
func NewBookingService(bookings BookingRepository, rooms RoomCatalog, template SlotTemplate, idGenerator func() string, now func() time.Time) *BookingService {
	return NewBookingServiceWithLogger(bookings, rooms, template, idGenerator, now, nil)
}

// NewBookingServiceWithLogger constructs a booking service with a specified logger.
func NewBookingServiceWithLogger(bookings BookingRepository, rooms RoomCatalog, template SlotTemplate, idGenerator func() string, now func() time.Time, logger *slog.Logger) *BookingService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &BookingService{
		bookings:    bookings,
		rooms:       rooms,
		slots:       scheduler.GenerateTimeSlots(template.StartHour, template.EndHour, template.IntervalMinutes),
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

func (s *BookingService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "BookingService", operation, attrs...)
}

// CreateBooking validates the candidate, checks it against existing bookings
// for the same room and date, and persists it when accepted. Rejection is
// all-or-nothing: the store is only mutated after the conflict check passes.
func (s *BookingService) CreateBooking(ctx context.Context, params CreateBookingParams) (booking Booking, err error) {
	if s == nil {
		err = fmt.Errorf("BookingService is nil")
		return
	}
	input := params.Input

	logger := s.loggerWith(ctx, "CreateBooking", "room_id", input.RoomID, "date", input.Date)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create booking", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("booking_id", booking.ID).InfoContext(ctx, "booking created")
	}()

	candidate, vErr := validateBookingInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	if err = s.ensureRoomExists(ctx, candidate.RoomID); err != nil {
		return
	}

	existing, engineBookings, listErr := s.loadEngineBookings(ctx, BookingRepositoryFilter{RoomID: candidate.RoomID, Date: candidate.Date})
	if listErr != nil {
		err = listErr
		return
	}

	if conflict := scheduler.FindConflict(candidate, engineBookings, ""); conflict != nil {
		for _, b := range existing {
			if b.ID == conflict.ID {
				err = &ConflictError{Conflict: b}
				return
			}
		}
		err = &ConflictError{Conflict: fromEngineBooking(*conflict)}
		return
	}

	createdAt := s.now()
	booking = Booking{
		ID:        s.idGenerator(),
		RoomID:    candidate.RoomID,
		Title:     candidate.Title,
		Date:      candidate.Date,
		StartTime: candidate.Start.String(),
		EndTime:   candidate.End.String(),
		CreatedAt: createdAt,
	}

	if s.bookings == nil {
		return
	}

	persisted, createErr := s.bookings.CreateBooking(ctx, booking)
	if createErr != nil {
		booking = Booking{}
		err = mapBookingRepoError(createErr)
		return
	}
	booking = persisted
	return
}

// DeleteBooking removes a booking from the store. The conflict engine is
// uninvolved and nothing cascades.
func (s *BookingService) DeleteBooking(ctx context.Context, bookingID string) (err error) {
	if s == nil {
		return fmt.Errorf("BookingService is nil")
	}
	if s.bookings == nil {
		return fmt.Errorf("booking repository not configured")
	}

	logger := s.loggerWith(ctx, "DeleteBooking", "booking_id", bookingID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to delete booking", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "booking deleted")
	}()

	if strings.TrimSpace(bookingID) == "" {
		err = ErrNotFound
		return
	}
	if err = mapBookingRepoError(s.bookings.DeleteBooking(ctx, bookingID)); err != nil {
		return
	}
	return
}

// Overview builds the grouped, sorted booking view model. GroupModeDate sorts
// globally first so groups appear chronologically; GroupModeRoom iterates
// rooms in their canonical catalog order.
func (s *BookingService) Overview(ctx context.Context, params OverviewParams) ([]OverviewGroup, error) {
	if s == nil {
		return nil, fmt.Errorf("BookingService is nil")
	}
	if s.bookings == nil {
		return nil, fmt.Errorf("booking repository not configured")
	}

	logger := s.loggerWith(ctx, "Overview", "group_by", string(params.GroupBy))

	vErr := &ValidationError{}
	if params.GroupBy != GroupModeDate && params.GroupBy != GroupModeRoom {
		vErr.add("group_by", `group_by must be "date" or "room"`)
	}
	if params.Date != "" {
		if _, err := scheduler.ParseDate(params.Date); err != nil {
			vErr.add("date", "date must be in YYYY-MM-DD format")
		}
	}
	if vErr.HasErrors() {
		logger.ErrorContext(ctx, "overview rejected", "error", vErr, "error_kind", ErrorKind(vErr))
		return nil, vErr
	}

	existing, engineBookings, err := s.loadEngineBookings(ctx, BookingRepositoryFilter{})
	if err != nil {
		logger.ErrorContext(ctx, "failed to load bookings for overview", "error", err)
		return nil, err
	}

	byID := make(map[string]Booking, len(existing))
	for _, b := range existing {
		byID[b.ID] = b
	}

	filtered := scheduler.FilterBookings(engineBookings, params.RoomID, params.Date)

	var groups []scheduler.Group
	switch params.GroupBy {
	case GroupModeRoom:
		rooms, roomsErr := s.listRooms(ctx)
		if roomsErr != nil {
			logger.ErrorContext(ctx, "failed to load room catalog for overview", "error", roomsErr)
			return nil, roomsErr
		}
		order := make([]string, 0, len(rooms))
		for _, room := range rooms {
			order = append(order, room.ID)
		}
		groups = scheduler.GroupByRoom(filtered, order)
	default:
		groups = scheduler.GroupByDate(filtered)
	}

	view := make([]OverviewGroup, 0, len(groups))
	for _, group := range groups {
		entries := make([]Booking, 0, len(group.Bookings))
		for _, b := range group.Bookings {
			if stored, ok := byID[b.ID]; ok {
				entries = append(entries, stored)
				continue
			}
			entries = append(entries, fromEngineBooking(b))
		}
		view = append(view, OverviewGroup{Key: group.Key, Bookings: entries})
	}

	logger.With("group_count", len(view)).InfoContext(ctx, "overview built")
	return view, nil
}

// Availability derives the per-cell availability of a room on a date using
// the configured operating day template.
func (s *BookingService) Availability(ctx context.Context, params AvailabilityParams) ([]SlotAvailability, error) {
	if s == nil {
		return nil, fmt.Errorf("BookingService is nil")
	}
	if s.bookings == nil {
		return nil, fmt.Errorf("booking repository not configured")
	}

	logger := s.loggerWith(ctx, "Availability", "room_id", params.RoomID, "date", params.Date)

	vErr := &ValidationError{}
	date, dateErr := scheduler.ParseDate(params.Date)
	if dateErr != nil {
		vErr.add("date", "date must be in YYYY-MM-DD format")
	}
	if strings.TrimSpace(params.RoomID) == "" {
		vErr.add("room_id", "room id is required")
	}
	if vErr.HasErrors() {
		logger.ErrorContext(ctx, "availability rejected", "error", vErr, "error_kind", ErrorKind(vErr))
		return nil, vErr
	}

	if err := s.ensureRoomExists(ctx, params.RoomID); err != nil {
		logger.ErrorContext(ctx, "availability rejected", "error", err, "error_kind", ErrorKind(err))
		return nil, err
	}

	existing, engineBookings, err := s.loadEngineBookings(ctx, BookingRepositoryFilter{RoomID: params.RoomID, Date: date})
	if err != nil {
		logger.ErrorContext(ctx, "failed to load bookings for availability", "error", err)
		return nil, err
	}

	byID := make(map[string]Booking, len(existing))
	for _, b := range existing {
		byID[b.ID] = b
	}

	cells := scheduler.Availability(params.RoomID, date, engineBookings, s.slots)
	view := make([]SlotAvailability, 0, len(cells))
	for _, cell := range cells {
		entry := SlotAvailability{
			Slot:      cell.Slot.String(),
			End:       cell.End.String(),
			Available: cell.Available,
		}
		if cell.Booking != nil {
			if stored, ok := byID[cell.Booking.ID]; ok {
				entry.Booking = &stored
			} else {
				converted := fromEngineBooking(*cell.Booking)
				entry.Booking = &converted
			}
		}
		view = append(view, entry)
	}

	logger.With("cell_count", len(view)).InfoContext(ctx, "availability computed")
	return view, nil
}

func (s *BookingService) ensureRoomExists(ctx context.Context, roomID string) error {
	if s.rooms == nil {
		return nil
	}
	exists, err := s.rooms.RoomExists(ctx, roomID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	vErr := &ValidationError{}
	vErr.add("room_id", "room does not exist")
	return vErr
}

func (s *BookingService) listRooms(ctx context.Context) ([]Room, error) {
	if s.rooms == nil {
		return nil, nil
	}
	return s.rooms.ListRooms(ctx)
}

// loadEngineBookings fetches stored bookings and converts them for the
// engine. Stored values were validated at write time, so a parse failure here
// means the store is corrupted and surfaces as an internal error.
func (s *BookingService) loadEngineBookings(ctx context.Context, filter BookingRepositoryFilter) ([]Booking, []scheduler.Booking, error) {
	if s.bookings == nil {
		return nil, nil, nil
	}
	stored, err := s.bookings.ListBookings(ctx, filter)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) || errors.Is(err, ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	converted := make([]scheduler.Booking, 0, len(stored))
	for _, b := range stored {
		engineBooking, convErr := toEngineBooking(b)
		if convErr != nil {
			return nil, nil, fmt.Errorf("stored booking %s is malformed: %w", b.ID, convErr)
		}
		converted = append(converted, engineBooking)
	}
	return stored, converted, nil
}

// validateBookingInput parses and validates caller input, returning the
// engine candidate alongside any field errors. The candidate is only
// meaningful when the validation error is empty.
func validateBookingInput(input BookingInput) (scheduler.Booking, *ValidationError) {
	vErr := &ValidationError{}

	if strings.TrimSpace(input.Title) == "" {
		vErr.add("title", "title is required")
	}
	if strings.TrimSpace(input.RoomID) == "" {
		vErr.add("room_id", "room id is required")
	}

	date, dateErr := scheduler.ParseDate(input.Date)
	if dateErr != nil {
		vErr.add("date", "date must be in YYYY-MM-DD format")
	}
	start, startErr := scheduler.ParseTimeOfDay(input.StartTime)
	if startErr != nil {
		vErr.add("start_time", "start time must be in HH:MM format")
	}
	end, endErr := scheduler.ParseTimeOfDay(input.EndTime)
	if endErr != nil {
		vErr.add("end_time", "end time must be in HH:MM format")
	}
	if startErr == nil && endErr == nil && !scheduler.IsValidTimeRange(start, end) {
		vErr.add("time", "end time must be after start time")
	}

	return scheduler.Booking{
		RoomID: strings.TrimSpace(input.RoomID),
		Title:  strings.TrimSpace(input.Title),
		Date:   date,
		Start:  start,
		End:    end,
	}, vErr
}

func toEngineBooking(b Booking) (scheduler.Booking, error) {
	date, err := scheduler.ParseDate(b.Date)
	if err != nil {
		return scheduler.Booking{}, err
	}
	start, err := scheduler.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return scheduler.Booking{}, err
	}
	end, err := scheduler.ParseTimeOfDay(b.EndTime)
	if err != nil {
		return scheduler.Booking{}, err
	}
	return scheduler.Booking{
		ID:     b.ID,
		RoomID: b.RoomID,
		Title:  b.Title,
		Date:   date,
		Start:  start,
		End:    end,
	}, nil
}

func fromEngineBooking(b scheduler.Booking) Booking {
	return Booking{
		ID:        b.ID,
		RoomID:    b.RoomID,
		Title:     b.Title,
		Date:      b.Date,
		StartTime: b.Start.String(),
		EndTime:   b.End.String(),
	}
}

func mapBookingRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, persistence.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
