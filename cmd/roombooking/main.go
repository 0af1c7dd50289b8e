package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/example/roombooking/internal/application"
	"github.com/example/roombooking/internal/config"
	httptransport "github.com/example/roombooking/internal/http"
	"github.com/example/roombooking/internal/logging"
	"github.com/example/roombooking/internal/persistence"
	"github.com/example/roombooking/internal/persistence/sqlite"
	"github.com/example/roombooking/internal/seed"
)

func main() {
	logger := logging.New(os.Stdout, slog.LevelInfo)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	storage, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := storage.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := storage.Migrate(context.Background()); err != nil {
		logger.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	roomRepo := sqlite.NewRoomRepository(storage)
	bookingRepo := sqlite.NewBookingRepository(storage)

	roster := seed.Default()
	if cfg.SeedFile != "" {
		roster, err = seed.LoadFile(cfg.SeedFile)
		if err != nil {
			logger.Error("failed to load seed file", "path", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
	}
	if err := roster.Validate(); err != nil {
		logger.Error("seed roster is invalid", "error", err)
		os.Exit(1)
	}
	if err := seed.Apply(context.Background(), roster, storage, roomRepo, bookingRepo, time.Now); err != nil {
		logger.Error("failed to apply seed roster", "error", err)
		os.Exit(1)
	}
	logger.Info("seed roster loaded", "rooms", len(roster.Rooms), "bookings", len(roster.Bookings))

	idGenerator := func() string { return uuid.NewString() }
	now := time.Now

	bookings := newBookingRepositoryAdapter(bookingRepo)
	catalog := newRoomCatalogAdapter(roomRepo)

	template := application.SlotTemplate{
		StartHour:       cfg.DayStartHour,
		EndHour:         cfg.DayEndHour,
		IntervalMinutes: cfg.SlotMinutes,
	}

	bookingService := application.NewBookingServiceWithLogger(bookings, catalog, template, idGenerator, now, logger)
	roomService := application.NewRoomServiceWithLogger(catalog, logger)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Rooms:    httptransport.NewRoomHandler(roomService, bookingService, logger),
		Bookings: httptransport.NewBookingHandler(bookingService, logger),
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("room booking API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

type bookingRepositoryAdapter struct {
	repo *sqlite.BookingRepository
}

func newBookingRepositoryAdapter(repo *sqlite.BookingRepository) *bookingRepositoryAdapter {
	return &bookingRepositoryAdapter{repo: repo}
}

func (a *bookingRepositoryAdapter) CreateBooking(ctx context.Context, booking application.Booking) (application.Booking, error) {
	if err := a.repo.CreateBooking(ctx, toPersistenceBooking(booking)); err != nil {
		return application.Booking{}, err
	}
	stored, err := a.repo.GetBooking(ctx, booking.ID)
	if err != nil {
		return application.Booking{}, err
	}
	return toApplicationBooking(stored), nil
}

func (a *bookingRepositoryAdapter) GetBooking(ctx context.Context, id string) (application.Booking, error) {
	stored, err := a.repo.GetBooking(ctx, id)
	if err != nil {
		return application.Booking{}, err
	}
	return toApplicationBooking(stored), nil
}

func (a *bookingRepositoryAdapter) ListBookings(ctx context.Context, filter application.BookingRepositoryFilter) ([]application.Booking, error) {
	models, err := a.repo.ListBookings(ctx, persistence.BookingFilter{
		RoomID: filter.RoomID,
		Date:   filter.Date,
	})
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	bookings := make([]application.Booking, 0, len(models))
	for _, model := range models {
		bookings = append(bookings, toApplicationBooking(model))
	}
	return bookings, nil
}

func (a *bookingRepositoryAdapter) DeleteBooking(ctx context.Context, id string) error {
	return a.repo.DeleteBooking(ctx, id)
}

type roomCatalogAdapter struct {
	repo *sqlite.RoomRepository
}

func newRoomCatalogAdapter(repo *sqlite.RoomRepository) *roomCatalogAdapter {
	return &roomCatalogAdapter{repo: repo}
}

func (a *roomCatalogAdapter) RoomExists(ctx context.Context, id string) (bool, error) {
	if _, err := a.repo.GetRoom(ctx, id); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (a *roomCatalogAdapter) GetRoom(ctx context.Context, id string) (application.Room, error) {
	stored, err := a.repo.GetRoom(ctx, id)
	if err != nil {
		return application.Room{}, err
	}
	return toApplicationRoom(stored), nil
}

func (a *roomCatalogAdapter) ListRooms(ctx context.Context) ([]application.Room, error) {
	models, err := a.repo.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	rooms := make([]application.Room, 0, len(models))
	for _, model := range models {
		rooms = append(rooms, toApplicationRoom(model))
	}
	return rooms, nil
}

func toApplicationRoom(model persistence.Room) application.Room {
	return application.Room{
		ID:        model.ID,
		Name:      model.Name,
		Capacity:  model.Capacity,
		CreatedAt: model.CreatedAt,
	}
}

func toApplicationBooking(model persistence.Booking) application.Booking {
	return application.Booking{
		ID:        model.ID,
		RoomID:    model.RoomID,
		Title:     model.Title,
		Date:      model.Date,
		StartTime: model.StartTime,
		EndTime:   model.EndTime,
		CreatedAt: model.CreatedAt,
	}
}

func toPersistenceBooking(booking application.Booking) persistence.Booking {
	return persistence.Booking{
		ID:        booking.ID,
		RoomID:    booking.RoomID,
		Title:     booking.Title,
		Date:      booking.Date,
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
		CreatedAt: booking.CreatedAt,
	}
}
