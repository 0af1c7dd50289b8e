package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/roombooking/internal/application"
)

type roomService interface {
	GetRoom(ctx context.Context, roomID string) (application.Room, error)
	ListRooms(ctx context.Context) ([]application.Room, error)
}

type availabilityService interface {
	Availability(ctx context.Context, params application.AvailabilityParams) ([]application.SlotAvailability, error)
}

type RoomHandler struct {
	rooms        roomService
	availability availabilityService
	responder    responder
	logger       *slog.Logger
}

func NewRoomHandler(rooms roomService, availability availabilityService, logger *slog.Logger) *RoomHandler {
	base := defaultLogger(logger)
	return &RoomHandler{rooms: rooms, availability: availability, responder: newResponder(base), logger: base}
}

func (h *RoomHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "RoomHandler", operation, attrs...)
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.rooms == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "List")
	rooms, err := h.rooms.ListRooms(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "room list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(rooms)).InfoContext(r.Context(), "rooms listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listRoomsResponse{Rooms: toRoomDTOs(rooms)})
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.rooms == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roomID, ok := RoomIDFromContext(r.Context())
	if !ok || strings.TrimSpace(roomID) == "" {
		h.log(r.Context(), "Get", "error_kind", "bad_request").ErrorContext(r.Context(), "missing room id for lookup")
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoomID)
		return
	}

	logger := h.log(r.Context(), "Get", "room_id", roomID)
	room, err := h.rooms.GetRoom(r.Context(), roomID)
	if err != nil {
		logger.ErrorContext(r.Context(), "room lookup failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "room fetched")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, roomResponse{Room: toRoomDTO(room)})
}

func (h *RoomHandler) Availability(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.availability == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roomID, ok := RoomIDFromContext(r.Context())
	if !ok || strings.TrimSpace(roomID) == "" {
		h.log(r.Context(), "Availability", "error_kind", "bad_request").ErrorContext(r.Context(), "missing room id for availability")
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoomID)
		return
	}

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	logger := h.log(r.Context(), "Availability", "room_id", roomID, "date", date)

	slots, err := h.availability.Availability(r.Context(), application.AvailabilityParams{
		RoomID: roomID,
		Date:   date,
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "availability lookup failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("slot_count", len(slots)).InfoContext(r.Context(), "availability computed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, availabilityResponse{
		RoomID: roomID,
		Date:   date,
		Slots:  toSlotDTOs(slots),
	})
}

type roomResponse struct {
	Room roomDTO `json:"room"`
}

type listRoomsResponse struct {
	Rooms []roomDTO `json:"rooms"`
}

type roomDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"created_at"`
}

func toRoomDTO(room application.Room) roomDTO {
	return roomDTO{
		ID:        room.ID,
		Name:      room.Name,
		Capacity:  room.Capacity,
		CreatedAt: room.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toRoomDTOs(rooms []application.Room) []roomDTO {
	if len(rooms) == 0 {
		return nil
	}
	out := make([]roomDTO, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoomDTO(room))
	}
	return out
}

type availabilityResponse struct {
	RoomID string    `json:"room_id"`
	Date   string    `json:"date"`
	Slots  []slotDTO `json:"slots"`
}

type slotDTO struct {
	Slot      string      `json:"slot"`
	End       string      `json:"end"`
	Available bool        `json:"available"`
	Booking   *bookingDTO `json:"booking,omitempty"`
}

func toSlotDTOs(slots []application.SlotAvailability) []slotDTO {
	if len(slots) == 0 {
		return nil
	}

	out := make([]slotDTO, 0, len(slots))
	for _, slot := range slots {
		dto := slotDTO{
			Slot:      slot.Slot,
			End:       slot.End,
			Available: slot.Available,
		}
		if slot.Booking != nil {
			dto.Booking = toBookingDTOPtr(*slot.Booking)
		}
		out = append(out, dto)
	}
	return out
}
