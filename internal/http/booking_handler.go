package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/example/roombooking/internal/application"
)

type bookingService interface {
	CreateBooking(ctx context.Context, params application.CreateBookingParams) (application.Booking, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	Overview(ctx context.Context, params application.OverviewParams) ([]application.OverviewGroup, error)
}

type BookingHandler struct {
	service   bookingService
	responder responder
}

func NewBookingHandler(service bookingService, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{service: service, responder: newResponder(logger)}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), application.CreateBookingParams{
		Input: req.toInput(),
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, bookingResponse{Booking: toBookingDTO(booking)})
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	bookingID, ok := BookingIDFromContext(r.Context())
	if !ok || strings.TrimSpace(bookingID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidBookingID)
		return
	}

	if err := h.service.DeleteBooking(r.Context(), bookingID); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *BookingHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	groups, err := h.service.Overview(r.Context(), buildOverviewParams(r.URL.Query()))
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, overviewResponse{Groups: toGroupDTOs(groups)})
}

func buildOverviewParams(values url.Values) application.OverviewParams {
	params := application.OverviewParams{GroupBy: application.GroupModeDate}

	if mode := strings.TrimSpace(values.Get("group_by")); mode != "" {
		params.GroupBy = application.GroupMode(mode)
	}
	params.RoomID = strings.TrimSpace(values.Get("room_id"))
	params.Date = strings.TrimSpace(values.Get("date"))

	return params
}

type bookingRequest struct {
	RoomID    string `json:"room_id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r bookingRequest) toInput() application.BookingInput {
	return application.BookingInput{
		RoomID:    strings.TrimSpace(r.RoomID),
		Title:     r.Title,
		Date:      strings.TrimSpace(r.Date),
		StartTime: strings.TrimSpace(r.StartTime),
		EndTime:   strings.TrimSpace(r.EndTime),
	}
}

type bookingResponse struct {
	Booking bookingDTO `json:"booking"`
}

type overviewResponse struct {
	Groups []overviewGroupDTO `json:"groups"`
}

type overviewGroupDTO struct {
	Key      string       `json:"key"`
	Bookings []bookingDTO `json:"bookings"`
}

func toGroupDTOs(groups []application.OverviewGroup) []overviewGroupDTO {
	if len(groups) == 0 {
		return nil
	}

	out := make([]overviewGroupDTO, 0, len(groups))
	for _, group := range groups {
		out = append(out, overviewGroupDTO{
			Key:      group.Key,
			Bookings: toBookingDTOs(group.Bookings),
		})
	}
	return out
}

type bookingDTO struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	CreatedAt string `json:"created_at,omitempty"`
}

func toBookingDTO(booking application.Booking) bookingDTO {
	dto := bookingDTO{
		ID:        booking.ID,
		RoomID:    booking.RoomID,
		Title:     booking.Title,
		Date:      booking.Date,
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
	}
	if !booking.CreatedAt.IsZero() {
		dto.CreatedAt = booking.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return dto
}

func toBookingDTOPtr(booking application.Booking) *bookingDTO {
	dto := toBookingDTO(booking)
	return &dto
}

func toBookingDTOs(bookings []application.Booking) []bookingDTO {
	if len(bookings) == 0 {
		return nil
	}

	out := make([]bookingDTO, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, toBookingDTO(booking))
	}
	return out
}
