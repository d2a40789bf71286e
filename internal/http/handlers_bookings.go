package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/idempotency"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/search"
)

type bookingCreateRequest struct {
	VisitorID   uuid.UUID `json:"visitor_id" validate:"required"`
	EventID     uuid.UUID `json:"event_id" validate:"required"`
	TicketCount int       `json:"ticket_count" validate:"required,gte=1"`
	Status      string    `json:"status" validate:"omitempty,oneof=Confirmed Pending Cancelled"`
}

type bookingUpdateRequest struct {
	TicketCount int    `json:"ticket_count" validate:"required,gte=1"`
	Status      string `json:"status" validate:"omitempty,oneof=Confirmed Pending Cancelled"`
}

func (h *Handlers) ListBookings(w http.ResponseWriter, r *http.Request) {
	var (
		bookings []domain.Booking
		err      error
	)
	switch {
	case r.URL.Query().Get("visitor_id") != "":
		var visitorID uuid.UUID
		visitorID, err = uuid.Parse(r.URL.Query().Get("visitor_id"))
		if err != nil {
			http.Error(w, "invalid visitor_id", http.StatusBadRequest)
			return
		}
		bookings, err = h.bookings.ListByVisitor(r.Context(), visitorID)
	case r.URL.Query().Get("event_id") != "":
		var eventID uuid.UUID
		eventID, err = uuid.Parse(r.URL.Query().Get("event_id"))
		if err != nil {
			http.Error(w, "invalid event_id", http.StatusBadRequest)
			return
		}
		bookings, err = h.bookings.ListByEvent(r.Context(), eventID)
	default:
		bookings, err = h.bookings.List(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	bookings = search.Bookings(bookings, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, toBookingResponses(bookings))
}

func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get("Idempotency-Key")
	existing, err := h.idemp.Get(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if existing != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(existing.Status)
		w.Write(existing.Result)
		return
	}

	var req bookingCreateRequest
	if !h.decode(w, r, &req) {
		return
	}

	b, err := h.bookingSvc.Create(r.Context(), req.VisitorID, req.EventID, req.TicketCount, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	data, _ := json.Marshal(toBookingResponse(*b))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(data)

	if err := h.idemp.Set(r.Context(), key, idempotency.Response{Status: http.StatusCreated, Result: data}); err != nil {
		h.logger.WithField("idempotency_key", key).Warn("failed to store idempotent response", err)
	}
}

func (h *Handlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	b, err := h.bookings.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(*b))
}

func (h *Handlers) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req bookingUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	b, err := h.bookingSvc.Update(r.Context(), id, req.TicketCount, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(*b))
}

func (h *Handlers) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.bookingSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
