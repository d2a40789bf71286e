package http

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/search"
)

type eventRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	Location    string `json:"location" validate:"required"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Capacity    int    `json:"capacity" validate:"required,gt=0"`
	TicketPrice string `json:"ticket_price" validate:"required"`
	IsActive    *bool  `json:"is_active"`
}

func (req eventRequest) parse(w http.ResponseWriter) (time.Time, decimal.Decimal, bool) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return time.Time{}, decimal.Zero, false
	}
	price, err := decimal.NewFromString(req.TicketPrice)
	if err != nil || price.IsNegative() {
		http.Error(w, "invalid ticket price", http.StatusBadRequest)
		return time.Time{}, decimal.Zero, false
	}
	return date, price, true
}

func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	var (
		events []domain.Event
		err    error
	)
	if r.URL.Query().Get("active") == "true" {
		events, err = h.events.ListActive(r.Context())
	} else {
		events, err = h.events.List(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	events = search.Events(events, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, toEventResponses(events))
}

func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if !h.decode(w, r, &req) {
		return
	}
	date, price, ok := req.parse(w)
	if !ok {
		return
	}

	event := domain.NewEvent(req.Name, req.Description, date, req.Time, req.Location, req.Category, req.ImageURL, req.Capacity, price)
	if err := h.events.Insert(r.Context(), event); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

func (h *Handlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	event, err := h.events.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(*event))
}

// UpdateEvent rewrites the event's descriptive fields. Capacity and the seat
// counter are not writable through this endpoint; seats move only through the
// booking workflow.
func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req eventRequest
	if !h.decode(w, r, &req) {
		return
	}
	date, price, ok := req.parse(w)
	if !ok {
		return
	}

	existing, err := h.events.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	updated := *existing
	updated.Name = req.Name
	updated.Description = req.Description
	updated.Date = date
	updated.Time = req.Time
	updated.Location = req.Location
	updated.Category = req.Category
	updated.ImageURL = req.ImageURL
	updated.TicketPrice = price
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}

	if err := h.events.UpdateDetails(r.Context(), updated); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(updated))
}

func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.events.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
