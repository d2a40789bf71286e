package http

import (
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	mongoadapter "github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/adapters/mongo"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/adapters/rabbit"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/analytics"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/auth"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/booking"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/idempotency"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
)

type Handlers struct {
	authn       *auth.Authenticator
	bookingSvc  *booking.Service
	analytics   *analytics.Service
	visitors    *mongoadapter.VisitorsRepository
	events      *mongoadapter.EventsRepository
	bookings    *mongoadapter.BookingsRepository
	attractions *mongoadapter.AttractionsRepository
	idemp       *idempotency.Idempotency
	pub         *rabbit.Publisher
	validate    *validator.Validate
	logger      observability.Logger
}

func NewHandlers(
	authn *auth.Authenticator,
	bookingSvc *booking.Service,
	analyticsSvc *analytics.Service,
	visitors *mongoadapter.VisitorsRepository,
	events *mongoadapter.EventsRepository,
	bookings *mongoadapter.BookingsRepository,
	attractions *mongoadapter.AttractionsRepository,
	idemp *idempotency.Idempotency,
	pub *rabbit.Publisher,
	logger observability.Logger,
) *Handlers {
	return &Handlers{
		authn:       authn,
		bookingSvc:  bookingSvc,
		analytics:   analyticsSvc,
		visitors:    visitors,
		events:      events,
		bookings:    bookings,
		attractions: attractions,
		idemp:       idemp,
		pub:         pub,
		validate:    validator.New(),
		logger:      logger,
	}
}

func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(dest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInsufficientSeats):
		http.Error(w, "insufficient seats", http.StatusConflict)
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrStorageUnavailable):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
	case errors.Is(err, auth.ErrInvalidCredentials):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if !h.decode(w, r, &req) {
		return
	}

	token, err := h.authn.Login(req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"token": token})
}

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *Handlers) Readyz(w http.ResponseWriter, r *http.Request) {
	if _, err := h.visitors.Count(r.Context()); err != nil {
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}
