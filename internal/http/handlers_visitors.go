package http

import (
	"net/http"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/search"
)

type visitorRequest struct {
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	Phone     string   `json:"phone" validate:"required"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Interests []string `json:"interests"`
}

func (h *Handlers) ListVisitors(w http.ResponseWriter, r *http.Request) {
	if email := r.URL.Query().Get("email"); email != "" {
		visitor, err := h.visitors.GetByEmail(r.Context(), email)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toVisitorResponses([]domain.Visitor{*visitor}))
		return
	}

	visitors, err := h.visitors.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	visitors = search.Visitors(visitors, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, toVisitorResponses(visitors))
}

func (h *Handlers) CreateVisitor(w http.ResponseWriter, r *http.Request) {
	var req visitorRequest
	if !h.decode(w, r, &req) {
		return
	}

	visitor := domain.NewVisitor(req.FirstName, req.LastName, req.Email, req.Phone, req.Address, req.City, req.Country, req.Interests)
	if err := h.visitors.Insert(r.Context(), visitor); err != nil {
		writeError(w, err)
		return
	}

	if h.pub != nil {
		if err := h.pub.PublishJSON(r.Context(), "visitor.registered", map[string]interface{}{
			"visitor_id": visitor.ID,
			"email":      visitor.Email,
			"city":       visitor.City,
		}); err != nil {
			h.logger.Warn("failed to publish visitor event", err)
		}
	}

	writeJSON(w, http.StatusCreated, toVisitorResponse(visitor))
}

func (h *Handlers) GetVisitor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	visitor, err := h.visitors.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toVisitorResponse(*visitor))
}

func (h *Handlers) UpdateVisitor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req visitorRequest
	if !h.decode(w, r, &req) {
		return
	}

	existing, err := h.visitors.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	updated := *existing
	updated.FirstName = req.FirstName
	updated.LastName = req.LastName
	updated.Email = req.Email
	updated.Phone = req.Phone
	updated.Address = req.Address
	updated.City = req.City
	updated.Country = req.Country
	if req.Interests != nil {
		updated.Interests = req.Interests
	}

	if err := h.visitors.Update(r.Context(), updated); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toVisitorResponse(updated))
}

func (h *Handlers) DeleteVisitor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.visitors.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
