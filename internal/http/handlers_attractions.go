package http

import (
	"net/http"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/search"
)

type attractionRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	OpeningHours string `json:"opening_hours"`
	ImageURL     string `json:"image_url"`
	IsActive     *bool  `json:"is_active"`
}

func (h *Handlers) ListAttractions(w http.ResponseWriter, r *http.Request) {
	var (
		attractions []domain.Attraction
		err         error
	)
	if r.URL.Query().Get("active") == "true" {
		attractions, err = h.attractions.ListActive(r.Context())
	} else {
		attractions, err = h.attractions.List(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	attractions = search.Attractions(attractions, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, toAttractionResponses(attractions))
}

func (h *Handlers) CreateAttraction(w http.ResponseWriter, r *http.Request) {
	var req attractionRequest
	if !h.decode(w, r, &req) {
		return
	}

	attraction := domain.NewAttraction(req.Name, req.Description, req.Category, req.OpeningHours, req.ImageURL)
	if err := h.attractions.Insert(r.Context(), attraction); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAttractionResponse(attraction))
}

func (h *Handlers) GetAttraction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	attraction, err := h.attractions.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAttractionResponse(*attraction))
}

func (h *Handlers) UpdateAttraction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req attractionRequest
	if !h.decode(w, r, &req) {
		return
	}

	existing, err := h.attractions.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	updated := *existing
	updated.Name = req.Name
	updated.Description = req.Description
	updated.Category = req.Category
	updated.OpeningHours = req.OpeningHours
	updated.ImageURL = req.ImageURL
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}

	if err := h.attractions.Update(r.Context(), updated); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAttractionResponse(updated))
}

func (h *Handlers) DeleteAttraction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.attractions.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
