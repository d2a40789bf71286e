package http

import "net/http"

func (h *Handlers) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analytics.Summary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handlers) AnalyticsPopularEvents(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.PopularEvents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handlers) AnalyticsTopCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.analytics.TopCities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}

func (h *Handlers) AnalyticsTopInterests(w http.ResponseWriter, r *http.Request) {
	interests, err := h.analytics.TopInterests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, interests)
}
