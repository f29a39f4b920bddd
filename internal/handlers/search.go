package handlers

import (
	"net/http"
	"strconv"

	"area-directory/internal/services"

	"go.uber.org/zap"
)

type SearchHandler struct {
	service *services.SearchService
	logr    *zap.Logger
}

func NewSearchHandler(svc *services.SearchService, logr *zap.Logger) *SearchHandler {
	return &SearchHandler{service: svc, logr: logr}
}

// Search handles GET /search/?lat&lng — every service area covering the
// point, joined with its provider. An empty list is a valid result.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lat parameter")
		return
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lng parameter")
		return
	}

	results, err := h.service.Search(r.Context(), lng, lat)
	if err != nil {
		h.logr.Error("containment search failed", zap.Error(err),
			zap.Float64("lat", lat), zap.Float64("lng", lng))
		writeError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	writeJSON(w, http.StatusOK, results)
}
