package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"area-directory/internal/config"
	"area-directory/internal/models"
	"area-directory/internal/services"
	"area-directory/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProviderHandler struct {
	service *services.ProviderService
	cfg     *config.Config
	logr    *zap.Logger
}

func NewProviderHandler(svc *services.ProviderService, cfg *config.Config, logr *zap.Logger) *ProviderHandler {
	return &ProviderHandler{service: svc, cfg: cfg, logr: logr}
}

// CreateProvider handles POST /providers/
func (h *ProviderHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var input models.ProviderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logr.Warn("failed to decode provider payload", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	provider, err := h.service.Create(r.Context(), input)
	if errors.Is(err, services.ErrInvalidEmail) {
		h.logr.Warn("provider rejected", zap.Error(err))
		writeError(w, http.StatusUnprocessableEntity, "Invalid email address")
		return
	}
	if err != nil {
		h.logr.Error("failed to create provider", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create provider")
		return
	}

	h.logr.Info("provider created", zap.Int64("id", provider.ID), zap.String("name", provider.Name))
	writeJSON(w, http.StatusOK, provider)
}

// ListProviders handles GET /providers/?skip&limit
func (h *ProviderHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r, h.cfg)

	providers, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		h.logr.Error("failed to list providers", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list providers")
		return
	}

	writeJSON(w, http.StatusOK, providers)
}

// GetProvider handles GET /providers/{id}
func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	provider, err := h.service.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Provider not found")
		return
	}
	if err != nil {
		h.logr.Error("failed to get provider", zap.Error(err), zap.Int64("id", id))
		writeError(w, http.StatusInternalServerError, "Failed to get provider")
		return
	}

	writeJSON(w, http.StatusOK, provider)
}

// UpdateProvider handles PUT /providers/{id}
func (h *ProviderHandler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input models.ProviderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logr.Warn("failed to decode provider payload", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	provider, err := h.service.Update(r.Context(), id, input)
	if errors.Is(err, services.ErrInvalidEmail) {
		writeError(w, http.StatusUnprocessableEntity, "Invalid email address")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Provider not found")
		return
	}
	if err != nil {
		h.logr.Error("failed to update provider", zap.Error(err), zap.Int64("id", id))
		writeError(w, http.StatusInternalServerError, "Failed to update provider")
		return
	}

	h.logr.Info("provider updated", zap.Int64("id", id))
	writeJSON(w, http.StatusOK, provider)
}

// DeleteProvider handles DELETE /providers/{id}
func (h *ProviderHandler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	provider, err := h.service.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Provider not found")
		return
	}
	if err != nil {
		h.logr.Error("failed to delete provider", zap.Error(err), zap.Int64("id", id))
		writeError(w, http.StatusInternalServerError, "Failed to delete provider")
		return
	}

	h.logr.Info("provider deleted",
		zap.Int64("id", id),
		zap.Int("cascaded_service_areas", len(provider.ServiceAreas)))
	writeJSON(w, http.StatusOK, provider)
}

// pathID parses the {id} path parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id parameter")
		return 0, false
	}
	return id, true
}
