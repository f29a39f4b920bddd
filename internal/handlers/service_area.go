package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"area-directory/internal/config"
	"area-directory/internal/geojson"
	"area-directory/internal/models"
	"area-directory/internal/services"
	"area-directory/internal/store"

	"go.uber.org/zap"
)

type ServiceAreaHandler struct {
	service *services.ServiceAreaService
	cfg     *config.Config
	logr    *zap.Logger
}

func NewServiceAreaHandler(svc *services.ServiceAreaService, cfg *config.Config, logr *zap.Logger) *ServiceAreaHandler {
	return &ServiceAreaHandler{service: svc, cfg: cfg, logr: logr}
}

// CreateServiceArea handles POST /providers/{id}/service_areas/
func (h *ServiceAreaHandler) CreateServiceArea(w http.ResponseWriter, r *http.Request) {
	providerID, ok := pathID(w, r)
	if !ok {
		return
	}

	var input models.ServiceAreaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logr.Warn("failed to decode service area payload", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	area, err := h.service.Create(r.Context(), providerID, input)
	if errors.Is(err, geojson.ErrInvalidGeometry) {
		h.logr.Warn("service area rejected", zap.Error(err), zap.Int64("provider_id", providerID))
		writeError(w, http.StatusUnprocessableEntity, "Invalid GeoJSON format")
		return
	}
	if errors.Is(err, store.ErrProviderRef) {
		writeError(w, http.StatusUnprocessableEntity, "Provider does not exist")
		return
	}
	if err != nil {
		h.logr.Error("failed to create service area", zap.Error(err), zap.Int64("provider_id", providerID))
		writeError(w, http.StatusInternalServerError, "Failed to create service area")
		return
	}

	h.logr.Info("service area created",
		zap.Int64("id", area.ID),
		zap.Int64("provider_id", providerID),
		zap.String("name", area.Name))
	writeJSON(w, http.StatusOK, area)
}

// ListServiceAreas handles GET /service_areas/?skip&limit
func (h *ServiceAreaHandler) ListServiceAreas(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r, h.cfg)

	areas, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		h.logr.Error("failed to list service areas", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list service areas")
		return
	}

	writeJSON(w, http.StatusOK, areas)
}

// GetServiceArea handles GET /service_areas/{id}
func (h *ServiceAreaHandler) GetServiceArea(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	area, err := h.service.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Service Area not found")
		return
	}
	if err != nil {
		h.logr.Error("failed to get service area", zap.Error(err), zap.Int64("id", id))
		writeError(w, http.StatusInternalServerError, "Failed to get service area")
		return
	}

	writeJSON(w, http.StatusOK, area)
}

// UpdateServiceArea handles PUT /service_areas/{id}
func (h *ServiceAreaHandler) UpdateServiceArea(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input models.ServiceAreaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logr.Warn("failed to decode service area payload", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	area, err := h.service.Update(r.Context(), id, input)
	if errors.Is(err, geojson.ErrInvalidGeometry) {
		writeError(w, http.StatusUnprocessableEntity, "Invalid GeoJSON format")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Service Area not found")
		return
	}
	if err != nil {
		h.logr.Error("failed to update service area", zap.Error(err), zap.Int64("id", id))
		writeError(w, http.StatusInternalServerError, "Failed to update service area")
		return
	}

	h.logr.Info("service area updated", zap.Int64("id", id))
	writeJSON(w, http.StatusOK, area)
}

// DeleteServiceArea handles DELETE /service_areas/{id}
func (h *ServiceAreaHandler) DeleteServiceArea(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	area, err := h.service.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Service Area not found")
		return
	}
	if err != nil {
		h.logr.Error("failed to delete service area", zap.Error(err), zap.Int64("id", id))
		writeError(w, http.StatusInternalServerError, "Failed to delete service area")
		return
	}

	h.logr.Info("service area deleted", zap.Int64("id", id))
	writeJSON(w, http.StatusOK, area)
}
