package handlers

import (
	"encoding/json"
	"net/http"

	"area-directory/internal/config"
	"area-directory/internal/utils"
)

// errorDetail matches the error body shape of the public API.
type errorDetail struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorDetail{Detail: detail})
}

func pagination(r *http.Request, cfg *config.Config) (skip, limit int) {
	return utils.ParsePagination(r.URL.Query(), cfg.DefaultPageSize, cfg.MaxPageSize)
}
