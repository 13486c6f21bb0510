package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolioapi/repository"
)

// ApiResponse is the JSON envelope for mutations and errors. Read endpoints
// return their payload directly.
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeStoreError maps repository failures to the response taxonomy:
// missing record -> 404, duplicate slug -> 409, anything else -> 500.
func writeStoreError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: notFoundMessage,
		})
	case errors.Is(err, repository.ErrDuplicateSlug):
		writeJSON(w, http.StatusConflict, ApiResponse{
			Success: false,
			Message: repository.ErrDuplicateSlug.Error(),
		})
	default:
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
	}
}
