package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fcoelho/salesnav-outreach/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// statusForError maps workflow errors onto HTTP statuses: business
// rejections are the caller's fault, integration failures are
// gateway errors.
func statusForError(err error) int {
	switch {
	case usecase.IsDomainError(err):
		return http.StatusBadRequest
	case usecase.IsGenerationError(err), usecase.IsCRMError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
