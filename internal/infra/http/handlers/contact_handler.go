package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fcoelho/salesnav-outreach/internal/infra/http/middleware"
	"github.com/fcoelho/salesnav-outreach/internal/usecase"
)

type ContactHandler struct {
	UpsertUC *usecase.UpsertProspectUseCase
}

func NewContactHandler(upsertUC *usecase.UpsertProspectUseCase) *ContactHandler {
	return &ContactHandler{UpsertUC: upsertUC}
}

// HandleList (GET /contacts?limit=N) returns up to 50 recent CRM
// contacts, newest first. Every call goes to the CRM; nothing is
// cached here.
func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = parsed
	}

	contacts, err := h.UpsertUC.ListRecent(r.Context(), limit)
	if err != nil {
		middleware.RecordIntegrationError("hubspot")
		writeJSONError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

// HandleAddNote (POST /contacts/{id}/notes) appends a note to the
// contact's timeline.
func (h *ContactHandler) HandleAddNote(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "id")

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}

	err := h.UpsertUC.AddNote(r.Context(), usecase.AddNoteInput{
		ContactID: contactID,
		Text:      body.Text,
	})
	if err != nil {
		if usecase.IsCRMError(err) {
			middleware.RecordIntegrationError("hubspot")
		}
		writeJSONError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"contact_id": contactID, "status": "note added"})
}
