package handlers

import (
	"net/http"

	"github.com/fcoelho/salesnav-outreach/internal/prompt"
)

type PromptHandler struct {
	Library *prompt.Library
}

func NewPromptHandler(library *prompt.Library) *PromptHandler {
	return &PromptHandler{Library: library}
}

// HandleList (GET /prompts) exposes the message categories the form
// can offer. The table itself is immutable, so this is read-only.
func (h *PromptHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"prompts": h.Library.Presets()})
}
