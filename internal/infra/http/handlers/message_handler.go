package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fcoelho/salesnav-outreach/internal/entity"
	"github.com/fcoelho/salesnav-outreach/internal/infra/http/middleware"
	"github.com/fcoelho/salesnav-outreach/internal/usecase"
)

type MessageHandler struct {
	DraftUC  *usecase.DraftMessageUseCase
	UpsertUC *usecase.UpsertProspectUseCase
}

func NewMessageHandler(draftUC *usecase.DraftMessageUseCase, upsertUC *usecase.UpsertProspectUseCase) *MessageHandler {
	return &MessageHandler{
		DraftUC:  draftUC,
		UpsertUC: upsertUC,
	}
}

type messageResponse struct {
	Subject string                        `json:"subject"`
	Body    string                        `json:"body"`
	Model   string                        `json:"model"`
	CRM     *usecase.UpsertProspectOutput `json:"crm,omitempty"`
	Error   string                        `json:"error,omitempty"`
}

// Handle runs the whole submission flow: draft the message, then
// upsert the prospect into the CRM. A failed draft never reaches the
// CRM; a failed upsert still returns the drafted message so the user
// does not lose it.
func (h *MessageHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.DraftMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}

	draft, err := h.DraftUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsGenerationError(err) {
			middleware.RecordIntegrationError("openai")
		}
		writeJSONError(w, statusForError(err), err.Error())
		return
	}
	middleware.RecordMessageGenerated(input.PitchType)

	prospect, err := entity.NewProspect(input.Name, input.Title, input.Company)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	category, err := entity.ParseCategory(input.PitchType)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	crmResult, err := h.UpsertUC.Execute(r.Context(), usecase.UpsertProspectInput{
		Prospect: prospect,
		Category: category,
		Message: entity.GeneratedMessage{
			Subject: draft.Subject,
			Body:    draft.Body,
			Model:   draft.Model,
		},
	})
	if err != nil {
		middleware.RecordIntegrationError("hubspot")
		writeJSON(w, statusForError(err), messageResponse{
			Subject: draft.Subject,
			Body:    draft.Body,
			Model:   draft.Model,
			Error:   err.Error(),
		})
		return
	}
	middleware.RecordContactUpsert(crmResult.Result)

	writeJSON(w, http.StatusOK, messageResponse{
		Subject: draft.Subject,
		Body:    draft.Body,
		Model:   draft.Model,
		CRM:     crmResult,
	})
}
