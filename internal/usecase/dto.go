package usecase

import "github.com/fcoelho/salesnav-outreach/internal/entity"

type DraftMessageInput struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	PitchType string `json:"pitch_type"`
}

type DraftMessageOutput struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Model   string `json:"model"`
}

type UpsertProspectInput struct {
	Prospect *entity.Prospect
	Category entity.MessageCategory
	Message  entity.GeneratedMessage
}

const (
	ResultCreated = "created"
	ResultUpdated = "updated"
)

type UpsertProspectOutput struct {
	ContactID string `json:"contact_id"`
	Result    string `json:"result"`
}

type AddNoteInput struct {
	ContactID string `json:"contact_id"`
	Text      string `json:"text"`
}
