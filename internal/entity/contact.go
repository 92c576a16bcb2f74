package entity

// Fixed classification values stamped onto every contact this service
// creates. The CRM is the source of truth for everything else.
const (
	LeadSource     = "LinkedIn Sales Navigator"
	LifecycleStage = "lead"
	LeadStatusNew  = "NEW"
)

// ContactRecord mirrors the CRM contact as this service reads it back.
// ID and CreatedAt are CRM-assigned.
type ContactRecord struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	JobTitle  string `json:"job_title"`
	Company   string `json:"company"`

	PitchType          string `json:"pitch_type,omitempty"`
	LastMessageSubject string `json:"last_message_subject,omitempty"`
	LastMessageBody    string `json:"last_message_body,omitempty"`

	CreatedAt        string `json:"created_at,omitempty"`
	NotesLastUpdated string `json:"notes_last_updated,omitempty"`
}

func (c *ContactRecord) Name() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
