package hubspot

import "github.com/fcoelho/salesnav-outreach/internal/entity"

// ContactProperties is the clean input the rest of the app hands to
// the client. Empty fields are left out of the request, so a partial
// struct works as a partial update.
type ContactProperties struct {
	Email              string
	FirstName          string
	LastName           string
	JobTitle           string
	Company            string
	LifecycleStage     string
	LeadSource         string
	LeadStatus         string
	PitchType          string
	LastMessageSubject string
	LastMessageBody    string
	NotesLastUpdated   string
}

// wireProperties maps to the HubSpot property names.
func (p ContactProperties) wireProperties() map[string]string {
	props := make(map[string]string)
	set := func(name, value string) {
		if value != "" {
			props[name] = value
		}
	}
	set("email", p.Email)
	set("firstname", p.FirstName)
	set("lastname", p.LastName)
	set("jobtitle", p.JobTitle)
	set("company", p.Company)
	set("lifecyclestage", p.LifecycleStage)
	set("lead_source", p.LeadSource)
	set("hs_lead_status", p.LeadStatus)
	set("pitch_type", p.PitchType)
	set("last_message_subject", p.LastMessageSubject)
	set("last_message_body", p.LastMessageBody)
	set("notes_last_updated", p.NotesLastUpdated)
	return props
}

// contactProperties requested back on every read.
var readProperties = []string{
	"email",
	"firstname",
	"lastname",
	"jobtitle",
	"company",
	"pitch_type",
	"last_message_subject",
	"last_message_body",
	"createdate",
	"notes_last_updated",
}

// --- Wire payloads ---

type contactRequest struct {
	Properties map[string]string `json:"properties"`
}

type searchRequest struct {
	FilterGroups []filterGroup `json:"filterGroups"`
	Properties   []string      `json:"properties"`
	Limit        int           `json:"limit"`
}

type filterGroup struct {
	Filters []filter `json:"filters"`
}

type filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type noteRequest struct {
	Properties   map[string]string `json:"properties"`
	Associations []noteAssociation `json:"associations"`
}

type noteAssociation struct {
	To    associationTarget `json:"to"`
	Types []associationType `json:"types"`
}

type associationTarget struct {
	ID string `json:"id"`
}

type associationType struct {
	AssociationCategory string `json:"associationCategory"`
	AssociationTypeID   int    `json:"associationTypeId"`
}

// --- Wire responses ---

type contactResponse struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

func (r contactResponse) toRecord() entity.ContactRecord {
	return entity.ContactRecord{
		ID:                 r.ID,
		Email:              r.Properties["email"],
		FirstName:          r.Properties["firstname"],
		LastName:           r.Properties["lastname"],
		JobTitle:           r.Properties["jobtitle"],
		Company:            r.Properties["company"],
		PitchType:          r.Properties["pitch_type"],
		LastMessageSubject: r.Properties["last_message_subject"],
		LastMessageBody:    r.Properties["last_message_body"],
		CreatedAt:          r.Properties["createdate"],
		NotesLastUpdated:   r.Properties["notes_last_updated"],
	}
}

type searchResponse struct {
	Total   int               `json:"total"`
	Results []contactResponse `json:"results"`
}

type listResponse struct {
	Results []contactResponse `json:"results"`
}

type noteResponse struct {
	ID string `json:"id"`
}
