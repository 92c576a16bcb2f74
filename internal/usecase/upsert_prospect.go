package usecase

import (
	"context"
	"time"

	"github.com/fcoelho/salesnav-outreach/internal/entity"
	"github.com/fcoelho/salesnav-outreach/internal/infra/integration/hubspot"
)

const maxListLimit = 50

// UpsertProspectUseCase persists a prospect and the message drafted
// for them as a single CRM contact, keyed by the identifier derived
// from the prospect's name.
//
// The find-then-write sequence is not atomic: two simultaneous
// submissions for the same identifier can both see "absent" and both
// create. The tool is driven by one interactive user, so the race is
// accepted rather than guarded.
type UpsertProspectUseCase struct {
	CRM CRMGateway
}

func NewUpsertProspectUseCase(crm CRMGateway) *UpsertProspectUseCase {
	return &UpsertProspectUseCase{CRM: crm}
}

func (uc *UpsertProspectUseCase) Execute(ctx context.Context, input UpsertProspectInput) (*UpsertProspectOutput, error) {
	email := input.Prospect.Identifier()

	existing, err := uc.CRM.FindContactByEmail(ctx, email)
	if err != nil {
		return nil, &CRMError{Op: "search contact", Err: err}
	}

	props := hubspot.ContactProperties{
		FirstName:          input.Prospect.FirstName(),
		LastName:           input.Prospect.LastName(),
		JobTitle:           input.Prospect.JobTitle,
		Company:            input.Prospect.Company,
		PitchType:          input.Category.String(),
		LastMessageSubject: input.Message.Subject,
		LastMessageBody:    input.Message.Body,
	}

	if existing == nil {
		props.Email = email
		props.LifecycleStage = entity.LifecycleStage
		props.LeadSource = entity.LeadSource
		props.LeadStatus = entity.LeadStatusNew

		created, err := uc.CRM.CreateContact(ctx, props)
		if err != nil {
			return nil, &CRMError{Op: "create contact", Err: err}
		}
		return &UpsertProspectOutput{ContactID: created.ID, Result: ResultCreated}, nil
	}

	// Lifecycle stage, lead source and status stay whatever the CRM
	// already holds; only the prospect fields and the message are
	// refreshed.
	updated, err := uc.CRM.UpdateContact(ctx, existing.ID, props)
	if err != nil {
		return nil, &CRMError{Op: "update contact", Err: err}
	}
	return &UpsertProspectOutput{ContactID: updated.ID, Result: ResultUpdated}, nil
}

// AddNote appends a note to the contact's timeline and refreshes the
// contact's notes_last_updated marker. It never touches the message
// fields.
func (uc *UpsertProspectUseCase) AddNote(ctx context.Context, input AddNoteInput) error {
	if validationErrors := ValidateAddNoteInput(input); len(validationErrors) > 0 {
		return validationDomainError(validationErrors)
	}

	if _, err := uc.CRM.CreateNote(ctx, input.ContactID, input.Text); err != nil {
		return &CRMError{Op: "create note", Err: err}
	}

	stamp := hubspot.ContactProperties{
		NotesLastUpdated: time.Now().UTC().Format("2006-01-02 15:04:05"),
	}
	if _, err := uc.CRM.UpdateContact(ctx, input.ContactID, stamp); err != nil {
		return &CRMError{Op: "update notes timestamp", Err: err}
	}
	return nil
}

// ListRecent re-queries the CRM on every call; nothing is cached
// locally. The limit is capped at 50.
func (uc *UpsertProspectUseCase) ListRecent(ctx context.Context, limit int) ([]entity.ContactRecord, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	records, err := uc.CRM.ListContacts(ctx, limit)
	if err != nil {
		return nil, &CRMError{Op: "list contacts", Err: err}
	}
	return records, nil
}
