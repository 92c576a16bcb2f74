package usecase

import (
	"context"

	"github.com/fcoelho/salesnav-outreach/internal/entity"
	"github.com/fcoelho/salesnav-outreach/internal/infra/integration/hubspot"
)

// CRMGateway is the port onto the CRM. FindContactByEmail returns
// (nil, nil) when no contact matches, so "absent" is not an error.
type CRMGateway interface {
	FindContactByEmail(ctx context.Context, email string) (*entity.ContactRecord, error)
	CreateContact(ctx context.Context, props hubspot.ContactProperties) (*entity.ContactRecord, error)
	UpdateContact(ctx context.Context, contactID string, props hubspot.ContactProperties) (*entity.ContactRecord, error)
	CreateNote(ctx context.Context, contactID, body string) (string, error)
	ListContacts(ctx context.Context, limit int) ([]entity.ContactRecord, error)
}
