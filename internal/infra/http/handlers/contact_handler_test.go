package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fcoelho/salesnav-outreach/internal/entity"
	"github.com/fcoelho/salesnav-outreach/internal/usecase"
)

func newContactRouter(crm usecase.CRMGateway) *chi.Mux {
	handler := NewContactHandler(usecase.NewUpsertProspectUseCase(crm))
	r := chi.NewRouter()
	r.Get("/contacts", handler.HandleList)
	r.Post("/contacts/{id}/notes", handler.HandleAddNote)
	return r
}

func TestListContactsDefaultsLimit(t *testing.T) {
	crm := new(MockCRMGateway)
	crm.On("ListContacts", mock.Anything, 50).Return([]entity.ContactRecord{
		{ID: "2", FirstName: "John", LastName: "Smith", Company: "Globex"},
		{ID: "1", FirstName: "Jane", LastName: "Doe", Company: "Acme"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	rec := httptest.NewRecorder()
	newContactRouter(crm).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Contacts []entity.ContactRecord `json:"contacts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Contacts, 2)
	assert.Equal(t, "John Smith", resp.Contacts[0].Name())
}

func TestListContactsPassesLimitThrough(t *testing.T) {
	crm := new(MockCRMGateway)
	crm.On("ListContacts", mock.Anything, 10).Return([]entity.ContactRecord{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/contacts?limit=10", nil)
	rec := httptest.NewRecorder()
	newContactRouter(crm).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	crm.AssertExpectations(t)
}

func TestListContactsRejectsBadLimit(t *testing.T) {
	crm := new(MockCRMGateway)

	req := httptest.NewRequest(http.MethodGet, "/contacts?limit=ten", nil)
	rec := httptest.NewRecorder()
	newContactRouter(crm).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	crm.AssertNotCalled(t, "ListContacts", mock.Anything, mock.Anything)
}

func TestListContactsCRMFailure(t *testing.T) {
	crm := new(MockCRMGateway)
	crm.On("ListContacts", mock.Anything, 50).Return(nil, errors.New("status 401"))

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	rec := httptest.NewRecorder()
	newContactRouter(crm).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAddNoteSuccess(t *testing.T) {
	crm := new(MockCRMGateway)
	crm.On("CreateNote", mock.Anything, "101", "Met at the booth").Return("note-1", nil)
	crm.On("UpdateContact", mock.Anything, "101", mock.Anything).Return(&entity.ContactRecord{ID: "101"}, nil)

	body := bytes.NewBufferString(`{"text":"Met at the booth"}`)
	req := httptest.NewRequest(http.MethodPost, "/contacts/101/notes", body)
	rec := httptest.NewRecorder()
	newContactRouter(crm).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	crm.AssertExpectations(t)
}

func TestAddNoteEmptyText(t *testing.T) {
	crm := new(MockCRMGateway)

	body := bytes.NewBufferString(`{"text":"   "}`)
	req := httptest.NewRequest(http.MethodPost, "/contacts/101/notes", body)
	rec := httptest.NewRecorder()
	newContactRouter(crm).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	crm.AssertNotCalled(t, "CreateNote", mock.Anything, mock.Anything, mock.Anything)
}
