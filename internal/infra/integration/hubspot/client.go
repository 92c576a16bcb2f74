package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fcoelho/salesnav-outreach/internal/entity"
)

const DefaultBaseURL = "https://api.hubapi.com"

// HubSpot's fixed association type id for note-to-contact.
const noteToContactAssociationType = 202

// APIError is a non-2xx answer from HubSpot. The status code tells the
// caller whether it was an auth failure, rate limiting, or something
// else.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hubspot returned status %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) IsAuth() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

func (e *APIError) IsRateLimit() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
}

func NewClient(apiToken, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// FindContactByEmail looks a contact up by exact email match. Returns
// (nil, nil) when nothing matches.
func (c *Client) FindContactByEmail(ctx context.Context, email string) (*entity.ContactRecord, error) {
	payload := searchRequest{
		FilterGroups: []filterGroup{
			{Filters: []filter{{PropertyName: "email", Operator: "EQ", Value: email}}},
		},
		Properties: readProperties,
		Limit:      1,
	}

	var response searchResponse
	if err := c.doJSON(ctx, http.MethodPost, "/crm/v3/objects/contacts/search", payload, &response); err != nil {
		return nil, fmt.Errorf("search contact: %w", err)
	}

	if len(response.Results) == 0 {
		return nil, nil
	}
	record := response.Results[0].toRecord()
	return &record, nil
}

func (c *Client) CreateContact(ctx context.Context, props ContactProperties) (*entity.ContactRecord, error) {
	payload := contactRequest{Properties: props.wireProperties()}

	var response contactResponse
	if err := c.doJSON(ctx, http.MethodPost, "/crm/v3/objects/contacts", payload, &response); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	record := response.toRecord()
	return &record, nil
}

func (c *Client) UpdateContact(ctx context.Context, contactID string, props ContactProperties) (*entity.ContactRecord, error) {
	payload := contactRequest{Properties: props.wireProperties()}
	path := "/crm/v3/objects/contacts/" + contactID

	var response contactResponse
	if err := c.doJSON(ctx, http.MethodPatch, path, payload, &response); err != nil {
		return nil, fmt.Errorf("update contact %s: %w", contactID, err)
	}

	record := response.toRecord()
	return &record, nil
}

// CreateNote attaches a timeline note to the contact and returns the
// note id.
func (c *Client) CreateNote(ctx context.Context, contactID, body string) (string, error) {
	payload := noteRequest{
		Properties: map[string]string{
			"hs_note_body": body,
			"hs_timestamp": strconv.FormatInt(time.Now().UnixMilli(), 10),
		},
		Associations: []noteAssociation{
			{
				To: associationTarget{ID: contactID},
				Types: []associationType{
					{AssociationCategory: "HUBSPOT_DEFINED", AssociationTypeID: noteToContactAssociationType},
				},
			},
		},
	}

	var response noteResponse
	if err := c.doJSON(ctx, http.MethodPost, "/crm/v3/objects/notes", payload, &response); err != nil {
		return "", fmt.Errorf("create note for contact %s: %w", contactID, err)
	}
	return response.ID, nil
}

// ListContacts fetches up to limit contacts. HubSpot's basic list API
// has no sort parameter, so results are ordered newest-first here.
func (c *Client) ListContacts(ctx context.Context, limit int) ([]entity.ContactRecord, error) {
	path := fmt.Sprintf("/crm/v3/objects/contacts?limit=%d&properties=%s",
		limit, strings.Join(readProperties, ","))

	var response listResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &response); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	records := make([]entity.ContactRecord, 0, len(response.Results))
	for _, result := range response.Results {
		records = append(records, result.toRecord())
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})
	return records, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
