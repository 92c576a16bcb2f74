package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/fcoelho/salesnav-outreach/internal/entity"
	"github.com/fcoelho/salesnav-outreach/internal/prompt"
)

// mockLLM returns a canned completion and records the last messages it
// was called with.
type mockLLM struct {
	response string
	err      error

	lastMessages []llms.MessageContent
}

func (m *mockLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.lastMessages = messages
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{Content: m.response},
		},
	}, nil
}

func (m *mockLLM) Call(ctx context.Context, input string, options ...llms.CallOption) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

var _ llms.Model = (*mockLLM)(nil)

func draftInput(pitchType string) DraftMessageInput {
	return DraftMessageInput{
		Name:      "Jane Doe",
		Title:     "VP Sales",
		Company:   "Acme",
		PitchType: pitchType,
	}
}

func TestDraftParsesNumberedCompletion(t *testing.T) {
	llm := &mockLLM{response: `1. Subject: "Quick question about Acme"
2. Message: Hi Jane, I noticed your team is growing fast. Would love to connect.`}
	uc := NewDraftMessageUseCase(llm, prompt.NewLibrary())

	out, err := uc.Execute(context.Background(), draftInput("Cold Outreach"))
	require.NoError(t, err)
	assert.Equal(t, "Quick question about Acme", out.Subject)
	assert.Equal(t, "Hi Jane, I noticed your team is growing fast. Would love to connect.", out.Body)
	assert.Equal(t, "gpt-3.5-turbo", out.Model)
}

func TestDraftSendsSystemAndRenderedUserPrompt(t *testing.T) {
	llm := &mockLLM{response: "Subject: hi\nBody: there"}
	uc := NewDraftMessageUseCase(llm, prompt.NewLibrary())

	_, err := uc.Execute(context.Background(), draftInput("Product Demo"))
	require.NoError(t, err)

	require.Len(t, llm.lastMessages, 2)
	assert.Equal(t, schema.ChatMessageTypeSystem, llm.lastMessages[0].Role)
	assert.Equal(t, schema.ChatMessageTypeHuman, llm.lastMessages[1].Role)

	user, ok := llm.lastMessages[1].Parts[0].(llms.TextContent)
	require.True(t, ok)
	assert.Contains(t, user.Text, "Jane Doe")
	assert.Contains(t, user.Text, "VP Sales")
	assert.Contains(t, user.Text, "Acme")
}

func TestDraftAllCategoriesProduceSubjectAndBody(t *testing.T) {
	for _, category := range entity.Categories() {
		t.Run(category.String(), func(t *testing.T) {
			llm := &mockLLM{response: "1. Subject: A short hook\n2. Message: Two friendly sentences about working together."}
			uc := NewDraftMessageUseCase(llm, prompt.NewLibrary())

			out, err := uc.Execute(context.Background(), draftInput(category.String()))
			require.NoError(t, err)
			assert.NotEmpty(t, out.Subject)
			assert.NotEmpty(t, out.Body)
		})
	}
}

func TestDraftRejectsUnknownCategory(t *testing.T) {
	llm := &mockLLM{response: "irrelevant"}
	uc := NewDraftMessageUseCase(llm, prompt.NewLibrary())

	_, err := uc.Execute(context.Background(), draftInput("Spam Blast"))
	require.Error(t, err)

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, CodeInvalidCategory, de.Code)
	assert.Nil(t, llm.lastMessages, "no generation call should happen")
}

func TestDraftRejectsMissingFields(t *testing.T) {
	uc := NewDraftMessageUseCase(&mockLLM{response: "x"}, prompt.NewLibrary())

	_, err := uc.Execute(context.Background(), DraftMessageInput{PitchType: "Cold Outreach"})
	require.Error(t, err)

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, CodeValidation, de.Code)
}

func TestDraftWrapsAPIFailure(t *testing.T) {
	llm := &mockLLM{err: context.DeadlineExceeded}
	uc := NewDraftMessageUseCase(llm, prompt.NewLibrary())

	_, err := uc.Execute(context.Background(), draftInput("Follow-up"))
	require.Error(t, err)
	assert.True(t, IsGenerationError(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestDraftRejectsEmptyCompletion(t *testing.T) {
	llm := &mockLLM{response: "   \n  "}
	uc := NewDraftMessageUseCase(llm, prompt.NewLibrary())

	_, err := uc.Execute(context.Background(), draftInput("Partnership"))
	require.Error(t, err)
	assert.True(t, IsGenerationError(err))
}

func TestSplitSubjectBody(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantSubject string
		wantBody    string
	}{
		{
			name:        "numbered with labels",
			content:     "1. Subject: Growing Acme's pipeline\n2. Message: Hi Jane, quick thought on your sales motion.",
			wantSubject: "Growing Acme's pipeline",
			wantBody:    "Hi Jane, quick thought on your sales motion.",
		},
		{
			name:        "subject label only",
			content:     "Subject: Let's talk partnerships\nI think Acme and we could do great things together.",
			wantSubject: "Let's talk partnerships",
			wantBody:    "I think Acme and we could do great things together.",
		},
		{
			name:        "quoted subject",
			content:     `1. "A bold idea for Acme"` + "\n2. Hi Jane, here is the idea.",
			wantSubject: "A bold idea for Acme",
			wantBody:    "Hi Jane, here is the idea.",
		},
		{
			name:        "unstructured first line",
			content:     "Great minds in sales\nHi Jane, I have been following Acme.\nWould love to chat.",
			wantSubject: "Great minds in sales",
			wantBody:    "Hi Jane, I have been following Acme. Would love to chat.",
		},
		{
			name:        "single line falls back",
			content:     "Hi Jane, just one line here.",
			wantSubject: "Follow up on LinkedIn",
			wantBody:    "Hi Jane, just one line here.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body := splitSubjectBody(tt.content)
			assert.Equal(t, tt.wantSubject, subject)
			assert.Equal(t, tt.wantBody, body)
			assert.NotEmpty(t, subject)
			assert.NotEmpty(t, body)
		})
	}
}
