package usecase

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/fcoelho/salesnav-outreach/internal/entity"
	"github.com/fcoelho/salesnav-outreach/internal/prompt"
)

// Generation parameters are fixed for every category; only the model
// id varies per preset.
const (
	generationMaxTokens   = 300
	generationTemperature = 0.7
)

const fallbackSubject = "Follow up on LinkedIn"

type DraftMessageUseCase struct {
	LLM     llms.Model
	Library *prompt.Library
}

func NewDraftMessageUseCase(llm llms.Model, library *prompt.Library) *DraftMessageUseCase {
	return &DraftMessageUseCase{
		LLM:     llm,
		Library: library,
	}
}

func (uc *DraftMessageUseCase) Execute(ctx context.Context, input DraftMessageInput) (*DraftMessageOutput, error) {
	if validationErrors := ValidateDraftMessageInput(input); len(validationErrors) > 0 {
		return nil, validationDomainError(validationErrors)
	}

	category, err := entity.ParseCategory(input.PitchType)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeInvalidCategory,
			Message: err.Error(),
		}
	}

	preset, ok := uc.Library.Get(category)
	if !ok {
		return nil, &DomainError{
			Code:    CodeInvalidCategory,
			Message: "no prompt preset for category " + category.String(),
		}
	}

	prospect, err := entity.NewProspect(input.Name, input.Title, input.Company)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	userPrompt, err := preset.RenderUser(prospect)
	if err != nil {
		return nil, &GenerationError{Message: "failed to render prompt", Err: err}
	}

	resp, err := uc.LLM.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(schema.ChatMessageTypeSystem, preset.SystemPrompt),
			llms.TextParts(schema.ChatMessageTypeHuman, userPrompt),
		},
		llms.WithModel(preset.Model),
		llms.WithMaxTokens(generationMaxTokens),
		llms.WithTemperature(generationTemperature),
	)
	if err != nil {
		return nil, &GenerationError{Message: "generation request failed", Err: err}
	}

	content := ""
	if len(resp.Choices) > 0 {
		content = strings.TrimSpace(resp.Choices[0].Content)
	}
	if content == "" {
		return nil, &GenerationError{Message: "generation returned an empty response"}
	}

	subject, body := splitSubjectBody(content)

	return &DraftMessageOutput{
		Subject: subject,
		Body:    body,
		Model:   preset.Model,
	}, nil
}

// splitSubjectBody extracts a subject line and message body from the
// completion text. The presets ask for a numbered "1. subject /
// 2. body" layout, so that convention is tried first; otherwise the
// first non-empty line becomes the subject and the remainder the body.
// A single-line completion keeps the whole text as the body under a
// generic subject. The result is never empty on non-empty input.
func splitSubjectBody(content string) (subject, body string) {
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		if !strings.Contains(lower, "subject") && !strings.HasPrefix(trimmed, "1.") {
			continue
		}

		subject = stripLabel(trimmed, "1.")
		var bodyLines []string
		for _, rest := range lines[i+1:] {
			r := strings.TrimSpace(rest)
			if r == "" {
				continue
			}
			rl := strings.ToLower(r)
			if strings.HasPrefix(r, "2.") || strings.HasPrefix(rl, "message") || strings.HasPrefix(rl, "body") {
				if tail := stripLabel(r, "2."); tail != "" && tail != r && !isLabelOnly(tail) {
					bodyLines = append(bodyLines, tail)
				}
				continue
			}
			bodyLines = append(bodyLines, r)
		}
		body = strings.Join(bodyLines, " ")
		break
	}

	if subject != "" && body != "" {
		return subject, body
	}

	// Unstructured completion: first line is the subject, the rest is
	// the body.
	var first string
	var rest []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if first == "" {
			first = strings.Trim(trimmed, `"`)
			continue
		}
		rest = append(rest, trimmed)
	}
	if first != "" && len(rest) > 0 {
		return first, strings.Join(rest, " ")
	}
	return fallbackSubject, strings.TrimSpace(content)
}

func isLabelOnly(s string) bool {
	switch strings.ToLower(s) {
	case "message", "body", "message body":
		return true
	}
	return false
}

// stripLabel removes a numbered or "Subject:"-style label prefix and
// surrounding quotes from a line.
func stripLabel(line, numPrefix string) string {
	out := line
	if idx := strings.Index(out, ":"); idx >= 0 {
		out = out[idx+1:]
	} else {
		out = strings.TrimPrefix(out, numPrefix)
	}
	return strings.Trim(strings.TrimSpace(out), `"`)
}
