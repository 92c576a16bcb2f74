package prompt

import (
	"fmt"

	"github.com/tmc/langchaingo/prompts"

	"github.com/fcoelho/salesnav-outreach/internal/entity"
)

const defaultModel = "gpt-3.5-turbo"

// Preset pairs the system instructions and user template for one
// message category, plus the model the category is drafted with.
type Preset struct {
	Category     entity.MessageCategory `json:"category"`
	Description  string                 `json:"description"`
	Model        string                 `json:"model"`
	SystemPrompt string                 `json:"-"`
	UserTemplate string                 `json:"-"`
}

// RenderUser fills the {{.name}}/{{.title}}/{{.company}} placeholders
// with the prospect's fields. Values go in verbatim.
func (p Preset) RenderUser(prospect *entity.Prospect) (string, error) {
	tmpl := prompts.NewPromptTemplate(p.UserTemplate, []string{"name", "title", "company"})
	out, err := tmpl.Format(map[string]any{
		"name":    prospect.FullName,
		"title":   prospect.JobTitle,
		"company": prospect.Company,
	})
	if err != nil {
		return "", fmt.Errorf("render %s template: %w", p.Category, err)
	}
	return out, nil
}

// Library is the immutable category→preset table, built once at
// process start.
type Library struct {
	presets map[entity.MessageCategory]Preset
}

func NewLibrary() *Library {
	l := &Library{presets: make(map[entity.MessageCategory]Preset)}
	for _, p := range defaultPresets() {
		l.presets[p.Category] = p
	}
	return l
}

func (l *Library) Get(category entity.MessageCategory) (Preset, bool) {
	p, ok := l.presets[category]
	return p, ok
}

// Presets returns every preset in the categories' display order.
func (l *Library) Presets() []Preset {
	out := make([]Preset, 0, len(l.presets))
	for _, c := range entity.Categories() {
		if p, ok := l.presets[c]; ok {
			out = append(out, p)
		}
	}
	return out
}

func defaultPresets() []Preset {
	return []Preset{
		{
			Category:     entity.CategoryColdOutreach,
			Description:  "Initial contact to introduce yourself and spark interest",
			Model:        defaultModel,
			SystemPrompt: "You are a sales expert creating personalized cold outreach messages for LinkedIn Sales Navigator. Create engaging, professional messages that grab attention.",
			UserTemplate: `Create a LinkedIn message for:
Name: {{.name}}
Title: {{.title}}
Company: {{.company}}

Generate:
1. A compelling subject line (5-8 words)
2. A personalized message body (2-3 sentences, professional but friendly)

Focus on: Building initial connection and sparking interest.`,
		},
		{
			Category:     entity.CategoryFollowUp,
			Description:  "Re-engage prospects who haven't responded to previous messages",
			Model:        defaultModel,
			SystemPrompt: "You are a sales expert creating follow-up messages for LinkedIn Sales Navigator. Create messages that re-engage prospects professionally.",
			UserTemplate: `Create a LinkedIn follow-up message for:
Name: {{.name}}
Title: {{.title}}
Company: {{.company}}

Generate:
1. A compelling subject line (5-8 words)
2. A follow-up message body (2-3 sentences, acknowledging previous contact)

Focus on: Re-engaging and providing value.`,
		},
		{
			Category:     entity.CategoryProductDemo,
			Description:  "Invite prospects to see your product in action",
			Model:        defaultModel,
			SystemPrompt: "You are a sales expert creating product demonstration invitation messages for LinkedIn Sales Navigator. Create messages that showcase value proposition.",
			UserTemplate: `Create a LinkedIn product demo invitation for:
Name: {{.name}}
Title: {{.title}}
Company: {{.company}}

Generate:
1. A compelling subject line (5-8 words)
2. A demo invitation message body (2-3 sentences, highlighting benefits)

Focus on: Demonstrating product value and scheduling demo.`,
		},
		{
			Category:     entity.CategoryPartnership,
			Description:  "Propose mutually beneficial business partnerships",
			Model:        defaultModel,
			SystemPrompt: "You are a sales expert creating partnership opportunity messages for LinkedIn Sales Navigator. Create messages that propose mutual business benefits.",
			UserTemplate: `Create a LinkedIn partnership message for:
Name: {{.name}}
Title: {{.title}}
Company: {{.company}}

Generate:
1. A compelling subject line (5-8 words)
2. A partnership proposal message body (2-3 sentences, highlighting mutual benefits)

Focus on: Proposing strategic partnership opportunities.`,
		},
	}
}
