package entity

import (
	"errors"
	"strings"
)

// Prospect is a person targeted for outreach, as copied from LinkedIn
// Sales Navigator. It is never stored locally; the CRM record derived
// from it is the only persistent form.
type Prospect struct {
	FullName string `json:"full_name"`
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
}

func NewProspect(fullName, jobTitle, company string) (*Prospect, error) {
	p := &Prospect{
		FullName: strings.TrimSpace(fullName),
		JobTitle: strings.TrimSpace(jobTitle),
		Company:  strings.TrimSpace(company),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Prospect) Validate() error {
	if p.FullName == "" {
		return errors.New("full name is required")
	}
	if p.JobTitle == "" {
		return errors.New("job title is required")
	}
	if p.Company == "" {
		return errors.New("company is required")
	}
	return nil
}

// FirstName returns the first whitespace-separated token of the full name.
func (p *Prospect) FirstName() string {
	parts := strings.Fields(p.FullName)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// LastName returns everything after the first token, or "" for
// single-word names.
func (p *Prospect) LastName() string {
	parts := strings.Fields(p.FullName)
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[1:], " ")
}

// Identifier derives the stable email-like key used to match this
// prospect against existing CRM contacts. Derivation is by name alone:
// the name is lowercased, split on any non-alphanumeric run, and the
// tokens are joined with dots under a fixed placeholder domain, so
// "Jane  Doe" and "jane doe" map to the same contact. Two different
// people sharing a name will collide on the same record; that matches
// how the CRM search behaved before and is accepted for a single-user
// tool.
func (p *Prospect) Identifier() string {
	var b strings.Builder
	lastDot := true
	for _, r := range strings.ToLower(p.FullName) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDot = false
		default:
			if !lastDot {
				b.WriteByte('.')
				lastDot = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), ".")
	if slug == "" {
		slug = "unknown"
	}
	return slug + "@linkedin.prospect"
}
