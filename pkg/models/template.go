package models

import "time"

// DefaultTemplate is the canonical template every unknown name resolves to.
const DefaultTemplate = "Modern"

// TemplateDefinition is a named bundle of markup preamble and stylesheet
// controlling visual presentation. The remote store is the source of truth;
// the built-in set is fallback and seed data.
type TemplateDefinition struct {
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Preamble         string    `json:"preamble"`
	CSSContent       string    `json:"css_content,omitempty"`
	ContactSeparator string    `json:"contact_separator,omitempty"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
	UpdatedAt        time.Time `json:"updated_at,omitempty"`
}

// Separator returns the contact-line separator glyph, defaulting to the
// markup center-dot when the definition does not carry one.
func (t TemplateDefinition) Separator() string {
	if t.ContactSeparator == "" {
		return `$\cdot$`
	}
	return t.ContactSeparator
}
