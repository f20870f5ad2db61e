package markup

// Document is the renderer-agnostic intermediate structure shared by the
// HTML and PDF paths. It is rebuilt on every render call and never persisted.
type Document struct {
	Name    string
	Title   string
	Contact string

	// Sections appear in source order; only the assembler imposes a fixed
	// emission order.
	Sections []Section

	// Repairs lists the recovery steps applied before parsing, for a
	// user-visible warning. Empty for well-formed input.
	Repairs []string
}

// Section is a titled region of the document split on the section macro
type Section struct {
	Title   string
	Raw     string
	Entries []Entry
}

// Entry is one four-field entry macro plus its trailing free content.
// Field and bullet text keeps its inline macros; StripInline and
// InlineToHTML are applied renderer-side.
type Entry struct {
	Title    string
	Date     string
	Subtitle string
	Location string
	Bullets  []string
}

// Repaired reports whether any recovery step was applied
func (d *Document) Repaired() bool {
	return len(d.Repairs) > 0
}
