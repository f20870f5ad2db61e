package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// Parse builds a Document from resume markup. It never fails: malformed
// input is repaired on a best-effort basis and every recovery step is
// recorded in Repairs so the renderers can surface a warning.
func Parse(src string) *Document {
	doc := &Document{}

	body := stripComments(src)
	body = extractBody(body, doc)

	centers := envBlocks(body, "center")
	if len(centers) > 0 {
		parseIdentity(centers[0], doc)
	}
	if len(centers) > 1 {
		doc.Contact = parseContact(centers[1])
	} else if len(centers) == 1 {
		doc.Contact = parseContact(residualContact(centers[0]))
	}

	parseSections(body, doc)

	if doc.Name == "" && len(doc.Sections) == 0 {
		// Nothing recognizable: keep the raw text so the source view
		// still has something to show.
		doc.Sections = append(doc.Sections, Section{Raw: strings.TrimSpace(body)})
		if strings.TrimSpace(body) != "" {
			doc.repair("no recognizable structure; treating input as plain text")
		}
	}

	return doc
}

func (d *Document) repair(format string, args ...interface{}) {
	d.Repairs = append(d.Repairs, fmt.Sprintf(format, args...))
}

var commentRe = regexp.MustCompile(`(^|[^\\])%[^\n]*`)

// stripComments removes % comments while keeping escaped \% literals.
func stripComments(s string) string {
	return commentRe.ReplaceAllString(s, "$1")
}

// extractBody isolates the region between \begin{document} and
// \end{document}, inserting whichever delimiter is missing.
func extractBody(s string, doc *Document) string {
	const begin = `\begin{document}`
	const end = `\end{document}`

	bi := strings.Index(s, begin)
	if bi < 0 {
		if recognizable(s) {
			doc.repair("missing \\begin{document}; treating entire input as body")
			bi = -len(begin)
		} else {
			return s
		}
	}
	body := s[bi+len(begin):]

	ei := strings.Index(body, end)
	if ei < 0 {
		if strings.Contains(s, begin) {
			doc.repair("missing \\end{document}; reading to end of input")
		}
		return body
	}
	return body[:ei]
}

// recognizable reports whether headerless input still looks like resume
// markup rather than arbitrary text.
func recognizable(s string) bool {
	for _, marker := range []string{`\section`, `\entry`, `\begin{center}`, `{\huge`, `{\Huge`} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// Sized-emphasis group contents may carry escaped braces and one level of
// nesting; `\\.` keeps an escaped brace from closing the group early.
var sizedRe = regexp.MustCompile(`\{\\(huge|Huge|LARGE|large|Large)\s+((?:\\.|[^{}\\])*(?:\{(?:\\.|[^{}\\])*\}(?:\\.|[^{}\\])*)*)\}`)

// parseIdentity pulls the name and title out of the header block. The name
// is the first size-emphasized group, the title the second.
func parseIdentity(block string, doc *Document) {
	matches := sizedRe.FindAllStringSubmatch(block, 2)
	if len(matches) > 0 {
		doc.Name = StripInline(matches[0][2])
	}
	if len(matches) > 1 {
		doc.Title = StripInline(matches[1][2])
	}
}

// residualContact returns the header block with the sized identity groups
// removed, for single-block headers that fold the contact line in.
func residualContact(block string) string {
	return sizedRe.ReplaceAllString(block, "")
}

var contactSepRe = regexp.MustCompile(`\$\s*(\\cdot|\\bullet|\|)\s*\$|\\quad`)

// parseContact splits a contact line on any of the template separators and
// rejoins the parts with a plain bullet for display.
func parseContact(block string) string {
	parts := contactSepRe.Split(block, -1)
	var out []string
	for _, p := range parts {
		if p = StripInline(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " • ")
}

// parseSections splits the body on \section macros and parses each region.
func parseSections(body string, doc *Document) {
	i := indexMacro(body, "section", 0)
	for i >= 0 {
		title, after, ok := readGroup(body, skipMacro(body, i, "section"))
		if !ok {
			doc.repair("unterminated \\section title near offset %d", i)
			return
		}

		next := indexMacro(body, "section", after)
		rawEnd := len(body)
		if next >= 0 {
			rawEnd = next
		}

		sec := Section{
			Title: StripInline(title),
			Raw:   strings.TrimSpace(body[after:rawEnd]),
		}
		parseEntries(&sec, doc)
		doc.Sections = append(doc.Sections, sec)

		i = next
	}
}

// skipMacro returns the index of the opening brace of the macro at pos.
func skipMacro(s string, pos int, name string) int {
	j := pos + len(name) + 1
	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}
	return j
}

// parseEntries extracts the entry macros within a section, attaching the
// itemize bullets that follow each one.
func parseEntries(sec *Section, doc *Document) {
	raw := sec.Raw
	i := indexMacro(raw, "entry", 0)
	for i >= 0 {
		groups, after, ok := readGroups(raw, skipMacro(raw, i, "entry"), 4)
		if !ok {
			doc.repair("entry in %q has %d of 4 fields", sec.Title, len(groups))
			for len(groups) < 4 {
				groups = append(groups, "")
			}
		}

		next := indexMacro(raw, "entry", after)
		tailEnd := len(raw)
		if next >= 0 {
			tailEnd = next
		}

		// Field and bullet text stays raw here; each renderer applies its
		// own inline normalization (StripInline or InlineToHTML).
		sec.Entries = append(sec.Entries, Entry{
			Title:    strings.TrimSpace(groups[0]),
			Date:     strings.TrimSpace(groups[1]),
			Subtitle: strings.TrimSpace(groups[2]),
			Location: strings.TrimSpace(groups[3]),
			Bullets:  parseBullets(raw[after:tailEnd]),
		})

		i = next
	}

	if len(sec.Entries) > 0 {
		if strings.Count(raw, `\begin{itemize}`) > strings.Count(raw, `\end{itemize}`) {
			doc.repair("unterminated itemize in %q", sec.Title)
		}
	}
}

// parseBullets collects the \item texts from the itemize blocks in tail,
// keeping inline macros intact for the renderers.
func parseBullets(tail string) []string {
	var bullets []string
	for _, block := range envBlocks(tail, "itemize") {
		for _, item := range strings.Split(block, `\item`)[1:] {
			if StripInline(item) == "" {
				continue
			}
			bullets = append(bullets, strings.TrimSpace(item))
		}
	}
	return bullets
}
