package htmlview

import (
	"fmt"
	"html"
	"strings"

	"resumeforge/internal/markup"
	"resumeforge/pkg/models"
)

// CompiledView renders the parsed document as a simulated compiled page:
// header, then sections in parser-preserved order. The fragment inlines the
// template stylesheet so it embeds without external dependencies.
func CompiledView(doc *markup.Document, tpl *models.TemplateDefinition) string {
	var b strings.Builder
	b.WriteString(`<div class="markup-compiled">`)
	b.WriteString("<style>")
	b.WriteString(compiledCSS)
	b.WriteString(tpl.CSSContent)
	b.WriteString("</style>")
	fmt.Fprintf(&b, `<div class="%s">`, containerClass(tpl.Name))

	if doc.Repaired() {
		b.WriteString(`<div class="repair-warning">The document was repaired before rendering:<ul>`)
		for _, r := range doc.Repairs {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(r))
		}
		b.WriteString("</ul></div>")
	}

	writeHeader(&b, doc)
	for _, sec := range doc.Sections {
		writeSection(&b, sec)
	}

	b.WriteString("</div></div>")
	return b.String()
}

func containerClass(name string) string {
	if name == "" {
		name = models.DefaultTemplate
	}
	return "resume-" + strings.ToLower(name)
}

func writeHeader(b *strings.Builder, doc *markup.Document) {
	b.WriteString(`<header class="resume-header">`)
	if doc.Name != "" {
		fmt.Fprintf(b, "<h1>%s</h1>", html.EscapeString(doc.Name))
	}
	if doc.Title != "" {
		fmt.Fprintf(b, `<h2 class="resume-title">%s</h2>`, html.EscapeString(doc.Title))
	}
	if doc.Contact != "" {
		fmt.Fprintf(b, `<p class="resume-contact">%s</p>`, html.EscapeString(doc.Contact))
	}
	b.WriteString("</header>")
}

func writeSection(b *strings.Builder, sec markup.Section) {
	b.WriteString(`<section class="resume-section">`)
	if sec.Title != "" {
		fmt.Fprintf(b, "<h2>%s</h2>", html.EscapeString(sec.Title))
	}

	if len(sec.Entries) > 0 {
		for _, e := range sec.Entries {
			writeEntry(b, e)
		}
	} else {
		writeRaw(b, sec.Raw)
	}

	b.WriteString("</section>")
}

func writeEntry(b *strings.Builder, e markup.Entry) {
	b.WriteString(`<div class="entry">`)

	b.WriteString(`<div class="entry-header">`)
	fmt.Fprintf(b, "<h3>%s</h3>", markup.InlineToHTML(e.Title))
	if e.Date != "" {
		fmt.Fprintf(b, `<span class="entry-date">%s</span>`, markup.InlineToHTML(e.Date))
	}
	b.WriteString("</div>")

	if e.Subtitle != "" || e.Location != "" {
		b.WriteString(`<div class="entry-subheader">`)
		if e.Subtitle != "" {
			fmt.Fprintf(b, `<em class="entry-subtitle">%s</em>`, markup.InlineToHTML(e.Subtitle))
		}
		if e.Location != "" {
			fmt.Fprintf(b, `<span class="entry-location">%s</span>`, markup.InlineToHTML(e.Location))
		}
		b.WriteString("</div>")
	}

	if len(e.Bullets) > 0 {
		b.WriteString("<ul>")
		for _, item := range e.Bullets {
			fmt.Fprintf(b, "<li>%s</li>", markup.InlineToHTML(item))
		}
		b.WriteString("</ul>")
	}

	b.WriteString("</div>")
}

// writeRaw renders section content that carries no entry macros, one
// paragraph per non-empty line.
func writeRaw(b *strings.Builder, raw string) {
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if h := markup.InlineToHTML(line); h != "" {
			fmt.Fprintf(b, "<p>%s</p>", h)
		}
	}
}

const compiledCSS = `.markup-compiled {
  background: #fff;
  padding: 24px;
  border-radius: 4px;
}
.markup-compiled .repair-warning {
  background: #fff3cd;
  border: 1px solid #ffc107;
  border-radius: 4px;
  color: #664d03;
  padding: 10px 14px;
  margin-bottom: 16px;
  font-size: 0.9rem;
}
.markup-compiled .repair-warning ul {
  margin: 6px 0 0;
  padding-left: 20px;
}
.markup-compiled .resume-header {
  margin-bottom: 1rem;
}
.markup-compiled .resume-contact {
  color: #555;
}
.markup-compiled .entry-header,
.markup-compiled .entry-subheader {
  display: flex;
  justify-content: space-between;
  align-items: baseline;
}
.markup-compiled .entry-header h3 {
  margin: 0.6rem 0 0.2rem;
}
.markup-compiled .entry-date,
.markup-compiled .entry-location {
  color: #666;
  font-size: 0.9rem;
  white-space: nowrap;
}
.markup-compiled .entry ul {
  margin: 0.4rem 0;
}
`
