package htmlview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/markup"
	"resumeforge/pkg/models"
)

func sampleDoc() *markup.Document {
	return &markup.Document{
		Name:    "Jane Doe",
		Title:   "Staff Engineer",
		Contact: "jane@example.com • Portland, OR",
		Sections: []markup.Section{
			{Title: "Summary", Raw: "Ten years of storage systems."},
			{Title: "Experience", Entries: []markup.Entry{
				{
					Title: "Initech", Date: "2020 -- Present",
					Subtitle: "Staff Engineer", Location: "Portland, OR",
					Bullets: []string{"Led replication rework", "Cut p99 latency by 40%"},
				},
			}},
		},
	}
}

func sampleTemplate() *models.TemplateDefinition {
	return &models.TemplateDefinition{Name: "Modern", CSSContent: ".resume-modern h1 { color: #2c3e50; }", Active: true}
}

func TestSourceViewNumbersEveryLine(t *testing.T) {
	out := SourceView("\\section{Summary}\nplain line\n% comment")

	assert.Contains(t, out, `<span class="line-number">1</span>`)
	assert.Contains(t, out, `<span class="line-number">2</span>`)
	assert.Contains(t, out, `<span class="line-number">3</span>`)
	assert.NotContains(t, out, `<span class="line-number">4</span>`)
}

func TestSourceViewHighlighting(t *testing.T) {
	out := SourceView("\\section{Summary} % trailing")

	assert.Contains(t, out, `<span class="tok-command">\section</span>`)
	assert.Contains(t, out, `<span class="tok-bracket">{</span>`)
	assert.Contains(t, out, `<span class="tok-bracket">}</span>`)
	assert.Contains(t, out, `<span class="tok-comment">% trailing</span>`)
	assert.Contains(t, out, "<style>")
}

func TestSourceViewCommentDoesNotBleedAcrossLines(t *testing.T) {
	out := SourceView("% whole line comment\n\\section{Next}")

	// The macro on the line after a comment is still highlighted.
	assert.Contains(t, out, `<span class="tok-command">\section</span>`)
}

func TestSourceViewEscapesHTML(t *testing.T) {
	out := SourceView("<script>alert(1)</script>")

	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestCompiledViewRendersHeaderAndSections(t *testing.T) {
	out := CompiledView(sampleDoc(), sampleTemplate())

	assert.Contains(t, out, "<h1>Jane Doe</h1>")
	assert.Contains(t, out, `<h2 class="resume-title">Staff Engineer</h2>`)
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "<h2>Summary</h2>")
	assert.Contains(t, out, "<p>Ten years of storage systems.</p>")
	assert.Contains(t, out, "<h3>Initech</h3>")
	assert.Contains(t, out, `<span class="entry-date">2020 -- Present</span>`)
	assert.Contains(t, out, "<li>Led replication rework</li>")
	assert.Contains(t, out, `<div class="resume-modern">`)

	// Self-contained: template CSS is inlined.
	assert.Contains(t, out, ".resume-modern h1 { color: #2c3e50; }")
	assert.NotContains(t, out, `<link rel="stylesheet"`)
}

func TestCompiledViewSectionOrderPreserved(t *testing.T) {
	doc := sampleDoc()
	doc.Sections[0], doc.Sections[1] = doc.Sections[1], doc.Sections[0]

	out := CompiledView(doc, sampleTemplate())
	assert.Less(t, strings.Index(out, "<h2>Experience</h2>"), strings.Index(out, "<h2>Summary</h2>"))
}

func TestCompiledViewRepairWarning(t *testing.T) {
	doc := sampleDoc()
	out := CompiledView(doc, sampleTemplate())
	// The stylesheet always carries the .repair-warning rule; only the
	// banner markup signals an actual repair.
	assert.NotContains(t, out, `<div class="repair-warning">`)

	doc.Repairs = []string{`missing \end{document}; reading to end of input`}
	out = CompiledView(doc, sampleTemplate())
	assert.Contains(t, out, `<div class="repair-warning">`)
	assert.Contains(t, out, "reading to end of input")
}

func TestCompiledViewInlineMacros(t *testing.T) {
	doc := sampleDoc()
	doc.Sections[0].Raw = `\textbf{Languages}: Go, Rust\\`

	out := CompiledView(doc, sampleTemplate())
	assert.Contains(t, out, "<strong>Languages</strong>: Go, Rust")
}

func TestCompiledViewRendersEntryLinks(t *testing.T) {
	doc := sampleDoc()
	doc.Sections = append(doc.Sections, markup.Section{
		Title: "Projects",
		Entries: []markup.Entry{{
			Title:    "chunkd",
			Date:     "2021",
			Subtitle: `\href{https://github.com/jd/chunkd}{chunkd}`,
			Bullets:  []string{`Published at \href{https://chunkd.dev}{chunkd.dev}`},
		}},
	})

	out := CompiledView(doc, sampleTemplate())

	assert.Contains(t, out, `<a href="https://github.com/jd/chunkd">chunkd</a>`)
	assert.Contains(t, out, `<li>Published at <a href="https://chunkd.dev">chunkd.dev</a></li>`)
	assert.NotContains(t, out, `\href`)
}

func TestPreviewViews(t *testing.T) {
	doc := sampleDoc()
	tpl := sampleTemplate()
	src := "\\begin{document}\n\\end{document}"

	compiled := Preview(src, doc, tpl, ViewCompiled)
	assert.Contains(t, compiled, "markup-compiled")
	assert.NotContains(t, compiled, "preview-tabs")

	source := Preview(src, doc, tpl, ViewSource)
	assert.Contains(t, source, "markup-source")
	assert.NotContains(t, source, "markup-compiled")

	tabs := Preview(src, doc, tpl, ViewTabs)
	require.Contains(t, tabs, "preview-tabs")
	assert.Contains(t, tabs, "markup-compiled")
	assert.Contains(t, tabs, "markup-source")
	assert.Contains(t, tabs, "<script>")
}
