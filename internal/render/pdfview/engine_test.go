package pdfview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/markup"
)

func sampleDoc() *markup.Document {
	return &markup.Document{
		Name:    "Jane Doe",
		Title:   "Staff Engineer",
		Contact: "jane@example.com • (555) 010-2222 • Portland, OR",
		Sections: []markup.Section{
			{Title: "Summary", Raw: "Ten years of storage systems."},
			{Title: "Experience", Entries: []markup.Entry{
				{
					Title: "Initech", Date: "2020 -- Present",
					Subtitle: "Staff Engineer", Location: "Portland, OR",
					Bullets: []string{"Led replication rework", "Cut p99 latency by 40%"},
				},
			}},
			{Title: "Skills", Raw: `\textbf{Languages}: Go, Rust\\` + "\n" + `\textbf{Databases}: Postgres\\`},
		},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	out, err := NewEngine().Render(sampleDoc())

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"), "expected a PDF header")
}

func TestRenderEmptyDocument(t *testing.T) {
	out, err := NewEngine().Render(&markup.Document{})

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestLayoutSinglePageForShortResume(t *testing.T) {
	pdf, err := NewEngine().Layout(sampleDoc())

	require.NoError(t, err)
	assert.Equal(t, 1, pdf.PageCount())
}

func TestLayoutPaginatesLongResume(t *testing.T) {
	doc := sampleDoc()
	var entries []markup.Entry
	for i := 0; i < 30; i++ {
		entries = append(entries, markup.Entry{
			Title: fmt.Sprintf("Company %d", i), Date: "2020 -- 2021",
			Subtitle: "Engineer", Location: "Remote",
			Bullets: []string{"Did the first thing", "Did the second thing", "Did the third thing"},
		})
	}
	doc.Sections = append(doc.Sections, markup.Section{Title: "More Experience", Entries: entries})

	pdf, err := NewEngine().Layout(doc)

	require.NoError(t, err)
	assert.Greater(t, pdf.PageCount(), 1)
}

func TestLayoutIdempotent(t *testing.T) {
	first, err := NewEngine().Layout(sampleDoc())
	require.NoError(t, err)
	second, err := NewEngine().Layout(sampleDoc())
	require.NoError(t, err)

	assert.Equal(t, first.PageCount(), second.PageCount())
}

func TestTruncateGuaranteesDatePlacement(t *testing.T) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", entryFontSize)
	pageW, pageH := pdf.GetPageSize()
	c := &cursor{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), pageW: pageW, pageH: pageH, y: marginTop}

	date := "2020 -- Present"
	dateW := pdf.GetStringWidth(date)

	for _, title := range []string{
		"Short",
		strings.Repeat("Very Long Company Name ", 5),
		strings.Repeat("x", 500),
	} {
		got := c.truncateToWidth(title, c.contentWidth()-dateW-columnGap)
		assert.LessOrEqual(t, pdf.GetStringWidth(got), c.contentWidth()-dateW-columnGap,
			"truncated title must leave the date fully visible")
		if got != title {
			assert.True(t, strings.HasSuffix(got, "..."), "truncation is marked with an ellipsis")
		}
	}
}

func TestTruncateKeepsShortStrings(t *testing.T) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", entryFontSize)
	pageW, pageH := pdf.GetPageSize()
	c := &cursor{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), pageW: pageW, pageH: pageH}

	assert.Equal(t, "Initech", c.truncateToWidth("Initech", c.contentWidth()))
	assert.Equal(t, "", c.truncateToWidth("", 10))
}

func TestSectionHeaderNeverOrphaned(t *testing.T) {
	// Fill most of a page, then start a section close to the bottom: the
	// header and its rule must move to the next page together.
	doc := &markup.Document{Name: "Jane Doe"}
	var filler []markup.Entry
	for i := 0; i < 12; i++ {
		filler = append(filler, markup.Entry{Title: fmt.Sprintf("Role %d", i), Date: "2020", Subtitle: "Engineer"})
	}
	doc.Sections = []markup.Section{
		{Title: "Experience", Entries: filler},
		{Title: "Education", Entries: []markup.Entry{{Title: "State University", Date: "2010 -- 2014"}}},
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()
	c := &cursor{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), pageW: pageW, pageH: pageH, y: marginTop}

	c.header(doc)
	for _, sec := range doc.Sections {
		before := pdf.PageNo()
		yBefore := c.y
		c.section(sec)
		if pdf.PageNo() == before && yBefore+sectionMinRoom > pageH-marginBottom {
			t.Fatalf("section %q started with under %0.f mm of room", sec.Title, sectionMinRoom)
		}
	}

	require.False(t, pdf.Err())
}

func TestRenderBulletsAndGlyphsOutsideLatin1(t *testing.T) {
	// Contact separators and bullet glyphs sit outside ASCII; wrapping must
	// measure them through the page-encoding translator without choking.
	doc := &markup.Document{
		Name:    "Renée O'Connor",
		Contact: "renee@example.com • +44 20 5550 0100 • London",
		Sections: []markup.Section{
			{Title: "Experience", Entries: []markup.Entry{
				{
					Title: "Café Müller — Systems", Date: "2020 -- Present",
					Bullets: []string{
						"Rebuilt the café's ordering flow — twice",
						strings.Repeat("wrapped bullet text with naïve diacritics ", 8),
					},
				},
			}},
		},
	}

	out, err := NewEngine().Render(doc)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestWrapText(t *testing.T) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", bodyFontSize)
	pageW, pageH := pdf.GetPageSize()
	c := &cursor{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), pageW: pageW, pageH: pageH}

	short := c.wrapText("fits on one line", c.contentWidth())
	assert.Equal(t, []string{"fits on one line"}, short)

	long := c.wrapText(strings.Repeat("word ", 60), c.contentWidth())
	require.Greater(t, len(long), 1)
	for _, line := range long {
		assert.LessOrEqual(t, pdf.GetStringWidth(c.tr(line)), c.contentWidth())
	}

	// A single oversized word is kept whole on its own line.
	oversized := c.wrapText("tiny "+strings.Repeat("x", 400), 30)
	require.Len(t, oversized, 2)
	assert.Equal(t, "tiny", oversized[0])

	assert.Empty(t, c.wrapText("   ", c.contentWidth()))
}

func TestHasSkillLines(t *testing.T) {
	assert.True(t, hasSkillLines(`\textbf{Languages}: Go, Rust\\`))
	assert.False(t, hasSkillLines("Just a plain summary paragraph."))
	assert.False(t, hasSkillLines(""))
}
