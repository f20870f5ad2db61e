package pdfview

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"resumeforge/internal/markup"
	"resumeforge/pkg/utils"
)

// Layout constants in millimeters on A4 portrait. Fixed visual policy:
// header > section title > entry title > body.
const (
	marginTop    = 20.0
	marginBottom = 20.0
	marginLeft   = 20.0
	marginRight  = 20.0

	nameFontSize     = 24.0
	titleFontSize    = 16.0
	contactFontSize  = 10.0
	sectionFontSize  = 14.0
	entryFontSize    = 12.0
	subtitleFontSize = 11.0
	bodyFontSize     = 10.0

	headerRowStep = 10.0
	entryRowStep  = 5.0
	bodyLineStep  = 4.5

	bulletIndent = 4.0
	columnGap    = 3.0

	// Minimum room required before starting a block on the current page.
	sectionMinRoom = 30.0
	entryMinRoom   = 15.0
)

// Engine lays a parsed document out as a paginated PDF.
type Engine struct {
}

func NewEngine() *Engine { return &Engine{} }

// Render drives the PDF backend over the document and returns the finished
// artifact.
func (e *Engine) Render(doc *markup.Document) ([]byte, error) {
	pdf, err := e.Layout(doc)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, utils.NewLayoutError(err.Error())
	}
	return buf.Bytes(), nil
}

// Layout paginates the document onto the PDF backend without serializing
// it. A single mutable cursor walks down the page; every block checks
// remaining room before drawing and never splits a header row across pages.
func (e *Engine) Layout(doc *markup.Document) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	if doc.Name != "" {
		pdf.SetTitle(doc.Name+" - Resume", true)
	}
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	c := &cursor{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		pageW: pageW,
		pageH: pageH,
		y:     marginTop,
	}

	c.header(doc)
	for _, sec := range doc.Sections {
		c.section(sec)
	}

	if pdf.Err() {
		return nil, utils.NewLayoutError(pdf.Error().Error())
	}
	return pdf, nil
}

// cursor tracks the vertical position plus page geometry for one render.
type cursor struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	pageW float64
	pageH float64
	y     float64
}

func (c *cursor) contentWidth() float64 {
	return c.pageW - marginLeft - marginRight
}

// ensureRoom starts a new page when fewer than need millimeters remain.
func (c *cursor) ensureRoom(need float64) {
	if c.y+need > c.pageH-marginBottom {
		c.pdf.AddPage()
		c.y = marginTop
	}
}

func (c *cursor) textCentered(s string) {
	x := (c.pageW - c.pdf.GetStringWidth(c.tr(s))) / 2
	c.pdf.Text(x, c.y, c.tr(s))
}

func (c *cursor) textLeft(s string) {
	c.pdf.Text(marginLeft, c.y, c.tr(s))
}

func (c *cursor) textRight(s string) {
	x := c.pageW - marginRight - c.pdf.GetStringWidth(c.tr(s))
	c.pdf.Text(x, c.y, c.tr(s))
}

func (c *cursor) header(doc *markup.Document) {
	if doc.Name != "" {
		c.pdf.SetFont("Helvetica", "B", nameFontSize)
		c.textCentered(doc.Name)
		c.y += headerRowStep
	}
	if doc.Title != "" {
		c.pdf.SetFont("Helvetica", "I", titleFontSize)
		c.textCentered(doc.Title)
		c.y += headerRowStep
	}
	if doc.Contact != "" {
		c.pdf.SetFont("Helvetica", "", contactFontSize)
		for _, line := range c.wrapText(doc.Contact, c.contentWidth()) {
			c.textCentered(line)
			c.y += entryRowStep
		}
		c.y += entryRowStep
	}
}

func (c *cursor) section(sec markup.Section) {
	c.ensureRoom(sectionMinRoom)

	if sec.Title != "" {
		c.pdf.SetFont("Helvetica", "B", sectionFontSize)
		c.textLeft(sec.Title)
		c.y += 2
		c.pdf.SetDrawColor(0, 0, 0)
		c.pdf.Line(marginLeft, c.y, c.pageW-marginRight, c.y)
		c.y += 6
	}

	switch {
	case len(sec.Entries) > 0:
		for _, e := range sec.Entries {
			c.entry(e)
		}
	case hasSkillLines(sec.Raw):
		c.skillLines(sec.Raw)
	default:
		c.paragraph(sec.Raw)
	}

	c.y += 8
}

func (c *cursor) entry(e markup.Entry) {
	c.ensureRoom(entryMinRoom)

	// Title left, date right; the date always wins the row, the title is
	// truncated with an ellipsis when the two would overlap.
	c.pdf.SetFont("Helvetica", "B", entryFontSize)
	date := markup.StripInline(e.Date)
	dateW := c.pdf.GetStringWidth(c.tr(date))
	title := c.truncateToWidth(markup.StripInline(e.Title), c.contentWidth()-dateW-columnGap)
	c.textLeft(title)
	if date != "" {
		c.textRight(date)
	}
	c.y += entryRowStep

	subtitle := markup.StripInline(e.Subtitle)
	location := markup.StripInline(e.Location)
	if subtitle != "" || location != "" {
		c.pdf.SetFont("Helvetica", "I", subtitleFontSize)
		locW := c.pdf.GetStringWidth(c.tr(location))
		subtitle = c.truncateToWidth(subtitle, c.contentWidth()-locW-columnGap)
		if subtitle != "" {
			c.textLeft(subtitle)
		}
		if location != "" {
			c.textRight(location)
		}
		c.y += entryRowStep
	}

	if len(e.Bullets) > 0 {
		c.pdf.SetFont("Helvetica", "", bodyFontSize)
		for _, item := range e.Bullets {
			lines := c.wrapText("• "+markup.StripInline(item), c.contentWidth()-bulletIndent)
			for i, line := range lines {
				c.ensureRoom(bodyLineStep)
				if i == 0 {
					c.pdf.Text(marginLeft, c.y, c.tr(line))
				} else {
					c.pdf.Text(marginLeft+bulletIndent, c.y, c.tr(line))
				}
				c.y += bodyLineStep
			}
		}
		c.y += 2
	}

	c.y += entryRowStep
}

// paragraph renders unstructured section content as wrapped body text.
func (c *cursor) paragraph(raw string) {
	text := markup.StripInline(raw)
	if text == "" {
		return
	}
	c.pdf.SetFont("Helvetica", "", bodyFontSize)
	for _, line := range c.wrapText(text, c.contentWidth()) {
		c.ensureRoom(bodyLineStep)
		c.pdf.Text(marginLeft, c.y, c.tr(line))
		c.y += bodyLineStep
	}
	c.y += 2
}

var skillLineRe = regexp.MustCompile(`\\textbf\{([^{}]+)\}:\s*(.+)`)

func hasSkillLines(raw string) bool {
	return skillLineRe.MatchString(raw)
}

// skillLines renders "Category: comma-joined-list" rows; wrapped skill text
// continues at an indent aligned past the category label.
func (c *cursor) skillLines(raw string) {
	for _, line := range strings.Split(raw, "\n") {
		m := skillLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		category := strings.TrimSpace(m[1])
		items := markup.StripInline(m[2])

		c.ensureRoom(bodyLineStep)
		c.pdf.SetFont("Helvetica", "B", bodyFontSize)
		label := c.tr(category + ": ")
		c.pdf.Text(marginLeft, c.y, label)
		labelW := c.pdf.GetStringWidth(label)

		c.pdf.SetFont("Helvetica", "", bodyFontSize)
		for i, seg := range c.wrapText(items, c.contentWidth()-labelW) {
			if i > 0 {
				c.y += bodyLineStep
				c.ensureRoom(bodyLineStep)
			}
			c.pdf.Text(marginLeft+labelW, c.y, c.tr(seg))
		}
		c.y += 6
	}
}

// wrapText greedily wraps s into lines no wider than w, measuring in the
// page encoding via the translator. The returned lines are untranslated;
// callers translate when drawing. A single word wider than w gets its own
// line and draws past the margin rather than failing.
func (c *cursor) wrapText(s string, w float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if c.pdf.GetStringWidth(c.tr(candidate)) <= w {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}

// truncateToWidth trims s rune by rune until it fits, marking the cut with
// an ellipsis. The empty string is returned unchanged.
func (c *cursor) truncateToWidth(s string, maxW float64) string {
	if s == "" || c.pdf.GetStringWidth(c.tr(s)) <= maxW {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		candidate := strings.TrimRight(string(runes), " ") + "..."
		if c.pdf.GetStringWidth(c.tr(candidate)) <= maxW {
			return candidate
		}
		runes = runes[:len(runes)-1]
	}
	return "..."
}
