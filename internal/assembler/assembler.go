package assembler

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// Assembler renders a ResumeRecord into the markup document consumed by the
// parser and both renderers.
type Assembler struct {
}

func NewAssembler() *Assembler { return &Assembler{} }

// SummaryPlaceholder is emitted when personal.summary is empty. The Summary
// and Experience sections always render, with placeholder content when the
// record carries none; every other section is omitted when empty.
const SummaryPlaceholder = "Professional summary will appear here."

// Assemble produces the markup document for resume using the given template
// definition. The only failure mode is a record with neither first nor last
// name; every other missing field renders as an omitted segment.
func (a *Assembler) Assemble(resume *models.ResumeRecord, tpl *models.TemplateDefinition) (string, error) {
	if strings.TrimSpace(resume.Personal.FirstName) == "" && strings.TrimSpace(resume.Personal.LastName) == "" {
		return "", utils.NewMissingNameError()
	}

	vm := buildViewModel(resume, tpl)

	funcMap := template.FuncMap{
		"escape": escapeMarkup,
		"join":   strings.Join,
	}
	tmpl, err := template.New("markup").Funcs(funcMap).Parse(markupTemplate)
	if err != nil {
		return "", fmt.Errorf("parse markup template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vm); err != nil {
		return "", fmt.Errorf("render markup template: %w", err)
	}
	return buf.String(), nil
}

// ===== View model =====

type entryVM struct {
	Title    string
	Date     string
	Subtitle string
	Location string
	Body     string
}

type skillLineVM struct {
	Category string
	Items    []string
}

type viewModel struct {
	Preamble string

	Name    string
	Title   string
	Contact string

	Summary string

	Education  []entryVM
	Experience []entryVM
	Skills     []skillLineVM
	Projects   []entryVM
}

func buildViewModel(resume *models.ResumeRecord, tpl *models.TemplateDefinition) viewModel {
	p := resume.Personal
	vm := viewModel{
		Preamble: tpl.Preamble,
		Name:     strings.TrimSpace(strings.Join(strings.Fields(p.FirstName+" "+p.LastName), " ")),
		Title:    strings.TrimSpace(p.Title),
		Contact:  buildContactLine(p, tpl.Separator()),
	}
	if summary := strings.TrimSpace(p.Summary); summary != "" {
		vm.Summary = escapeMarkup(summary)
	} else {
		vm.Summary = SummaryPlaceholder
	}

	for _, edu := range resume.Education {
		if strings.TrimSpace(edu.Institution) == "" {
			continue
		}
		vm.Education = append(vm.Education, entryVM{
			Title:    escapeMarkup(edu.Institution),
			Date:     models.DateRange(edu.StartDate, edu.EndDate, edu.Current),
			Subtitle: escapeMarkup(edu.Degree),
			Location: escapeMarkup(edu.Location),
			Body:     formatBullets(edu.Description),
		})
	}

	for _, exp := range resume.Experience {
		if strings.TrimSpace(exp.Company) == "" {
			continue
		}
		vm.Experience = append(vm.Experience, entryVM{
			Title:    escapeMarkup(exp.Company),
			Date:     models.DateRange(exp.StartDate, exp.EndDate, exp.Current),
			Subtitle: escapeMarkup(exp.Position),
			Location: escapeMarkup(exp.Location),
			Body:     formatBullets(exp.Description),
		})
	}
	if len(vm.Experience) == 0 {
		vm.Experience = append(vm.Experience, entryVM{
			Title:    "Company",
			Subtitle: "Position",
			Body:     formatBullets("- Experience details will appear here."),
		})
	}

	if resume.HasSkills() {
		categories := make([]string, 0, len(resume.Skills))
		for c := range resume.Skills {
			if len(resume.Skills[c]) > 0 {
				categories = append(categories, c)
			}
		}
		sort.Strings(categories)
		for _, c := range categories {
			items := make([]string, 0, len(resume.Skills[c]))
			for _, it := range resume.Skills[c] {
				items = append(items, escapeMarkup(it))
			}
			vm.Skills = append(vm.Skills, skillLineVM{Category: escapeMarkup(c), Items: items})
		}
	}

	for _, proj := range resume.Projects {
		if strings.TrimSpace(proj.Name) == "" {
			continue
		}
		subtitle := ""
		if proj.URL != "" {
			subtitle = fmt.Sprintf(`\href{%s}{%s}`, proj.URL, proj.URL)
		}
		vm.Projects = append(vm.Projects, entryVM{
			Title:    escapeMarkup(proj.Name),
			Date:     escapeMarkup(proj.Date),
			Subtitle: subtitle,
			Body:     formatBullets(proj.Description),
		})
	}

	return vm
}

// buildContactLine joins the present contact fields with the template's
// separator glyph. Absent fields contribute nothing, so no empty separators.
func buildContactLine(p models.Personal, sep string) string {
	var parts []string
	if p.Email != "" {
		parts = append(parts, fmt.Sprintf(`\href{mailto:%s}{%s}`, p.Email, escapeMarkup(p.Email)))
	}
	if p.Phone != "" {
		parts = append(parts, escapeMarkup(p.Phone))
	}
	if p.Location != "" {
		parts = append(parts, escapeMarkup(p.Location))
	}
	if p.Website != "" {
		parts = append(parts, fmt.Sprintf(`\href{%s}{%s}`, p.Website, escapeMarkup(p.Website)))
	}
	return strings.Join(parts, " "+sep+" ")
}

// formatBullets turns free text into an itemize block when it carries
// `-`/`*` prefixed lines; plain text passes through untouched.
func formatBullets(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	bulleted := false
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "-") || strings.HasPrefix(t, "*") {
			bulleted = true
			break
		}
	}
	if !bulleted {
		return escapeMarkup(text)
	}

	var b strings.Builder
	b.WriteString(`\begin{itemize}`)
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if strings.HasPrefix(t, "-") || strings.HasPrefix(t, "*") {
			b.WriteString("\n  \\item ")
			b.WriteString(escapeMarkup(strings.TrimSpace(t[1:])))
		} else {
			b.WriteString("\n  ")
			b.WriteString(escapeMarkup(t))
		}
	}
	b.WriteString("\n\\end{itemize}")
	return b.String()
}

// Markup escaping (minimal); keeps user text from colliding with the macro
// grammar the parser scans for.
var markupReplacer = strings.NewReplacer(
	"\\", " ",
	"{", "\\{",
	"}", "\\}",
	"$", "\\$",
	"&", "\\&",
	"#", "\\#",
	"_", "\\_",
	"%", "\\%",
)

func escapeMarkup(s string) string { return markupReplacer.Replace(s) }

// ===== Document template =====

const markupTemplate = `{{.Preamble}}

\begin{document}

\begin{center}
  {\huge {{escape .Name}}}{{if .Title}}\\[0.4em]
  {\large {{escape .Title}}}{{end}}
\end{center}

% Contact Information
\begin{center}
  {{.Contact}}
\end{center}

\section{Summary}
{{.Summary}}
{{if .Education}}
\section{Education}
{{- range .Education}}
\entry{{"{"}}{{.Title}}}{{"{"}}{{.Date}}}{{"{"}}{{.Subtitle}}}{{"{"}}{{.Location}}}
{{- if .Body}}
{{.Body}}
{{- end}}
{{- end}}
{{end}}
\section{Experience}
{{- range .Experience}}
\entry{{"{"}}{{.Title}}}{{"{"}}{{.Date}}}{{"{"}}{{.Subtitle}}}{{"{"}}{{.Location}}}
{{- if .Body}}
{{.Body}}
{{- end}}
{{- end}}
{{if .Skills}}
\section{Skills}
{{- range .Skills}}
\textbf{{"{"}}{{.Category}}}: {{join .Items ", "}}\\
{{- end}}
{{end}}
{{- if .Projects}}
\section{Projects}
{{- range .Projects}}
\entry{{"{"}}{{.Title}}}{{"{"}}{{.Date}}}{{"{"}}{{.Subtitle}}}{{"{"}}}
{{- if .Body}}
{{.Body}}
{{- end}}
{{- end}}
{{end}}
\end{document}
`
