package exporter

import (
	"context"
	"errors"
	"fmt"

	"resumeforge/internal/assembler"
	"resumeforge/internal/logging"
	"resumeforge/internal/markup"
	"resumeforge/internal/render/htmlview"
	"resumeforge/internal/render/pdfview"
	"resumeforge/internal/template"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// Sentinel errors to allow precise mapping in handlers
var (
	ErrValidation = errors.New("validation_error")
	ErrAssemble   = errors.New("assemble_error")
	ErrLayout     = errors.New("layout_error")
)

// Pipeline wires the template registry, assembler, parser and both
// renderers into the preview and export operations. Each call runs the
// whole chain synchronously; the registry cache is the only shared state.
type Pipeline struct {
	registry  *template.Registry
	assembler *assembler.Assembler
	pdf       *pdfview.Engine
	logger    logging.Logger
}

func NewPipeline(registry *template.Registry) *Pipeline {
	return &Pipeline{
		registry:  registry,
		assembler: assembler.NewAssembler(),
		pdf:       pdfview.NewEngine(),
		logger:    logging.GetGlobalLogger(),
	}
}

// PDFExport is the finished export artifact plus its download filename.
type PDFExport struct {
	Filename string
	Data     []byte
}

// Markup assembles the markup document for resume. This is the first half
// of every operation and the whole of the markup endpoint.
func (p *Pipeline) Markup(ctx context.Context, resume *models.ResumeRecord) (string, error) {
	tpl := p.registry.Resolve(ctx, resume.Template)
	return p.assemble(resume, &tpl)
}

// Preview renders the requested HTML view of the resume.
func (p *Pipeline) Preview(ctx context.Context, resume *models.ResumeRecord, view string) (string, error) {
	tpl := p.registry.Resolve(ctx, resume.Template)

	document, err := p.assemble(resume, &tpl)
	if err != nil {
		return "", err
	}

	parsed := markup.Parse(document)
	if parsed.Repaired() {
		// Assembler output should always be well-formed parser input.
		p.logger.Warn("Assembled document needed repairs", map[string]interface{}{
			"template": tpl.Name,
			"repairs":  parsed.Repairs,
		})
	}

	return htmlview.Preview(document, parsed, &tpl, view), nil
}

// PreviewMarkup renders the requested HTML view of caller-supplied markup,
// running only the parse half of the pipeline. Malformed input is repaired,
// never rejected.
func (p *Pipeline) PreviewMarkup(ctx context.Context, document, templateName, view string) string {
	tpl := p.registry.Resolve(ctx, templateName)
	parsed := markup.Parse(document)
	return htmlview.Preview(document, parsed, &tpl, view)
}

// Export renders the resume to a downloadable PDF.
func (p *Pipeline) Export(ctx context.Context, resume *models.ResumeRecord) (*PDFExport, error) {
	tpl := p.registry.Resolve(ctx, resume.Template)

	document, err := p.assemble(resume, &tpl)
	if err != nil {
		return nil, err
	}

	data, err := p.pdf.Render(markup.Parse(document))
	if err != nil {
		p.logger.Error("PDF layout failed", map[string]interface{}{
			"template": tpl.Name,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrLayout, err)
	}

	return &PDFExport{
		Filename: utils.ExportFilename(resume.Personal.FirstName, resume.Personal.LastName),
		Data:     data,
	}, nil
}

// Templates lists the known template definitions for the selection UI.
func (p *Pipeline) Templates(ctx context.Context, activeOnly bool) []models.TemplateInfo {
	defs := p.registry.List(ctx, activeOnly)
	out := make([]models.TemplateInfo, 0, len(defs))
	for _, def := range defs {
		out = append(out, models.TemplateInfo{
			Name:        def.Name,
			Description: def.Description,
			Active:      def.Active,
		})
	}
	return out
}

func (p *Pipeline) assemble(resume *models.ResumeRecord, tpl *models.TemplateDefinition) (string, error) {
	document, err := p.assembler.Assemble(resume, tpl)
	if err != nil {
		var cerr *utils.CustomError
		if errors.As(err, &cerr) && cerr.Code < 500 {
			return "", fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return "", fmt.Errorf("%w: %v", ErrAssemble, err)
	}
	return document, nil
}
