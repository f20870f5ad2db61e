package models

// PreviewRequest represents the request payload for an HTML resume preview
type PreviewRequest struct {
	Resume *ResumeRecord `json:"resume" validate:"required"`
	// View selects which fragment to return: "tabs" (default), "compiled" or "source"
	View string `json:"view,omitempty" validate:"omitempty,oneof=tabs compiled source"`
}

// ExportRequest represents the request payload for a PDF export
type ExportRequest struct {
	Resume *ResumeRecord `json:"resume" validate:"required"`
}

// MarkupRequest represents the request payload for the raw markup document,
// used by clients that let users hand-edit the generated source
type MarkupRequest struct {
	Resume *ResumeRecord `json:"resume" validate:"required"`
}

// MarkupPreviewRequest represents the request payload for previewing
// hand-edited markup without reassembling it from a resume record
type MarkupPreviewRequest struct {
	Markup   string `json:"markup" validate:"required"`
	Template string `json:"template,omitempty" validate:"omitempty,template_name"`
	View     string `json:"view,omitempty" validate:"omitempty,oneof=tabs compiled source"`
}
