package htmlview

import (
	"fmt"
	"strings"

	"resumeforge/internal/markup"
	"resumeforge/pkg/models"
)

// View selectors accepted by Preview.
const (
	ViewTabs     = "tabs"
	ViewCompiled = "compiled"
	ViewSource   = "source"
)

// Preview renders the requested view of a markup document. The tab view
// bundles both fragments behind a small self-contained switcher; the other
// views return a single fragment.
func Preview(document string, doc *markup.Document, tpl *models.TemplateDefinition, view string) string {
	switch view {
	case ViewCompiled:
		return CompiledView(doc, tpl)
	case ViewSource:
		return SourceView(document)
	}

	var b strings.Builder
	b.WriteString(`<div class="resume-preview">`)
	b.WriteString("<style>")
	b.WriteString(tabsCSS)
	b.WriteString("</style>")

	b.WriteString(`<div class="preview-tabs">`)
	b.WriteString(`<button class="preview-tab active" data-target="preview-pane-compiled">Compiled</button>`)
	b.WriteString(`<button class="preview-tab" data-target="preview-pane-source">Source</button>`)
	b.WriteString("</div>")

	fmt.Fprintf(&b, `<div id="preview-pane-compiled" class="preview-pane active">%s</div>`, CompiledView(doc, tpl))
	fmt.Fprintf(&b, `<div id="preview-pane-source" class="preview-pane">%s</div>`, SourceView(document))

	b.WriteString("<script>")
	b.WriteString(tabsScript)
	b.WriteString("</script>")
	b.WriteString("</div>")
	return b.String()
}

const tabsCSS = `.resume-preview .preview-tabs {
  display: flex;
  gap: 4px;
  margin-bottom: 8px;
}
.resume-preview .preview-tab {
  border: 1px solid #ccc;
  border-radius: 4px 4px 0 0;
  background: #f5f5f5;
  padding: 6px 16px;
  cursor: pointer;
}
.resume-preview .preview-tab.active {
  background: #fff;
  border-bottom-color: #fff;
  font-weight: 600;
}
.resume-preview .preview-pane {
  display: none;
}
.resume-preview .preview-pane.active {
  display: block;
}`

const tabsScript = `document.querySelectorAll('.resume-preview .preview-tab').forEach(function (tab) {
  tab.addEventListener('click', function () {
    document.querySelectorAll('.resume-preview .preview-tab').forEach(function (t) { t.classList.remove('active'); });
    document.querySelectorAll('.resume-preview .preview-pane').forEach(function (p) { p.classList.remove('active'); });
    tab.classList.add('active');
    document.getElementById(tab.dataset.target).classList.add('active');
  });
});`
