package htmlview

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Source view: a line-numbered, syntax-colored rendering of the raw markup
// document. Each line is highlighted independently; there is no cross-line
// state, so a comment never suppresses highlighting on the lines after it.

var (
	commandTokenRe = regexp.MustCompile(`\\[a-zA-Z]+\*?`)
	commentTokenRe = regexp.MustCompile(`(^|[^\\])(%.*)$`)
)

// SourceView renders the markup document as numbered, highlighted lines.
// The fragment carries its own style block.
func SourceView(document string) string {
	var b strings.Builder
	b.WriteString(`<div class="markup-source">`)
	b.WriteString("<style>")
	b.WriteString(sourceCSS)
	b.WriteString("</style>")
	b.WriteString(`<pre class="source-lines">`)

	for i, line := range strings.Split(document, "\n") {
		b.WriteString(`<span class="source-line">`)
		fmt.Fprintf(&b, `<span class="line-number">%d</span>`, i+1)
		b.WriteString(`<span class="line-content">`)
		b.WriteString(highlightLine(line))
		b.WriteString("</span></span>\n")
	}

	b.WriteString("</pre></div>")
	return b.String()
}

// highlightLine escapes one source line and wraps macro names, braces and
// the trailing comment in token spans.
func highlightLine(line string) string {
	esc := html.EscapeString(line)

	code, comment := esc, ""
	if m := commentTokenRe.FindStringSubmatchIndex(esc); m != nil {
		code = esc[:m[4]]
		comment = esc[m[4]:]
	}

	code = commandTokenRe.ReplaceAllString(code, `<span class="tok-command">$0</span>`)
	code = strings.ReplaceAll(code, "{", `<span class="tok-bracket">{</span>`)
	code = strings.ReplaceAll(code, "}", `<span class="tok-bracket">}</span>`)

	if comment != "" {
		return code + `<span class="tok-comment">` + comment + `</span>`
	}
	return code
}

const sourceCSS = `.markup-source {
  background: #1e1e1e;
  color: #d4d4d4;
  border-radius: 4px;
  padding: 12px 0;
  overflow-x: auto;
}
.markup-source .source-lines {
  margin: 0;
  font-family: 'Fira Code', 'Courier New', monospace;
  font-size: 13px;
  line-height: 1.5;
}
.markup-source .line-number {
  display: inline-block;
  width: 3em;
  padding-right: 1em;
  text-align: right;
  color: #6e7681;
  user-select: none;
}
.markup-source .tok-command { color: #569cd6; }
.markup-source .tok-bracket { color: #ffd700; }
.markup-source .tok-comment { color: #6a9955; font-style: italic; }`
