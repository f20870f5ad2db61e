package markup

import (
	"html"
	"regexp"
	"strings"
)

// Inline formatting normalization. The Document stores raw-ish text; these
// post-steps are applied by each renderer: the PDF path strips macros down to
// display text (fonts are handled by the layout engine), the HTML path
// converts them to the equivalent semantic tags.

var (
	hrefRe   = regexp.MustCompile(`\\href\{([^{}]*)\}\{([^{}]*)\}`)
	boldRe   = regexp.MustCompile(`\\textbf\{([^{}]*)\}`)
	italicRe = regexp.MustCompile(`\\textit\{([^{}]*)\}`)
	mathRe   = regexp.MustCompile(`\$[^$]*\$`)
	envRe    = regexp.MustCompile(`\\(begin|end)\{[a-zA-Z*]+\}`)
	itemRe   = regexp.MustCompile(`\\item\s*`)
	cmdRe    = regexp.MustCompile(`\\[a-zA-Z]+\*?`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// unescaper reverses the assembler's character escaping before the macro
// sweeps run. Braces and dollars go through sentinels so the generic brace
// removal and math-span removal do not eat them.
var unescaper = strings.NewReplacer(
	`\{`, "\x00", `\}`, "\x01", `\$`, "\x02",
	`\&`, "&", `\#`, "#", `\_`, "_", `\%`, "%",
)

var restorer = strings.NewReplacer("{", "", "}", "", "\x00", "{", "\x01", "}", "\x02", "$")

// StripInline reduces inline macros to their display text and removes any
// residual markup syntax.
func StripInline(s string) string {
	s = unescaper.Replace(s)
	s = hrefRe.ReplaceAllString(s, "$2")
	s = boldRe.ReplaceAllString(s, "$1")
	s = italicRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, `\\`, " ")
	s = mathRe.ReplaceAllString(s, " ")
	s = envRe.ReplaceAllString(s, " ")
	s = itemRe.ReplaceAllString(s, "• ")
	s = cmdRe.ReplaceAllString(s, "")
	s = restorer.Replace(s)
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// InlineToHTML converts inline macros to semantic HTML tags. The input is
// HTML-escaped first; the macro syntax itself contains no escapable
// characters, so the patterns still match afterwards.
func InlineToHTML(s string) string {
	s = html.EscapeString(s)
	s = unescaper.Replace(s)
	s = hrefRe.ReplaceAllString(s, `<a href="$1">$2</a>`)
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")
	s = strings.ReplaceAll(s, `\\`, "<br>")
	s = mathRe.ReplaceAllString(s, " ")
	s = envRe.ReplaceAllString(s, " ")
	s = itemRe.ReplaceAllString(s, "• ")
	s = cmdRe.ReplaceAllString(s, "")
	s = restorer.Replace(s)
	return strings.TrimSpace(s)
}
