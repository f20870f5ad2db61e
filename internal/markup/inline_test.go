package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"href", `\href{https://a.dev}{my site}`, "my site"},
		{"mailto", `\href{mailto:a@b.c}{a@b.c}`, "a@b.c"},
		{"bold", `built \textbf{fast} systems`, "built fast systems"},
		{"italic", `\textit{quietly} shipped`, "quietly shipped"},
		{"linebreak", `one\\two`, "one two"},
		{"math", `a $\cdot$ b`, "a b"},
		{"residual macro", `\hrule text`, "text"},
		{"stray braces", `{grouped} text`, "grouped text"},
		{"collapse whitespace", "a  \t b\n c", "a b c"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripInline(tt.in))
		})
	}
}

func TestInlineToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"escapes html", `<script>alert(1)</script>`, "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"href", `\href{https://a.dev}{site}`, `<a href="https://a.dev">site</a>`},
		{"bold", `\textbf{lead}`, "<strong>lead</strong>"},
		{"italic", `\textit{note}`, "<em>note</em>"},
		{"linebreak", `one\\two`, "one<br>two"},
		{"macro removed", `\hrule done`, "done"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InlineToHTML(tt.in))
		})
	}
}
