package markup

import "strings"

// Low-level scanning helpers for the constrained macro grammar. Arguments are
// read with balanced-brace matching so nested groups (e.g. an href inside an
// entry field) survive intact.

// indexMacro returns the index of the next `\name{` at or after from, or -1.
// The brace requirement keeps `\section` from matching `\sectionrule`.
func indexMacro(s, name string, from int) int {
	needle := `\` + name
	for i := from; i < len(s); {
		idx := strings.Index(s[i:], needle)
		if idx < 0 {
			return -1
		}
		pos := i + idx
		rest := pos + len(needle)
		// Skip whitespace between the macro name and its first argument
		j := rest
		for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
			j++
		}
		if j < len(s) && s[j] == '{' {
			return pos
		}
		i = rest
	}
	return -1
}

// readGroup reads a balanced-brace group with s[i] == '{'. It returns the
// group content and the index just past the closing brace. Backslash-escaped
// braces are content, not structure.
func readGroup(s string, i int) (content string, next int, ok bool) {
	if i >= len(s) || s[i] != '{' {
		return "", i, false
	}
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '{':
			if !escapedAt(s, j) {
				depth++
			}
		case '}':
			if escapedAt(s, j) {
				continue
			}
			depth--
			if depth == 0 {
				return s[i+1 : j], j + 1, true
			}
		}
	}
	return "", i, false
}

// escapedAt reports whether the byte at j sits behind an odd number of
// backslashes.
func escapedAt(s string, j int) bool {
	n := 0
	for k := j - 1; k >= 0 && s[k] == '\\'; k-- {
		n++
	}
	return n%2 == 1
}

// readGroups reads n consecutive brace groups starting at i, skipping
// whitespace between them.
func readGroups(s string, i, n int) (groups []string, next int, ok bool) {
	groups = make([]string, 0, n)
	for k := 0; k < n; k++ {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
			i++
		}
		content, after, found := readGroup(s, i)
		if !found {
			return groups, i, false
		}
		groups = append(groups, content)
		i = after
	}
	return groups, i, true
}

// envBlocks returns the contents of every `\begin{env}...\end{env}` block in
// source order. Our grammar never nests an environment inside itself.
func envBlocks(s, env string) []string {
	begin := `\begin{` + env + `}`
	end := `\end{` + env + `}`

	var blocks []string
	for i := 0; ; {
		bi := strings.Index(s[i:], begin)
		if bi < 0 {
			break
		}
		start := i + bi + len(begin)
		ei := strings.Index(s[start:], end)
		if ei < 0 {
			// Unterminated block: take everything to the end
			blocks = append(blocks, s[start:])
			break
		}
		blocks = append(blocks, s[start:start+ei])
		i = start + ei + len(end)
	}
	return blocks
}

// stripEnv removes every `\begin{env}...\end{env}` wrapper pair, keeping the
// inner content in place.
func stripEnv(s, env string) string {
	s = strings.ReplaceAll(s, `\begin{`+env+`}`, "")
	return strings.ReplaceAll(s, `\end{`+env+`}`, "")
}
