// Package tmpl renders template assets with placeholder interpolation and
// marker-based conditional sections.
//
// Templates are plain text. Placeholders have the form {{name}} and are
// replaced in a single left-to-right pass; substituted values are never
// re-scanned, so values containing placeholder syntax stay literal.
// Sections are line ranges bounded by paired comment markers
// ("<token> begin-<name>" / "<token> end-<name>") whose inclusion mode is
// chosen per render via a Sections map.
package tmpl

import "strings"

// Vars maps placeholder names to their substitution values.
// A placeholder whose name is not present is left as literal text, which
// permits partial rendering across multiple passes.
type Vars map[string]string

// Render resolves section markers and substitutes placeholders in template.
// The dialect selects the comment syntax used for section markers and for
// commented-out sections. Rendering is a pure function of its inputs; an
// error indicates a malformed template asset, not bad user input.
func Render(template string, vars Vars, sections Sections, d Dialect) (string, error) {
	lines := strings.Split(template, "\n")

	segments, err := parseSections(lines, d)
	if err != nil {
		return "", err
	}
	resolved := strings.Join(resolve(segments, sections, d), "\n")

	return substitute(resolved, vars), nil
}

// substitute replaces {{name}} tokens with their values in one pass.
func substitute(text string, vars Vars) string {
	var b strings.Builder
	b.Grow(len(text))

	for {
		open := strings.Index(text, "{{")
		if open < 0 {
			b.WriteString(text)
			return b.String()
		}

		close := strings.Index(text[open:], "}}")
		if close < 0 {
			b.WriteString(text)
			return b.String()
		}
		close += open

		name := text[open+2 : close]
		value, ok := vars[name]
		if ok && isIdentifier(name) {
			b.WriteString(text[:open])
			b.WriteString(value)
		} else {
			// Unknown or malformed placeholder stays literal.
			b.WriteString(text[:close+2])
		}
		text = text[close+2:]
	}
}

// isIdentifier reports whether name is a plain placeholder identifier:
// letters, digits, '_' or '-', and non-empty.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}
