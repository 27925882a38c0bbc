package tmpl

import (
	"fmt"
	"strings"
)

// Directive controls how a marked section is resolved during rendering.
type Directive int

const (
	// Show strips the markers and keeps the inner lines verbatim.
	Show Directive = iota

	// Hide removes the markers and the inner lines entirely.
	Hide

	// Comment strips the markers and prefixes every inner line with the
	// dialect's comment token, so the content stays visible but inert.
	Comment
)

// Sections maps a section name to the directive applied to it.
// Sections not present in the map default to Show.
type Sections map[string]Directive

// Dialect is the comment syntax of the file a template renders into.
type Dialect struct {
	// Token is the line-comment token, e.g. "//" or "#".
	Token string
}

var (
	// ScriptDialect covers JavaScript/TypeScript config templates.
	ScriptDialect = Dialect{Token: "//"}

	// MarkupDialect covers YAML templates such as CI workflows.
	MarkupDialect = Dialect{Token: "#"}
)

// DialectFor picks the comment dialect for a template by file extension.
func DialectFor(path string) Dialect {
	if strings.HasSuffix(path, ".yml") || strings.HasSuffix(path, ".yaml") {
		return MarkupDialect
	}
	return ScriptDialect
}

// segment is one piece of a parsed template: either literal lines or a
// named section whose inner lines are resolved by a Directive.
type segment struct {
	name  string // empty for literal segments
	lines []string
}

// parseSections splits template lines into literal and section segments.
// A marker is a line whose trimmed text is exactly "<token> begin-<name>"
// or "<token> end-<name>". Sections do not nest; an unmatched or
// mismatched marker is a malformed asset and returns an error.
func parseSections(lines []string, d Dialect) ([]segment, error) {
	beginPrefix := d.Token + " begin-"
	endPrefix := d.Token + " end-"

	var segments []segment
	var literal []string
	var section []string
	open := "" // name of the currently open section, if any

	flushLiteral := func() {
		if len(literal) > 0 {
			segments = append(segments, segment{lines: literal})
			literal = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, beginPrefix):
			name := strings.TrimPrefix(trimmed, beginPrefix)
			if open != "" {
				return nil, fmt.Errorf("malformed template: marker %q opened inside section %q", name, open)
			}
			if name == "" {
				return nil, fmt.Errorf("malformed template: begin marker without a section name")
			}
			flushLiteral()
			open = name
			section = nil

		case strings.HasPrefix(trimmed, endPrefix):
			name := strings.TrimPrefix(trimmed, endPrefix)
			if open == "" {
				return nil, fmt.Errorf("malformed template: end marker %q without matching begin", name)
			}
			if name != open {
				return nil, fmt.Errorf("malformed template: end marker %q closes section %q", name, open)
			}
			segments = append(segments, segment{name: open, lines: section})
			open = ""
			section = nil

		case open != "":
			section = append(section, line)

		default:
			literal = append(literal, line)
		}
	}

	if open != "" {
		return nil, fmt.Errorf("malformed template: section %q is never closed", open)
	}
	flushLiteral()

	return segments, nil
}

// resolve applies the directive for each section segment and flattens the
// segments back into lines.
func resolve(segments []segment, sections Sections, d Dialect) []string {
	var out []string
	for _, seg := range segments {
		if seg.name == "" {
			out = append(out, seg.lines...)
			continue
		}

		switch sections[seg.name] {
		case Show:
			out = append(out, seg.lines...)
		case Hide:
			// drop markers and inner lines
		case Comment:
			// Every inner line gets the token, blank ones included,
			// so the whole block reads as one commented-out unit.
			for _, line := range seg.lines {
				if strings.TrimSpace(line) == "" {
					out = append(out, d.Token)
					continue
				}
				out = append(out, d.Token+" "+line)
			}
		}
	}
	return out
}
