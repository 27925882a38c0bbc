// Package patch applies surgical edits to the two files the scaffolder
// does not own outright: .gitignore and package.json. Both operations are
// idempotent so a re-run over a previously scaffolded project is a no-op.
package patch

import (
	"regexp"
	"strings"
)

// IgnoreEntry is one required .gitignore entry: the literal line to append
// and a tolerant pattern that recognizes equivalent existing forms (with
// or without leading/trailing slash).
type IgnoreEntry struct {
	Literal string
	Pattern *regexp.Regexp
}

// ignoreHeading is the comment line grouping entries this tool appends.
const ignoreHeading = "# Playwright"

// ignoreEntry builds an IgnoreEntry whose pattern accepts the literal with
// optional leading and trailing slashes.
func ignoreEntry(literal string) IgnoreEntry {
	core := strings.Trim(literal, "/")
	return IgnoreEntry{
		Literal: literal,
		Pattern: regexp.MustCompile(`^/?` + regexp.QuoteMeta(core) + `/?$`),
	}
}

// DefaultIgnoreEntries returns the entries every scaffolded project needs
// ignored, in the order they are appended.
func DefaultIgnoreEntries() []IgnoreEntry {
	return []IgnoreEntry{
		ignoreEntry("node_modules/"),
		ignoreEntry("/test-results/"),
		ignoreEntry("/playwright-report/"),
		ignoreEntry("/blob-report/"),
		ignoreEntry("/playwright/.cache/"),
	}
}

// Ignore returns existing with every missing required entry appended under
// a single heading comment. Entries already present in an equivalent form
// are left alone; when nothing is missing the input is returned unchanged,
// which makes the patch idempotent.
func Ignore(existing string, entries []IgnoreEntry) string {
	lines := strings.Split(existing, "\n")

	var missing []IgnoreEntry
	for _, entry := range entries {
		if !hasIgnoreLine(lines, entry.Pattern) {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return existing
	}

	var b strings.Builder
	b.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(ignoreHeading + "\n")
	for _, entry := range missing {
		b.WriteString(entry.Literal + "\n")
	}
	return b.String()
}

// hasIgnoreLine reports whether any existing line matches the pattern.
func hasIgnoreLine(lines []string, pattern *regexp.Regexp) bool {
	for _, line := range lines {
		if pattern.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}
