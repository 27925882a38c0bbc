package patch

import (
	"strings"
	"testing"
)

func TestIgnore_AppendsMissingEntries(t *testing.T) {
	got := Ignore("", DefaultIgnoreEntries())

	want := strings.Join([]string{
		"# Playwright",
		"node_modules/",
		"/test-results/",
		"/playwright-report/",
		"/blob-report/",
		"/playwright/.cache/",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Ignore() =\n%q\nwant\n%q", got, want)
	}
}

func TestIgnore_EquivalentFormsRecognized(t *testing.T) {
	// node_modules without the trailing slash still satisfies the
	// node_modules/ requirement.
	existing := "node_modules\n/test-results/\n/playwright-report/\n/blob-report/\n/playwright/.cache/\n"

	got := Ignore(existing, DefaultIgnoreEntries())
	if got != existing {
		t.Errorf("expected unchanged content, got:\n%q", got)
	}
	if strings.Contains(got, ignoreHeading) {
		t.Error("heading must not appear when nothing is missing")
	}
}

func TestIgnore_PartiallyPresent(t *testing.T) {
	existing := "dist/\nnode_modules/\n"

	got := Ignore(existing, DefaultIgnoreEntries())

	if strings.Count(got, "node_modules") != 1 {
		t.Errorf("node_modules duplicated:\n%q", got)
	}
	if strings.Count(got, ignoreHeading) != 1 {
		t.Errorf("expected heading exactly once:\n%q", got)
	}
	for _, entry := range []string{"/test-results/", "/playwright-report/", "/blob-report/", "/playwright/.cache/"} {
		if !strings.Contains(got, entry+"\n") {
			t.Errorf("missing entry %q in:\n%q", entry, got)
		}
	}
	if !strings.HasPrefix(got, existing) {
		t.Errorf("existing content not preserved verbatim:\n%q", got)
	}
}

func TestIgnore_Idempotent(t *testing.T) {
	tests := []struct {
		name     string
		existing string
	}{
		{"empty file", ""},
		{"unrelated content", "dist/\n*.log"},
		{"no trailing newline", "node_modules"},
		{"already satisfied", "node_modules/\n/test-results/\n/playwright-report/\n/blob-report/\n/playwright/.cache/\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := Ignore(tt.existing, DefaultIgnoreEntries())
			twice := Ignore(once, DefaultIgnoreEntries())
			if once != twice {
				t.Errorf("patch not idempotent:\nonce:  %q\ntwice: %q", once, twice)
			}
		})
	}
}

func TestIgnore_LeadingSlashTolerance(t *testing.T) {
	existing := "test-results\nplaywright-report/\n"
	got := Ignore(existing, DefaultIgnoreEntries())

	if strings.Contains(got, "/test-results/\n") {
		t.Errorf("test-results duplicated despite equivalent form:\n%q", got)
	}
	if strings.Contains(got, "/playwright-report/\n") {
		t.Errorf("playwright-report duplicated despite equivalent form:\n%q", got)
	}
}
