package tmpl

import (
	"strings"
	"testing"
)

const sectionTemplate = `line before
// begin-chromium
  { name: 'chromium' },
// end-chromium
line after`

func TestSectionDirectives(t *testing.T) {
	tests := []struct {
		name     string
		sections Sections
		want     string
	}{
		{
			name:     "show keeps inner lines and strips markers",
			sections: Sections{"chromium": Show},
			want:     "line before\n  { name: 'chromium' },\nline after",
		},
		{
			name:     "unset section defaults to show",
			sections: nil,
			want:     "line before\n  { name: 'chromium' },\nline after",
		},
		{
			name:     "hide removes markers and inner lines",
			sections: Sections{"chromium": Hide},
			want:     "line before\nline after",
		},
		{
			name:     "comment prefixes inner lines",
			sections: Sections{"chromium": Comment},
			want:     "line before\n//   { name: 'chromium' },\nline after",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(sectionTemplate, nil, tt.sections, ScriptDialect)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			if strings.Contains(got, "begin-") || strings.Contains(got, "end-") {
				t.Errorf("markers leaked into output: %q", got)
			}
		})
	}
}

func TestMarkupDialectSections(t *testing.T) {
	template := strings.Join([]string{
		"jobs:",
		"# begin-upload-report",
		"  - uses: actions/upload-artifact@v4",
		"# end-upload-report",
		"  - run: echo done",
	}, "\n")

	got, err := Render(template, nil, Sections{"upload-report": Hide}, MarkupDialect)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "jobs:\n  - run: echo done"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestParseSections_Errors(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"unclosed section", "// begin-chromium\nline"},
		{"stray end marker", "line\n// end-chromium"},
		{"mismatched names", "// begin-chromium\nline\n// end-firefox"},
		{"nested sections", "// begin-a\n// begin-b\n// end-b\n// end-a"},
		{"begin without name", "// begin-\nline\n// end-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSections(strings.Split(tt.template, "\n"), ScriptDialect)
			if err == nil {
				t.Error("expected parse error, got nil")
			}
		})
	}
}

func TestCommentDirectiveCommentsBlankLines(t *testing.T) {
	template := "// begin-x\nfirst\n\nsecond\n// end-x"
	got, err := Render(template, nil, Sections{"x": Comment}, ScriptDialect)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "// first\n//\n// second"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		path string
		want Dialect
	}{
		{"playwright.config.ts", ScriptDialect},
		{"playwright.config.js", ScriptDialect},
		{"github-actions.yml", MarkupDialect},
		{"workflow.yaml", MarkupDialect},
	}
	for _, tt := range tests {
		if got := DialectFor(tt.path); got != tt.want {
			t.Errorf("DialectFor(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
