package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/playscaffold/playscaffold/assets"
	"github.com/playscaffold/playscaffold/internal/answers"
	"github.com/playscaffold/playscaffold/internal/clock"
	"github.com/playscaffold/playscaffold/internal/nodepm"
	"github.com/playscaffold/playscaffold/internal/tmpl"
)

func testEngine() *Engine {
	log := &runLog{}
	mfs := newMemFS(log)
	return New(assets.Templates(), mfs, &fakeRunner{log: log, fs: mfs}, nodepm.ByName("npm"), clock.NewFakeClock(time.Now()))
}

func TestFileMap_DuplicatePathPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate path")
		}
	}()

	fm := newFileMap()
	fm.add("playwright.config.ts", []byte("a"))
	fm.add("playwright.config.ts", []byte("b"))
}

func TestBrowserSections(t *testing.T) {
	tests := []struct {
		name   string
		subset []string
		want   map[string]tmpl.Directive
	}{
		{
			name:   "no subset shows all",
			subset: nil,
			want: map[string]tmpl.Directive{
				"chromium": tmpl.Show, "firefox": tmpl.Show, "webkit": tmpl.Show,
			},
		},
		{
			name:   "subset comments out the rest",
			subset: []string{"chromium"},
			want: map[string]tmpl.Directive{
				"chromium": tmpl.Show, "firefox": tmpl.Comment, "webkit": tmpl.Comment,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := answers.Defaults()
			a.Browsers = tt.subset
			sections := browserSections(a)
			for name, want := range tt.want {
				if sections[name] != want {
					t.Errorf("sections[%q] = %v, want %v", name, sections[name], want)
				}
			}
		})
	}
}

func TestRenderFiles_BrowserSubsetCommentsConfig(t *testing.T) {
	e := testEngine()
	a := answers.Defaults()
	a.Browsers = []string{"chromium"}

	fm, err := e.renderFiles(a)
	if err != nil {
		t.Fatalf("renderFiles() error = %v", err)
	}

	config := string(fm.content["playwright.config.ts"])
	if !strings.Contains(config, "      name: 'chromium',") {
		t.Errorf("chromium project missing:\n%s", config)
	}
	if !strings.Contains(config, "//       name: 'firefox',") {
		t.Errorf("firefox project not commented out:\n%s", config)
	}
	if !strings.Contains(config, "//       name: 'webkit',") {
		t.Errorf("webkit project not commented out:\n%s", config)
	}
}

func TestRenderFiles_JavaScriptVariant(t *testing.T) {
	e := testEngine()
	a := answers.Defaults()
	a.Language = answers.JavaScript
	a.TestDir = "e2e"
	a.AddGitHubActions = false

	fm, err := e.renderFiles(a)
	if err != nil {
		t.Fatalf("renderFiles() error = %v", err)
	}

	want := []string{
		"playwright.config.js",
		"e2e/example.spec.js",
		"tests-examples/demo-todo-app.spec.js",
	}
	if len(fm.order) != len(want) {
		t.Fatalf("order = %v, want %v", fm.order, want)
	}
	for i := range want {
		if fm.order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, fm.order[i], want[i])
		}
	}

	config := string(fm.content["playwright.config.js"])
	if !strings.Contains(config, "testDir: './e2e'") {
		t.Errorf("testDir not substituted:\n%s", config)
	}
}

func TestRenderFiles_CTBootstrapReferencesLanguage(t *testing.T) {
	e := testEngine()
	a := answers.Defaults()
	a.Framework = answers.Vue
	a.Language = answers.JavaScript
	a.AddGitHubActions = false

	fm, err := e.renderFiles(a)
	if err != nil {
		t.Fatalf("renderFiles() error = %v", err)
	}

	html := string(fm.content["playwright/index.html"])
	if !strings.Contains(html, `src="./index.js"`) {
		t.Errorf("bootstrap html does not reference index.js:\n%s", html)
	}
	if _, ok := fm.content["playwright/index.js"]; !ok {
		t.Errorf("bootstrap script missing: %v", fm.order)
	}
}

func TestRunTestsCommand(t *testing.T) {
	e := testEngine()

	a := answers.Defaults()
	if got := e.runTestsCommand(a); got != "npx playwright test" {
		t.Errorf("e2e runTestsCommand = %q", got)
	}

	a.Framework = answers.Svelte
	if got := e.runTestsCommand(a); got != "npm run test-ct" {
		t.Errorf("ct runTestsCommand = %q", got)
	}
}
