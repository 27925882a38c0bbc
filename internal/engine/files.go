package engine

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/playscaffold/playscaffold/internal/answers"
	"github.com/playscaffold/playscaffold/internal/tmpl"
)

// fileMap accumulates rendered output files for one run, keyed by
// slash-separated path relative to the project root. Each contributing
// step owns distinct paths; adding the same path twice is a bug in the
// asset wiring, not a runtime condition, so add panics on duplicates.
type fileMap struct {
	order   []string
	content map[string][]byte
}

func newFileMap() *fileMap {
	return &fileMap{content: make(map[string][]byte)}
}

func (fm *fileMap) add(relPath string, data []byte) {
	if _, exists := fm.content[relPath]; exists {
		panic(fmt.Sprintf("file map already contains %q", relPath))
	}
	fm.order = append(fm.order, relPath)
	fm.content[relPath] = data
}

// renderFiles renders every asset the answers call for and returns the
// resulting file map. A malformed asset fails here, before any command
// has run.
func (e *Engine) renderFiles(a answers.Answers) (*fileMap, error) {
	ext := a.FileExt()
	sections := browserSections(a)
	fm := newFileMap()

	if a.IsComponentTesting() {
		vars := tmpl.Vars{"ctFramework": string(a.Framework)}
		if err := e.renderInto(fm, "playwright-ct.config."+ext, "playwright-ct.config."+ext, vars, sections); err != nil {
			return nil, err
		}
		if err := e.renderInto(fm, "index.html", "playwright/index.html", tmpl.Vars{"ext": ext}, nil); err != nil {
			return nil, err
		}
		if err := e.renderInto(fm, "index."+ext, "playwright/index."+ext, nil, nil); err != nil {
			return nil, err
		}
	} else {
		vars := tmpl.Vars{"testDir": a.TestDir}
		if err := e.renderInto(fm, "playwright.config."+ext, "playwright.config."+ext, vars, sections); err != nil {
			return nil, err
		}
		if err := e.renderInto(fm, "example.spec."+ext, path.Join(a.TestDir, "example.spec."+ext), nil, nil); err != nil {
			return nil, err
		}
		if err := e.renderInto(fm, "demo-todo-app.spec."+ext, "tests-examples/demo-todo-app.spec."+ext, nil, nil); err != nil {
			return nil, err
		}
	}

	if a.AddGitHubActions {
		vars := tmpl.Vars{
			"installCommand":         e.pm.InstallAll(),
			"installBrowsersCommand": e.pm.Exec("playwright install --with-deps"),
			"runTestsCommand":        e.runTestsCommand(a),
		}
		if err := e.renderInto(fm, "github-actions.yml", ".github/workflows/playwright.yml", vars, nil); err != nil {
			return nil, err
		}
	}

	return fm, nil
}

// renderInto renders one embedded asset and records it under relPath.
func (e *Engine) renderInto(fm *fileMap, asset, relPath string, vars tmpl.Vars, sections tmpl.Sections) error {
	data, err := fs.ReadFile(e.assets, asset)
	if err != nil {
		return fmt.Errorf("%w: missing asset %s: %v", ErrMalformedAsset, asset, err)
	}

	rendered, err := tmpl.Render(string(data), vars, sections, tmpl.DialectFor(asset))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedAsset, asset, err)
	}

	fm.add(relPath, []byte(rendered))
	return nil
}

// runTestsCommand is the CI invocation that runs the generated tests.
func (e *Engine) runTestsCommand(a answers.Answers) string {
	if a.IsComponentTesting() {
		return e.pm.RunScript("test-ct")
	}
	return e.pm.Exec("playwright test")
}

// browserSections maps every known browser to its section directive:
// enabled browsers are shown, disabled ones stay in the config as
// commented-out blocks.
func browserSections(a answers.Answers) tmpl.Sections {
	sections := make(tmpl.Sections, len(answers.KnownBrowsers))
	for _, browser := range answers.KnownBrowsers {
		if a.BrowserEnabled(browser) {
			sections[browser] = tmpl.Show
		} else {
			sections[browser] = tmpl.Comment
		}
	}
	return sections
}
