// Package answers holds the resolved setup choices for one scaffolding run.
//
// Answers are produced once, from CLI flags, an optional YAML answers file,
// or interactive prompts, and are read-only afterwards. The core engine and
// planner only ever consume them.
package answers

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Language is the language of the generated test files.
type Language string

const (
	TypeScript Language = "TypeScript"
	JavaScript Language = "JavaScript"
)

// Framework is an optional component-testing framework. Empty means a
// regular end-to-end setup.
type Framework string

const (
	NoFramework Framework = ""
	React       Framework = "react"
	Vue         Framework = "vue"
	Svelte      Framework = "svelte"
)

// KnownBrowsers is the set of browser engines the generated config can
// target, in the order they appear in the config template.
var KnownBrowsers = []string{"chromium", "firefox", "webkit"}

// Answers captures the resolved setup choices for a run.
type Answers struct {
	// TestDir is the directory test files are generated into,
	// relative to the project root.
	TestDir string `yaml:"testDir"`

	// Language selects TypeScript or JavaScript output.
	Language Language `yaml:"language"`

	// Framework, when set, switches the run to component testing.
	Framework Framework `yaml:"framework"`

	// AddGitHubActions generates a CI workflow file.
	AddGitHubActions bool `yaml:"addGitHubActions"`

	// InstallBrowsers downloads browsers after files are written.
	InstallBrowsers bool `yaml:"installBrowsers"`

	// WithDeps also installs OS-level browser dependencies.
	WithDeps bool `yaml:"withDeps"`

	// Browsers restricts which engines are enabled in the config and
	// downloaded. Empty means all known browsers.
	Browsers []string `yaml:"browsers"`

	// Tag pins installed packages to a dist tag ("beta" or "next").
	// Empty installs the latest release.
	Tag string `yaml:"tag"`
}

// Defaults returns the answers used when no choice was made, matching the
// prompt defaults.
func Defaults() Answers {
	return Answers{
		TestDir:          "tests",
		Language:         TypeScript,
		AddGitHubActions: true,
		InstallBrowsers:  true,
	}
}

// FileExt returns the source file extension for the chosen language.
func (a Answers) FileExt() string {
	if a.Language == JavaScript {
		return "js"
	}
	return "ts"
}

// IsComponentTesting reports whether a component-testing framework was
// selected.
func (a Answers) IsComponentTesting() bool {
	return a.Framework != NoFramework
}

// BrowserEnabled reports whether the given engine should be active in the
// generated config. An empty subset enables every known browser.
func (a Answers) BrowserEnabled(name string) bool {
	if len(a.Browsers) == 0 {
		return true
	}
	for _, b := range a.Browsers {
		if b == name {
			return true
		}
	}
	return false
}

// Validate checks the answers for values the engine cannot act on.
func (a Answers) Validate() error {
	if a.TestDir == "" {
		return fmt.Errorf("test directory must not be empty")
	}
	switch a.Language {
	case TypeScript, JavaScript:
	default:
		return fmt.Errorf("unknown language %q (expected TypeScript or JavaScript)", a.Language)
	}
	switch a.Framework {
	case NoFramework, React, Vue, Svelte:
	default:
		return fmt.Errorf("unknown component-testing framework %q (expected react, vue or svelte)", a.Framework)
	}
	switch a.Tag {
	case "", "beta", "next":
	default:
		return fmt.Errorf("unknown dist tag %q (expected beta or next)", a.Tag)
	}
	for _, b := range a.Browsers {
		if !isKnownBrowser(b) {
			return fmt.Errorf("unknown browser %q (expected one of %v)", b, KnownBrowsers)
		}
	}
	return nil
}

func isKnownBrowser(name string) bool {
	for _, b := range KnownBrowsers {
		if b == name {
			return true
		}
	}
	return false
}

// Load reads answers from a YAML file. Fields absent from the file keep
// the defaults.
func Load(path string) (Answers, error) {
	a := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("failed to read answers file: %w", err)
	}
	if err := yaml.Unmarshal(data, &a); err != nil {
		return a, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}
	if err := a.Validate(); err != nil {
		return a, fmt.Errorf("invalid answers file %s: %w", path, err)
	}
	return a, nil
}
