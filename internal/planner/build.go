package planner

import (
	"strings"

	"github.com/playscaffold/playscaffold/internal/answers"
	"github.com/playscaffold/playscaffold/internal/nodepm"
)

// Facts are the environment observations the decision table depends on.
// They are computed once by the caller before planning.
type Facts struct {
	// HasManifest is true when the target directory already has a
	// package.json.
	HasManifest bool

	// HasNodeTypes is true when @types/node is already declared in the
	// manifest. An unreadable manifest counts as "not declared".
	HasNodeTypes bool
}

// Build produces the command plan for one scaffolding run.
//
// Each decision-table row appends independently; rows are evaluated in a
// fixed order so that project initialization always precedes dependency
// installation.
func Build(a answers.Answers, facts Facts, pm nodepm.PackageManager) *Plan {
	plan := NewPlan()

	if !facts.HasManifest {
		plan.Append("Initializing project", pm.Init(), Pre)
	}

	if a.IsComponentTesting() {
		pkg := tagged("@playwright/experimental-ct-"+string(a.Framework), a.Tag)
		plan.Append("Installing Playwright Component Testing ("+string(a.Framework)+")", pm.InstallDev(pkg), Pre)
	} else {
		pkgs := []string{
			tagged("@playwright/test", a.Tag),
			tagged("dotenv", a.Tag),
			tagged("@playwright/test-helpers", a.Tag),
		}
		plan.Append("Installing Playwright Test", pm.InstallDev(pkgs...), Pre)
	}

	if !facts.HasNodeTypes {
		plan.Append("Installing Types", pm.InstallDev("@types/node"), Pre)
	}

	if a.InstallBrowsers {
		cmdline := "playwright install"
		if a.WithDeps {
			cmdline += " --with-deps"
		}
		if len(a.Browsers) > 0 {
			cmdline += " " + strings.Join(a.Browsers, " ")
		}
		plan.Append("Downloading browsers", pm.Exec(cmdline), Post)
	}

	return plan
}

// tagged appends a dist tag (beta/next) to a package name.
func tagged(pkg, tag string) string {
	if tag == "" {
		return pkg
	}
	return pkg + "@" + tag
}
