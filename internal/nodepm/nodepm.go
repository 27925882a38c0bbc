// Package nodepm models the Node package manager the scaffolder drives.
//
// A PackageManager builds ready-to-run shell strings for the handful of
// operations the planner needs; the planner itself never assembles shell
// syntax. Detection follows the npm_config_user_agent convention set by
// npm, yarn and pnpm when they invoke a script.
package nodepm

import (
	"os"
	"strings"
)

// PackageManager builds shell command strings for one package manager.
type PackageManager interface {
	// Name is the package manager's binary name.
	Name() string

	// Init returns the command that creates a fresh project manifest.
	Init() string

	// InstallDev returns the command that installs packages as dev
	// dependencies.
	InstallDev(packages ...string) string

	// InstallAll returns the command CI uses to install the locked
	// dependency set.
	InstallAll() string

	// RunScript returns the command that runs a manifest script.
	RunScript(script string) string

	// Exec returns the command that invokes a package binary through the
	// manager's execute-package mechanism (npx and friends).
	Exec(cmdline string) string
}

type npm struct{}

func (npm) Name() string { return "npm" }
func (npm) Init() string { return "npm init -y" }
func (npm) InstallDev(packages ...string) string {
	return "npm install --save-dev " + strings.Join(packages, " ")
}
func (npm) InstallAll() string { return "npm ci" }
func (npm) RunScript(script string) string { return "npm run " + script }
func (npm) Exec(cmdline string) string { return "npx " + cmdline }

type yarn struct{}

func (yarn) Name() string { return "yarn" }
func (yarn) Init() string { return "yarn init -y" }
func (yarn) InstallDev(packages ...string) string {
	return "yarn add --dev " + strings.Join(packages, " ")
}
func (yarn) InstallAll() string { return "yarn" }
func (yarn) RunScript(script string) string { return "yarn " + script }
func (yarn) Exec(cmdline string) string { return "yarn " + cmdline }

type pnpm struct{}

func (pnpm) Name() string { return "pnpm" }
func (pnpm) Init() string { return "pnpm init" }
func (pnpm) InstallDev(packages ...string) string {
	return "pnpm add --save-dev " + strings.Join(packages, " ")
}
func (pnpm) InstallAll() string { return "pnpm install" }
func (pnpm) RunScript(script string) string { return "pnpm run " + script }
func (pnpm) Exec(cmdline string) string { return "pnpm exec " + cmdline }

// ByName returns the package manager with the given name, defaulting to
// npm for anything unrecognized.
func ByName(name string) PackageManager {
	switch name {
	case "yarn":
		return yarn{}
	case "pnpm":
		return pnpm{}
	default:
		return npm{}
	}
}

// DetectUserAgent picks the package manager from an npm_config_user_agent
// value such as "pnpm/9.1.0 npm/? node/v20.12.0 linux x64".
func DetectUserAgent(userAgent string) PackageManager {
	switch {
	case strings.HasPrefix(userAgent, "yarn/"):
		return yarn{}
	case strings.HasPrefix(userAgent, "pnpm/"):
		return pnpm{}
	default:
		return npm{}
	}
}

// Detect picks the package manager from the invoking environment.
func Detect() PackageManager {
	return DetectUserAgent(os.Getenv("npm_config_user_agent"))
}
