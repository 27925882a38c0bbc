package engine

import (
	"time"

	"github.com/playscaffold/playscaffold/internal/answers"
	"github.com/playscaffold/playscaffold/internal/planner"
)

// Request describes one scaffolding run.
type Request struct {
	// RootDir is the target project directory. Created if missing.
	RootDir string

	// Answers are the resolved setup choices.
	Answers answers.Answers

	// DryRun plans and renders without running commands or writing files.
	DryRun bool
}

// Result summarizes a completed (or dry) run.
type Result struct {
	// Plan is the command plan that was (or would be) executed.
	Plan *planner.Plan

	// Written is the ordered list of relative paths written.
	Written []string

	// PatchedGitignore is true when .gitignore gained entries.
	PatchedGitignore bool

	// PatchedManifest is true when package.json scripts were modified.
	PatchedManifest bool

	// Duration is the wall time of the run.
	Duration time.Duration
}
