// Package engine orchestrates one scaffolding run.
//
// A run is a strictly sequential pipeline: plan commands, render assets,
// execute pre-phase commands, write the file map, patch .gitignore and
// package.json, execute post-phase commands. Each stage completes before
// the next begins; any failure aborts the remaining stages without rolling
// back files already written.
package engine

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/playscaffold/playscaffold/internal/answers"
	"github.com/playscaffold/playscaffold/internal/clock"
	"github.com/playscaffold/playscaffold/internal/fsops"
	"github.com/playscaffold/playscaffold/internal/nodepm"
	"github.com/playscaffold/playscaffold/internal/patch"
	"github.com/playscaffold/playscaffold/internal/planner"
)

// Engine performs scaffolding runs. It is the main API surface called by
// the CLI.
type Engine struct {
	assets fs.FS
	fs     fsops.FS
	runner Runner
	pm     nodepm.PackageManager
	clk    clock.Clock

	// OnProgress, when set, receives a short label before each
	// long-running step.
	OnProgress func(label string)
}

// New creates an Engine. The assets FS is the root of the embedded
// template tree; passing it in keeps the engine free of any implicit
// working-directory dependency.
func New(assets fs.FS, filesystem fsops.FS, runner Runner, pm nodepm.PackageManager, clk clock.Clock) *Engine {
	return &Engine{
		assets: assets,
		fs:     filesystem,
		runner: runner,
		pm:     pm,
		clk:    clk,
	}
}

// Generate executes one scaffolding run.
func (e *Engine) Generate(ctx context.Context, req *Request) (*Result, error) {
	start := e.clk.Now()

	a := req.Answers
	if err := a.Validate(); err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(req.RootDir, "package.json")
	facts, err := e.observeFacts(manifestPath)
	if err != nil {
		return nil, err
	}
	plan := planner.Build(a, facts, e.pm)

	// Render everything up front: a malformed asset must abort the run
	// before any command touches the target.
	files, err := e.renderFiles(a)
	if err != nil {
		return nil, err
	}

	// A dry run must not touch the filesystem, so the target directory
	// is only created once the run is committed.
	result := &Result{Plan: plan, Written: files.order}
	if req.DryRun {
		result.Duration = e.clk.Now().Sub(start)
		return result, nil
	}

	if err := e.fs.MkdirAll(req.RootDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create target directory: %w", err)
	}

	if err := e.runPhase(ctx, req.RootDir, plan.Pre); err != nil {
		return nil, err
	}

	if err := e.writeFiles(req.RootDir, files); err != nil {
		return nil, err
	}

	patchedIgnore, err := e.patchGitignore(req.RootDir)
	if err != nil {
		return nil, err
	}
	result.PatchedGitignore = patchedIgnore

	patchedManifest, err := e.patchManifest(manifestPath, a)
	if err != nil {
		return nil, err
	}
	result.PatchedManifest = patchedManifest

	if err := e.runPhase(ctx, req.RootDir, plan.Post); err != nil {
		return nil, err
	}

	result.Duration = e.clk.Now().Sub(start)
	return result, nil
}

// observeFacts reads the environment facts the planner decides on.
// A missing or unreadable manifest counts as "nothing declared yet".
func (e *Engine) observeFacts(manifestPath string) (planner.Facts, error) {
	exists, err := e.fs.Exists(manifestPath)
	if err != nil {
		return planner.Facts{}, fmt.Errorf("failed to check for package.json: %w", err)
	}

	facts := planner.Facts{HasManifest: exists}
	if exists {
		if data, err := e.fs.ReadFile(manifestPath); err == nil {
			facts.HasNodeTypes = patch.HasDependency(data, "@types/node")
		}
	}
	return facts, nil
}

// runPhase executes one phase's commands in append order, fail-fast.
func (e *Engine) runPhase(ctx context.Context, dir string, cmds []planner.Command) error {
	for _, cmd := range cmds {
		e.progress(cmd.Name)
		if err := e.runner.Run(ctx, dir, cmd.Command); err != nil {
			return fmt.Errorf("%w: %s (%q): %v", ErrCommandFailed, cmd.Name, cmd.Command, err)
		}
	}
	return nil
}

// writeFiles writes the file map to disk. Paths are disjoint by contract,
// so write order does not matter; insertion order is kept for predictable
// output.
func (e *Engine) writeFiles(root string, files *fileMap) error {
	for _, rel := range files.order {
		if err := fsops.ValidateRelPath(rel); err != nil {
			return fmt.Errorf("refusing to write %s: %w", rel, err)
		}
		dest := filepath.Join(root, filepath.FromSlash(rel))
		if err := e.fs.WriteFile(dest, files.content[rel], 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", rel, err)
		}
	}
	return nil
}

// patchGitignore appends the required ignore entries, creating the file
// when the project has none.
func (e *Engine) patchGitignore(root string) (bool, error) {
	ignorePath := filepath.Join(root, ".gitignore")

	existing := ""
	if data, err := e.fs.ReadFile(ignorePath); err == nil {
		existing = string(data)
	}

	patched := patch.Ignore(existing, patch.DefaultIgnoreEntries())
	if patched == existing {
		return false, nil
	}
	if err := e.fs.WriteFile(ignorePath, []byte(patched), 0644); err != nil {
		return false, fmt.Errorf("failed to patch .gitignore: %w", err)
	}
	return true, nil
}

// patchManifest applies the scripts patch to package.json. The manifest
// normally exists by now (project init ran in the pre phase); if it is
// missing or unparsable the patch is skipped rather than failing the run.
func (e *Engine) patchManifest(manifestPath string, a answers.Answers) (bool, error) {
	data, err := e.fs.ReadFile(manifestPath)
	if err != nil {
		return false, nil
	}

	ctExt := ""
	if a.IsComponentTesting() {
		ctExt = a.FileExt()
	}

	patched, changed := patch.Manifest(data, ctExt)
	if !changed {
		return false, nil
	}
	if err := e.fs.WriteFile(manifestPath, patched, 0644); err != nil {
		return false, fmt.Errorf("failed to patch package.json: %w", err)
	}
	return true, nil
}

func (e *Engine) progress(label string) {
	if e.OnProgress != nil {
		e.OnProgress(label)
	}
}
