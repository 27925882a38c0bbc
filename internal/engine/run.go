package engine

import (
	"context"
	"io"
	"os/exec"
	"runtime"
)

// Runner executes one planned shell command to completion.
// Commands are blocking: later commands assume artifacts (a fresh
// manifest, installed dependencies) from earlier ones.
type Runner interface {
	Run(ctx context.Context, dir, command string) error
}

// ShellRunner runs commands through the platform shell.
type ShellRunner struct {
	// Stdout and Stderr receive the command's output.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes command in dir and waits for it to finish.
func (r *ShellRunner) Run(ctx context.Context, dir, command string) error {
	shell, flag := "/bin/sh", "-c"
	if runtime.GOOS == "windows" {
		shell, flag = "cmd", "/C"
	}

	cmd := exec.CommandContext(ctx, shell, flag, command)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}
