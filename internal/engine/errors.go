package engine

import "errors"

var (
	// ErrMalformedAsset indicates a broken embedded template. This is a
	// packaging defect, caught before any command runs.
	ErrMalformedAsset = errors.New("malformed template asset")

	// ErrCommandFailed indicates a planned shell command exited with an
	// error; the remaining plan is aborted.
	ErrCommandFailed = errors.New("command failed")
)
