package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoLocations is returned when the catalog offers nothing to select.
	ErrNoLocations = errors.New("tui: location catalog is empty")
)
