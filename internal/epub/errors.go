package epub

import "errors"

// Errors reported by Load and Save. Top-level failures wrap one of these
// as the cause, so callers can match with errors.Is.
var (
	ErrNotFound         = errors.New("EPUB file not found")
	ErrInvalidStructure = errors.New("invalid EPUB file structure")
	ErrNoRootfile       = errors.New("unable to locate the main content file")
	ErrInvalidMetadata  = errors.New("invalid book metadata")
)
