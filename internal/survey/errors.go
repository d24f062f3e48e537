package survey

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectoryNotFound is returned when a method folder does not exist.
	ErrDirectoryNotFound = errors.New("method directory not found")
	// ErrNoCommonFiles is returned when the two method folders share no filenames.
	ErrNoCommonFiles = errors.New("no common files")
	// ErrPromptNotFound is returned when an index has no prompt table entry.
	ErrPromptNotFound = errors.New("prompt not found")
	// ErrFilesystem wraps read and write failures.
	ErrFilesystem = errors.New("filesystem error")
)

// PromptLookupError reports an index missing from the prompt table.
type PromptLookupError struct {
	Index string
	Table string
}

func (e *PromptLookupError) Error() string {
	return fmt.Sprintf("no prompt for index %q in %s", e.Index, e.Table)
}

// Unwrap lets errors.Is match ErrPromptNotFound.
func (e *PromptLookupError) Unwrap() error {
	return ErrPromptNotFound
}

func fsError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrFilesystem, op, path, err)
}

type noCommonFilesError struct {
	methodA, methodB string
}

func (e *noCommonFilesError) Error() string {
	return fmt.Sprintf("no common files found between %s and %s", e.methodA, e.methodB)
}

func (e *noCommonFilesError) Unwrap() error {
	return ErrNoCommonFiles
}
