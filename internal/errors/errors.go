// Package errors provides custom error types and error handling utilities.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// MalformedVersionError represents a version string that does not match its
// expected numeric-dot shape, or that parses but does not reproduce the
// original string when re-formatted.
type MalformedVersionError struct {
	Kind  string // which version form was expected, e.g. "release version"
	Input string
}

// Error returns the error message.
func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("Malformed %s: %q", e.Kind, e.Input)
}

// NewMalformedVersionError creates a new MalformedVersionError.
func NewMalformedVersionError(kind, input string) error {
	return &MalformedVersionError{
		Kind:  kind,
		Input: input,
	}
}

// MissingMarkerError represents a descriptor that is missing one of the
// expected version markers. This is fatal for the whole command: a
// descriptor with schema drift must never be partially updated.
type MissingMarkerError struct {
	Path   string
	Marker string
}

// Error returns the error message.
func (e *MissingMarkerError) Error() string {
	return fmt.Sprintf("Could not find marker %q in %s", e.Marker, e.Path)
}

// NewMissingMarkerError creates a new MissingMarkerError.
func NewMissingMarkerError(path, marker string) error {
	return &MissingMarkerError{
		Path:   path,
		Marker: marker,
	}
}

// DirtyRepositoryError represents a working tree with pending changes. The
// pre-flight cleanliness check is the command's only atomicity safeguard,
// so any pending change blocks every mutation.
type DirtyRepositoryError struct {
	Output string // the git status or diff output that triggered the abort
}

// Error returns the error message.
func (e *DirtyRepositoryError) Error() string {
	return fmt.Sprintf("Git repository has pending changes:\n%s", strings.TrimRight(e.Output, "\n"))
}

// NewDirtyRepositoryError creates a new DirtyRepositoryError.
func NewDirtyRepositoryError(output string) error {
	return &DirtyRepositoryError{Output: output}
}

// SubprocessError represents an external command that exited non-zero.
type SubprocessError struct {
	Command string // the full command line that was run
	Stderr  string
	Err     error
}

// Error returns the error message.
func (e *SubprocessError) Error() string {
	if strings.TrimSpace(e.Stderr) != "" {
		return fmt.Sprintf("Command `%s` failed: %v\nDetail: %s", e.Command, e.Err, strings.TrimSpace(e.Stderr))
	}
	return fmt.Sprintf("Command `%s` failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *SubprocessError) Unwrap() error {
	return e.Err
}

// NewSubprocessError creates a new SubprocessError.
func NewSubprocessError(command, stderr string, err error) error {
	return &SubprocessError{
		Command: command,
		Stderr:  stderr,
		Err:     err,
	}
}

// IsMalformedVersionError returns true if the error is a MalformedVersionError.
func IsMalformedVersionError(err error) bool {
	var verErr *MalformedVersionError
	return errors.As(err, &verErr)
}

// IsMissingMarkerError returns true if the error is a MissingMarkerError.
func IsMissingMarkerError(err error) bool {
	var markerErr *MissingMarkerError
	return errors.As(err, &markerErr)
}

// IsDirtyRepositoryError returns true if the error is a DirtyRepositoryError.
func IsDirtyRepositoryError(err error) bool {
	var dirtyErr *DirtyRepositoryError
	return errors.As(err, &dirtyErr)
}

// IsSubprocessError returns true if the error is a SubprocessError.
func IsSubprocessError(err error) bool {
	var subErr *SubprocessError
	return errors.As(err, &subErr)
}
