// Package models contains the domain models for the application.
package models

import "context"

// Marker identifies one of the three version markers inside a descriptor.
type Marker string

// The descriptor markers. Each descriptor carries all three; they are kept
// mutually consistent on every bump.
const (
	// MarkerRelease holds the three-component release version.
	MarkerRelease Marker = "CFBundleShortVersionString"
	// MarkerBuild holds the build counter within the release track.
	MarkerBuild Marker = "CFBundleVersion"
	// MarkerFull holds the denormalized four-component full version.
	MarkerFull Marker = "OWSBundleVersion4"
)

// Bump modes.
const (
	// ModeExplicit starts a new release track at a given version.
	ModeExplicit = "explicit"
	// ModeIncrement advances the build counter within the current track.
	ModeIncrement = "increment"
)

// Bump holds the result of a version bump computation.
type Bump struct {
	OldRelease string // release version before the bump
	OldBuild   string // build counter before the bump
	NewRelease string
	NewBuild   string
	NewFull    string // always NewRelease ++ NewBuild
	Mode       string // ModeExplicit or ModeIncrement
}

// Executor defines the interface for running external commands.
type Executor interface {
	// Run executes a command, showing spinnerMsg while it runs.
	Run(ctx context.Context, name string, args []string, spinnerMsg string) error
	// Output executes a command and returns its captured standard output.
	Output(ctx context.Context, name string, args []string) ([]byte, error)
}

// Repository defines the version-control operations the bump depends on.
type Repository interface {
	// EnsureClean fails when the working tree has pending changes.
	EnsureClean(ctx context.Context) error
	// StageAll stages every change in the working tree.
	StageAll(ctx context.Context) error
	// Commit records the staged changes with the given message.
	Commit(ctx context.Context, message string) error
	// Tag creates a lightweight tag at HEAD.
	Tag(ctx context.Context, name string) error
}

// Converter ensures a descriptor is plain-text XML before it is parsed.
type Converter interface {
	EnsureXML(ctx context.Context, path string) error
}
