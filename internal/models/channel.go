package models

import (
	"fmt"
	"time"
)

// Channel classifies a build for commit and tag naming. It never affects
// the version values themselves.
type Channel int

// The build channels.
const (
	ChannelProduction Channel = iota
	ChannelInternal
	ChannelNightly
	ChannelBeta
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelInternal:
		return "internal"
	case ChannelNightly:
		return "nightly"
	case ChannelBeta:
		return "beta"
	default:
		return "production"
	}
}

// CommitMessage formats the bump commit message for the channel. The full
// version is quoted inside the message; nightly builds additionally carry
// the calendar date of the bump.
func (c Channel) CommitMessage(full string, now time.Time) string {
	base := fmt.Sprintf("\"Bump build to %s.\"", full)
	switch c {
	case ChannelInternal:
		return base + " (Internal)"
	case ChannelBeta:
		return base + " (Beta)"
	case ChannelNightly:
		return fmt.Sprintf("%s (nightly-%s)", base, now.Format("01-02-2006"))
	default:
		return base
	}
}

// TagName formats the tag name for the channel: the full version, suffixed
// for every channel except production.
func (c Channel) TagName(full string) string {
	switch c {
	case ChannelInternal:
		return full + "-internal"
	case ChannelNightly:
		return full + "-nightly"
	case ChannelBeta:
		return full + "-beta"
	default:
		return full
	}
}
