package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var nightlyDate = time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

func TestChannel_CommitMessage(t *testing.T) {
	tests := []struct {
		name    string
		channel Channel
		want    string
	}{
		{"production", ChannelProduction, `"Bump build to 6.0.0.0."`},
		{"internal", ChannelInternal, `"Bump build to 6.0.0.0." (Internal)`},
		{"beta", ChannelBeta, `"Bump build to 6.0.0.0." (Beta)`},
		{"nightly", ChannelNightly, `"Bump build to 6.0.0.0." (nightly-01-15-2024)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.channel.CommitMessage("6.0.0.0", nightlyDate))
		})
	}
}

func TestChannel_TagName(t *testing.T) {
	tests := []struct {
		name    string
		channel Channel
		want    string
	}{
		{"production", ChannelProduction, "6.0.0.0"},
		{"internal", ChannelInternal, "6.0.0.0-internal"},
		{"nightly", ChannelNightly, "6.0.0.0-nightly"},
		{"beta", ChannelBeta, "6.0.0.0-beta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.channel.TagName("6.0.0.0"))
		})
	}
}

func TestChannel_String(t *testing.T) {
	assert.Equal(t, "production", ChannelProduction.String())
	assert.Equal(t, "internal", ChannelInternal.String())
	assert.Equal(t, "nightly", ChannelNightly.String())
	assert.Equal(t, "beta", ChannelBeta.String())
}
