package plist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bumptag/internal/errors"
	"bumptag/internal/models"
)

const sampleDescriptor = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleDisplayName</key>
	<string>Example</string>
	<key>CFBundleShortVersionString</key>
	<string>5.19.0</string>
	<key>CFBundleVersion</key>
	<string>42</string>
	<key>OWSBundleVersion4</key>
	<string>5.19.0.42</string>
	<key>UIBackgroundModes</key>
	<array>
		<string>remote-notification</string>
	</array>
</dict>
</plist>
`

func TestExtract_ReturnsValueAndSpan(t *testing.T) {
	tests := []struct {
		marker models.Marker
		want   string
	}{
		{models.MarkerRelease, "5.19.0"},
		{models.MarkerBuild, "42"},
		{models.MarkerFull, "5.19.0.42"},
	}

	for _, tt := range tests {
		t.Run(string(tt.marker), func(t *testing.T) {
			value, span, err := Extract(sampleDescriptor, "Info.plist", tt.marker)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
			assert.Equal(t, tt.want, sampleDescriptor[span.Start:span.End])
		})
	}
}

func TestExtract_MissingMarker(t *testing.T) {
	text := strings.ReplaceAll(sampleDescriptor, "OWSBundleVersion4", "SomethingElse")

	_, _, err := Extract(text, "Info.plist", models.MarkerFull)
	require.Error(t, err)
	assert.True(t, apperrors.IsMissingMarkerError(err))
	assert.Contains(t, err.Error(), "OWSBundleVersion4")
	assert.Contains(t, err.Error(), "Info.plist")
}

func TestExtract_FirstOccurrenceWins(t *testing.T) {
	duplicated := sampleDescriptor + `
	<key>CFBundleVersion</key>
	<string>999</string>
`

	value, span, err := Extract(duplicated, "Info.plist", models.MarkerBuild)
	require.NoError(t, err)
	assert.Equal(t, "42", value)
	assert.Equal(t, "42", duplicated[span.Start:span.End])
}

func TestReplace_PureSplice(t *testing.T) {
	value, span, err := Extract(sampleDescriptor, "Info.plist", models.MarkerBuild)
	require.NoError(t, err)

	updated := Replace(sampleDescriptor, span, "43")

	assert.Equal(t, sampleDescriptor[:span.Start], updated[:span.Start])
	assert.Equal(t, sampleDescriptor[span.End:], updated[span.Start+len("43"):])
	assert.NotContains(t, updated, ">"+value+"<")
}

func TestSetVersions_RewritesOnlyMarkerValues(t *testing.T) {
	updated, err := SetVersions(sampleDescriptor, "Info.plist", "5.19.0", "43", "5.19.0.43")
	require.NoError(t, err)

	want := strings.Replace(sampleDescriptor, "<string>42</string>", "<string>43</string>", 1)
	want = strings.Replace(want, "<string>5.19.0.42</string>", "<string>5.19.0.43</string>", 1)
	assert.Equal(t, want, updated)
}

func TestSetVersions_NewReleaseTrack(t *testing.T) {
	updated, err := SetVersions(sampleDescriptor, "Info.plist", "6.0.0", "0", "6.0.0.0")
	require.NoError(t, err)

	assert.Contains(t, updated, "<key>CFBundleShortVersionString</key>\n\t<string>6.0.0</string>")
	assert.Contains(t, updated, "<key>CFBundleVersion</key>\n\t<string>0</string>")
	assert.Contains(t, updated, "<key>OWSBundleVersion4</key>\n\t<string>6.0.0.0</string>")
	// Unrelated content survives byte for byte.
	assert.Contains(t, updated, "<string>Example</string>")
	assert.Contains(t, updated, "<string>remote-notification</string>")
	assert.True(t, strings.HasPrefix(updated, `<?xml version="1.0" encoding="UTF-8"?>`))
}

func TestSetVersions_DuplicateMarkerLeftAlone(t *testing.T) {
	duplicated := sampleDescriptor + `	<key>CFBundleVersion</key>
	<string>42</string>
`

	updated, err := SetVersions(duplicated, "Info.plist", "5.19.0", "43", "5.19.0.43")
	require.NoError(t, err)

	// First occurrence updated, the duplicate untouched.
	assert.Equal(t, 1, strings.Count(updated, "<string>43</string>"))
	assert.Equal(t, 1, strings.Count(updated, "<string>42</string>"))
}

func TestSetVersions_MissingMarkerFails(t *testing.T) {
	text := strings.ReplaceAll(sampleDescriptor, "OWSBundleVersion4", "SomethingElse")

	_, err := SetVersions(text, "Info.plist", "5.19.0", "43", "5.19.0.43")
	require.Error(t, err)
	assert.True(t, apperrors.IsMissingMarkerError(err))
}

func TestSetVersions_ValidatesValuesFirst(t *testing.T) {
	tests := []struct {
		name    string
		release string
		build   string
		full    string
	}{
		{"malformed release", "6.0", "0", "6.0.0.0"},
		{"leading zero build", "6.0.0", "00", "6.0.0.0"},
		{"malformed full", "6.0.0", "0", "6.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SetVersions(sampleDescriptor, "Info.plist", tt.release, tt.build, tt.full)
			require.Error(t, err)
			assert.True(t, apperrors.IsMalformedVersionError(err))
		})
	}
}
