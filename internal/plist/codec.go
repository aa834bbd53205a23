// Package plist locates and rewrites version markers inside property-list
// descriptors. Descriptors are treated as opaque text: a rewrite changes
// only the bytes of the marker values, preserving formatting, comments and
// unrelated keys exactly.
package plist

import (
	"regexp"

	"bumptag/internal/bundle"
	apperrors "bumptag/internal/errors"
	"bumptag/internal/models"
)

// Span is a half-open byte range [Start, End) inside a descriptor.
type Span struct {
	Start int
	End   int
}

// markerPatterns locates each marker's value: the key element followed by
// the nearest <string> element. For example:
//
//	<key>CFBundleShortVersionString</key>
//	<string>2.20.0</string>
var markerPatterns = map[models.Marker]*regexp.Regexp{
	models.MarkerRelease: regexp.MustCompile(`<key>CFBundleShortVersionString</key>\s*<string>([\d.]+)</string>`),
	models.MarkerBuild:   regexp.MustCompile(`<key>CFBundleVersion</key>\s*<string>([\d.]+)</string>`),
	models.MarkerFull:    regexp.MustCompile(`<key>OWSBundleVersion4</key>\s*<string>([\d.]+)</string>`),
}

// Extract returns the value of the first occurrence of marker in text and
// the exact byte range the value occupies. Duplicate markers are not an
// error: later occurrences are ignored. path is used for error context
// only.
func Extract(text, path string, marker models.Marker) (string, Span, error) {
	loc := markerPatterns[marker].FindStringSubmatchIndex(text)
	if loc == nil || loc[2] < 0 {
		return "", Span{}, apperrors.NewMissingMarkerError(path, string(marker))
	}
	span := Span{Start: loc[2], End: loc[3]}
	return text[span.Start:span.End], span, nil
}

// Replace splices newValue over span, leaving every byte outside the span
// untouched.
func Replace(text string, span Span, newValue string) string {
	return text[:span.Start] + newValue + text[span.End:]
}

// SetVersions rewrites the three marker values in text with the given
// release, build and full version strings. The values are validated before
// the first splice, and each replacement re-scans the already-mutated text
// so earlier splices cannot invalidate later spans. The input text is
// never modified; on error the caller has nothing to roll back.
func SetVersions(text, path, release, build, full string) (string, error) {
	if _, err := bundle.ParseVersion3(release); err != nil {
		return "", err
	}
	if _, err := bundle.ParseVersion1(build); err != nil {
		return "", err
	}
	if _, err := bundle.ParseVersion4(full); err != nil {
		return "", err
	}

	replacements := []struct {
		marker models.Marker
		value  string
	}{
		{models.MarkerRelease, release},
		{models.MarkerBuild, build},
		{models.MarkerFull, full},
	}
	for _, r := range replacements {
		_, span, err := Extract(text, path, r.marker)
		if err != nil {
			return "", err
		}
		text = Replace(text, span, r.value)
	}
	return text, nil
}
