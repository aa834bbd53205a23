// Package bundle models the three version forms carried by the packaging
// descriptors and the policy for advancing them.
//
// Version1 is the build counter, Version3 the user-facing release version,
// and Version4 the denormalized join of the two. Parsing is strict: a
// string is accepted only when re-formatting the parsed value reproduces
// it byte for byte, which rejects leading zeros, whitespace and missing
// components.
package bundle

import (
	"fmt"
	"regexp"
	"strconv"

	apperrors "bumptag/internal/errors"
)

var (
	version1Pattern = regexp.MustCompile(`^\d+$`)
	version3Pattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)
	version4Pattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)\.(\d+)$`)
)

// Version1 is a build counter: a single non-negative integer.
type Version1 struct {
	Build int
}

// Formatted returns the canonical string form of the build counter.
func (v Version1) Formatted() string {
	return strconv.Itoa(v.Build)
}

// Version3 is a release version with three dotted components.
type Version3 struct {
	Major int
	Minor int
	Patch int
}

// Formatted returns the canonical "major.minor.patch" form.
func (v Version3) Formatted() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Version4 is a full version with four dotted components. It is always
// derived from a release version and a build counter; it is never
// independently authoritative.
type Version4 struct {
	Major int
	Minor int
	Patch int
	Build int
}

// Formatted returns the canonical "major.minor.patch.build" form.
func (v Version4) Formatted() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

// Join returns the full version formed from a release version and a build
// counter.
func Join(release Version3, build Version1) Version4 {
	return Version4{
		Major: release.Major,
		Minor: release.Minor,
		Patch: release.Patch,
		Build: build.Build,
	}
}

// ParseVersion1 parses a build counter string.
func ParseVersion1(s string) (Version1, error) {
	if !version1Pattern.MatchString(s) {
		return Version1{}, apperrors.NewMalformedVersionError("build version", s)
	}
	build, err := strconv.Atoi(s)
	if err != nil {
		return Version1{}, apperrors.NewMalformedVersionError("build version", s)
	}
	v := Version1{Build: build}
	// Round-trip check: "007" matches the pattern but is not canonical.
	if v.Formatted() != s {
		return Version1{}, apperrors.NewMalformedVersionError("build version", s)
	}
	return v, nil
}

// ParseVersion3 parses a release version string.
func ParseVersion3(s string) (Version3, error) {
	m := version3Pattern.FindStringSubmatch(s)
	if m == nil {
		return Version3{}, apperrors.NewMalformedVersionError("release version", s)
	}
	components, err := atoiAll(m[1:])
	if err != nil {
		return Version3{}, apperrors.NewMalformedVersionError("release version", s)
	}
	v := Version3{Major: components[0], Minor: components[1], Patch: components[2]}
	if v.Formatted() != s {
		return Version3{}, apperrors.NewMalformedVersionError("release version", s)
	}
	return v, nil
}

// ParseVersion4 parses a full version string. It exists for validating
// values about to be written; full versions are computed with Join, never
// read back as authority.
func ParseVersion4(s string) (Version4, error) {
	m := version4Pattern.FindStringSubmatch(s)
	if m == nil {
		return Version4{}, apperrors.NewMalformedVersionError("full version", s)
	}
	components, err := atoiAll(m[1:])
	if err != nil {
		return Version4{}, apperrors.NewMalformedVersionError("full version", s)
	}
	v := Version4{Major: components[0], Minor: components[1], Patch: components[2], Build: components[3]}
	if v.Formatted() != s {
		return Version4{}, apperrors.NewMalformedVersionError("full version", s)
	}
	return v, nil
}

func atoiAll(parts []string) ([]int, error) {
	values := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		values[i] = n
	}
	return values, nil
}
