package bundle

import (
	"bumptag/internal/models"
)

// Next computes the version triple that a bump writes back to the
// descriptors. It is a pure function of its inputs.
//
// When explicit is non-empty it starts a new release track at that version
// and resets the build counter to zero. Otherwise the release version is
// unchanged and the build counter advances by one. In both modes the full
// version is recomputed as release ++ build.
func Next(release Version3, build Version1, explicit string) (models.Bump, error) {
	bump := models.Bump{
		OldRelease: release.Formatted(),
		OldBuild:   build.Formatted(),
	}

	if explicit != "" {
		target, err := ParseVersion3(explicit)
		if err != nil {
			return models.Bump{}, err
		}
		newBuild := Version1{Build: 0}
		bump.Mode = models.ModeExplicit
		bump.NewRelease = target.Formatted()
		bump.NewBuild = newBuild.Formatted()
		bump.NewFull = Join(target, newBuild).Formatted()
		return bump, nil
	}

	newBuild := Version1{Build: build.Build + 1}
	bump.Mode = models.ModeIncrement
	bump.NewRelease = release.Formatted()
	bump.NewBuild = newBuild.Formatted()
	bump.NewFull = Join(release, newBuild).Formatted()
	return bump, nil
}
