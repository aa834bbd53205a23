package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bumptag/internal/bundle"
	"bumptag/internal/git"
	"bumptag/internal/logging"
	"bumptag/internal/models"
	"bumptag/internal/plist"
	"bumptag/internal/ui"
)

// descriptorPaths are the descriptor files relative to the project root.
// The first entry is the primary descriptor: current versions are read
// from it, and all three are rewritten with the same triple.
var descriptorPaths = []string{
	filepath.Join("App", "Info.plist"),
	filepath.Join("ShareExtension", "Info.plist"),
	filepath.Join("NotificationServiceExtension", "Info.plist"),
}

// App represents the bumptag application.
type App struct {
	root      string
	repo      models.Repository
	converter models.Converter
	now       func() time.Time
}

// NewApp wires the application against the git repository enclosing the
// current working directory.
func NewApp() (*App, error) {
	root, err := findProjectRoot()
	if err != nil {
		return nil, err
	}
	executor := git.NewCommandExecutor()
	return &App{
		root:      root,
		repo:      git.NewRepository(executor, root),
		converter: plist.NewPlutil(executor),
		now:       time.Now,
	}, nil
}

// Run executes the bump: verify the tree is clean, rewrite the descriptor
// versions, and record the result as a commit and tag. Any error aborts
// the whole command; validation runs before the first write, so a failed
// run leaves either everything or nothing changed.
func (a *App) Run(ctx context.Context, flags *Flags) error {
	logging.Logger.Info("Starting version bump",
		"root", a.root, "channel", flags.Channel.String(), "explicit", flags.Version)

	paths, err := a.descriptorFiles()
	if err != nil {
		return err
	}

	if err := a.repo.EnsureClean(ctx); err != nil {
		return err
	}

	for _, path := range paths {
		if err := a.converter.EnsureXML(ctx, path); err != nil {
			return err
		}
	}

	bump, err := a.computeBump(paths[0], flags.Version)
	if err != nil {
		return err
	}
	logging.Logger.Info("Computed bump", "mode", bump.Mode,
		"old_release", bump.OldRelease, "old_build", bump.OldBuild, "new_full", bump.NewFull)

	// Render every descriptor before writing any, so a schema problem in
	// one file aborts with all of them untouched.
	rendered := make([]string, len(paths))
	for i, path := range paths {
		text, err := renderDescriptor(path, bump)
		if err != nil {
			return err
		}
		rendered[i] = text
	}
	for i, path := range paths {
		if err := os.WriteFile(path, []byte(rendered[i]), 0644); err != nil {
			return fmt.Errorf("failed to write descriptor %s: %w", path, err)
		}
	}

	message := flags.Channel.CommitMessage(bump.NewFull, a.now())
	tag := flags.Channel.TagName(bump.NewFull)

	if err := a.repo.StageAll(ctx); err != nil {
		return err
	}
	if err := a.repo.Commit(ctx, message); err != nil {
		return err
	}
	if err := a.repo.Tag(ctx, tag); err != nil {
		return err
	}

	printSummary(bump, tag)
	return nil
}

// descriptorFiles resolves the descriptor paths against the project root
// and verifies all three exist before anything else runs.
func (a *App) descriptorFiles() ([]string, error) {
	paths := make([]string, 0, len(descriptorPaths))
	for _, rel := range descriptorPaths {
		path := filepath.Join(a.root, rel)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("could not find descriptor %s: %w", rel, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// computeBump reads the current versions from the primary descriptor and
// applies the bump policy. The full-version marker is intentionally not
// read back: it is derived state and gets recomputed on every bump.
func (a *App) computeBump(primary, explicit string) (models.Bump, error) {
	data, err := os.ReadFile(primary)
	if err != nil {
		return models.Bump{}, fmt.Errorf("failed to read descriptor %s: %w", primary, err)
	}
	text := string(data)

	releaseStr, _, err := plist.Extract(text, primary, models.MarkerRelease)
	if err != nil {
		return models.Bump{}, err
	}
	buildStr, _, err := plist.Extract(text, primary, models.MarkerBuild)
	if err != nil {
		return models.Bump{}, err
	}

	release, err := bundle.ParseVersion3(releaseStr)
	if err != nil {
		return models.Bump{}, err
	}
	build, err := bundle.ParseVersion1(buildStr)
	if err != nil {
		return models.Bump{}, err
	}

	return bundle.Next(release, build, explicit)
}

// renderDescriptor returns the descriptor at path with the new version
// triple spliced in, without touching the file.
func renderDescriptor(path string, bump models.Bump) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read descriptor %s: %w", path, err)
	}
	return plist.SetVersions(string(data), path, bump.NewRelease, bump.NewBuild, bump.NewFull)
}

// findProjectRoot walks up from the working directory to the nearest
// ancestor containing the .git metadata directory.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root: no .git directory found above the working directory")
		}
		dir = parent
	}
}

// printSummary reports the recorded bump to the user.
func printSummary(bump models.Bump, tag string) {
	fmt.Printf("%s%sVersion bump recorded!%s\n", ui.ColorSuccess, ui.TextBold, ui.ColorReset)
	fmt.Printf("Old release version: %s\n", bump.OldRelease)
	fmt.Printf("Old build version:   %s\n", bump.OldBuild)
	fmt.Printf("New release version: %s\n", bump.NewRelease)
	fmt.Printf("New build version:   %s\n", bump.NewBuild)
	fmt.Printf("New full version:    %s\n", bump.NewFull)
	fmt.Printf("Tag:                 %s\n", tag)
}
