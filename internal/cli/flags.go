// Package cli provides command-line interface functionality.
package cli

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	apperrors "bumptag/internal/errors"
	"bumptag/internal/models"
	"bumptag/internal/ui"
	"bumptag/internal/version"
)

// Flags represents the command-line flags for the application.
type Flags struct {
	// Version is the explicit release version to start a new track at;
	// empty means a routine build bump.
	Version string
	Channel models.Channel
}

// ParseFlags parses the command-line flags and returns a Flags struct.
func ParseFlags() *Flags {
	newVersion := flag.String("version", "", "Start a new release track at the given X.Y.Z version (build counter resets to 0)")
	internal := flag.Bool("internal", false, "Mark the build as an internal (throwaway) build")
	nightly := flag.Bool("nightly", false, "Mark the build as a nightly build")
	beta := flag.Bool("beta", false, "Mark the build as a beta build")
	help := flag.Bool("help", false, "Display help information")

	flag.Usage = func() {
		DisplayHelp()
	}
	flag.Parse()

	if *help {
		DisplayHelp()
		os.Exit(0)
	}

	flags := &Flags{
		Version: strings.TrimSpace(*newVersion),
		Channel: models.ChannelProduction,
	}
	switch {
	case *internal:
		flags.Channel = models.ChannelInternal
	case *nightly:
		flags.Channel = models.ChannelNightly
	case *beta:
		flags.Channel = models.ChannelBeta
	}

	if err := validateFlags(*internal, *nightly, *beta); err != nil {
		apperrors.ExitWithError(err, 1)
	}

	return flags
}

// DisplayHelp shows the application usage and help information
func DisplayHelp() {
	fmt.Printf("%s%sbumptag - descriptor version bump and tag%s\n\n", ui.ColorInfo, ui.TextBold, ui.ColorReset)
	fmt.Printf("Version: %s\n\n", version.Full())

	fmt.Println("Bumps the version markers in the app's packaging descriptors, commits the")
	fmt.Println("change, and tags the commit with the new full version.")
	fmt.Println()

	fmt.Println("USAGE:")
	fmt.Printf("  bumptag [flags]\n\n")

	fmt.Println("FLAGS:")
	fmt.Printf("  %-20s %s\n", "--version X.Y.Z", "Start a new release track; resets the build counter to 0")
	fmt.Printf("  %-20s %s\n", "--internal", "Internal build: commit notes (Internal), tag suffixed -internal")
	fmt.Printf("  %-20s %s\n", "--nightly", "Nightly build: commit carries the date, tag suffixed -nightly")
	fmt.Printf("  %-20s %s\n", "--beta", "Beta build: commit notes (Beta), tag suffixed -beta")
	fmt.Printf("  %-20s %s\n\n", "-help, --help", "Display this help information")

	fmt.Println("EXAMPLES:")
	fmt.Printf("  # Routine build bump within the current release track\n")
	fmt.Printf("  bumptag\n\n")

	fmt.Printf("  # Start the 6.0.0 release track\n")
	fmt.Printf("  bumptag --version 6.0.0\n\n")

	fmt.Printf("  # Nightly build bump\n")
	fmt.Printf("  bumptag --nightly\n")
}

// validateFlags checks if the combination of flags is valid.
func validateFlags(internal, nightly, beta bool) error {
	channels := 0
	for _, set := range []bool{internal, nightly, beta} {
		if set {
			channels++
		}
	}
	if channels > 1 {
		return fmt.Errorf("--internal, --nightly and --beta are mutually exclusive")
	}

	if flag.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(flag.Args(), " "))
	}

	// Both collaborators must be on the PATH before anything runs.
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git executable not found in PATH: %w", err)
	}
	if _, err := exec.LookPath("plutil"); err != nil {
		return fmt.Errorf("plutil executable not found in PATH: %w", err)
	}

	return nil
}
