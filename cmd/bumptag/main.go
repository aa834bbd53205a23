// Package main implements the bumptag command: it bumps the version
// markers in the app's packaging descriptors and records the bump as a
// git commit and tag.
package main

import (
	"context"
	"fmt"

	"bumptag/internal/cli"
	"bumptag/internal/config"
	apperrors "bumptag/internal/errors"
	"bumptag/internal/logging"
	"bumptag/internal/ui"
)

func main() {
	cfg, created, err := config.LoadConfig()
	if err != nil {
		// A broken theme config never blocks a bump; fall back to defaults.
		fmt.Printf("%sWarning:%s %v\n", ui.ColorWarning, ui.ColorReset, err)
		cfg = config.DefaultConfig()
	} else if created {
		path, _ := config.ConfigFilePath()
		fmt.Printf("Created default configuration at %s\n", path)
	}
	ui.InitColors(cfg)

	if err := logging.Initialize(); err != nil {
		// Logging falls back to discard; the bump itself proceeds.
		fmt.Printf("%sWarning:%s failed to initialize logging: %v\n", ui.ColorWarning, ui.ColorReset, err)
	}

	flags := cli.ParseFlags()

	app, err := cli.NewApp()
	if err != nil {
		apperrors.ExitWithError(err, 1)
	}

	if err := app.Run(context.Background(), flags); err != nil {
		apperrors.ExitWithError(err, 1)
	}
}
