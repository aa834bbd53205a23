// Package git runs the version-control and descriptor-conversion commands
// backing a bump.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	apperrors "bumptag/internal/errors"
	"bumptag/internal/logging"
	"bumptag/internal/models"
	"bumptag/internal/ui/spinner"
)

// CommandExecutor runs external commands with captured output and a
// spinner while they block.
type CommandExecutor struct{}

// NewCommandExecutor creates a new command executor.
func NewCommandExecutor() *CommandExecutor {
	return &CommandExecutor{}
}

// Run executes a command, showing spinnerMsg while it runs. Captured
// stderr is attached to the returned error.
func (e *CommandExecutor) Run(ctx context.Context, name string, args []string, spinnerMsg string) error {
	logging.Logger.Debug("Running command", "command", commandLine(name, args))

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s := spinner.New(spinnerMsg)
	s.Start()
	err := cmd.Run()
	s.Stop()

	if err != nil {
		logging.Logger.Error("Command failed", "command", commandLine(name, args), "error", err, "stderr", stderr.String())
		return apperrors.NewSubprocessError(commandLine(name, args), stderr.String(), err)
	}
	return nil
}

// Output executes a command and returns its captured standard output.
func (e *CommandExecutor) Output(ctx context.Context, name string, args []string) ([]byte, error) {
	logging.Logger.Debug("Running command", "command", commandLine(name, args))

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logging.Logger.Error("Command failed", "command", commandLine(name, args), "error", err, "stderr", stderr.String())
		return nil, apperrors.NewSubprocessError(commandLine(name, args), stderr.String(), err)
	}
	return stdout.Bytes(), nil
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// Ensure CommandExecutor implements the models.Executor interface
var _ models.Executor = (*CommandExecutor)(nil)
