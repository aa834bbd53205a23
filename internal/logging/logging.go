// Package logging configures the process-wide debug logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
)

// Logger is the public logger instance accessible from all packages. It
// discards everything until Initialize has run.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize sets up the logger. Debug logging is enabled with
// BUMPTAG_DEBUG=1 (the flag surface of the command is closed); otherwise
// all records are discarded.
func Initialize() error {
	if os.Getenv("BUMPTAG_DEBUG") != "1" {
		return nil
	}

	logDir, err := getLogDir()
	if err != nil {
		return fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFilePath := filepath.Join(logDir, fmt.Sprintf("%s.log", uuid.New().String()))
	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	Logger = slog.New(slog.NewJSONHandler(logFile, opts))

	Logger.Info("Debug logging initialized", "log_file", logFilePath)
	fmt.Printf("Debug mode enabled. Logs: %s\n", logFilePath)

	return nil
}

// getLogDir returns the OS-specific log directory
func getLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		// macOS: ~/Library/Logs/bumptag
		return filepath.Join(homeDir, "Library", "Logs", "bumptag"), nil
	case "linux":
		// Linux: ~/.local/state/bumptag or XDG_STATE_HOME
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "bumptag"), nil
	default:
		return filepath.Join(homeDir, ".bumptag", "logs"), nil
	}
}
