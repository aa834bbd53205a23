// Package ui provides user interface components and utilities.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"bumptag/internal/config"
)

// Color constants for terminal output.
const (
	ColorReset = "\033[0m"
	TextBold   = "\033[1m"
)

var (
	// Default colors - overridden from config in InitColors
	ColorError   = "\033[1;31m"
	ColorSuccess = "\033[32m"
	ColorWarning = "\033[33m"
	ColorInfo    = "\033[36m"

	ColorHighlight = "\033[38;2;130;57;243m"  // Purple for highlights (#8239F3)
	ColorFaint     = "\033[38;2;119;119;119m" // Gray for less important text (#777)

	// Store the loaded config
	appConfig *config.Config
)

// InitColors initializes the colors from the provided configuration.
func InitColors(cfg *config.Config) {
	appConfig = cfg

	ColorError = parseColorToAnsi(cfg.Colors.Error)
	ColorSuccess = parseColorToAnsi(cfg.Colors.Success)
	ColorWarning = parseColorToAnsi(cfg.Colors.Warning)
	ColorInfo = parseColorToAnsi(cfg.Colors.Info)
	ColorHighlight = parseColorToAnsi(cfg.Colors.Highlight)
	ColorFaint = parseColorToAnsi(cfg.Colors.Faint)
}

// parseColorToAnsi converts a hex color string to an ANSI color code.
func parseColorToAnsi(hexColor string) string {
	hexColor = strings.TrimPrefix(hexColor, "#")

	// Expand 3-character hex colors
	if len(hexColor) == 3 {
		r := hexColor[0:1]
		g := hexColor[1:2]
		b := hexColor[2:3]
		hexColor = r + r + g + g + b + b
	}

	if len(hexColor) != 6 {
		return "\033[37m" // White as fallback
	}

	r, _ := strconv.ParseInt(hexColor[0:2], 16, 0)
	g, _ := strconv.ParseInt(hexColor[2:4], 16, 0)
	b, _ := strconv.ParseInt(hexColor[4:6], 16, 0)

	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// GetHexColorByName returns the hex color string for use with lipgloss.
func GetHexColorByName(name string) string {
	if appConfig == nil {
		switch strings.ToLower(name) {
		case "highlight":
			return "#8239F3"
		case "faint":
			return "#777777"
		case "info":
			return "#36c"
		case "success":
			return "#2a2"
		case "warning":
			return "#fa0"
		case "error":
			return "#f33"
		default:
			return ""
		}
	}

	switch strings.ToLower(name) {
	case "info":
		return appConfig.Colors.Info
	case "success":
		return appConfig.Colors.Success
	case "warning":
		return appConfig.Colors.Warning
	case "error":
		return appConfig.Colors.Error
	case "highlight":
		return appConfig.Colors.Highlight
	case "faint":
		return appConfig.Colors.Faint
	default:
		return ""
	}
}

// GetSpinnerType returns the configured spinner type or the default.
func GetSpinnerType() string {
	if appConfig == nil {
		return "MiniDot"
	}
	return appConfig.UI.SpinnerType
}
