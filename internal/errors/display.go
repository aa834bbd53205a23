package errors

import (
	"fmt"
	"os"

	"bumptag/internal/ui"
)

// DisplayError formats and displays an error message to the user.
// It formats different error types appropriately and uses color coding.
// Diagnostics go to standard output so they interleave with the command
// echo lines in build logs.
func DisplayError(err error) {
	if err == nil {
		return
	}

	errMsg := err.Error()

	switch {
	case IsMalformedVersionError(err):
		fmt.Fprintf(os.Stdout, "%sVersion Error:%s %s\n", ui.ColorError, ui.ColorReset, errMsg)

	case IsMissingMarkerError(err):
		fmt.Fprintf(os.Stdout, "%sDescriptor Error:%s %s\n", ui.ColorError, ui.ColorReset, errMsg)

	case IsDirtyRepositoryError(err):
		// The tree is intact; the user just has to commit or stash first.
		fmt.Fprintf(os.Stdout, "%sDirty Repository:%s %s\n", ui.ColorWarning, ui.ColorReset, errMsg)

	case IsSubprocessError(err):
		fmt.Fprintf(os.Stdout, "%sCommand Error:%s %s\n", ui.ColorError, ui.ColorReset, errMsg)

	default:
		fmt.Fprintf(os.Stdout, "%sError:%s %s\n", ui.ColorError, ui.ColorReset, errMsg)
	}
}

// ExitWithError displays an error and exits with non-zero status code.
func ExitWithError(err error, code int) {
	DisplayError(err)
	os.Exit(code)
}
