package cli

import "errors"

// Exit codes for mdscan.
const (
	// ExitSuccess indicates the construct matched.
	ExitSuccess = 0

	// ExitNoMatch indicates the scan completed but the construct did
	// not match.
	ExitNoMatch = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates input I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNoMatch):
		return ExitNoMatch
	default:
		return ExitInternalError
	}
}
