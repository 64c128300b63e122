package cli

import (
	"errors"

	"github.com/yaklabco/gomdsite/pkg/fsutil"
	"github.com/yaklabco/gomdsite/pkg/runner"
)

// Exit codes for gomdsite.
const (
	// ExitSuccess indicates every page was generated.
	ExitSuccess = 0

	// ExitPageFailures indicates the build completed but some pages failed.
	ExitPageFailures = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrPagesFailed is returned when at least one page failed to generate.
	ErrPagesFailed = errors.New("one or more pages failed")

	// ErrInvalidUsage marks errors caused by bad flags or arguments.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig marks errors loading or validating configuration.
	ErrConfig = errors.New("configuration error")
)

// ExitCodeFromResult determines the exit code for a finished build.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil || !result.HasFailures() {
		return ExitSuccess
	}
	return ExitPageFailures
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrPagesFailed):
		return ExitPageFailures
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
