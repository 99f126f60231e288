package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/mdblocklint/internal/configloader"
	"github.com/yaklabco/mdblocklint/pkg/config"
	"github.com/yaklabco/mdblocklint/pkg/fsutil"
	"github.com/yaklabco/mdblocklint/pkg/runner"
)

// Exit codes for mdblocklint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found errors.
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint completed but found warnings (when strict mode).
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

// errLoadConfig marks failures to read, parse or validate configuration.
var errLoadConfig = errors.New("failed to load configuration")

// LintError signals a completed lint run whose findings require a non-zero
// exit. It wraps ErrLintIssuesFound.
type LintError struct {
	Code int
}

func (e *LintError) Error() string { return ErrLintIssuesFound.Error() }

func (e *LintError) Unwrap() error { return ErrLintIssuesFound }

// UsageError wraps flag and argument errors.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	errorCount := result.Stats.DiagnosticsBySeverity[config.SeverityError]
	warnings := result.Stats.DiagnosticsBySeverity[config.SeverityWarning]

	switch {
	case errorCount > 0:
		return ExitLintErrors
	case strict && warnings > 0:
		return ExitLintWarnings
	case result.HasErrors():
		return ExitIOError
	default:
		return ExitSuccess
	}
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var lintErr *LintError
	var usageErr *UsageError
	var validationErr *configloader.ValidationError

	switch {
	case errors.As(err, &lintErr):
		return lintErr.Code
	case errors.As(err, &usageErr):
		return ExitInvalidUsage
	case errors.As(err, &validationErr), errors.Is(err, errLoadConfig):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrTooLarge):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
