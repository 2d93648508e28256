package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/wikitext/pkg/parser"
)

// Exit codes for wikitext.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitParseError indicates the input did not parse under strict mode.
	ExitParseError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// errConfig marks errors originating from configuration loading.
var errConfig = errors.New("configuration error")

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var parseErr *parser.UnexpectedTokenError
	if errors.As(err, &parseErr) {
		return ExitParseError
	}

	if errors.Is(err, errConfig) {
		return ExitConfigError
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ExitIOError
	}

	return ExitInternalError
}
