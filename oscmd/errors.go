package oscmd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCommand reports a token sequence with zero tokens at
// execution time. It is fatal to that execution attempt; no process
// is spawned.
var ErrEmptyCommand = errors.New("empty command: no tokens to execute")

// ConfigError reports a raw command string that could not be
// tokenized, typically because of malformed quoting. It is not
// retryable; the configuration string itself must be fixed.
type ConfigError struct {
	// Raw is the original configuration string, before comment
	// stripping.
	Raw string

	// Err is the underlying tokenizer error.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid command configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ExitStatusError reports a child process that exited with a non-zero
// status. It is produced only when the Runner was configured with
// FailOnNonZero; otherwise a non-zero exit is informational and lives
// in the Outcome.
//
// The error message includes a trailing excerpt of the captured
// stderr, when any was captured, so the failure is debuggable without
// re-running the command.
type ExitStatusError struct {
	// Program is the first token of the executed command.
	Program string

	// Outcome holds the exit code and any captured output.
	Outcome *Outcome
}

func (e *ExitStatusError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Program, e.Outcome.ExitCode)

	if excerpt := tailLines(e.Outcome.Stderr.Text, 10); excerpt != "" {
		return fmt.Sprintf("%s\n\nCommand output:\n%s", msg, excerpt)
	}
	return msg
}

// tailLines returns at most n trailing non-blank-trimmed lines of s.
func tailLines(s string, n int) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
