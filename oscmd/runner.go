package oscmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

// StdioMode selects how one of the child's standard streams is wired.
type StdioMode int

const (
	// Inherit connects the stream to the parent's corresponding
	// stream, so child output is visible directly.
	Inherit StdioMode = iota

	// Capture buffers the stream in memory for decoding after the
	// child exits. The whole stream is buffered, so very large
	// outputs grow memory accordingly. On stdin, Capture behaves
	// like Discard (there is no input source to buffer from).
	Capture

	// Discard routes the stream to the null device.
	Discard
)

// Runner executes a token sequence as a child process.
//
// A Runner is built from pre-split tokens (NewRunner), from a raw
// comment-annotated string that is tokenized at run time
// (NewRawRunner), or from a preset (RunnerFor). Configuration setters
// mutate the Runner in place and return it for chaining; call them
// before Run.
//
// # Defaults
//
//	remove comments: true  (raw strings only)
//	echo command:    true  (print to stderr before spawning)
//	debug log:       false
//	stdin/stdout/stderr: Inherit
//	fail on non-zero:    false
//
// Echoing before the run gives immediate visibility of the exact
// command; the debug-level log is off to avoid duplicate output
// unless requested.
//
// # Reuse
//
// Run does not consume the Runner. Rendering is deterministic, so
// calling Run again re-executes the same command; each call spawns an
// independent child process.
type Runner struct {
	name    string
	args    []string
	raw     string
	fromRaw bool

	removeComments bool
	echo           bool
	logDebug       bool

	stdin  StdioMode
	stdout StdioMode
	stderr StdioMode

	env           map[string]string
	dir           string
	failOnNonZero bool
}

// NewRunner builds a Runner from a pre-split token sequence.
// The first token is the program, the rest its arguments.
func NewRunner(args ...string) *Runner {
	return &Runner{
		args:           args,
		removeComments: true,
		echo:           true,
	}
}

// NewRawRunner builds a Runner from a free-form command string. The
// string is comment-stripped (unless disabled) and tokenized with
// shell-style quoting rules when Run or Argv is called.
func NewRawRunner(raw string) *Runner {
	r := NewRunner()
	r.raw = raw
	r.fromRaw = true
	return r
}

// RunnerFor builds a Runner from a rendered preset. If the command
// also implements EnvProvider, its variables join the environment
// overlay.
func RunnerFor(cmd Command) *Runner {
	r := NewRunner(cmd.Args()...)
	r.name = cmd.Name()
	if ep, ok := cmd.(EnvProvider); ok {
		r.WithEnv(ep.Environ())
	}
	return r
}

// WithRemoveComments controls comment stripping for raw command
// strings. It has no effect on Runners built from pre-split tokens.
func (r *Runner) WithRemoveComments(on bool) *Runner {
	r.removeComments = on
	return r
}

// WithEcho controls printing the resolved command to stderr before
// the child process starts.
func (r *Runner) WithEcho(on bool) *Runner {
	r.echo = on
	return r
}

// WithLogDebug controls emitting the resolved command through the
// structured logger at debug level before the child process starts.
// Echo takes precedence when both are enabled, so the command is
// surfaced exactly once.
func (r *Runner) WithLogDebug(on bool) *Runner {
	r.logDebug = on
	return r
}

// WithStdin selects the child's stdin wiring.
func (r *Runner) WithStdin(mode StdioMode) *Runner {
	r.stdin = mode
	return r
}

// WithStdout selects the child's stdout wiring.
func (r *Runner) WithStdout(mode StdioMode) *Runner {
	r.stdout = mode
	return r
}

// WithStderr selects the child's stderr wiring.
func (r *Runner) WithStderr(mode StdioMode) *Runner {
	r.stderr = mode
	return r
}

// WithEnv merges env into the environment overlay applied on top of
// the parent's environment. A nil map is a no-op.
func (r *Runner) WithEnv(env map[string]string) *Runner {
	if len(env) == 0 {
		return r
	}
	if r.env == nil {
		r.env = make(map[string]string, len(env))
	}
	for k, v := range env {
		r.env[k] = v
	}
	return r
}

// WithDir sets the child's working directory. Empty means the
// parent's current directory.
func (r *Runner) WithDir(dir string) *Runner {
	r.dir = dir
	return r
}

// WithFailOnNonZero turns a non-zero exit status into an
// *ExitStatusError instead of an informational Outcome field.
func (r *Runner) WithFailOnNonZero(on bool) *Runner {
	r.failOnNonZero = on
	return r
}

// Argv resolves the Runner's token sequence. For raw-string Runners
// this strips comments (when enabled) and tokenizes; for token
// Runners it returns the tokens as given.
//
// Returns *ConfigError for malformed quoting and ErrEmptyCommand
// when no tokens remain.
func (r *Runner) Argv() ([]string, error) {
	argv := r.args
	if r.fromRaw {
		tokens, err := SplitRaw(r.raw, r.removeComments)
		if err != nil {
			return nil, err
		}
		argv = tokens
	}

	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	return argv, nil
}

// Run executes the command and blocks until the child exits.
//
// The run proceeds in three phases:
//  1. Resolve the token sequence (Argv).
//  2. Surface the command exactly once, synchronously, before the
//     spawn - regardless of whether the spawn later succeeds.
//  3. Spawn argv[0] with argv[1:] as the argument vector, wait, and
//     collect the Outcome.
//
// A non-zero exit status is returned inside the Outcome with a nil
// error unless FailOnNonZero is set. A refused spawn (program not
// found, permission denied) returns a nil Outcome and an error
// wrapping the underlying OS error. Cancelling ctx kills the child.
func (r *Runner) Run(ctx context.Context) (*Outcome, error) {
	argv, err := r.Argv()
	if err != nil {
		return nil, err
	}

	r.inspect(argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.dir
	if len(r.env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range r.env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	var outBuf, errBuf bytes.Buffer
	cmd.Stdin = wireInput(r.stdin)
	cmd.Stdout = wireOutput(r.stdout, os.Stdout, &outBuf)
	cmd.Stderr = wireOutput(r.stderr, os.Stderr, &errBuf)

	runErr := cmd.Run()

	outcome := &Outcome{
		Stdout: DecodeText(outBuf.Bytes()),
		Stderr: DecodeText(errBuf.Bytes()),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			// The process never ran: not found, permission denied,
			// or a context/setup failure before the spawn completed.
			return nil, fmt.Errorf("run %s: %w", argv[0], runErr)
		}

		outcome.ExitCode = exitErr.ExitCode()
		if r.failOnNonZero {
			return outcome, &ExitStatusError{Program: argv[0], Outcome: outcome}
		}
	}

	return outcome, nil
}

// inspect surfaces the resolved command once before the spawn.
// Stderr echo takes precedence over the debug log so the command is
// never reported twice.
func (r *Runner) inspect(argv []string) {
	switch {
	case r.echo:
		fmt.Fprintf(os.Stderr, "%q\n", argv)
	case r.logDebug:
		if r.name != "" {
			log.Debug("running command", "preset", r.name, "argv", argv)
		} else {
			log.Debug("running command", "argv", argv)
		}
	}
}

func wireInput(mode StdioMode) io.Reader {
	if mode == Inherit {
		return os.Stdin
	}
	// Capture and Discard both leave stdin connected to the null
	// device.
	return nil
}

func wireOutput(mode StdioMode, inherit io.Writer, buf *bytes.Buffer) io.Writer {
	switch mode {
	case Capture:
		return buf
	case Discard:
		return nil
	default:
		return inherit
	}
}
