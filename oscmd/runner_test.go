package oscmd

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireUnixShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestRunnerArgv(t *testing.T) {
	t.Run("tokens pass through unchanged", func(t *testing.T) {
		argv, err := NewRunner("echo", "a b", "//not-a-comment").Argv()
		require.NoError(t, err)

		assert.Equal(t, []string{"echo", "a b", "//not-a-comment"}, argv)
	})

	t.Run("raw string is stripped and split", func(t *testing.T) {
		argv, err := NewRawRunner("echo hello // greeting").Argv()
		require.NoError(t, err)

		assert.Equal(t, []string{"echo", "hello"}, argv)
	})

	t.Run("stripping can be disabled", func(t *testing.T) {
		argv, err := NewRawRunner("echo // hi").WithRemoveComments(false).Argv()
		require.NoError(t, err)

		assert.Equal(t, []string{"echo", "//", "hi"}, argv)
	})

	t.Run("no tokens at all", func(t *testing.T) {
		_, err := NewRunner().Argv()
		assert.ErrorIs(t, err, ErrEmptyCommand)
	})

	t.Run("comment-only raw string", func(t *testing.T) {
		_, err := NewRawRunner("// nothing here").Argv()
		assert.ErrorIs(t, err, ErrEmptyCommand)
	})

	t.Run("malformed quoting", func(t *testing.T) {
		_, err := NewRawRunner(`echo "unterminated`).Argv()

		var cfgErr *ConfigError
		assert.True(t, errors.As(err, &cfgErr))
	})
}

func TestRunnerEmptyCommandDoesNotSpawn(t *testing.T) {
	outcome, err := NewRunner().Run(context.Background())

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestRunnerCapturesStdout(t *testing.T) {
	requireUnixShell(t)

	outcome, err := NewRunner("echo", "hello").
		WithEcho(false).
		WithStdout(Capture).
		Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, outcome.ExitCode)
	assert.True(t, outcome.Success())
	assert.Equal(t, "hello\n", outcome.Stdout.Text)
	assert.False(t, outcome.Stdout.Lossy)
	assert.Empty(t, outcome.Stderr.Text)
}

func TestRunnerDefaultStdioInherits(t *testing.T) {
	requireUnixShell(t)

	// Without an explicit WithStdout(Capture) the child's output goes
	// to the parent's streams, so the Outcome buffers stay empty.
	outcome, err := NewRunner("sh", "-c", "echo visible > /dev/null").
		WithEcho(false).
		Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, outcome.Stdout.Text)
	assert.Empty(t, outcome.Stderr.Text)
	assert.True(t, outcome.Success())
}

func TestRunnerNonZeroExitIsInformational(t *testing.T) {
	requireUnixShell(t)

	outcome, err := NewRunner("sh", "-c", "exit 3").
		WithEcho(false).
		Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, outcome.ExitCode)
	assert.False(t, outcome.Success())
}

func TestRunnerFailOnNonZero(t *testing.T) {
	requireUnixShell(t)

	outcome, err := NewRunner("sh", "-c", "echo boom >&2; exit 2").
		WithEcho(false).
		WithStderr(Capture).
		WithFailOnNonZero(true).
		Run(context.Background())

	var exitErr *ExitStatusError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, "sh", exitErr.Program)
	assert.Equal(t, 2, exitErr.Outcome.ExitCode)
	assert.Contains(t, err.Error(), "sh exited with status 2")
	assert.Contains(t, err.Error(), "boom")

	// The outcome is returned alongside the error.
	require.NotNil(t, outcome)
	assert.Equal(t, 2, outcome.ExitCode)
}

func TestRunnerSpawnFailure(t *testing.T) {
	outcome, err := NewRunner("definitely-not-a-real-program-4127").
		WithEcho(false).
		Run(context.Background())

	assert.Nil(t, outcome)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely-not-a-real-program-4127")
}

func TestRunnerEnvOverlay(t *testing.T) {
	requireUnixShell(t)

	outcome, err := NewRunner("sh", "-c", `printf '%s' "$RUSTFLAGS"`).
		WithEcho(false).
		WithStdout(Capture).
		WithEnv(map[string]string{"RUSTFLAGS": "-C opt-level=3"}).
		Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "-C opt-level=3", outcome.Stdout.Text)
}

func TestRunnerWorkingDir(t *testing.T) {
	requireUnixShell(t)

	dir := t.TempDir()
	outcome, err := NewRunner("pwd").
		WithEcho(false).
		WithStdout(Capture).
		WithDir(dir).
		Run(context.Background())
	require.NoError(t, err)

	// pwd may print a resolved symlink path, so compare loosely.
	assert.Contains(t, outcome.Stdout.Text, "/")
	assert.True(t, outcome.Success())
}

func TestRunnerDiscardsOutput(t *testing.T) {
	requireUnixShell(t)

	outcome, err := NewRunner("echo", "dropped").
		WithEcho(false).
		WithStdout(Discard).
		Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, outcome.Stdout.Text)
}

func TestRunnerIsReusable(t *testing.T) {
	requireUnixShell(t)

	r := NewRunner("echo", "again").
		WithEcho(false).
		WithStdout(Capture)

	for i := 0; i < 2; i++ {
		outcome, err := r.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "again\n", outcome.Stdout.Text)
	}
}

func TestRunnerContextCancellation(t *testing.T) {
	requireUnixShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := NewRunner("sleep", "10").
		WithEcho(false).
		Run(ctx)

	assert.Error(t, err)
	assert.Nil(t, outcome)
}

type fakePreset struct {
	env map[string]string
}

func (fakePreset) Name() string   { return "fake" }
func (fakePreset) Args() []string { return []string{"sh", "-c", `printf '%s' "$MARKER"`} }
func (f fakePreset) Environ() map[string]string {
	return f.env
}

func TestRunnerForMergesPresetEnv(t *testing.T) {
	requireUnixShell(t)

	outcome, err := RunnerFor(fakePreset{env: map[string]string{"MARKER": "from-preset"}}).
		WithEcho(false).
		WithStdout(Capture).
		Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "from-preset", outcome.Stdout.Text)
}
