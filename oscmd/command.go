package oscmd

// Command is implemented by preset configurations that render
// themselves into an ordered token sequence.
//
// The first token is the program to execute; the remaining tokens are
// its arguments. Rendering must be pure: calling Args twice on the
// same unmodified value yields identical sequences, and render order
// is a fixed property of the configuration type, independent of the
// order in which setters were called.
//
// # Example Implementation
//
//	type EchoCmd struct{ Message string }
//
//	func (c EchoCmd) Name() string   { return "echo" }
//	func (c EchoCmd) Args() []string { return []string{"echo", c.Message} }
//
// All presets in oscmd/presets implement Command.
type Command interface {
	// Name returns the human-readable preset name.
	//
	// This name is used in logs and error messages.
	// Examples: "doc", "fmt", "build"
	Name() string

	// Args renders the configuration into its token sequence.
	Args() []string
}

// EnvProvider is an optional interface for commands that carry
// environment variables for the child process.
//
// This is an opt-in interface - commands that don't implement it
// simply inherit the parent's environment. RunnerFor checks for it
// with a type assertion and merges the returned variables into the
// Runner's environment overlay:
//
//	if ep, ok := cmd.(EnvProvider); ok {
//	    runner.WithEnv(ep.Environ())
//	}
type EnvProvider interface {
	// Environ returns environment variables to overlay onto the
	// parent's environment when the command runs. A nil map means
	// no overlay.
	Environ() map[string]string
}
