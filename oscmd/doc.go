// Package oscmd turns ordered lists of command-line tokens into child
// processes and reports their outcome.
//
// # Components
//
// The package provides:
//   - StripComments / SplitRaw - a comment-stripping tokenizer for
//     free-form, multi-line command strings
//   - Command - the interface implemented by preset configurations
//     that render themselves into a token sequence
//   - Runner - spawns the first token as a program with the remaining
//     tokens as arguments, with configurable stdio wiring, environment
//     overlay, working directory, and inspection hooks
//   - Outcome / DecodedText - exit status plus captured output text
//   - ToolRequirement / CheckRequiredTools - PATH availability checks
//
// # Execution Model
//
// Everything is synchronous and one-shot: rendering is deterministic,
// Run blocks until the child exits, and no retries are performed.
// Cancellation goes through the context passed to Run, which kills
// the child process when the context is done.
//
// Arguments are always passed to the operating system as a vector,
// never concatenated into a shell string, so no shell reinterpretation
// or quoting ambiguity can occur.
package oscmd
