package oscmd

import (
	"strings"

	"github.com/google/shlex"
)

// CommentMarker introduces a comment that extends to the end of its
// line, wherever it appears on that line.
const CommentMarker = "//"

// StripComments removes comment spans from a multi-line command
// string. Both whole-line comments and trailing comments after real
// content are supported:
//
//	// a whole-line comment contributes nothing
//	--flag // a trailing comment is cut from the marker onward
//
// Lines are re-joined with newlines, so tokens on adjacent lines never
// merge. Lines that become empty after stripping contribute no tokens
// once the result is split.
func StripComments(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, CommentMarker); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}

// SplitRaw tokenizes a raw command string using shell-style whitespace
// splitting with quoting support, so a quoted argument containing
// spaces remains a single token. When removeComments is true, comment
// spans are stripped first (see StripComments).
//
// Malformed quoting (an unterminated quote) returns a *ConfigError
// wrapping the underlying tokenizer error; the caller must fix the
// string. A string that yields no tokens returns an empty, non-error
// result - emptiness is checked at execution time, not here.
func SplitRaw(raw string, removeComments bool) ([]string, error) {
	s := strings.TrimSpace(raw)
	if removeComments {
		s = StripComments(s)
	}

	tokens, err := shlex.Split(s)
	if err != nil {
		return nil, &ConfigError{Raw: raw, Err: err}
	}
	return tokens, nil
}
