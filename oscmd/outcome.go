package oscmd

import (
	"strings"
	"unicode/utf8"
)

// DecodedText is child-process output decoded to text.
//
// Invalid UTF-8 sequences are replaced with U+FFFD rather than
// reported as an error; Lossy records whether any replacement
// happened, so callers that need byte-exact output can detect the
// degradation.
type DecodedText struct {
	// Text is the decoded output.
	Text string

	// Lossy is true when the original byte stream contained invalid
	// UTF-8 and replacement characters were substituted.
	Lossy bool
}

func (d DecodedText) String() string { return d.Text }

// DecodeText converts raw output bytes into DecodedText.
//
// Valid UTF-8 input is kept byte-for-byte with Lossy=false.
func DecodeText(b []byte) DecodedText {
	if utf8.Valid(b) {
		return DecodedText{Text: string(b)}
	}
	return DecodedText{
		Text:  strings.ToValidUTF8(string(b), "�"),
		Lossy: true,
	}
}

// Outcome describes a completed child process.
//
// A non-zero exit code is informational here, not an error: the
// caller decides whether non-zero means failure (or opts into
// FailOnNonZero on the Runner).
//
// Stdout and Stderr hold decoded text only for streams that were run
// in Capture mode; inherited or discarded streams leave them empty.
type Outcome struct {
	// ExitCode is the child's exit status.
	ExitCode int

	// Stdout is the captured standard output, if Capture was selected.
	Stdout DecodedText

	// Stderr is the captured standard error, if Capture was selected.
	Stderr DecodedText
}

// Success reports whether the child exited with status zero.
func (o *Outcome) Success() bool { return o.ExitCode == 0 }
