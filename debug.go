package testutils

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Dbg prints "name: type = value" to stderr and returns the value
// unchanged, so it can be spliced into an expression while debugging.
//
// The variable name is colored magenta and the dynamic type yellow,
// matching the usual terminal debug-print conventions.
//
// # Example
//
//	counter := 42
//	testutils.Dbg("counter", counter)
//	// stderr: counter: int = 42
//
//	values := testutils.Dbg("values", []int{1, 2, 3})
//	// stderr: values: []int = []int{1, 2, 3}
func Dbg[T any](name string, value T) T {
	fmt.Fprintf(os.Stderr, "\x1b[35m%s\x1b[0m: \x1b[33m%T\x1b[0m = %#v\n", name, value, value)
	return value
}

// DbgLog emits the same "name: type = value" information through the
// structured logger at debug level instead of writing to stderr
// directly, and returns the value unchanged.
//
// Nothing is printed unless the process-wide log level is set to
// debug, e.g.:
//
//	log.SetLevel(log.DebugLevel)
//	testutils.DbgLog("width", 30)
func DbgLog[T any](name string, value T) T {
	log.Debug(name, "type", fmt.Sprintf("%T", value), "value", fmt.Sprintf("%#v", value))
	return value
}

// Benchmark runs f once, prints the elapsed wall-clock time to stderr,
// and returns it. It is a quick one-shot timing aid, not a substitute
// for testing.B benchmarks.
//
// # Example
//
//	testutils.Benchmark(func() {
//	    expensiveOperation()
//	})
//	// stderr: Time taken: 1.234567ms
func Benchmark(f func()) time.Duration {
	start := time.Now()
	f()
	elapsed := time.Since(start)
	fmt.Fprintf(os.Stderr, "Time taken: %v\n", elapsed)
	return elapsed
}
