package testutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDbgReturnsValueUnchanged(t *testing.T) {
	assert.Equal(t, 42, Dbg("counter", 42))
	assert.Equal(t, []int{1, 2, 3}, Dbg("values", []int{1, 2, 3}))

	type point struct{ X, Y int }
	assert.Equal(t, point{1, 2}, Dbg("p", point{1, 2}))
}

func TestDbgLogReturnsValueUnchanged(t *testing.T) {
	assert.Equal(t, "hello", DbgLog("greeting", "hello"))
}

func TestBenchmark(t *testing.T) {
	ran := false
	elapsed := Benchmark(func() {
		ran = true
		time.Sleep(time.Millisecond)
	})

	assert.True(t, ran)
	assert.GreaterOrEqual(t, elapsed, time.Millisecond)
}
