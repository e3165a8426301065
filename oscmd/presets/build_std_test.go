package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildStdArgs(t *testing.T) {
	testCases := []struct {
		name string
		cfg  BuildStd
		want []string
	}{
		{
			name: "all off renders nothing",
			cfg:  BuildStd{},
			want: nil,
		},
		{
			name: "default set only",
			cfg:  BuildStd{}.WithBuildDefault(true),
			want: []string{"-Z", "build-std"},
		},
		{
			name: "named components in declaration order",
			cfg:  BuildStd{}.WithAlloc(true).WithCore(true),
			want: []string{"-Z", "build-std=core,alloc"},
		},
		{
			name: "named components override the default set",
			cfg:  BuildStd{}.WithBuildDefault(true).WithPanicAbort(true),
			want: []string{"-Z", "build-std=panic_abort"},
		},
		{
			name: "everything on",
			cfg: BuildStd{}.
				WithStd(true).
				WithCore(true).
				WithAlloc(true).
				WithPanicAbort(true).
				WithPanicUnwind(true).
				WithTest(true).
				WithProcMacro(true),
			want: []string{"-Z", "build-std=std,core,alloc,panic_abort,panic_unwind,test,proc_macro"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.Args())
		})
	}
}
