package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRustFlags(t *testing.T) {
	testCases := []struct {
		name string
		cfg  RustFlags
		want []string
	}{
		{
			name: "unset renders nil",
			cfg:  RustFlags{},
			want: nil,
		},
		{
			name: "crt-static on",
			cfg:  RustFlags{}.WithCrtStatic(true),
			want: []string{"-C", "target-feature=+crt-static"},
		},
		{
			name: "crt-static off is explicit, not absent",
			cfg:  RustFlags{}.WithCrtStatic(false),
			want: []string{"-C", "target-feature=-crt-static"},
		},
		{
			name: "dynamic-link configuration",
			cfg: RustFlags{}.
				WithCrtStatic(false).
				WithPreferDynamic(true).
				WithLinkerFlavor(FlavorGNULLD),
			want: []string{
				"-C", "target-feature=-crt-static",
				"-C", "prefer-dynamic=true",
				"-C", "linker-flavor=ld.lld",
			},
		},
		{
			name: "fixed field order regardless of setter order",
			cfg: RustFlags{}.
				WithCodegenUnits(1).
				WithLinker("clang"),
			want: []string{
				"-C", "linker=clang",
				"-C", "codegen-units=1",
			},
		},
		{
			name: "native target cpu",
			cfg:  RustFlags{}.WithNativeTargetCPU(true),
			want: []string{"-C", "target-cpu=native"},
		},
		{
			name: "generic target cpu",
			cfg:  RustFlags{}.WithNativeTargetCPU(false),
			want: []string{"-C", "target-cpu=generic"},
		},
		{
			name: "extra flags appended verbatim without -C",
			cfg: RustFlags{}.
				WithRelocationModel(RelocPic).
				WithExtraFlags("-Z", "threads=8"),
			want: []string{
				"-C", "relocation-model=pic",
				"-Z", "threads=8",
			},
		},
		{
			name: "zero codegen units means unset",
			cfg:  RustFlags{}.WithCodegenUnits(0).WithCodeModel(CodeModelSmall),
			want: []string{"-C", "code-model=small"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.Flags())
		})
	}
}

func TestRustFlagsLinkSelfContained(t *testing.T) {
	got := RustFlags{}.WithLinkSelfContained(false).Flags()
	assert.Equal(t, []string{"-C", "link-self-contained=false"}, got)
}

func TestBoolHelper(t *testing.T) {
	p := Bool(true)
	assert.NotNil(t, p)
	assert.True(t, *p)
}
