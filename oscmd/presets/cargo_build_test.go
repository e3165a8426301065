package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCargoBuildDefaults(t *testing.T) {
	got := NewCargoBuild().Args()

	assert.Equal(t, []string{"cargo", "build", "--profile=release"}, got)

	// The zero value is not the constructor default: it has no
	// release profile.
	assert.Equal(t, []string{"cargo", "build"}, CargoBuild{}.Args())
}

func TestCargoBuildArgs(t *testing.T) {
	testCases := []struct {
		name string
		cfg  CargoBuild
		want []string
	}{
		{
			name: "android cross build with build-std",
			cfg: NewCargoBuild().
				WithNightly(true).
				WithPkg("testutils").
				WithTarget(TargetAarch64LinuxAndroid).
				WithBuildStd(BuildStd{}.WithCore(true).WithAlloc(true)).
				WithBuildStdFeatures(BuildStdFeatures{}.WithPanicImmediateAbort(true)),
			want: []string{
				"cargo", "+nightly", "build",
				"--profile=release",
				"--package=testutils",
				"--target=aarch64-linux-android",
				"-Z", "build-std=core,alloc",
				"-Z", "build-std-features=panic_immediate_abort",
			},
		},
		{
			name: "package selector wins over workspace",
			cfg:  NewCargoBuild().WithPkg("demo").WithAllPackages(true),
			want: []string{"cargo", "build", "--profile=release", "--package=demo"},
		},
		{
			name: "workspace build",
			cfg:  NewCargoBuild().WithAllPackages(true),
			want: []string{"cargo", "build", "--profile=release", "--workspace"},
		},
		{
			name: "feature list joined with commas",
			cfg:  NewCargoBuild().WithNoDefaultFeatures(true).WithFeatures("serde", "tokio"),
			want: []string{
				"cargo", "build", "--profile=release",
				"--no-default-features", "--features=serde,tokio",
			},
		},
		{
			name: "custom cargo wrapper and subcommand",
			cfg: NewCargoBuild().
				WithCargo("cross").
				WithSubCommand(SubTest).
				WithProfile(ProfileDev),
			want: []string{"cross", "test", "--profile=dev"},
		},
		{
			name: "extra args come last",
			cfg:  NewCargoBuild().WithAllFeatures(true).WithExtraArgs("--locked", "-v"),
			want: []string{
				"cargo", "build", "--profile=release",
				"--all-features", "--locked", "-v",
			},
		},
		{
			name: "zero value falls back to cargo build",
			cfg:  CargoBuild{},
			want: []string{"cargo", "build"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.Args())
		})
	}
}

func TestCargoBuildEnviron(t *testing.T) {
	t.Run("no flags means no overlay", func(t *testing.T) {
		assert.Nil(t, NewCargoBuild().Environ())
	})

	t.Run("rust flags become RUSTFLAGS", func(t *testing.T) {
		cfg := NewCargoBuild().WithRustFlags(
			RustFlags{}.WithCrtStatic(true).WithLinkerFlavor(FlavorGNULLD),
		)

		env := cfg.Environ()
		assert.Equal(t, map[string]string{
			"RUSTFLAGS": "-C target-feature=+crt-static -C linker-flavor=ld.lld",
		}, env)
	})
}

func TestCargoBuildRenderIsPure(t *testing.T) {
	cfg := NewCargoBuild().WithFeatures("serde")

	first := cfg.Args()
	second := cfg.Args()
	assert.Equal(t, first, second)
}
