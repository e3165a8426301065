package presets

import "strings"

// SubCommand is a cargo subcommand name. Any other string is passed
// through verbatim, so custom subcommands work too.
type SubCommand string

const (
	SubBuild SubCommand = "build"
	SubRun   SubCommand = "run"
	SubTest  SubCommand = "test"
	SubBench SubCommand = "bench"
	SubCheck SubCommand = "check"
	SubRustc SubCommand = "rustc"
)

// Profile is a cargo profile name. Empty omits the --profile flag;
// any non-listed string selects a custom profile.
type Profile string

const (
	ProfileRelease Profile = "release"
	ProfileDev     Profile = "dev"
)

// Target is a rustc target triple. Empty omits the --target flag.
// Constants cover the triples used by this module's own pipelines;
// any valid triple string works.
type Target string

const (
	TargetAarch64LinuxAndroid  Target = "aarch64-linux-android"
	TargetAarch64UnknownMusl   Target = "aarch64-unknown-linux-musl"
	TargetX8664UnknownMusl     Target = "x86_64-unknown-linux-musl"
	TargetX8664WindowsMSVC     Target = "x86_64-pc-windows-msvc"
	TargetAarch64AppleDarwin   Target = "aarch64-apple-darwin"
	TargetWasm32UnknownUnknown Target = "wasm32-unknown-unknown"
)

// CargoBuild configures a `cargo build` command (or another cargo
// subcommand sharing the same flag surface).
//
// # Defaults
//
//	Cargo:      "cargo"   (empty also renders as "cargo")
//	Nightly:    false
//	SubCommand: build
//	Profile:    release
//	everything else: off / empty
//
// # Render Order
//
//	<Cargo>
//	+nightly                    iff Nightly
//	<SubCommand>
//	--profile=<Profile>         iff Profile is non-empty
//	--package=<Pkg>             iff Pkg is non-empty
//	--workspace                 iff AllPackages and Pkg is empty
//	--target=<Target>           iff Target is non-empty
//	--all-features              iff AllFeatures
//	--no-default-features       iff NoDefaultFeatures
//	--features=a,b              iff Features is non-empty
//	BuildStd tokens             (zero tokens when the group is off)
//	BuildStdFeatures tokens     (zero tokens when the group is off)
//	ExtraArgs                   verbatim, in the order provided
//
// A non-empty Pkg takes precedence over AllPackages: the two are
// never rendered together, and --package wins. This is intentional,
// not an accident of ordering.
//
// RustFlags does not render into the token sequence at all; it
// becomes a RUSTFLAGS environment overlay via Environ.
type CargoBuild struct {
	Cargo             string
	Nightly           bool
	SubCommand        SubCommand
	Profile           Profile
	Pkg               string
	Target            Target
	AllPackages       bool
	AllFeatures       bool
	NoDefaultFeatures bool
	Features          []string
	BuildStd          BuildStd
	BuildStdFeatures  BuildStdFeatures
	RustFlags         RustFlags
	ExtraArgs         []string
}

// NewCargoBuild returns a CargoBuild with the documented defaults.
// The zero value is not equivalent: it falls back to a bare
// `cargo build` with no --profile flag. Prefer the constructor.
func NewCargoBuild() CargoBuild {
	return CargoBuild{
		Cargo:      "cargo",
		SubCommand: SubBuild,
		Profile:    ProfileRelease,
	}
}

// WithCargo returns a copy with the cargo binary name set (e.g. a
// wrapper like "cross"). Empty renders as "cargo".
func (c CargoBuild) WithCargo(bin string) CargoBuild { c.Cargo = bin; return c }

// WithNightly returns a copy with the +nightly toolchain selector
// enabled or disabled.
func (c CargoBuild) WithNightly(on bool) CargoBuild { c.Nightly = on; return c }

// WithSubCommand returns a copy with the cargo subcommand set.
func (c CargoBuild) WithSubCommand(sub SubCommand) CargoBuild { c.SubCommand = sub; return c }

// WithProfile returns a copy with the cargo profile set.
func (c CargoBuild) WithProfile(p Profile) CargoBuild { c.Profile = p; return c }

// WithPkg returns a copy with the package selector set. A non-empty
// package takes precedence over WithAllPackages.
func (c CargoBuild) WithPkg(pkg string) CargoBuild { c.Pkg = pkg; return c }

// WithTarget returns a copy with the target triple set.
func (c CargoBuild) WithTarget(t Target) CargoBuild { c.Target = t; return c }

// WithAllPackages returns a copy that builds the whole workspace.
// Ignored while Pkg is non-empty.
func (c CargoBuild) WithAllPackages(on bool) CargoBuild { c.AllPackages = on; return c }

// WithAllFeatures returns a copy with --all-features enabled or
// disabled.
func (c CargoBuild) WithAllFeatures(on bool) CargoBuild { c.AllFeatures = on; return c }

// WithNoDefaultFeatures returns a copy with --no-default-features
// enabled or disabled.
func (c CargoBuild) WithNoDefaultFeatures(on bool) CargoBuild { c.NoDefaultFeatures = on; return c }

// WithFeatures returns a copy with the feature list replaced.
func (c CargoBuild) WithFeatures(features ...string) CargoBuild { c.Features = features; return c }

// WithBuildStd returns a copy with the -Z build-std group replaced.
func (c CargoBuild) WithBuildStd(b BuildStd) CargoBuild { c.BuildStd = b; return c }

// WithBuildStdFeatures returns a copy with the -Z build-std-features
// group replaced.
func (c CargoBuild) WithBuildStdFeatures(f BuildStdFeatures) CargoBuild {
	c.BuildStdFeatures = f
	return c
}

// WithRustFlags returns a copy with the RUSTFLAGS group replaced.
func (c CargoBuild) WithRustFlags(f RustFlags) CargoBuild { c.RustFlags = f; return c }

// WithExtraArgs returns a copy with the trailing raw arguments
// replaced. They are appended verbatim after every rendered flag.
func (c CargoBuild) WithExtraArgs(args ...string) CargoBuild { c.ExtraArgs = args; return c }

// Name implements oscmd.Command.
func (CargoBuild) Name() string { return "build" }

// Args renders the configuration into its token sequence.
// Rendering is pure and idempotent: it never touches the process
// environment (see Environ for RUSTFLAGS).
func (c CargoBuild) Args() []string {
	bin := c.Cargo
	if bin == "" {
		bin = "cargo"
	}
	sub := c.SubCommand
	if sub == "" {
		sub = SubBuild
	}

	args := make([]string, 0, 16)
	args = append(args, bin)
	if c.Nightly {
		args = append(args, "+nightly")
	}
	args = append(args, string(sub))
	if c.Profile != "" {
		args = append(args, "--profile="+string(c.Profile))
	}
	switch {
	case c.Pkg != "":
		args = append(args, "--package="+c.Pkg)
	case c.AllPackages:
		args = append(args, "--workspace")
	}
	if c.Target != "" {
		args = append(args, "--target="+string(c.Target))
	}
	if c.AllFeatures {
		args = append(args, "--all-features")
	}
	if c.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	if len(c.Features) > 0 {
		args = append(args, "--features="+strings.Join(c.Features, ","))
	}
	args = append(args, c.BuildStd.Args()...)
	args = append(args, c.BuildStdFeatures.Args()...)
	return append(args, c.ExtraArgs...)
}

// Environ implements oscmd.EnvProvider. When any RustFlags field is
// set, it returns a RUSTFLAGS variable for the child's environment
// overlay; otherwise nil, leaving the parent's RUSTFLAGS untouched.
func (c CargoBuild) Environ() map[string]string {
	flags := c.RustFlags.Flags()
	if len(flags) == 0 {
		return nil
	}
	return map[string]string{"RUSTFLAGS": strings.Join(flags, " ")}
}
