// Package presets provides preconfigured cargo command builders.
//
// Each preset is a plain value type with documented defaults, fluent
// WithX setters that return an updated copy, and an Args method that
// deterministically renders the current state into an ordered token
// sequence. Render order is a fixed property of each type - it never
// depends on the order setters were called in.
//
// # Presets
//
//   - CargoDoc - `cargo rustdoc` documentation generation
//   - CargoFmt - `cargo fmt`
//   - CargoBuild - `cargo build` (and the other cargo subcommands),
//     with nested option groups BuildStd, BuildStdFeatures, and
//     RustFlags
//
// # Basic Usage
//
//	args := presets.NewCargoBuild().
//	    WithNightly(true).
//	    WithPkg("testutils").
//	    WithTarget(presets.TargetAarch64LinuxAndroid).
//	    Args()
//
// Presets implement oscmd.Command, so they plug straight into the
// Runner:
//
//	outcome, err := oscmd.RunnerFor(presets.NewCargoFmt()).Run(ctx)
//
// Presets can also be loaded from TOML files (LoadCargoBuild,
// LoadCargoDoc) or obtained by name from a Factory.
package presets
