// Package testutils provides small developer utilities for Go projects
// that drive the cargo CLI: debug-print helpers and, in its
// subpackages, configurable cargo command builders and a subprocess
// runner.
//
// # Layout
//
// The module is organized as:
//   - testutils (this package) - debug-print helpers (Dbg, DbgLog, Benchmark)
//   - oscmd - token sequences, comment-stripping tokenizer, Runner
//   - oscmd/presets - preconfigured cargo commands (CargoDoc, CargoFmt, CargoBuild)
//
// # Basic Usage
//
// Render a preset and run it:
//
//	preset := presets.NewCargoDoc().WithPkg("testutils")
//	outcome, err := oscmd.RunnerFor(preset).Run(ctx)
//
// Or run a free-form, comment-annotated command string:
//
//	raw := `
//	    rustc
//	    --print target-list // inspect supported targets
//	`
//	outcome, err := oscmd.NewRawRunner(raw).Run(ctx)
package testutils
