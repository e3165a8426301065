package presets

import "strings"

// component is a (name, enabled) pair in a nested option group's
// fixed field order. The field sets never change at runtime, so a
// hand-written table is all the "reflection" needed.
type component struct {
	name    string
	enabled bool
}

func enabledNames(components []component) []string {
	var names []string
	for _, c := range components {
		if c.enabled {
			names = append(names, c.name)
		}
	}
	return names
}

// BuildStd selects standard-library components for `-Z build-std`.
//
// All fields default to false, rendering zero tokens.
//
// BuildDefault is special: it is NOT the same as the zero value.
// When true and no component is selected, the group renders
// ["-Z", "build-std"], which compiles the default component set.
// Any explicitly selected component overrides BuildDefault:
//
//	Core: true               => ["-Z", "build-std=core"]
//	Core+Alloc: true         => ["-Z", "build-std=core,alloc"]
//	only BuildDefault: true  => ["-Z", "build-std"]
//	nothing                  => []
//
// Component order inside build-std= is the declaration order below
// (std, core, alloc, panic_abort, panic_unwind, test, proc_macro),
// never the setter call order.
type BuildStd struct {
	BuildDefault bool
	Std          bool
	Core         bool
	Alloc        bool
	PanicAbort   bool
	PanicUnwind  bool
	Test         bool
	ProcMacro    bool
}

// WithBuildDefault returns a copy with the default component set
// enabled or disabled.
func (b BuildStd) WithBuildDefault(on bool) BuildStd { b.BuildDefault = on; return b }

// WithStd returns a copy with the std component enabled or disabled.
func (b BuildStd) WithStd(on bool) BuildStd { b.Std = on; return b }

// WithCore returns a copy with the core component enabled or disabled.
func (b BuildStd) WithCore(on bool) BuildStd { b.Core = on; return b }

// WithAlloc returns a copy with the alloc component enabled or disabled.
func (b BuildStd) WithAlloc(on bool) BuildStd { b.Alloc = on; return b }

// WithPanicAbort returns a copy with the panic_abort component
// enabled or disabled.
func (b BuildStd) WithPanicAbort(on bool) BuildStd { b.PanicAbort = on; return b }

// WithPanicUnwind returns a copy with the panic_unwind component
// enabled or disabled.
func (b BuildStd) WithPanicUnwind(on bool) BuildStd { b.PanicUnwind = on; return b }

// WithTest returns a copy with the test component enabled or disabled.
func (b BuildStd) WithTest(on bool) BuildStd { b.Test = on; return b }

// WithProcMacro returns a copy with the proc_macro component enabled
// or disabled.
func (b BuildStd) WithProcMacro(on bool) BuildStd { b.ProcMacro = on; return b }

// BuildDefault is deliberately absent from the component table; it
// only matters when every component is off.
func (b BuildStd) components() []component {
	return []component{
		{"std", b.Std},
		{"core", b.Core},
		{"alloc", b.Alloc},
		{"panic_abort", b.PanicAbort},
		{"panic_unwind", b.PanicUnwind},
		{"test", b.Test},
		{"proc_macro", b.ProcMacro},
	}
}

// Args renders the group. A fully disabled group renders zero tokens,
// including suppressing the introducing -Z flag.
func (b BuildStd) Args() []string {
	if names := enabledNames(b.components()); len(names) > 0 {
		return []string{"-Z", "build-std=" + strings.Join(names, ",")}
	}
	if b.BuildDefault {
		return []string{"-Z", "build-std"}
	}
	return nil
}
