package presets

import "strings"

// BuildStdFeatures selects standard-library build features for
// `-Z build-std-features`. All fields default to false; a fully
// disabled group renders zero tokens.
//
// Feature order inside build-std-features= is the fixed order of the
// component table below, never the setter call order:
//
//	BuildStdFeatures{}.
//	    WithOptimizeForSize(true).
//	    WithPanicUnwind(true).
//	    Args()
//	// ["-Z", "build-std-features=panic_unwind,optimize_for_size"]
type BuildStdFeatures struct {
	// PanicImmediateAbort aborts on panic rather than unwinding.
	PanicImmediateAbort bool

	// PanicUnwind enables panic unwinding support.
	PanicUnwind bool

	// Backtrace enables backtrace support.
	Backtrace bool

	// LLVMLibunwind uses LLVM's libunwind for stack unwinding.
	LLVMLibunwind bool

	// SystemLLVMLibunwind uses the system LLVM libunwind.
	SystemLLVMLibunwind bool

	// OptimizeForSize optimizes the standard library for size.
	OptimizeForSize bool

	// DebugRefcell enables debug checks for RefCell borrow rules.
	DebugRefcell bool

	// DebugTypeid enables type ID verification.
	DebugTypeid bool

	// StdDetectFileIO enables file I/O feature detection.
	StdDetectFileIO bool

	// StdDetectDlsymGetauxval enables dlsym/getauxval detection.
	StdDetectDlsymGetauxval bool

	// StdDetectEnvOverride allows environment overrides for feature
	// detection.
	StdDetectEnvOverride bool

	// WindowsRawDylib uses raw dylib linking on Windows.
	WindowsRawDylib bool
}

// WithPanicImmediateAbort returns a copy with the feature toggled.
func (f BuildStdFeatures) WithPanicImmediateAbort(on bool) BuildStdFeatures {
	f.PanicImmediateAbort = on
	return f
}

// WithPanicUnwind returns a copy with the feature toggled.
func (f BuildStdFeatures) WithPanicUnwind(on bool) BuildStdFeatures {
	f.PanicUnwind = on
	return f
}

// WithBacktrace returns a copy with the feature toggled.
func (f BuildStdFeatures) WithBacktrace(on bool) BuildStdFeatures {
	f.Backtrace = on
	return f
}

// WithLLVMLibunwind returns a copy with the feature toggled.
func (f BuildStdFeatures) WithLLVMLibunwind(on bool) BuildStdFeatures {
	f.LLVMLibunwind = on
	return f
}

// WithSystemLLVMLibunwind returns a copy with the feature toggled.
func (f BuildStdFeatures) WithSystemLLVMLibunwind(on bool) BuildStdFeatures {
	f.SystemLLVMLibunwind = on
	return f
}

// WithOptimizeForSize returns a copy with the feature toggled.
func (f BuildStdFeatures) WithOptimizeForSize(on bool) BuildStdFeatures {
	f.OptimizeForSize = on
	return f
}

// WithDebugRefcell returns a copy with the feature toggled.
func (f BuildStdFeatures) WithDebugRefcell(on bool) BuildStdFeatures {
	f.DebugRefcell = on
	return f
}

// WithDebugTypeid returns a copy with the feature toggled.
func (f BuildStdFeatures) WithDebugTypeid(on bool) BuildStdFeatures {
	f.DebugTypeid = on
	return f
}

// WithStdDetectFileIO returns a copy with the feature toggled.
func (f BuildStdFeatures) WithStdDetectFileIO(on bool) BuildStdFeatures {
	f.StdDetectFileIO = on
	return f
}

// WithStdDetectDlsymGetauxval returns a copy with the feature toggled.
func (f BuildStdFeatures) WithStdDetectDlsymGetauxval(on bool) BuildStdFeatures {
	f.StdDetectDlsymGetauxval = on
	return f
}

// WithStdDetectEnvOverride returns a copy with the feature toggled.
func (f BuildStdFeatures) WithStdDetectEnvOverride(on bool) BuildStdFeatures {
	f.StdDetectEnvOverride = on
	return f
}

// WithWindowsRawDylib returns a copy with the feature toggled.
func (f BuildStdFeatures) WithWindowsRawDylib(on bool) BuildStdFeatures {
	f.WindowsRawDylib = on
	return f
}

func (f BuildStdFeatures) components() []component {
	return []component{
		{"panic_immediate_abort", f.PanicImmediateAbort},
		{"panic_unwind", f.PanicUnwind},
		{"backtrace", f.Backtrace},
		{"llvm_libunwind", f.LLVMLibunwind},
		{"system_llvm_libunwind", f.SystemLLVMLibunwind},
		{"optimize_for_size", f.OptimizeForSize},
		{"debug_refcell", f.DebugRefcell},
		{"debug_typeid", f.DebugTypeid},
		{"std_detect_file_io", f.StdDetectFileIO},
		{"std_detect_dlsym_getauxval", f.StdDetectDlsymGetauxval},
		{"std_detect_env_override", f.StdDetectEnvOverride},
		{"windows_raw_dylib", f.WindowsRawDylib},
	}
}

// Args renders the group. A fully disabled group renders zero tokens,
// including suppressing the introducing -Z flag.
func (f BuildStdFeatures) Args() []string {
	names := enabledNames(f.components())
	if len(names) == 0 {
		return nil
	}
	return []string{"-Z", "build-std-features=" + strings.Join(names, ",")}
}
