package presets

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Preset TOML files overlay onto the preset defaults: only keys
// actually present in the file change the configuration, so a file
// containing a single key leaves every other field at its documented
// default.
//
// CargoBuild schema:
//
//	cargo = "cargo"
//	nightly = true
//	sub-command = "build"
//	profile = "release"
//	package = "testutils"
//	target = "aarch64-linux-android"
//	all-packages = false
//	all-features = false
//	no-default-features = false
//	features = ["serde"]
//	extra-args = ["--locked"]
//
//	[build-std]
//	core = true
//	alloc = true
//
//	[build-std-features]
//	panic_immediate_abort = true
//
//	[rust-flags]
//	crt-static = false
//	linker-flavor = "ld.lld"

// buildFile mirrors the CargoBuild TOML schema.
type buildFile struct {
	Cargo             string          `toml:"cargo"`
	Nightly           bool            `toml:"nightly"`
	SubCommand        string          `toml:"sub-command"`
	Profile           string          `toml:"profile"`
	Package           string          `toml:"package"`
	Target            string          `toml:"target"`
	AllPackages       bool            `toml:"all-packages"`
	AllFeatures       bool            `toml:"all-features"`
	NoDefaultFeatures bool            `toml:"no-default-features"`
	Features          []string        `toml:"features"`
	ExtraArgs         []string        `toml:"extra-args"`
	BuildStd          map[string]bool `toml:"build-std"`
	BuildStdFeatures  map[string]bool `toml:"build-std-features"`
	RustFlags         rustFlagsFile   `toml:"rust-flags"`
}

type rustFlagsFile struct {
	CrtStatic         bool     `toml:"crt-static"`
	PreferDynamic     bool     `toml:"prefer-dynamic"`
	Linker            string   `toml:"linker"`
	LinkerFlavor      string   `toml:"linker-flavor"`
	LinkSelfContained bool     `toml:"link-self-contained"`
	RelocationModel   string   `toml:"relocation-model"`
	CodeModel         string   `toml:"code-model"`
	CodegenUnits      int      `toml:"codegen-units"`
	NativeTargetCPU   bool     `toml:"native-target-cpu"`
	ExtraFlags        []string `toml:"extra-flags"`
}

// LoadCargoBuild decodes a TOML preset file and overlays it onto
// NewCargoBuild's defaults. Unknown [build-std] or
// [build-std-features] keys are an error rather than silently
// ignored, since a typo there would otherwise change what gets
// compiled.
func LoadCargoBuild(path string) (CargoBuild, error) {
	cfg := NewCargoBuild()

	var raw buildFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return CargoBuild{}, fmt.Errorf("load cargo build preset: %w", err)
	}

	if meta.IsDefined("cargo") {
		cfg.Cargo = raw.Cargo
	}
	if meta.IsDefined("nightly") {
		cfg.Nightly = raw.Nightly
	}
	if meta.IsDefined("sub-command") {
		cfg.SubCommand = SubCommand(raw.SubCommand)
	}
	if meta.IsDefined("profile") {
		cfg.Profile = Profile(raw.Profile)
	}
	if meta.IsDefined("package") {
		cfg.Pkg = raw.Package
	}
	if meta.IsDefined("target") {
		cfg.Target = Target(raw.Target)
	}
	if meta.IsDefined("all-packages") {
		cfg.AllPackages = raw.AllPackages
	}
	if meta.IsDefined("all-features") {
		cfg.AllFeatures = raw.AllFeatures
	}
	if meta.IsDefined("no-default-features") {
		cfg.NoDefaultFeatures = raw.NoDefaultFeatures
	}
	if meta.IsDefined("features") {
		cfg.Features = raw.Features
	}
	if meta.IsDefined("extra-args") {
		cfg.ExtraArgs = raw.ExtraArgs
	}

	if cfg.BuildStd, err = buildStdFromKeys(raw.BuildStd); err != nil {
		return CargoBuild{}, fmt.Errorf("load cargo build preset: %w", err)
	}
	if cfg.BuildStdFeatures, err = buildStdFeaturesFromKeys(raw.BuildStdFeatures); err != nil {
		return CargoBuild{}, fmt.Errorf("load cargo build preset: %w", err)
	}

	cfg.RustFlags = rustFlagsFromFile(meta, raw.RustFlags)

	return cfg, nil
}

// docFile mirrors the CargoDoc TOML schema.
type docFile struct {
	Package      string `toml:"package"`
	CustomCfg    string `toml:"custom-cfg"`
	Nightly      bool   `toml:"nightly"`
	AllFeatures  bool   `toml:"all-features"`
	Open         bool   `toml:"open"`
	PrivateItems bool   `toml:"document-private-items"`
}

// LoadCargoDoc decodes a TOML preset file and overlays it onto
// NewCargoDoc's defaults.
func LoadCargoDoc(path string) (CargoDoc, error) {
	cfg := NewCargoDoc()

	var raw docFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return CargoDoc{}, fmt.Errorf("load cargo doc preset: %w", err)
	}

	if meta.IsDefined("package") {
		cfg.Pkg = raw.Package
	}
	if meta.IsDefined("custom-cfg") {
		cfg.CustomCfg = raw.CustomCfg
	}
	if meta.IsDefined("nightly") {
		cfg.Nightly = raw.Nightly
	}
	if meta.IsDefined("all-features") {
		cfg.AllFeatures = raw.AllFeatures
	}
	if meta.IsDefined("open") {
		cfg.Open = raw.Open
	}
	if meta.IsDefined("document-private-items") {
		cfg.PrivateItems = raw.PrivateItems
	}

	return cfg, nil
}

func buildStdFromKeys(keys map[string]bool) (BuildStd, error) {
	var b BuildStd
	for name, on := range keys {
		switch name {
		case "default":
			b.BuildDefault = on
		case "std":
			b.Std = on
		case "core":
			b.Core = on
		case "alloc":
			b.Alloc = on
		case "panic_abort":
			b.PanicAbort = on
		case "panic_unwind":
			b.PanicUnwind = on
		case "test":
			b.Test = on
		case "proc_macro":
			b.ProcMacro = on
		default:
			return BuildStd{}, fmt.Errorf("unknown build-std component %q", name)
		}
	}
	return b, nil
}

func buildStdFeaturesFromKeys(keys map[string]bool) (BuildStdFeatures, error) {
	var f BuildStdFeatures
	for name, on := range keys {
		switch name {
		case "panic_immediate_abort":
			f.PanicImmediateAbort = on
		case "panic_unwind":
			f.PanicUnwind = on
		case "backtrace":
			f.Backtrace = on
		case "llvm_libunwind":
			f.LLVMLibunwind = on
		case "system_llvm_libunwind":
			f.SystemLLVMLibunwind = on
		case "optimize_for_size":
			f.OptimizeForSize = on
		case "debug_refcell":
			f.DebugRefcell = on
		case "debug_typeid":
			f.DebugTypeid = on
		case "std_detect_file_io":
			f.StdDetectFileIO = on
		case "std_detect_dlsym_getauxval":
			f.StdDetectDlsymGetauxval = on
		case "std_detect_env_override":
			f.StdDetectEnvOverride = on
		case "windows_raw_dylib":
			f.WindowsRawDylib = on
		default:
			return BuildStdFeatures{}, fmt.Errorf("unknown build-std feature %q", name)
		}
	}
	return f, nil
}

func rustFlagsFromFile(meta toml.MetaData, raw rustFlagsFile) RustFlags {
	var f RustFlags
	if meta.IsDefined("rust-flags", "crt-static") {
		f.CrtStatic = Bool(raw.CrtStatic)
	}
	if meta.IsDefined("rust-flags", "prefer-dynamic") {
		f.PreferDynamic = Bool(raw.PreferDynamic)
	}
	if meta.IsDefined("rust-flags", "linker") {
		f.Linker = raw.Linker
	}
	if meta.IsDefined("rust-flags", "linker-flavor") {
		f.LinkerFlavor = LinkerFlavor(raw.LinkerFlavor)
	}
	if meta.IsDefined("rust-flags", "link-self-contained") {
		f.LinkSelfContained = Bool(raw.LinkSelfContained)
	}
	if meta.IsDefined("rust-flags", "relocation-model") {
		f.RelocationModel = RelocationModel(raw.RelocationModel)
	}
	if meta.IsDefined("rust-flags", "code-model") {
		f.CodeModel = CodeModel(raw.CodeModel)
	}
	if meta.IsDefined("rust-flags", "codegen-units") {
		f.CodegenUnits = raw.CodegenUnits
	}
	if meta.IsDefined("rust-flags", "native-target-cpu") {
		f.NativeTargetCPU = Bool(raw.NativeTargetCPU)
	}
	if meta.IsDefined("rust-flags", "extra-flags") {
		f.ExtraFlags = raw.ExtraFlags
	}
	return f
}
