package presets

import "fmt"

// LinkerFlavor controls the linker flavor used by rustc
// (`-C linker-flavor=...`). Empty omits the flag.
type LinkerFlavor string

const (
	FlavorEmscripten LinkerFlavor = "em"
	FlavorGCC        LinkerFlavor = "gcc"
	FlavorLD         LinkerFlavor = "ld"
	FlavorMSVC       LinkerFlavor = "msvc"
	FlavorWasmLD     LinkerFlavor = "wasm-ld"
	FlavorDarwinLLD  LinkerFlavor = "ld64.lld"
	FlavorGNULLD     LinkerFlavor = "ld.lld"
	FlavorLLDLink    LinkerFlavor = "lld-link"
)

// RelocationModel is a rustc relocation model
// (`rustc --print relocation-models`). Empty omits the flag.
type RelocationModel string

const (
	RelocStatic       RelocationModel = "static"
	RelocPic          RelocationModel = "pic"
	RelocPie          RelocationModel = "pie"
	RelocDynamicNoPic RelocationModel = "dynamic-no-pic"
	RelocRopi         RelocationModel = "ropi"
	RelocRwpi         RelocationModel = "rwpi"
	RelocRopiRwpi     RelocationModel = "ropi-rwpi"
	RelocDefault      RelocationModel = "default"
)

// CodeModel is a rustc code model (`rustc --print code-models`).
// Code models put constraints on the address ranges the program and
// its symbols may use. Empty omits the flag.
type CodeModel string

const (
	CodeModelTiny   CodeModel = "tiny"
	CodeModelSmall  CodeModel = "small"
	CodeModelKernel CodeModel = "kernel"
	CodeModelMedium CodeModel = "medium"
	CodeModelLarge  CodeModel = "large"
)

// Bool returns a pointer for RustFlags' tri-state fields.
func Bool(v bool) *bool { return &v }

// RustFlags configures rustc codegen flags, rendered into a single
// RUSTFLAGS value (see CargoBuild.Environ). Every field defaults to
// "unset" and renders nothing.
//
// Rendered values, each preceded by a "-C" token:
//
//	CrtStatic          true  => target-feature=+crt-static
//	                   false => target-feature=-crt-static
//	PreferDynamic            => prefer-dynamic=true|false
//	Linker             "lld" => linker=lld
//	LinkerFlavor             => linker-flavor=<flavor>
//	LinkSelfContained        => link-self-contained=true|false
//	RelocationModel          => relocation-model=<model>
//	CodeModel                => code-model=<model>
//	CodegenUnits       n>0   => codegen-units=<n>
//	NativeTargetCPU    true  => target-cpu=native
//	                   false => target-cpu=generic
//
// ExtraFlags are appended verbatim, after the rendered flags.
//
// # Example
//
//	RustFlags{
//	    CrtStatic:     presets.Bool(false),
//	    PreferDynamic: presets.Bool(true),
//	    LinkerFlavor:  presets.FlavorGNULLD,
//	}.Flags()
//	// ["-C", "target-feature=-crt-static",
//	//  "-C", "prefer-dynamic=true",
//	//  "-C", "linker-flavor=ld.lld"]
type RustFlags struct {
	CrtStatic         *bool
	PreferDynamic     *bool
	Linker            string
	LinkerFlavor      LinkerFlavor
	LinkSelfContained *bool
	RelocationModel   RelocationModel
	CodeModel         CodeModel
	CodegenUnits      int
	NativeTargetCPU   *bool
	ExtraFlags        []string
}

// WithCrtStatic returns a copy with static CRT linkage selected (+)
// or deselected (-).
func (f RustFlags) WithCrtStatic(on bool) RustFlags { f.CrtStatic = &on; return f }

// WithPreferDynamic returns a copy with prefer-dynamic set.
func (f RustFlags) WithPreferDynamic(on bool) RustFlags { f.PreferDynamic = &on; return f }

// WithLinker returns a copy with the linker binary set.
func (f RustFlags) WithLinker(linker string) RustFlags { f.Linker = linker; return f }

// WithLinkerFlavor returns a copy with the linker flavor set.
func (f RustFlags) WithLinkerFlavor(flavor LinkerFlavor) RustFlags {
	f.LinkerFlavor = flavor
	return f
}

// WithLinkSelfContained returns a copy with link-self-contained set.
func (f RustFlags) WithLinkSelfContained(on bool) RustFlags { f.LinkSelfContained = &on; return f }

// WithRelocationModel returns a copy with the relocation model set.
func (f RustFlags) WithRelocationModel(m RelocationModel) RustFlags {
	f.RelocationModel = m
	return f
}

// WithCodeModel returns a copy with the code model set.
func (f RustFlags) WithCodeModel(m CodeModel) RustFlags { f.CodeModel = m; return f }

// WithCodegenUnits returns a copy with the codegen-units count set.
// Zero means unset.
func (f RustFlags) WithCodegenUnits(n int) RustFlags { f.CodegenUnits = n; return f }

// WithNativeTargetCPU returns a copy targeting the native (true) or
// generic (false) CPU.
func (f RustFlags) WithNativeTargetCPU(on bool) RustFlags { f.NativeTargetCPU = &on; return f }

// WithExtraFlags returns a copy with the verbatim trailing flags
// replaced.
func (f RustFlags) WithExtraFlags(flags ...string) RustFlags { f.ExtraFlags = flags; return f }

// Flags renders the configured values in their fixed field order.
// A fully unset RustFlags renders nil.
func (f RustFlags) Flags() []string {
	var vals []string

	if f.CrtStatic != nil {
		sym := "-"
		if *f.CrtStatic {
			sym = "+"
		}
		vals = append(vals, "target-feature="+sym+"crt-static")
	}
	if f.PreferDynamic != nil {
		vals = append(vals, fmt.Sprintf("prefer-dynamic=%t", *f.PreferDynamic))
	}
	if f.Linker != "" {
		vals = append(vals, "linker="+f.Linker)
	}
	if f.LinkerFlavor != "" {
		vals = append(vals, "linker-flavor="+string(f.LinkerFlavor))
	}
	if f.LinkSelfContained != nil {
		vals = append(vals, fmt.Sprintf("link-self-contained=%t", *f.LinkSelfContained))
	}
	if f.RelocationModel != "" {
		vals = append(vals, "relocation-model="+string(f.RelocationModel))
	}
	if f.CodeModel != "" {
		vals = append(vals, "code-model="+string(f.CodeModel))
	}
	if f.CodegenUnits > 0 {
		vals = append(vals, fmt.Sprintf("codegen-units=%d", f.CodegenUnits))
	}
	if f.NativeTargetCPU != nil {
		cpu := "generic"
		if *f.NativeTargetCPU {
			cpu = "native"
		}
		vals = append(vals, "target-cpu="+cpu)
	}

	if len(vals) == 0 && len(f.ExtraFlags) == 0 {
		return nil
	}

	out := make([]string, 0, len(vals)*2+len(f.ExtraFlags))
	for _, v := range vals {
		out = append(out, "-C", v)
	}
	return append(out, f.ExtraFlags...)
}
