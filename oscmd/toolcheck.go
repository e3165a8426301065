package oscmd

import (
	"fmt"
	"os/exec"
	"strings"
)

// ToolRequirement describes an external tool dependency.
//
// Requirements can be:
//   - Required tools (must be available in PATH)
//   - Optional tools (nice to have, but missing ones don't fail)
//   - Tools with alternatives (any one of several names satisfies
//     the requirement)
//
// # Examples
//
// Required tool:
//
//	ToolRequirement{
//	    Name: "cargo",
//	    Purpose: "Rust compiler and package manager",
//	}
//
// Tool with alternatives:
//
//	ToolRequirement{
//	    Name: "cc",
//	    Alternatives: []string{"gcc", "clang"},
//	    Purpose: "C compiler for build scripts",
//	}
type ToolRequirement struct {
	// Name is the primary tool binary name (e.g., "cargo").
	Name string

	// Alternatives are alternative tool names that can satisfy this
	// requirement. If any tool in Alternatives is found, the
	// requirement is satisfied.
	Alternatives []string

	// Optional indicates this tool won't cause an error if missing.
	Optional bool

	// Purpose is a human-readable description of why this tool is
	// needed. Example: "Rust toolchain manager"
	Purpose string
}

// CargoToolchain returns the tool requirements for running the cargo
// presets in oscmd/presets: cargo itself is required, rustup is
// optional (only nightly-channel presets benefit from it).
func CargoToolchain() []ToolRequirement {
	return []ToolRequirement{
		{Name: "cargo", Purpose: "Rust compiler and package manager"},
		{Name: "rustup", Optional: true, Purpose: "Rust toolchain manager (for +nightly)"},
	}
}

// CheckToolAvailable checks if a tool is available in the system
// PATH. It is a thin wrapper around exec.LookPath with a consistent
// error message.
func CheckToolAvailable(tool string) error {
	if _, err := exec.LookPath(tool); err != nil {
		return fmt.Errorf("%s not found in PATH", tool)
	}
	return nil
}

// CheckRequiredTools verifies all required tools are available.
//
// The primary tool name is checked first; if not found, each
// alternative is tried in order. Optional tools never cause errors.
// All missing required tools are reported in a single error so the
// user can fix them in one pass.
//
// # Error Format
//
// Single missing tool:
//
//	cargo (Rust compiler and package manager) not found in PATH
//
// Multiple missing tools:
//
//	missing required tools: cargo (Rust compiler and package manager), rustc
func CheckRequiredTools(requirements []ToolRequirement) error {
	var missing []string

	for _, req := range requirements {
		found := CheckToolAvailable(req.Name) == nil

		if !found {
			for _, alt := range req.Alternatives {
				if CheckToolAvailable(alt) == nil {
					found = true
					break
				}
			}
		}

		if !found && !req.Optional {
			if req.Purpose != "" {
				missing = append(missing, fmt.Sprintf("%s (%s)", req.Name, req.Purpose))
			} else {
				missing = append(missing, req.Name)
			}
		}
	}

	switch len(missing) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s not found in PATH", missing[0])
	default:
		return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
	}
}
