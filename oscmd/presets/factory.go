package presets

import (
	"fmt"

	"github.com/2moe/testutils/oscmd"
)

// Factory manages a registry of named preset constructors.
//
// Entries are checked in registration order; the first entry whose
// name matches wins, so a custom preset registered under an existing
// name shadows the standard one only if registered first.
//
// # Thread Safety
//
// Factory is NOT thread-safe for registration. Register all presets
// before concurrent use; after that, For and Names are safe.
type Factory struct {
	entries []factoryEntry
}

type factoryEntry struct {
	name string
	make func() oscmd.Command
}

// NewFactory creates a factory with the standard presets registered:
// "doc" (CargoDoc), "fmt" (CargoFmt), and "build" (CargoBuild), each
// constructed with its documented defaults.
func NewFactory() *Factory {
	f := &Factory{}
	f.Register("doc", func() oscmd.Command { return NewCargoDoc() })
	f.Register("fmt", func() oscmd.Command { return NewCargoFmt() })
	f.Register("build", func() oscmd.Command { return NewCargoBuild() })
	return f
}

// Register adds a named preset constructor to the factory.
func (f *Factory) Register(name string, make func() oscmd.Command) {
	f.entries = append(f.entries, factoryEntry{name: name, make: make})
}

// For returns a fresh default-constructed preset for the given name,
// or an error if no preset is registered under it.
func (f *Factory) For(name string) (oscmd.Command, error) {
	for _, e := range f.entries {
		if e.name == name {
			return e.make(), nil
		}
	}
	return nil, fmt.Errorf("no preset registered for %q", name)
}

// Names returns the registered preset names in registration order.
func (f *Factory) Names() []string {
	names := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		names = append(names, e.name)
	}
	return names
}
