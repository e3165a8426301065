package presets

// CargoFmt configures a `cargo fmt` command.
//
// Default: Nightly is true, rendering to
//
//	["cargo", "+nightly", "fmt"]
type CargoFmt struct {
	Nightly bool
}

// NewCargoFmt returns a CargoFmt with the documented default.
func NewCargoFmt() CargoFmt {
	return CargoFmt{Nightly: true}
}

// WithNightly returns a copy with the +nightly toolchain selector
// enabled or disabled.
func (c CargoFmt) WithNightly(on bool) CargoFmt { c.Nightly = on; return c }

// Name implements oscmd.Command.
func (CargoFmt) Name() string { return "fmt" }

// Args renders the configuration into its token sequence.
func (c CargoFmt) Args() []string {
	args := make([]string, 0, 3)
	args = append(args, "cargo")
	if c.Nightly {
		args = append(args, "+nightly")
	}
	return append(args, "fmt")
}
