package presets

// CargoDoc configures a `cargo rustdoc` command.
//
// # Defaults
//
//	Pkg:          ""       (document the current package)
//	CustomCfg:    "docsrs"
//	Nightly:      true
//	AllFeatures:  true
//	Open:         true
//	PrivateItems: true
//
// # Render Order
//
//	cargo
//	+nightly                   iff Nightly
//	rustdoc
//	--package <Pkg>            iff Pkg is non-empty
//	--all-features             iff AllFeatures
//	--open                     iff Open
//	--                         always (rustdoc passthrough separator)
//	--cfg <CustomCfg>          iff CustomCfg is non-empty
//	--document-private-items   iff PrivateItems
//
// An empty Pkg omits the --package pair entirely; likewise an empty
// CustomCfg omits the --cfg pair. The defaults render to:
//
//	["cargo", "+nightly", "rustdoc", "--all-features", "--open",
//	 "--", "--cfg", "docsrs", "--document-private-items"]
type CargoDoc struct {
	Pkg          string
	CustomCfg    string
	Nightly      bool
	AllFeatures  bool
	Open         bool
	PrivateItems bool
}

// NewCargoDoc returns a CargoDoc with the documented defaults.
// The zero value is not the default configuration.
func NewCargoDoc() CargoDoc {
	return CargoDoc{
		CustomCfg:    "docsrs",
		Nightly:      true,
		AllFeatures:  true,
		Open:         true,
		PrivateItems: true,
	}
}

// WithPkg returns a copy with the package selector set.
// Empty means "document the current package".
func (c CargoDoc) WithPkg(pkg string) CargoDoc { c.Pkg = pkg; return c }

// WithCustomCfg returns a copy with the --cfg value set.
// Empty disables the --cfg pair.
func (c CargoDoc) WithCustomCfg(cfg string) CargoDoc { c.CustomCfg = cfg; return c }

// WithNightly returns a copy with the +nightly toolchain selector
// enabled or disabled.
func (c CargoDoc) WithNightly(on bool) CargoDoc { c.Nightly = on; return c }

// WithAllFeatures returns a copy with --all-features enabled or
// disabled.
func (c CargoDoc) WithAllFeatures(on bool) CargoDoc { c.AllFeatures = on; return c }

// WithOpen returns a copy that opens (or doesn't open) the generated
// documentation in a browser. Disable for headless or remote-SSH use.
func (c CargoDoc) WithOpen(on bool) CargoDoc { c.Open = on; return c }

// WithPrivateItems returns a copy with --document-private-items
// enabled or disabled.
func (c CargoDoc) WithPrivateItems(on bool) CargoDoc { c.PrivateItems = on; return c }

// Name implements oscmd.Command.
func (CargoDoc) Name() string { return "doc" }

// Args renders the configuration into its token sequence.
// Rendering is pure and idempotent.
func (c CargoDoc) Args() []string {
	args := make([]string, 0, 10)
	args = append(args, "cargo")
	if c.Nightly {
		args = append(args, "+nightly")
	}
	args = append(args, "rustdoc")
	if c.Pkg != "" {
		args = append(args, "--package", c.Pkg)
	}
	if c.AllFeatures {
		args = append(args, "--all-features")
	}
	if c.Open {
		args = append(args, "--open")
	}
	args = append(args, "--")
	if c.CustomCfg != "" {
		args = append(args, "--cfg", c.CustomCfg)
	}
	if c.PrivateItems {
		args = append(args, "--document-private-items")
	}
	return args
}
