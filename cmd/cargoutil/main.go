// Command cargoutil runs common cargo workflows from preconfigured
// presets. Each subcommand renders a preset into an argument vector
// and executes it, echoing the vector to stderr first.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/2moe/testutils/oscmd"
	"github.com/2moe/testutils/oscmd/presets"
)

type cli struct {
	Verbose bool `short:"v" help:"Enable debug logging."`
	DryRun  bool `help:"Print the command instead of running it."`

	Doc   docCmd   `cmd:"" help:"Build documentation with cargo rustdoc."`
	Fmt   fmtCmd   `cmd:"" help:"Format the workspace with cargo fmt."`
	Build buildCmd `cmd:"" help:"Build with cargo, optionally cross-compiling."`
	Exec  execCmd  `cmd:"" help:"Run a raw command line after comment stripping."`
	Check checkCmd `cmd:"" help:"Verify the required toolchain is installed."`
}

func (c *cli) AfterApply() error {
	if c.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

// global carries flags shared by every subcommand.
type global struct {
	DryRun bool
}

type docCmd struct {
	Config  string `type:"existingfile" help:"TOML preset file to overlay onto the defaults."`
	Package string `short:"p" help:"Document a single package."`
	NoOpen  bool   `help:"Do not open the docs in a browser."`
}

func (d *docCmd) Run(g *global) error {
	cfg := presets.NewCargoDoc()
	if d.Config != "" {
		var err error
		if cfg, err = presets.LoadCargoDoc(d.Config); err != nil {
			return err
		}
	}
	if d.Package != "" {
		cfg = cfg.WithPkg(d.Package)
	}
	if d.NoOpen {
		cfg = cfg.WithOpen(false)
	}
	return execute(g, cfg)
}

type fmtCmd struct {
	Stable bool `help:"Use the stable toolchain instead of nightly."`
}

func (f *fmtCmd) Run(g *global) error {
	cfg := presets.NewCargoFmt()
	if f.Stable {
		cfg = cfg.WithNightly(false)
	}
	return execute(g, cfg)
}

type buildCmd struct {
	Config  string `type:"existingfile" help:"TOML preset file to overlay onto the defaults."`
	Package string `short:"p" help:"Build a single package."`
	Target  string `help:"Target triple to cross-compile for."`
	Dev     bool   `help:"Build with the dev profile instead of release."`
}

func (b *buildCmd) Run(g *global) error {
	cfg := presets.NewCargoBuild()
	if b.Config != "" {
		var err error
		if cfg, err = presets.LoadCargoBuild(b.Config); err != nil {
			return err
		}
	}
	if b.Package != "" {
		cfg = cfg.WithPkg(b.Package)
	}
	if b.Target != "" {
		cfg = cfg.WithTarget(presets.Target(b.Target))
	}
	if b.Dev {
		cfg = cfg.WithProfile(presets.ProfileDev)
	}
	return execute(g, cfg)
}

type execCmd struct {
	Line string `arg:"" help:"Command line to tokenize and run. Text after // on a line is dropped."`
}

func (e *execCmd) Run(g *global) error {
	if g.DryRun {
		argv, err := oscmd.SplitRaw(e.Line, true)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(argv, " "))
		return nil
	}
	_, err := oscmd.NewRawRunner(e.Line).
		WithFailOnNonZero(true).
		Run(context.Background())
	return err
}

type checkCmd struct{}

func (checkCmd) Run(*global) error {
	if err := oscmd.CheckRequiredTools(oscmd.CargoToolchain()); err != nil {
		return err
	}
	fmt.Println("toolchain ok")
	return nil
}

// execute renders cmd and either prints it (dry run) or runs it with
// inherited stdio, failing on a non-zero exit.
func execute(g *global, cmd oscmd.Command) error {
	if g.DryRun {
		fmt.Println(strings.Join(cmd.Args(), " "))
		return nil
	}
	_, err := oscmd.RunnerFor(cmd).
		WithFailOnNonZero(true).
		Run(context.Background())
	return err
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("cargoutil"),
		kong.Description("Preset-driven cargo command runner."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&global{DryRun: c.DryRun}); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}
