package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Edit    EditCmd          `cmd:"" default:"withargs" help:"Open the interactive range grid editor"`
	Combos  CombosCmd        `cmd:"" help:"Print combination counts for a range notation"`
	Export  ExportCmd        `cmd:"" help:"Normalize a range notation to compact form"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rangegrid"),
		kong.Description("Interactive 13x13 poker range builder"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
