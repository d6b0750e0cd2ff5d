package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Blend one value from all five engines (default)"`
	Batch    BatchCmd    `cmd:"" help:"Blend many values over consecutive seeds and report statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blendrand"),
		kong.Description("Average of five classical pseudo-random generators"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
