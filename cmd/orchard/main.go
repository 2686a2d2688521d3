package main

import (
	"github.com/alecthomas/kong"

	"github.com/orchardkit/orchard/lib/consoles"
	"github.com/orchardkit/orchard/lib/model"
)

var cli struct {
	DefaultColor string `help:"Color used when an apple spec omits it." default:"red"`
	DefaultSize  string `help:"Size used when an apple spec omits it." default:"medium"`

	Describe DescribeCmd `cmd:"" help:"Describe one or more apples."`
	Compose  ComposeCmd  `cmd:"" help:"Compose two apples into a new one."`
	Validate ValidateCmd `cmd:"" help:"Check that names contain only ASCII letters and digits."`
}

type context struct {
	console  consoles.Console
	defaults model.Apple
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	err := ctx.Run(&context{
		console: consoles.NewStdOutConsole(),
		defaults: model.Apple{
			Color: cli.DefaultColor,
			Size:  cli.DefaultSize,
		},
	})
	ctx.FatalIfErrorf(err)
}
