package main

import (
	"fmt"

	"github.com/gertd/go-pluralize"
	"github.com/samber/lo"

	"github.com/orchardkit/orchard/lib/common"
)

type ValidateCmd struct {
	Names []string `arg:"" help:"Names to check."`

	Quiet bool `short:"q" help:"Only print the summary."`
}

func (c *ValidateCmd) Run(ctx *context) error {
	if !c.Quiet {
		for _, name := range c.Names {
			ctx.console.PushPrefix("%v:", name)

			if common.IsAlphanumeric(name) {
				ctx.console.Printf("ok\n")
			} else {
				ctx.console.Printf("invalid\n")
			}

			ctx.console.PopPrefix()
		}
	}

	valid := lo.Filter(c.Names, func(n string, _ int) bool { return common.IsAlphanumeric(n) })
	invalid := len(c.Names) - len(valid)

	pc := pluralize.NewClient()
	fmt.Printf("%v valid %v, %v invalid\n",
		len(valid), pc.Pluralize("name", len(valid), false), invalid)

	return nil
}
