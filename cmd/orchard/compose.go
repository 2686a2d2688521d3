package main

import (
	"fmt"

	"github.com/orchardkit/orchard/lib/common"
	"github.com/orchardkit/orchard/lib/model"
)

type ComposeCmd struct {
	A string `arg:"" help:"First apple spec as color[:size]."`
	B string `arg:"" help:"Second apple spec as color[:size]."`
}

func (c *ComposeCmd) Run(ctx *context) error {
	a, err := common.SplitSpec(ctx.defaults, c.A)
	if err != nil {
		return err
	}

	b, err := common.SplitSpec(ctx.defaults, c.B)
	if err != nil {
		return err
	}

	composed := model.Compose(a, b)

	fmt.Printf("%v\n", composed.Describe())

	return nil
}
