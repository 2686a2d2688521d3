package main

import (
	"fmt"

	"github.com/gertd/go-pluralize"

	"github.com/orchardkit/orchard/lib/common"
)

type DescribeCmd struct {
	Apples []string `arg:"" optional:"" help:"Apple specs as color[:size]. Without arguments describes a default apple."`
}

func (c *DescribeCmd) Run(ctx *context) error {
	specs := c.Apples
	if len(specs) == 0 {
		specs = []string{""}
	}

	for _, spec := range specs {
		apple, err := common.SplitSpec(ctx.defaults, spec)
		if err != nil {
			return err
		}

		fmt.Printf("%v\n", apple.Describe())
	}

	if len(specs) > 1 {
		pc := pluralize.NewClient()
		fmt.Printf("\nDescribed %v %v.\n", len(specs), pc.Pluralize("apple", len(specs), false))
	}

	return nil
}
