package main

import (
	"context"
	"fmt"
	"text/tabwriter"
)

type ErasCommand struct{}

func (c *ErasCommand) Name() string {
	return "eras"
}

func (c *ErasCommand) Description() string {
	return "List supported eras"
}

func (c *ErasCommand) Run(ctx context.Context, _ []string, env *Env) error {
	tw := tabwriter.NewWriter(env.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ERA\tLETTER\tDIGIT\tFIRST\tLAST")
	for _, era := range env.Service.Eras(ctx) {
		last := "-"
		if year, ok := era.LastYear(); ok {
			last = fmt.Sprint(year)
		}
		fmt.Fprintf(tw, "%s\t%c\t%c\t%d\t%s\n", era.Name, era.Letter, era.Digit, era.FirstYear(), last)
	}
	return tw.Flush()
}
