package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/osse101/WarekiBot_Go/pkg/wareki"
)

type ConvertCommand struct{}

func (c *ConvertCommand) Name() string {
	return "convert"
}

func (c *ConvertCommand) Description() string {
	return "Convert era codes (M45, 431) to Gregorian years"
}

func (c *ConvertCommand) Run(ctx context.Context, args []string, env *Env) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(env.Err)
	lenient := fs.Bool("lenient", false, "fold full-width characters and case before converting")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("usage: wareki convert [-lenient] CODE...")
	}

	failed := 0
	for _, code := range fs.Args() {
		res, err := env.Service.Convert(ctx, code, *lenient)
		if err != nil {
			failed++
			fmt.Fprintf(env.Err, "%s\t%s\t%s\n", code, wareki.KindOf(err), err)
			continue
		}
		fmt.Fprintf(env.Out, "%s\t%d\n", code, res.GregorianYear)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d codes", ErrInputsFailed, failed, fs.NArg())
	}
	return nil
}
