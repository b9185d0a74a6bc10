package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/osse101/WarekiBot_Go/pkg/wareki"
)

type ReverseCommand struct{}

func (c *ReverseCommand) Name() string {
	return "reverse"
}

func (c *ReverseCommand) Description() string {
	return "Find the era code for Gregorian years"
}

func (c *ReverseCommand) Run(ctx context.Context, args []string, env *Env) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(env.Err)
	digits := fs.Bool("digits", false, "use a digit prefix (431) instead of a letter (H31)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("usage: wareki reverse [-digits] YEAR...")
	}

	style := wareki.LetterPrefix
	if *digits {
		style = wareki.DigitPrefix
	}

	failed := 0
	for _, arg := range fs.Args() {
		year, err := strconv.Atoi(arg)
		if err != nil {
			failed++
			fmt.Fprintf(env.Err, "%s\tinvalid_input\tnot an integer\n", arg)
			continue
		}

		res, err := env.Service.ToEraCode(ctx, year, style)
		if err != nil {
			failed++
			fmt.Fprintf(env.Err, "%s\t%s\t%s\n", arg, wareki.KindOf(err), err)
			continue
		}
		fmt.Fprintf(env.Out, "%d\t%s\n", year, res.Code)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d years", ErrInputsFailed, failed, fs.NArg())
	}
	return nil
}
