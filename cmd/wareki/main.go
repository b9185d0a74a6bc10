// Command wareki converts Japanese era codes from the command line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/osse101/WarekiBot_Go/internal/conversion"
	"github.com/osse101/WarekiBot_Go/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := logger.DefaultConfig()
	cfg.Level = logger.LogLevelWarn
	logger.InitLoggerWithWriter(cfg, stderr)

	registry := defaultRegistry()
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		registry.PrintHelp(stderr)
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		registry.PrintHelp(stderr)
		return 2
	}

	env := &Env{
		Service: conversion.NewService(conversion.Options{}),
		Out:     stdout,
		Err:     stderr,
	}

	err := cmd.Run(ctx, args[1:], env)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, ErrInputsFailed):
		return 1
	default:
		fmt.Fprintln(stderr, err)
		return 2
	}
}
