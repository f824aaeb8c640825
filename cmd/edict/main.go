// Package main is the entry point for the edict editor.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/edictdev/edict/internal/app"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, showVersion, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "edict: %v\n", err)
		return 1
	}
	if showVersion {
		fmt.Printf("edict %s\n", version)
		return 0
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "edict: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		if errors.Is(err, app.ErrQuit) || errors.Is(err, context.Canceled) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "edict: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string) (app.Options, bool, error) {
	var opts app.Options
	var showVersion bool

	flags := pflag.NewFlagSet("edict", pflag.ContinueOnError)
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "path to configuration file")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	flags.StringVar(&opts.JournalPath, "journal", "", "journal executed commands to the given file")
	flags.BoolVarP(&showVersion, "version", "v", false, "show version information")

	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "edict - a command-driven stub text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: edict [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return app.Options{}, false, err
	}
	return opts, showVersion, nil
}
