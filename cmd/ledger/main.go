package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"bank-ledger/internal/commands"
	"bank-ledger/internal/config"
	ledgererrors "bank-ledger/internal/errors"
	"bank-ledger/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ledgererrors.ExitInternal
	}

	logger, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ledgererrors.ExitInternal
	}
	defer closer.Close()

	deps, err := commands.NewDependencies(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ledgererrors.ExitInternal
	}
	deps.Colorize = !color.NoColor

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return commands.Execute(ctx, deps, os.Args[1:], os.Stdout, os.Stderr)
}
