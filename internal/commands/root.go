package commands

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"bank-ledger/internal/buildinfo"
	ledgererrors "bank-ledger/internal/errors"
	"bank-ledger/internal/services"
	"bank-ledger/internal/views"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledger",
		Short:   "Account ledger for customers, branches and banks",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newDemoCommand(deps))
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newDevCommand(deps))

	return rootCmd
}

// Execute runs the CLI with args and returns the process exit code. Coded
// errors are rendered with their details; anything else is printed as is.
// Every invocation gets a correlation ID that tags its log records.
func Execute(ctx context.Context, deps *Dependencies, args []string, stdout, stderr io.Writer) (exitCode int) {
	correlationID := uuid.New().String()
	ctx = services.WithCorrelationID(ctx, correlationID)

	defer func() {
		if r := recover(); r != nil {
			deps.Logger.Error("panic recovered",
				"correlation_id", correlationID,
				"panic", fmt.Sprintf("%v", r),
				"stack_trace", string(debug.Stack()),
				"args", args,
			)
			fmt.Fprintln(stderr, ledgererrors.NewErrorResponse(ledgererrors.SystemInternalError, correlationID).String())
			exitCode = ledgererrors.ExitInternal
		}
	}()

	rootCmd := NewRootCommand(deps)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ledgererrors.ExitOK
	}

	code, ok := ledgererrors.CodeOf(err)
	if !ok {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ledgererrors.ExitInternal
	}
	views.NewConsole(stderr, deps.Colorize).Error(err)
	return ledgererrors.ExitCode(code)
}
