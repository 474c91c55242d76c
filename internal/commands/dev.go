package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bank-ledger/internal/logging"
)

func newDevCommand(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Developer tooling: tests, vet, coverage and logs",
	}

	cmd.AddCommand(
		newGoToolCommand(deps, "test", "Run all unit tests", "test", "./..."),
		newGoToolCommand(deps, "integration", "Run the scenario and CLI tests",
			"test", "-count=1", "./internal/fixture/...", "./internal/commands/..."),
		newGoToolCommand(deps, "vet", "Run go vet on every package", "vet", "./..."),
		newCoverCommand(deps),
		newLogTailCommand(deps),
		newLogCleanCommand(deps),
	)

	return cmd
}

func newGoToolCommand(deps *Dependencies, use, short string, goArgs ...string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return deps.Run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), "go", goArgs...)
		},
	}
}

func newCoverCommand(deps *Dependencies) *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Run tests with coverage and print a per-function report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			if err := deps.Run(cmd.Context(), out, errOut, "go", "test", "-coverprofile="+profile, "./..."); err != nil {
				return err
			}
			return deps.Run(cmd.Context(), out, errOut, "go", "tool", "cover", "-func="+profile)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "coverage.out", "coverage profile path")

	return cmd
}

func newLogTailCommand(deps *Dependencies) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "log-tail",
		Short: "Print the last lines of the log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := deps.Config.Log.File
			tail, err := logging.Tail(path, lines)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(tail) == 0 {
				fmt.Fprintf(out, "%s is empty\n", path)
				return nil
			}
			for _, line := range tail {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show")

	return cmd
}

func newLogCleanCommand(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "log-clean",
		Short: "Empty the log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := deps.Config.Log.File
			if err := logging.Truncate(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", path)
			return nil
		},
	}
}
