package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"bank-ledger/internal/dto"
	"bank-ledger/internal/fixture"
	"bank-ledger/internal/models"
	"bank-ledger/internal/views"
)

const operatorPasswordEnv = "LEDGER_OPERATOR_PASSWORD"

type demoOptions struct {
	fixturePath  string
	operator     string
	password     string
	printMetrics bool
}

func newDemoCommand(deps *Dependencies) *cobra.Command {
	var opts demoOptions

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a ledger scenario and print statements",
		Long: "Builds the bank, branches, customers and accounts of a scenario, replays its\n" +
			"operations and prints a statement per account. Without --fixture the built-in\n" +
			"scenario is used.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.fixturePath == "" && deps.Config != nil {
				opts.fixturePath = deps.Config.App.FixturePath
			}
			if opts.password == "" {
				opts.password = os.Getenv(operatorPasswordEnv)
			}
			return runDemo(cmd.Context(), deps, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.fixturePath, "fixture", "", "scenario YAML file (default: built-in scenario)")
	cmd.Flags().StringVar(&opts.operator, "operator", "operator", "username of the employee running the scenario")
	cmd.Flags().StringVar(&opts.password, "password", "", "operator password (default: $"+operatorPasswordEnv+" or generated)")
	cmd.Flags().BoolVar(&opts.printMetrics, "metrics", false, "print collected metrics in Prometheus text format")

	return cmd
}

func runDemo(ctx context.Context, deps *Dependencies, out io.Writer, opts demoOptions) error {
	console := views.NewConsole(out, deps.Colorize)

	scenario := fixture.Default()
	if opts.fixturePath != "" {
		loaded, err := fixture.Load(opts.fixturePath)
		if err != nil {
			return err
		}
		scenario = loaded
	}

	session, err := signIn(ctx, deps, opts)
	if err != nil {
		return err
	}
	console.Success("Operator %s signed in, session valid until %s",
		session.Username, session.ExpiresAt.Format("2006-01-02 15:04:05"))

	world, err := fixture.Build(ctx, scenario, fixture.Services{
		Ledger:   deps.Ledger,
		Branches: deps.Branches,
		Bank:     deps.Bank,
	})
	if err != nil {
		return err
	}

	for _, result := range world.Results {
		printResult(console, result)
	}

	for i, account := range world.Accounts {
		if err := deps.Ledger.Authenticate(ctx, account, scenario.Accounts[i].PIN); err != nil {
			return err
		}
		stmt, err := deps.Statements.GenerateStatement(account)
		if err != nil {
			return err
		}
		console.Statement(stmt)
		printProjections(console, deps, account)
	}

	for _, customer := range world.Customers {
		console.AccountList(customer.Name(), customer.Accounts())
	}
	console.BranchList(world.Bank.Name(), world.Bank.Branches())

	fmt.Fprintf(out, "\n%s: %d customers, total balance R$ %s\n",
		world.Bank.Name(), deps.Bank.CustomerCount(world.Bank), deps.Bank.TotalBalance(world.Bank).StringFixed(2))

	if err := deps.Auth.Logout(ctx, session.SessionToken); err != nil {
		return err
	}
	if _, err := deps.Auth.PurgeExpired(ctx); err != nil {
		return err
	}
	console.Success("Operator %s signed out", session.Username)

	if opts.printMetrics {
		return writeMetrics(out, deps)
	}
	return nil
}

// signIn registers the operator as an employee and opens a session for it
func signIn(ctx context.Context, deps *Dependencies, opts demoOptions) (*dto.TokenResponse, error) {
	password := opts.password
	if password == "" {
		generated, err := generatePassword(deps)
		if err != nil {
			return nil, err
		}
		password = generated
	}

	if _, err := deps.Auth.Register(ctx, &dto.RegisterRequest{
		Username: opts.operator,
		Password: password,
		Role:     string(models.RoleEmployee),
	}); err != nil {
		return nil, err
	}

	session, err := deps.Auth.Login(ctx, &dto.LoginRequest{Username: opts.operator, Password: password})
	if err != nil {
		return nil, err
	}
	if _, err := deps.Auth.VerifySession(ctx, session.SessionToken); err != nil {
		return nil, err
	}
	return session, nil
}

func generatePassword(deps *Dependencies) (string, error) {
	for i := 0; i < 10; i++ {
		candidate := gofakeit.Password(true, true, true, true, false, 20)
		if deps.Passwords.ValidatePassword(candidate) == nil {
			return candidate, nil
		}
	}
	return "", errors.New("could not generate an operator password that satisfies the password policy")
}

func printResult(console *views.Console, result fixture.OperationResult) {
	spec := result.Spec
	switch {
	case result.Err != nil:
		console.Error(result.Err)
	case !result.Applied:
		console.Success("#%d %s on %s: nothing to apply", result.Step, spec.Op, spec.Account)
	case spec.Op == fixture.OpTransfer:
		console.Success("#%d transfer of R$ %s from %s to %s completed", result.Step, result.Transactions[0].Amount().StringFixed(2), spec.Account, spec.To)
	default:
		console.Success("#%d %s of R$ %s on %s completed", result.Step, spec.Op, result.Transactions[0].Amount().StringFixed(2), spec.Account)
	}
}

func printProjections(console *views.Console, deps *Dependencies, account models.Account) {
	if tax, ok := deps.Ledger.ComputeTax(account); ok {
		console.Success("Projected tax for %s: R$ %s", account.Number(), tax.StringFixed(2))
	}
	if interest, ok := deps.Ledger.ComputeInterest(account); ok {
		console.Success("Projected interest for %s: R$ %s", account.Number(), interest.StringFixed(2))
	}
}

func writeMetrics(out io.Writer, deps *Dependencies) error {
	families, err := deps.Metrics.Registry().Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	fmt.Fprintln(out)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
