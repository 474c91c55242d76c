package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"

	"bank-ledger/internal/config"
	"bank-ledger/internal/repositories"
	"bank-ledger/internal/services"
)

// Runner executes an external program, streaming its output
type Runner func(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error

// Dependencies are the collaborators shared by every command
type Dependencies struct {
	Config     *config.Config
	Logger     *slog.Logger
	Metrics    *services.PrometheusMetrics
	Passwords  services.PasswordServiceInterface
	Ledger     services.LedgerServiceInterface
	Branches   services.BranchServiceInterface
	Bank       services.BankServiceInterface
	Statements services.StatementServiceInterface
	Auth       services.AuthServiceInterface
	Run        Runner
	Colorize   bool
}

// NewDependencies wires the services from configuration
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	fee, err := cfg.Ledger.MaintenanceFeeAmount()
	if err != nil {
		return nil, fmt.Errorf("ledger config: %w", err)
	}

	metrics := services.NewPrometheusMetrics()
	notifier := services.NewEventLogger(logger)
	passwords := services.NewPasswordService(cfg.Security)

	// MaxFailedAttempts is the bucket size; LoginRatePerMinute refills it
	limiter := services.NewLoginLimiter(cfg.Security.LoginRatePerMinute, cfg.Security.MaxFailedAttempts)

	auth := services.NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewSessionRepository(),
		passwords,
		services.NewTokenService(&cfg.Session),
		limiter,
		notifier,
		metrics,
		logger,
	)

	// Ledger, branch and bank services share one lock over account state
	ledgerLock := &sync.Mutex{}

	return &Dependencies{
		Config:     cfg,
		Logger:     logger,
		Metrics:    metrics,
		Passwords:  passwords,
		Ledger:     services.NewLedgerService(ledgerLock, passwords, notifier, metrics, fee),
		Branches:   services.NewBranchService(ledgerLock, logger),
		Bank:       services.NewBankService(ledgerLock, logger),
		Statements: services.NewStatementService(logger),
		Auth:       auth,
		Run:        execRunner,
	}, nil
}

func execRunner(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %w", name, args, err)
	}
	return nil
}
