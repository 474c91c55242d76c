package services

import (
	"context"
	"time"

	"bank-ledger/internal/dto"
	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerServiceInterface composes account operations with notification and metrics
type LedgerServiceInterface interface {
	OpenChecking(ctx context.Context, req dto.OpenCheckingRequest) (*models.CheckingAccount, error)
	OpenSavings(ctx context.Context, req dto.OpenSavingsRequest) (*models.SavingsAccount, error)
	Deposit(ctx context.Context, account models.Account, amount decimal.Decimal) (models.Transaction, error)
	Withdraw(ctx context.Context, account models.Account, amount decimal.Decimal) (models.Transaction, error)
	Transfer(ctx context.Context, src, dst models.Account, amount decimal.Decimal) (models.Transaction, models.Transaction, error)
	ApplyFees(ctx context.Context, account models.Account) (models.Transaction, bool)
	ApplyInterest(ctx context.Context, account models.Account) (models.Transaction, bool)
	// ComputeTax reports false for accounts that are not taxable
	ComputeTax(account models.Account) (decimal.Decimal, bool)
	// ComputeInterest reports false for accounts that bear no interest
	ComputeInterest(account models.Account) (decimal.Decimal, bool)
	Authenticate(ctx context.Context, account models.Account, pin string) error
}

// BranchServiceInterface manages the accounts held by a branch
type BranchServiceInterface interface {
	AddAccount(ctx context.Context, branch *models.Branch, account models.Account) error
	RemoveAccount(ctx context.Context, branch *models.Branch, number string) (models.Account, error)
	FindAccount(branch *models.Branch, number string) (models.Account, error)
	ListAccounts(branch *models.Branch) []models.Account
}

// BankServiceInterface answers bank-wide lookups and aggregates
type BankServiceInterface interface {
	AddBranches(ctx context.Context, bank *models.Bank, branches []*models.Branch) error
	FindBranch(bank *models.Bank, number string) (*models.Branch, error)
	FindCustomer(bank *models.Bank, nationalID string) (*models.Customer, error)
	ListAllAccounts(bank *models.Bank) []models.Account
	TotalBalance(bank *models.Bank) decimal.Decimal
	CustomerCount(bank *models.Bank) int
}

// StatementServiceInterface provides account statement generation
type StatementServiceInterface interface {
	// GenerateStatement builds a statement over the account's full transaction log
	GenerateStatement(account models.Account) (*models.AccountStatement, error)
}

// MetricsRecorderInterface provides metrics recording
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// NotifierInterface receives ledger and session events for presentation
type NotifierInterface interface {
	LogAccountOpened(ctx context.Context, account models.Account)
	LogDeposit(ctx context.Context, tx models.Transaction)
	LogWithdrawal(ctx context.Context, tx models.Transaction)
	LogTransfer(ctx context.Context, out, in models.Transaction)
	LogFeeApplied(ctx context.Context, tx models.Transaction)
	LogNoFee(ctx context.Context, accountNumber string)
	LogInterestApplied(ctx context.Context, tx models.Transaction)
	LogOperationFailed(ctx context.Context, operation, accountNumber string, err error)
	LogAuthenticationAttempt(ctx context.Context, subject string, success bool, reason string)
	LogSessionEvent(ctx context.Context, username, event string)
}

// AuthServiceInterface manages system users and their sessions
type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, sessionToken string) error
	VerifySession(ctx context.Context, sessionToken string) (*models.CustomClaims, error)
	RenewSession(ctx context.Context, sessionToken string) (*dto.TokenResponse, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

// TokenServiceInterface defines the contract for session token operations
type TokenServiceInterface interface {
	GenerateSessionToken(user *models.User) (string, *models.CustomClaims, error)
	ValidateSessionToken(tokenString string) (*models.CustomClaims, error)
	GetJTI(tokenString string) (string, error)
}

// PasswordServiceInterface hashes system passwords and account PINs
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	HashPasswordWithoutValidation(password string) (string, error)
}

// LoginLimiterInterface throttles login attempts per username
type LoginLimiterInterface interface {
	Allow(username string) bool
	Reset(username string)
	Cleanup(idle time.Duration) int
}
