package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bank-ledger/internal/dto"
	ledgererrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

const (
	OperationOpenAccount = "open_account"
	OperationDeposit     = "deposit"
	OperationWithdraw    = "withdraw"
	OperationTransfer    = "transfer"
	OperationApplyFees   = "apply_fees"
	OperationInterest    = "apply_interest"
	OperationAuthorize   = "authenticate"
)

// LedgerService runs account operations one at a time and reports every
// outcome to the notifier and the metrics recorder. Entities carry no locks of
// their own, so every mutation goes through mu, which the branch and bank
// services share for their reads.
type LedgerService struct {
	mu             *sync.Mutex
	passwords      PasswordServiceInterface
	notifier       NotifierInterface
	metrics        MetricsRecorderInterface
	maintenanceFee decimal.Decimal
}

// NewLedgerService creates a ledger service. A zero maintenanceFee falls back
// to models.DefaultMaintenanceFee. A nil lock gives the service a private one.
func NewLedgerService(
	lock *sync.Mutex,
	passwords PasswordServiceInterface,
	notifier NotifierInterface,
	metrics MetricsRecorderInterface,
	maintenanceFee decimal.Decimal,
) LedgerServiceInterface {
	return &LedgerService{
		mu:             ensureLock(lock),
		passwords:      passwords,
		notifier:       notifier,
		metrics:        metrics,
		maintenanceFee: maintenanceFee,
	}
}

// OpenChecking hashes the PIN and builds a checking account registered with its owner
func (s *LedgerService) OpenChecking(ctx context.Context, req dto.OpenCheckingRequest) (*models.CheckingAccount, error) {
	hash, err := s.hashPIN(req.PIN)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := models.NewCheckingAccount(models.CheckingAccountParams{
		Number:         req.Number,
		Owner:          req.Owner,
		InitialBalance: req.InitialBalance,
		CredentialHash: hash,
		OverdraftLimit: req.OverdraftLimit,
		MaintenanceFee: s.maintenanceFee,
	})
	if err != nil {
		s.fail(ctx, OperationOpenAccount, req.Number, err)
		return nil, err
	}

	s.opened(ctx, account)
	return account, nil
}

// OpenSavings hashes the PIN and builds a savings account registered with its owner
func (s *LedgerService) OpenSavings(ctx context.Context, req dto.OpenSavingsRequest) (*models.SavingsAccount, error) {
	hash, err := s.hashPIN(req.PIN)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := models.NewSavingsAccount(models.SavingsAccountParams{
		Number:         req.Number,
		Owner:          req.Owner,
		InitialBalance: req.InitialBalance,
		CredentialHash: hash,
		InterestRate:   req.InterestRate,
		AnniversaryDay: req.AnniversaryDay,
	})
	if err != nil {
		s.fail(ctx, OperationOpenAccount, req.Number, err)
		return nil, err
	}

	s.opened(ctx, account)
	return account, nil
}

func (s *LedgerService) Deposit(ctx context.Context, account models.Account, amount decimal.Decimal) (models.Transaction, error) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAccount(account); err != nil {
		s.fail(ctx, OperationDeposit, "", err)
		return models.Transaction{}, err
	}

	tx, err := account.Deposit(amount)
	if err != nil {
		s.fail(ctx, OperationDeposit, account.Number(), err)
		return models.Transaction{}, err
	}

	s.notifier.LogDeposit(ctx, tx)
	s.succeed(OperationDeposit, start)
	return tx, nil
}

func (s *LedgerService) Withdraw(ctx context.Context, account models.Account, amount decimal.Decimal) (models.Transaction, error) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAccount(account); err != nil {
		s.fail(ctx, OperationWithdraw, "", err)
		return models.Transaction{}, err
	}

	tx, err := account.Withdraw(amount)
	if err != nil {
		s.fail(ctx, OperationWithdraw, account.Number(), err)
		return models.Transaction{}, err
	}

	s.notifier.LogWithdrawal(ctx, tx)
	s.succeed(OperationWithdraw, start)
	return tx, nil
}

// Transfer withdraws from src under src's rules, then deposits into dst. On
// failure neither account changes.
func (s *LedgerService) Transfer(ctx context.Context, src, dst models.Account, amount decimal.Decimal) (models.Transaction, models.Transaction, error) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	out, in, err := models.Transfer(src, dst, amount)
	if err != nil {
		number := ""
		if src != nil {
			number = src.Number()
		}
		s.fail(ctx, OperationTransfer, number, err)
		return models.Transaction{}, models.Transaction{}, err
	}

	s.notifier.LogTransfer(ctx, out, in)
	s.metrics.RecordGauge(MetricTransferAmount, amount.InexactFloat64(), nil)
	s.succeed(OperationTransfer, start)
	return out, in, nil
}

// ApplyFees charges the periodic fee. The second result is false for accounts
// without a fee, and for a nil account; the notifier is told about fee-less
// accounts.
func (s *LedgerService) ApplyFees(ctx context.Context, account models.Account) (models.Transaction, bool) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if account == nil {
		return models.Transaction{}, false
	}

	tx, applied := account.ApplyFees()
	if !applied {
		s.notifier.LogNoFee(ctx, account.Number())
		return models.Transaction{}, false
	}

	s.notifier.LogFeeApplied(ctx, tx)
	s.metrics.IncrementCounter(MetricFeeApplied, nil)
	s.succeed(OperationApplyFees, start)
	return tx, true
}

// ApplyInterest credits accrued interest; nothing is recorded when it is zero
func (s *LedgerService) ApplyInterest(ctx context.Context, account models.Account) (models.Transaction, bool) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, applied := models.ApplyInterest(account)
	if !applied {
		return models.Transaction{}, false
	}

	s.notifier.LogInterestApplied(ctx, tx)
	s.metrics.IncrementCounter(MetricInterestApplied, nil)
	s.succeed(OperationInterest, start)
	return tx, true
}

func (s *LedgerService) ComputeTax(account models.Account) (decimal.Decimal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	taxable, ok := account.(models.Taxable)
	if !ok {
		return decimal.Zero, false
	}
	return taxable.ComputeTax(), true
}

func (s *LedgerService) ComputeInterest(account models.Account) (decimal.Decimal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bearing, ok := account.(models.InterestBearing)
	if !ok {
		return decimal.Zero, false
	}
	return bearing.ComputeInterest(), true
}

// Authenticate checks a PIN against the account's stored hash
func (s *LedgerService) Authenticate(ctx context.Context, account models.Account, pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAccount(account); err != nil {
		return err
	}

	if !account.Authenticate(pin, s.passwords) {
		s.notifier.LogAuthenticationAttempt(ctx, account.Number(), false, "credential mismatch")
		s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": "account_pin_failed"})
		return ledgererrors.NewAuthenticationFailed("credential mismatch")
	}

	s.notifier.LogAuthenticationAttempt(ctx, account.Number(), true, "")
	s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": "account_pin_success"})
	return nil
}

func ensureLock(lock *sync.Mutex) *sync.Mutex {
	if lock == nil {
		return &sync.Mutex{}
	}
	return lock
}

func requireAccount(account models.Account) error {
	if account == nil {
		return ledgererrors.NewInvalidField("account", "is required")
	}
	return nil
}

func (s *LedgerService) hashPIN(pin string) (string, error) {
	hash, err := s.passwords.HashPasswordWithoutValidation(pin)
	if err != nil {
		return "", ledgererrors.NewInvalidField("pin", err.Error())
	}
	return hash, nil
}

func (s *LedgerService) opened(ctx context.Context, account models.Account) {
	s.notifier.LogAccountOpened(ctx, account)
	s.metrics.IncrementCounter(MetricAccountOpened, map[string]string{"account_type": string(account.Type())})
}

func (s *LedgerService) succeed(operation string, start time.Time) {
	s.metrics.IncrementCounter(MetricOperationSuccess, map[string]string{"operation": operation})
	s.metrics.RecordProcessingTime(MetricOperationTime, time.Since(start))
}

func (s *LedgerService) fail(ctx context.Context, operation, accountNumber string, err error) {
	s.notifier.LogOperationFailed(ctx, operation, accountNumber, err)
	s.metrics.IncrementCounter(MetricOperationFailed, map[string]string{
		"operation": operation,
		"reason":    failureReason(err),
	})
}

func failureReason(err error) string {
	if code, ok := ledgererrors.CodeOf(err); ok {
		return string(code)
	}
	return fmt.Sprintf("%T", err)
}
