package services

import (
	"context"
	"log/slog"
	"sync"

	ledgererrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"
	"bank-ledger/internal/validation"

	"github.com/shopspring/decimal"
)

type bankService struct {
	mu     *sync.Mutex
	logger *slog.Logger
}

// NewBankService guards bank state with lock; pass the ledger's lock so balance
// reads never interleave with account mutations
func NewBankService(lock *sync.Mutex, logger *slog.Logger) BankServiceInterface {
	return &bankService{mu: ensureLock(lock), logger: logger}
}

func (s *bankService) AddBranches(ctx context.Context, bank *models.Bank, branches []*models.Branch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := bank.AddBranches(branches...); err != nil {
		s.logger.WarnContext(ctx, "branch rejected by bank",
			"bank", bank.Name(),
			"error", err)
		return err
	}

	s.logger.InfoContext(ctx, "branches registered",
		"bank", bank.Name(),
		"branch_count", len(bank.Branches()))
	return nil
}

func (s *bankService) FindBranch(bank *models.Bank, number string) (*models.Branch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bank.FindBranch(number)
}

// FindCustomer returns the holder of any account in the bank whose national ID
// matches, ignoring punctuation
func (s *bankService) FindCustomer(bank *models.Bank, nationalID string) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := validation.NormalizeDigits(nationalID)
	if want != "" {
		for _, account := range allAccounts(bank) {
			owner := account.Owner()
			if validation.NormalizeDigits(owner.NationalID()) == want {
				return owner, nil
			}
		}
	}
	return nil, ledgererrors.NewCustomerNotFound(nationalID)
}

// ListAllAccounts walks every branch in insertion order
func (s *bankService) ListAllAccounts(bank *models.Bank) []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return allAccounts(bank)
}

func (s *bankService) TotalBalance(bank *models.Bank) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, branch := range bank.Branches() {
		total = total.Add(branch.TotalBalance())
	}
	return total
}

// CustomerCount counts distinct account holders by national ID
func (s *bankService) CustomerCount(bank *models.Bank) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	for _, account := range allAccounts(bank) {
		seen[validation.NormalizeDigits(account.Owner().NationalID())] = struct{}{}
	}
	return len(seen)
}

func allAccounts(bank *models.Bank) []models.Account {
	var accounts []models.Account
	for _, branch := range bank.Branches() {
		accounts = append(accounts, branch.Accounts()...)
	}
	return accounts
}
