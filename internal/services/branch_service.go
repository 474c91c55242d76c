package services

import (
	"context"
	"log/slog"
	"sync"

	"bank-ledger/internal/models"
)

type branchService struct {
	mu     *sync.Mutex
	logger *slog.Logger
}

// NewBranchService guards branch state with lock; pass the ledger's lock so balance
// reads never interleave with account mutations
func NewBranchService(lock *sync.Mutex, logger *slog.Logger) BranchServiceInterface {
	return &branchService{mu: ensureLock(lock), logger: logger}
}

// AddAccount rejects an account already held by the branch, by identity or number
func (s *branchService) AddAccount(ctx context.Context, branch *models.Branch, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := branch.AddAccount(account); err != nil {
		s.logger.WarnContext(ctx, "account rejected by branch",
			"branch_number", branch.Number(),
			"error", err)
		return err
	}

	s.logger.InfoContext(ctx, "account added to branch",
		"branch_number", branch.Number(),
		"account_number", account.Number(),
		"account_type", account.Type())
	return nil
}

func (s *branchService) RemoveAccount(ctx context.Context, branch *models.Branch, number string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := branch.RemoveAccount(number)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "account removed from branch",
		"branch_number", branch.Number(),
		"account_number", number)
	return account, nil
}

func (s *branchService) FindAccount(branch *models.Branch, number string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return branch.FindAccount(number)
}

func (s *branchService) ListAccounts(branch *models.Branch) []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return branch.Accounts()
}
