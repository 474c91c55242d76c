package services

import (
	"log/slog"
	"time"

	ledgererrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

type statementService struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewStatementService(logger *slog.Logger) StatementServiceInterface {
	return &statementService{
		logger: logger,
		now:    time.Now,
	}
}

func (s *statementService) GenerateStatement(account models.Account) (*models.AccountStatement, error) {
	if account == nil {
		return nil, ledgererrors.NewInvalidField("account", "is required")
	}

	transactions := account.Transactions()
	closingBalance := account.Balance()
	openingBalance := s.calculateOpeningBalance(transactions, closingBalance)

	statement := &models.AccountStatement{
		AccountNumber:  account.Number(),
		AccountType:    account.Type(),
		HolderName:     account.Owner().Name(),
		OpeningBalance: openingBalance,
		ClosingBalance: closingBalance,
		Transactions:   s.buildStatementTransactions(transactions, openingBalance),
		Summary:        s.calculateSummary(transactions),
		GeneratedAt:    s.now(),
	}

	s.logger.Debug("statement generated",
		"account_number", statement.AccountNumber,
		"transaction_count", len(statement.Transactions))

	return statement, nil
}

// calculateOpeningBalance backs the signed amounts out of the closing balance
func (s *statementService) calculateOpeningBalance(transactions []models.Transaction, closing decimal.Decimal) decimal.Decimal {
	opening := closing
	for _, tx := range transactions {
		opening = opening.Sub(tx.SignedAmount())
	}
	return opening
}

func (s *statementService) buildStatementTransactions(transactions []models.Transaction, opening decimal.Decimal) []models.StatementTransaction {
	lines := make([]models.StatementTransaction, 0, len(transactions))
	running := opening
	for _, tx := range transactions {
		running = running.Add(tx.SignedAmount())
		lines = append(lines, models.StatementTransaction{
			ID:              tx.ID(),
			Date:            tx.Timestamp(),
			Description:     tx.Description(),
			TransactionType: tx.Type(),
			Amount:          tx.SignedAmount(),
			RunningBalance:  running,
		})
	}
	return lines
}

func (s *statementService) calculateSummary(transactions []models.Transaction) models.StatementSummary {
	summary := models.StatementSummary{
		TotalCredits:     decimal.Zero,
		TotalDebits:      decimal.Zero,
		TotalFees:        decimal.Zero,
		NetChange:        decimal.Zero,
		TransactionCount: len(transactions),
	}

	for _, tx := range transactions {
		if tx.Type().IsCredit() {
			summary.TotalCredits = summary.TotalCredits.Add(tx.Amount())
			summary.CreditCount++
		} else {
			summary.TotalDebits = summary.TotalDebits.Add(tx.Amount())
			summary.DebitCount++
		}
		if tx.Type() == models.TransactionTypeMaintenanceFee {
			summary.TotalFees = summary.TotalFees.Add(tx.Amount())
		}
	}

	summary.NetChange = summary.TotalCredits.Sub(summary.TotalDebits)
	return summary
}
