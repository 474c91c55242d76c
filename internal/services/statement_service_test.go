package services

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	ledgererrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StatementServiceTestSuite defines the test suite for StatementServiceInterface
type StatementServiceTestSuite struct {
	suite.Suite
	fx      *ledgerFixture
	service StatementServiceInterface
	fixedAt time.Time
}

// SetupTest runs before each test
func (s *StatementServiceTestSuite) SetupTest() {
	s.fx = newLedgerFixture(s.T())
	s.fixedAt = time.Date(2024, 3, 31, 18, 0, 0, 0, time.UTC)

	svc := NewStatementService(slog.Default()).(*statementService)
	svc.now = func() time.Time { return s.fixedAt }
	s.service = svc
}

func TestStatementServiceSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

func (s *StatementServiceTestSuite) TestGenerateStatement_RunningBalance() {
	_, err := s.fx.checking.Deposit(decimal.NewFromInt(200))
	s.Require().NoError(err)
	_, err = s.fx.checking.Withdraw(decimal.NewFromInt(1500))
	s.Require().NoError(err)
	s.fx.checking.ApplyFees()

	statement, err := s.service.GenerateStatement(s.fx.checking)
	s.Require().NoError(err)

	s.Equal("1001", statement.AccountNumber)
	s.Equal(models.AccountTypeChecking, statement.AccountType)
	s.Equal(s.fx.owner.Name(), statement.HolderName)
	s.Equal(s.fixedAt, statement.GeneratedAt)
	s.True(decimal.NewFromInt(1000).Equal(statement.OpeningBalance))
	s.True(decimal.NewFromInt(-310).Equal(statement.ClosingBalance))

	s.Require().Len(statement.Transactions, 3)
	s.True(decimal.NewFromInt(1200).Equal(statement.Transactions[0].RunningBalance))
	s.True(decimal.NewFromInt(-300).Equal(statement.Transactions[1].RunningBalance))
	s.True(decimal.NewFromInt(-1500).Equal(statement.Transactions[1].Amount))
	s.True(decimal.NewFromInt(-310).Equal(statement.Transactions[2].RunningBalance))
	s.Equal(models.TransactionTypeMaintenanceFee, statement.Transactions[2].TransactionType)
}

func (s *StatementServiceTestSuite) TestGenerateStatement_Summary() {
	_, _, err := models.Transfer(s.fx.checking, s.fx.savings, decimal.NewFromInt(400))
	s.Require().NoError(err)
	models.ApplyInterest(s.fx.savings)

	statement, err := s.service.GenerateStatement(s.fx.savings)
	s.Require().NoError(err)

	summary := statement.Summary
	s.Equal(2, summary.TransactionCount)
	s.Equal(2, summary.CreditCount)
	s.Equal(0, summary.DebitCount)
	s.True(decimal.NewFromInt(427).Equal(summary.TotalCredits))
	s.True(decimal.Zero.Equal(summary.TotalDebits))
	s.True(decimal.Zero.Equal(summary.TotalFees))
	s.True(decimal.NewFromInt(427).Equal(summary.NetChange))
	s.True(statement.OpeningBalance.Add(summary.NetChange).Equal(statement.ClosingBalance))
}

func (s *StatementServiceTestSuite) TestGenerateStatement_EmptyLog() {
	statement, err := s.service.GenerateStatement(s.fx.savings)
	s.Require().NoError(err)

	s.Empty(statement.Transactions)
	s.True(statement.OpeningBalance.Equal(statement.ClosingBalance))
	s.Equal(0, statement.Summary.TransactionCount)
}

func (s *StatementServiceTestSuite) TestGenerateStatement_NilAccount() {
	_, err := s.service.GenerateStatement(nil)
	s.True(errors.Is(err, ledgererrors.ErrInvalidField))
}
