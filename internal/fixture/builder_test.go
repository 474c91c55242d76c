package fixture

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"bank-ledger/internal/config"
	ledgererrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"
	"bank-ledger/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type BuilderTestSuite struct {
	suite.Suite
	svc Services
	ctx context.Context
}

func (s *BuilderTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	passwords := services.NewPasswordService(config.SecurityConfig{BCryptCost: bcrypt.MinCost})
	lock := &sync.Mutex{}
	s.svc = Services{
		Ledger:   services.NewLedgerService(lock, passwords, services.NewEventLogger(logger), services.NewPrometheusMetrics(), decimal.Zero),
		Branches: services.NewBranchService(lock, logger),
		Bank:     services.NewBankService(lock, logger),
	}
	s.ctx = context.Background()
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func (s *BuilderTestSuite) TestBuild_DefaultScenario() {
	world, err := Build(s.ctx, Default(), s.svc)
	s.Require().NoError(err)

	s.Equal("Banco Wolf", world.Bank.Name())
	s.Len(world.Bank.Branches(), 1)
	s.Len(world.Customers, 1)
	s.Len(world.Accounts, 2)

	checking, err := world.Account("001")
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("1590").Equal(checking.Balance()), "got %s", checking.Balance())
	s.Len(checking.Transactions(), 4)

	savings, err := world.Account("002")
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("14823.75").Equal(savings.Balance()), "got %s", savings.Balance())

	s.Require().Len(world.Results, 7)
	s.False(world.Results[4].Applied, "savings accounts carry no maintenance fee")
	last := world.Results[6]
	s.True(errors.Is(last.Err, ledgererrors.ErrLimitExceeded))
	s.False(last.Applied)

	s.True(decimal.RequireFromString("16413.75").Equal(s.svc.Bank.TotalBalance(world.Bank)))
	s.Equal(1, s.svc.Bank.CustomerCount(world.Bank))
}

func (s *BuilderTestSuite) TestBuild_UnexpectedFailureStops() {
	sc := Default()
	sc.Operations = []OperationSpec{{Op: OpWithdraw, Account: "002", Amount: "99999.00"}}

	_, err := Build(s.ctx, sc, s.svc)

	s.Error(err)
	s.True(errors.Is(err, ledgererrors.ErrInsufficientBalance))
}

func (s *BuilderTestSuite) TestBuild_ExpectedCodeMismatch() {
	sc := Default()
	sc.Operations = []OperationSpec{{Op: OpDeposit, Account: "001", Amount: "10.00", Expect: "LEDGER_003"}}

	_, err := Build(s.ctx, sc, s.svc)

	s.ErrorContains(err, "expected LEDGER_003")
}

func (s *BuilderTestSuite) TestBuild_UnknownOwner() {
	sc := Default()
	sc.Accounts[0].Owner = "987.654.321-00"

	_, err := Build(s.ctx, sc, s.svc)

	s.True(errors.Is(err, ledgererrors.ErrCustomerNotFound))
}

func (s *BuilderTestSuite) TestBuild_DuplicateAccountNumber() {
	sc := Default()
	sc.Accounts[1].Number = sc.Accounts[0].Number
	sc.Operations = nil

	_, err := Build(s.ctx, sc, s.svc)

	s.True(errors.Is(err, ledgererrors.ErrDuplicateAccount))
}

func (s *BuilderTestSuite) TestBuild_UnknownBranch() {
	sc := Default()
	sc.Accounts[0].Branch = "999"

	_, err := Build(s.ctx, sc, s.svc)

	s.True(errors.Is(err, ledgererrors.ErrBranchNotFound))
}

func (s *BuilderTestSuite) TestBuild_InvalidIdentifiers() {
	tests := []struct {
		name   string
		mutate func(*Scenario)
		target error
	}{
		{"bank company id", func(sc *Scenario) { sc.Bank.CompanyID = "11.222.333/0001-00" }, ledgererrors.ErrInvalidIdentifier},
		{"branch postal code", func(sc *Scenario) { sc.Branches[0].Address.PostalCode = "790020" }, ledgererrors.ErrInvalidIdentifier},
		{"customer person id", func(sc *Scenario) { sc.Customers[0].NationalID = "111.111.111-11" }, ledgererrors.ErrInvalidIdentifier},
		{"customer birth date", func(sc *Scenario) { sc.Customers[0].BirthDate = "10/05/2003" }, ledgererrors.ErrInvalidField},
		{"account type", func(sc *Scenario) { sc.Accounts[0].Type = "brokerage" }, ledgererrors.ErrInvalidField},
		{"operation kind", func(sc *Scenario) { sc.Operations[0].Op = "refund" }, ledgererrors.ErrInvalidField},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			sc := Default()
			tt.mutate(sc)
			_, err := Build(s.ctx, sc, s.svc)
			s.True(errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func (s *BuilderTestSuite) TestLoadAndSaveRoundTrip() {
	path := filepath.Join(s.T().TempDir(), "scenario.yaml")
	s.Require().NoError(Save(path, Default()))

	loaded, err := Load(path)
	s.Require().NoError(err)
	s.Equal(Default(), loaded)
}

func (s *BuilderTestSuite) TestParse_RejectsUnknownFields() {
	_, err := Parse([]byte("bank:\n  name: X\n  swift: ABCD\n"))
	s.ErrorContains(err, "parsing scenario")
}

func (s *BuilderTestSuite) TestLoad_MissingFile() {
	_, err := Load(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.True(errors.Is(err, os.ErrNotExist))
}

func (s *BuilderTestSuite) TestWorld_AccountNotFound() {
	world, err := Build(s.ctx, Default(), s.svc)
	s.Require().NoError(err)

	_, err = world.Account("404")
	s.True(errors.Is(err, ledgererrors.ErrAccountNotFound))
	s.Implements((*models.Account)(nil), world.Accounts[0])
}
