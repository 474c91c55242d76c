package fixture

import (
	"context"
	"fmt"

	"bank-ledger/internal/dto"
	ledgererrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"
	"bank-ledger/internal/services"
	"bank-ledger/internal/validation"
)

// Services are the collaborators a scenario is built through
type Services struct {
	Ledger   services.LedgerServiceInterface
	Branches services.BranchServiceInterface
	Bank     services.BankServiceInterface
}

// World is the entity graph assembled from a scenario
type World struct {
	Bank      *models.Bank
	Customers []*models.Customer
	Accounts  []models.Account
	Results   []OperationResult

	byNumber map[string]models.Account
}

// OperationResult records the outcome of one replayed operation
type OperationResult struct {
	Step         int
	Spec         OperationSpec
	Transactions []models.Transaction
	Applied      bool
	Err          error
}

// Account returns the scenario account with the given number
func (w *World) Account(number string) (models.Account, error) {
	a, ok := w.byNumber[number]
	if !ok {
		return nil, ledgererrors.NewAccountNotFound(number)
	}
	return a, nil
}

// Build constructs the bank, branches, customers and accounts of the scenario
// and then replays its operations in order. Operations may fail; a failure is
// an error only when it does not match the step's expected code.
func Build(ctx context.Context, sc *Scenario, svc Services) (*World, error) {
	bank, err := buildBank(sc.Bank)
	if err != nil {
		return nil, fmt.Errorf("bank: %w", err)
	}

	branches := make([]*models.Branch, 0, len(sc.Branches))
	for i, spec := range sc.Branches {
		branch, err := buildBranch(spec)
		if err != nil {
			return nil, fmt.Errorf("branch %d: %w", i+1, err)
		}
		branches = append(branches, branch)
	}
	if err := svc.Bank.AddBranches(ctx, bank, branches); err != nil {
		return nil, fmt.Errorf("registering branches: %w", err)
	}

	world := &World{Bank: bank, byNumber: make(map[string]models.Account)}

	owners := make(map[string]*models.Customer, len(sc.Customers))
	for i, spec := range sc.Customers {
		customer, err := buildCustomer(spec)
		if err != nil {
			return nil, fmt.Errorf("customer %d: %w", i+1, err)
		}
		owners[validation.NormalizeDigits(spec.NationalID)] = customer
		world.Customers = append(world.Customers, customer)
	}

	for i, spec := range sc.Accounts {
		account, err := world.openAccount(ctx, spec, owners, svc)
		if err != nil {
			return nil, fmt.Errorf("account %d (%s): %w", i+1, spec.Number, err)
		}
		world.Accounts = append(world.Accounts, account)
		world.byNumber[account.Number()] = account
	}

	for i, spec := range sc.Operations {
		result, err := world.replay(ctx, i+1, spec, svc.Ledger)
		if err != nil {
			return nil, fmt.Errorf("operation %d (%s %s): %w", i+1, spec.Op, spec.Account, err)
		}
		world.Results = append(world.Results, result)
	}

	return world, nil
}

func buildAddress(spec AddressSpec) (models.Address, error) {
	return models.NewAddress(spec.PostalCode, spec.Number, spec.Street, spec.District, spec.City, spec.State)
}

func buildBank(spec BankSpec) (*models.Bank, error) {
	address, err := buildAddress(spec.Address)
	if err != nil {
		return nil, err
	}
	return models.NewBank(models.BankParams{
		Name:      spec.Name,
		CompanyID: spec.CompanyID,
		Address:   address,
		Phone:     spec.Phone,
	})
}

func buildBranch(spec BranchSpec) (*models.Branch, error) {
	address, err := buildAddress(spec.Address)
	if err != nil {
		return nil, err
	}
	return models.NewBranch(models.BranchParams{
		Name:    spec.Name,
		Number:  spec.Number,
		Address: address,
		Phone:   spec.Phone,
	})
}

func buildCustomer(spec CustomerSpec) (*models.Customer, error) {
	birthDate, err := parseDate("birth_date", spec.BirthDate)
	if err != nil {
		return nil, ledgererrors.NewInvalidField("birth_date", err.Error())
	}
	return models.NewCustomer(models.CustomerParams{
		PersonParams: models.PersonParams{
			Name:       spec.Name,
			NationalID: spec.NationalID,
			BirthDate:  birthDate,
		},
		LicenseNumber: spec.LicenseNumber,
	})
}

func (w *World) openAccount(ctx context.Context, spec AccountSpec, owners map[string]*models.Customer, svc Services) (models.Account, error) {
	if _, exists := w.byNumber[spec.Number]; exists {
		return nil, ledgererrors.NewDuplicateAccount(spec.Number)
	}

	owner, ok := owners[validation.NormalizeDigits(spec.Owner)]
	if !ok {
		return nil, ledgererrors.NewCustomerNotFound(spec.Owner)
	}

	balance, err := parseAmount("initial_balance", spec.InitialBalance)
	if err != nil {
		return nil, ledgererrors.NewInvalidField("initial_balance", err.Error())
	}

	var account models.Account
	switch models.AccountType(spec.Type) {
	case models.AccountTypeChecking:
		limit, err := parseAmount("overdraft_limit", spec.OverdraftLimit)
		if err != nil {
			return nil, ledgererrors.NewInvalidField("overdraft_limit", err.Error())
		}
		account, err = svc.Ledger.OpenChecking(ctx, dto.OpenCheckingRequest{
			Number:         spec.Number,
			Owner:          owner,
			InitialBalance: balance,
			PIN:            spec.PIN,
			OverdraftLimit: limit,
		})
		if err != nil {
			return nil, err
		}
	case models.AccountTypeSavings:
		rate, err := parseAmount("interest_rate", spec.InterestRate)
		if err != nil {
			return nil, ledgererrors.NewInvalidField("interest_rate", err.Error())
		}
		account, err = svc.Ledger.OpenSavings(ctx, dto.OpenSavingsRequest{
			Number:         spec.Number,
			Owner:          owner,
			InitialBalance: balance,
			PIN:            spec.PIN,
			InterestRate:   rate,
			AnniversaryDay: spec.AnniversaryDay,
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, ledgererrors.NewInvalidField("type", fmt.Sprintf("unknown account type %q", spec.Type))
	}

	if spec.Branch == "" {
		return account, nil
	}
	branch, err := svc.Bank.FindBranch(w.Bank, spec.Branch)
	if err != nil {
		return nil, err
	}
	if err := svc.Branches.AddAccount(ctx, branch, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (w *World) replay(ctx context.Context, step int, spec OperationSpec, ledger services.LedgerServiceInterface) (OperationResult, error) {
	result := OperationResult{Step: step, Spec: spec}

	account, err := w.Account(spec.Account)
	if err != nil {
		return result, err
	}
	amount, err := parseAmount("amount", spec.Amount)
	if err != nil {
		return result, ledgererrors.NewInvalidField("amount", err.Error())
	}

	switch spec.Op {
	case OpDeposit:
		tx, opErr := ledger.Deposit(ctx, account, amount)
		result.Err = opErr
		result.Applied = opErr == nil
		if opErr == nil {
			result.Transactions = []models.Transaction{tx}
		}
	case OpWithdraw:
		tx, opErr := ledger.Withdraw(ctx, account, amount)
		result.Err = opErr
		result.Applied = opErr == nil
		if opErr == nil {
			result.Transactions = []models.Transaction{tx}
		}
	case OpTransfer:
		to, err := w.Account(spec.To)
		if err != nil {
			return result, err
		}
		out, in, opErr := ledger.Transfer(ctx, account, to, amount)
		result.Err = opErr
		result.Applied = opErr == nil
		if opErr == nil {
			result.Transactions = []models.Transaction{out, in}
		}
	case OpApplyFees:
		tx, applied := ledger.ApplyFees(ctx, account)
		result.Applied = applied
		if applied {
			result.Transactions = []models.Transaction{tx}
		}
	case OpApplyInterest:
		tx, applied := ledger.ApplyInterest(ctx, account)
		result.Applied = applied
		if applied {
			result.Transactions = []models.Transaction{tx}
		}
	default:
		return result, ledgererrors.NewInvalidField("op", fmt.Sprintf("unknown operation %q", spec.Op))
	}

	if err := checkExpectation(spec.Expect, result.Err); err != nil {
		return result, err
	}
	return result, nil
}

func checkExpectation(expect string, err error) error {
	if expect == "" {
		if err != nil {
			return fmt.Errorf("unexpected failure: %w", err)
		}
		return nil
	}

	code, ok := ledgererrors.CodeOf(err)
	if !ok {
		return fmt.Errorf("expected %s, got %v", expect, err)
	}
	if string(code) != expect {
		return fmt.Errorf("expected %s, got %s: %w", expect, code, err)
	}
	return nil
}
