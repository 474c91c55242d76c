package models

import (
	"bank-ledger/internal/errors"
	"bank-ledger/internal/validation"

	"github.com/shopspring/decimal"
)

var (
	// DefaultMaintenanceFee is charged when no fee is configured
	DefaultMaintenanceFee = decimal.NewFromInt(10)
	// CheckingTaxRate applies to the checking balance
	CheckingTaxRate = decimal.NewFromFloat(0.07)
)

type CheckingAccountParams struct {
	Number         string
	Owner          *Customer
	InitialBalance decimal.Decimal
	CredentialHash string
	OverdraftLimit decimal.Decimal
	// MaintenanceFee defaults to DefaultMaintenanceFee when zero
	MaintenanceFee decimal.Decimal
}

// checkingRules holds the checking-only constraints checked by the validator
type checkingRules struct {
	OverdraftLimit decimal.Decimal `json:"overdraft_limit" validate:"non_negative_amount"`
	MaintenanceFee decimal.Decimal `json:"maintenance_fee" validate:"positive_amount"`
}

// CheckingAccount allows withdrawals into an overdraft limit and charges a
// maintenance fee
type CheckingAccount struct {
	baseAccount
	overdraftLimit decimal.Decimal
	maintenanceFee decimal.Decimal
}

// NewCheckingAccount validates the params, builds the account and registers it
// with its owner
func NewCheckingAccount(p CheckingAccountParams) (*CheckingAccount, error) {
	v := validation.GetValidator()
	if err := v.Struct(accountParams{
		Number:         p.Number,
		Owner:          p.Owner,
		CredentialHash: p.CredentialHash,
		InitialBalance: p.InitialBalance,
	}); err != nil {
		return nil, err
	}

	fee := p.MaintenanceFee
	if fee.IsZero() {
		fee = DefaultMaintenanceFee
	}
	if err := v.Struct(checkingRules{OverdraftLimit: p.OverdraftLimit, MaintenanceFee: fee}); err != nil {
		return nil, err
	}

	account := &CheckingAccount{
		baseAccount:    newBaseAccount(p.Number, p.Owner, p.InitialBalance, p.CredentialHash),
		overdraftLimit: p.OverdraftLimit,
		maintenanceFee: fee,
	}
	if err := p.Owner.attach(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (c *CheckingAccount) Type() AccountType {
	return AccountTypeChecking
}

func (c *CheckingAccount) OverdraftLimit() decimal.Decimal {
	return c.overdraftLimit
}

func (c *CheckingAccount) MaintenanceFee() decimal.Decimal {
	return c.maintenanceFee
}

// Available is the balance plus the overdraft limit
func (c *CheckingAccount) Available() decimal.Decimal {
	return c.balance.Add(c.overdraftLimit)
}

// Withdraw succeeds while the amount fits within balance plus overdraft limit
func (c *CheckingAccount) Withdraw(amount decimal.Decimal) (Transaction, error) {
	return c.withdrawAs(amount, TransactionTypeWithdrawal, "")
}

func (c *CheckingAccount) withdrawAs(amount decimal.Decimal, kind TransactionType, description string) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, errors.NewInvalidAmount(amount)
	}
	if available := c.Available(); amount.GreaterThan(available) {
		return Transaction{}, errors.NewLimitExceeded(available, amount)
	}
	return c.debit(amount, kind, description), nil
}

// ApplyFees deducts the maintenance fee, even past the overdraft limit
func (c *CheckingAccount) ApplyFees() (Transaction, bool) {
	return c.debit(c.maintenanceFee, TransactionTypeMaintenanceFee, ""), true
}

// ComputeTax returns the tax owed on the current balance without changing it
func (c *CheckingAccount) ComputeTax() decimal.Decimal {
	return c.balance.Mul(CheckingTaxRate)
}
