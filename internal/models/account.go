package models

import (
	"fmt"
	"strings"

	"bank-ledger/internal/errors"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

// AccountState is derived from the balance and only used for display
type AccountState string

const (
	AccountStateSolvent   AccountState = "solvent"
	AccountStateOverdrawn AccountState = "overdrawn"
)

// CredentialVerifier compares a plaintext credential with a stored hash
type CredentialVerifier interface {
	ComparePassword(password, hash string) bool
}

// Account is implemented by CheckingAccount and SavingsAccount. The set is
// closed: the unexported methods keep other packages from adding variants.
type Account interface {
	Number() string
	Type() AccountType
	Owner() *Customer
	Balance() decimal.Decimal
	State() AccountState
	Transactions() []Transaction

	Deposit(amount decimal.Decimal) (Transaction, error)
	Withdraw(amount decimal.Decimal) (Transaction, error)

	// ApplyFees charges the periodic fee. applied is false when the variant has no fee.
	ApplyFees() (tx Transaction, applied bool)

	Authenticate(credential string, verifier CredentialVerifier) bool

	withdrawAs(amount decimal.Decimal, kind TransactionType, description string) (Transaction, error)
	credit(amount decimal.Decimal, kind TransactionType, description string) Transaction
}

// Taxable accounts owe a tax on their balance
type Taxable interface {
	ComputeTax() decimal.Decimal
}

// InterestBearing accounts accrue interest on their balance
type InterestBearing interface {
	ComputeInterest() decimal.Decimal
}

// accountParams is the validated subset shared by every variant
type accountParams struct {
	Number         string          `json:"number" validate:"trimmed_required"`
	Owner          *Customer       `json:"owner" validate:"required"`
	CredentialHash string          `json:"credential_hash" validate:"required"`
	InitialBalance decimal.Decimal `json:"initial_balance" validate:"non_negative_amount"`
}

type baseAccount struct {
	number         string
	owner          *Customer
	balance        decimal.Decimal
	credentialHash string
	transactions   []Transaction
}

func newBaseAccount(number string, owner *Customer, balance decimal.Decimal, credentialHash string) baseAccount {
	return baseAccount{
		number:         strings.TrimSpace(number),
		owner:          owner,
		balance:        balance,
		credentialHash: credentialHash,
	}
}

func (a *baseAccount) Number() string {
	return a.number
}

func (a *baseAccount) Owner() *Customer {
	return a.owner
}

func (a *baseAccount) Balance() decimal.Decimal {
	return a.balance
}

func (a *baseAccount) State() AccountState {
	if a.balance.IsNegative() {
		return AccountStateOverdrawn
	}
	return AccountStateSolvent
}

// Transactions returns a copy of the log, oldest first
func (a *baseAccount) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Deposit adds a positive amount to the balance
func (a *baseAccount) Deposit(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, errors.NewInvalidAmount(amount)
	}
	return a.credit(amount, TransactionTypeDeposit, ""), nil
}

// Authenticate never exposes the stored hash to callers
func (a *baseAccount) Authenticate(credential string, verifier CredentialVerifier) bool {
	if verifier == nil || credential == "" {
		return false
	}
	return verifier.ComparePassword(credential, a.credentialHash)
}

func (a *baseAccount) credit(amount decimal.Decimal, kind TransactionType, description string) Transaction {
	a.balance = a.balance.Add(amount)
	return a.record(kind, description, amount)
}

func (a *baseAccount) debit(amount decimal.Decimal, kind TransactionType, description string) Transaction {
	a.balance = a.balance.Sub(amount)
	return a.record(kind, description, amount)
}

func (a *baseAccount) record(kind TransactionType, description string, amount decimal.Decimal) Transaction {
	tx := newTransaction(kind, description, amount, a.number, a.balance)
	a.transactions = append(a.transactions, tx)
	return tx
}

func (a *baseAccount) String() string {
	return fmt.Sprintf("Account %s | Balance: %s", a.number, a.balance.StringFixed(2))
}

// Transfer moves amount from src to dst. The source applies its own
// withdrawal rules first; on failure neither account changes.
func Transfer(src, dst Account, amount decimal.Decimal) (out Transaction, in Transaction, err error) {
	if src == nil || dst == nil {
		return Transaction{}, Transaction{}, errors.NewInvalidTransfer("source and destination are required")
	}
	if src == dst || src.Number() == dst.Number() {
		return Transaction{}, Transaction{}, errors.NewInvalidTransfer("source and destination must differ")
	}

	out, err = src.withdrawAs(amount, TransactionTypeTransferOut, "Transfer to "+dst.Number())
	if err != nil {
		return Transaction{}, Transaction{}, err
	}

	in = dst.credit(amount, TransactionTypeTransferIn, "Transfer from "+src.Number())
	return out, in, nil
}

// ApplyInterest credits the interest accrued by an interest-bearing account.
// applied is false when the account bears no interest or the amount is not positive.
func ApplyInterest(a Account) (tx Transaction, applied bool) {
	bearing, ok := a.(InterestBearing)
	if !ok {
		return Transaction{}, false
	}

	interest := bearing.ComputeInterest()
	if !interest.IsPositive() {
		return Transaction{}, false
	}
	return a.credit(interest, TransactionTypeInterest, ""), true
}
