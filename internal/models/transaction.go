package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit        TransactionType = "Deposit"
	TransactionTypeWithdrawal     TransactionType = "Withdrawal"
	TransactionTypeMaintenanceFee TransactionType = "Maintenance fee"
	TransactionTypeInterest       TransactionType = "Interest"
	TransactionTypeTransferOut    TransactionType = "Transfer out"
	TransactionTypeTransferIn     TransactionType = "Transfer in"
)

// IsCredit reports whether the type increases the balance
func (t TransactionType) IsCredit() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeInterest, TransactionTypeTransferIn:
		return true
	default:
		return false
	}
}

// Transaction is an immutable record of one balance movement. It is only
// created by account operations.
type Transaction struct {
	id            uuid.UUID
	kind          TransactionType
	description   string
	amount        decimal.Decimal
	accountNumber string
	balanceAfter  decimal.Decimal
	timestamp     time.Time
}

func newTransaction(kind TransactionType, description string, amount decimal.Decimal, accountNumber string, balanceAfter decimal.Decimal) Transaction {
	if description == "" {
		description = string(kind)
	}
	return Transaction{
		id:            uuid.New(),
		kind:          kind,
		description:   description,
		amount:        amount,
		accountNumber: accountNumber,
		balanceAfter:  balanceAfter,
		timestamp:     time.Now(),
	}
}

func (t Transaction) ID() uuid.UUID {
	return t.id
}

func (t Transaction) Type() TransactionType {
	return t.kind
}

// Description is the display label, e.g. "Transfer to 0002"
func (t Transaction) Description() string {
	return t.description
}

// Amount is always positive; the direction comes from the type
func (t Transaction) Amount() decimal.Decimal {
	return t.amount
}

// SignedAmount is negative for debits
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.kind.IsCredit() {
		return t.amount
	}
	return t.amount.Neg()
}

func (t Transaction) AccountNumber() string {
	return t.accountNumber
}

func (t Transaction) BalanceAfter() decimal.Decimal {
	return t.balanceAfter
}

func (t Transaction) Timestamp() time.Time {
	return t.timestamp
}

func (t Transaction) IsZero() bool {
	return t.id == uuid.Nil
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s | %s | %s | account %s",
		t.timestamp.Format("2006-01-02 15:04:05"), t.description, t.amount.StringFixed(2), t.accountNumber)
}
