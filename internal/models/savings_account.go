package models

import (
	"bank-ledger/internal/errors"
	"bank-ledger/internal/validation"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type SavingsAccountParams struct {
	Number         string
	Owner          *Customer
	InitialBalance decimal.Decimal
	CredentialHash string
	// InterestRate is a percentage per period, e.g. 0.5 for 0.5%
	InterestRate   decimal.Decimal
	AnniversaryDay int
}

// savingsRules holds the savings-only constraints checked by the validator
type savingsRules struct {
	InterestRate   decimal.Decimal `json:"interest_rate" validate:"positive_amount"`
	AnniversaryDay int             `json:"anniversary_day" validate:"day_of_month"`
}

// SavingsAccount never goes below zero and accrues interest
type SavingsAccount struct {
	baseAccount
	interestRate   decimal.Decimal
	anniversaryDay int
}

// NewSavingsAccount validates the params, builds the account and registers it
// with its owner
func NewSavingsAccount(p SavingsAccountParams) (*SavingsAccount, error) {
	v := validation.GetValidator()
	if err := v.Struct(accountParams{
		Number:         p.Number,
		Owner:          p.Owner,
		CredentialHash: p.CredentialHash,
		InitialBalance: p.InitialBalance,
	}); err != nil {
		return nil, err
	}
	if err := v.Struct(savingsRules{InterestRate: p.InterestRate, AnniversaryDay: p.AnniversaryDay}); err != nil {
		return nil, err
	}

	account := &SavingsAccount{
		baseAccount:    newBaseAccount(p.Number, p.Owner, p.InitialBalance, p.CredentialHash),
		interestRate:   p.InterestRate,
		anniversaryDay: p.AnniversaryDay,
	}
	if err := p.Owner.attach(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *SavingsAccount) Type() AccountType {
	return AccountTypeSavings
}

func (s *SavingsAccount) InterestRate() decimal.Decimal {
	return s.interestRate
}

func (s *SavingsAccount) AnniversaryDay() int {
	return s.anniversaryDay
}

// Withdraw succeeds while the amount fits within the balance
func (s *SavingsAccount) Withdraw(amount decimal.Decimal) (Transaction, error) {
	return s.withdrawAs(amount, TransactionTypeWithdrawal, "")
}

func (s *SavingsAccount) withdrawAs(amount decimal.Decimal, kind TransactionType, description string) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, errors.NewInvalidAmount(amount)
	}
	if amount.GreaterThan(s.balance) {
		return Transaction{}, errors.NewInsufficientBalance(s.balance, amount)
	}
	return s.debit(amount, kind, description), nil
}

// ApplyFees is a no-op: savings accounts carry no maintenance fee
func (s *SavingsAccount) ApplyFees() (Transaction, bool) {
	return Transaction{}, false
}

// ComputeInterest returns balance * rate / 100 without changing the balance
func (s *SavingsAccount) ComputeInterest() decimal.Decimal {
	return s.balance.Mul(s.interestRate).Div(hundred)
}
