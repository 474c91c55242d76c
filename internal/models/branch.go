package models

import (
	"fmt"
	"strings"

	"bank-ledger/internal/errors"
	"bank-ledger/internal/validation"

	"github.com/shopspring/decimal"
)

type BranchParams struct {
	Name    string  `json:"name" validate:"trimmed_required"`
	Number  string  `json:"number" validate:"trimmed_required"`
	Address Address `json:"address"`
	Phone   string  `json:"phone" validate:"phone"`
}

// Branch holds accounts; numbers are unique within a branch
type Branch struct {
	name     string
	number   string
	address  Address
	phone    string
	accounts []Account
}

func NewBranch(p BranchParams) (*Branch, error) {
	if err := validation.GetValidator().Struct(p); err != nil {
		return nil, err
	}

	return &Branch{
		name:    strings.TrimSpace(p.Name),
		number:  strings.TrimSpace(p.Number),
		address: p.Address,
		phone:   p.Phone,
	}, nil
}

func (b *Branch) Name() string {
	return b.name
}

func (b *Branch) Number() string {
	return b.number
}

func (b *Branch) Address() Address {
	return b.address
}

func (b *Branch) Phone() string {
	return b.phone
}

// AddAccount rejects an account already present by identity or by number
func (b *Branch) AddAccount(a Account) error {
	if a == nil {
		return errors.NewInvalidField("account", "is required")
	}
	if _, exists := b.index()[a.Number()]; exists {
		return errors.NewDuplicateAccount(a.Number())
	}
	b.accounts = append(b.accounts, a)
	return nil
}

// RemoveAccount drops the account with the given number
func (b *Branch) RemoveAccount(number string) (Account, error) {
	for i, a := range b.accounts {
		if a.Number() == number {
			b.accounts = append(b.accounts[:i:i], b.accounts[i+1:]...)
			return a, nil
		}
	}
	return nil, errors.NewAccountNotFound(number)
}

// FindAccount looks an account up by number
func (b *Branch) FindAccount(number string) (Account, error) {
	if a, ok := b.index()[number]; ok {
		return a, nil
	}
	return nil, errors.NewAccountNotFound(number)
}

// Accounts returns the accounts in insertion order
func (b *Branch) Accounts() []Account {
	out := make([]Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}

func (b *Branch) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range b.accounts {
		total = total.Add(a.Balance())
	}
	return total
}

// index is derived from the account list on demand and never stored
func (b *Branch) index() map[string]Account {
	idx := make(map[string]Account, len(b.accounts))
	for _, a := range b.accounts {
		idx[a.Number()] = a
	}
	return idx
}

func (b *Branch) String() string {
	return fmt.Sprintf("Branch: %s, Number: %s, Address: %s, Phone: %s", b.name, b.number, b.address, b.phone)
}
