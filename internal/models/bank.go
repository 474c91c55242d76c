package models

import (
	"fmt"
	"strings"

	"bank-ledger/internal/errors"
	"bank-ledger/internal/validation"
)

type BankParams struct {
	Name      string  `json:"name" validate:"trimmed_required"`
	CompanyID string  `json:"company_id" validate:"company_id"`
	Address   Address `json:"address"`
	Phone     string  `json:"phone" validate:"phone"`
}

type Bank struct {
	name      string
	companyID string
	address   Address
	phone     string
	branches  []*Branch
}

func NewBank(p BankParams) (*Bank, error) {
	if err := validation.GetValidator().Struct(p); err != nil {
		return nil, err
	}

	return &Bank{
		name:      strings.TrimSpace(p.Name),
		companyID: p.CompanyID,
		address:   p.Address,
		phone:     p.Phone,
	}, nil
}

func (b *Bank) Name() string {
	return b.name
}

func (b *Bank) CompanyID() string {
	return b.companyID
}

func (b *Bank) Address() Address {
	return b.address
}

func (b *Bank) Phone() string {
	return b.phone
}

// AddBranches appends branches, skipping any already present by identity.
// A different branch reusing a registered number is rejected.
func (b *Bank) AddBranches(branches ...*Branch) error {
	for _, br := range branches {
		if br == nil {
			continue
		}
		existing, ok := b.branchByNumber(br.Number())
		if ok && existing == br {
			continue
		}
		if ok {
			return errors.NewInvalidField("branch", fmt.Sprintf("number %s is already registered", br.Number()))
		}
		b.branches = append(b.branches, br)
	}
	return nil
}

// Branches returns the branches in insertion order
func (b *Bank) Branches() []*Branch {
	out := make([]*Branch, len(b.branches))
	copy(out, b.branches)
	return out
}

// FindBranch looks a branch up by number
func (b *Bank) FindBranch(number string) (*Branch, error) {
	if br, ok := b.branchByNumber(number); ok {
		return br, nil
	}
	return nil, errors.NewBranchNotFound(number)
}

func (b *Bank) branchByNumber(number string) (*Branch, bool) {
	for _, br := range b.branches {
		if br.Number() == number {
			return br, true
		}
	}
	return nil, false
}

func (b *Bank) String() string {
	return fmt.Sprintf("Bank: %s, Company ID: %s, Address: %s, Phone: %s", b.name, b.companyID, b.address, b.phone)
}
