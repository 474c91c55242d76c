package models

import (
	"errors"
	"testing"

	ledgererrors "bank-ledger/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) Address {
	t.Helper()
	a, err := NewAddress("79002-000", "100", "Rua 14 de Julho", "Centro", "Campo Grande", "MS")
	require.NoError(t, err)
	return a
}

func TestNewAddress(t *testing.T) {
	a := testAddress(t)
	assert.Equal(t, "Rua 14 de Julho, 100, Centro, Campo Grande - MS, CEP: 79002-000", a.String())

	_, err := NewAddress("790020", "100", "Rua", "Centro", "Campo Grande", "MS")
	var idErr *ledgererrors.InvalidIdentifierError
	require.True(t, errors.As(err, &idErr))
	assert.Equal(t, ledgererrors.KindPostalCode, idErr.Kind)

	_, err = NewAddress("79002000", "100", "Rua", "Centro", "Campo Grande", "Ms")
	require.True(t, errors.As(err, &idErr))
	assert.Equal(t, ledgererrors.KindStateCode, idErr.Kind)
}

func newTestBranch(t *testing.T, number string) *Branch {
	t.Helper()
	b, err := NewBranch(BranchParams{
		Name:    "Centro",
		Number:  number,
		Address: testAddress(t),
		Phone:   "(67) 3321-4567",
	})
	require.NoError(t, err)
	return b
}

func TestNewBranch_InvalidPhone(t *testing.T) {
	_, err := NewBranch(BranchParams{Name: "Centro", Number: "001", Address: testAddress(t), Phone: "3321"})

	var idErr *ledgererrors.InvalidIdentifierError
	require.True(t, errors.As(err, &idErr))
	assert.Equal(t, ledgererrors.KindPhone, idErr.Kind)
}

func TestBranch_AccountMembership(t *testing.T) {
	branch := newTestBranch(t, "001")
	owner := newTestCustomer(t)
	checking := newTestChecking(t, owner, "0001", 100, 0)
	savings := newTestSavings(t, owner, "0002", 200, 1)

	require.NoError(t, branch.AddAccount(checking))
	require.NoError(t, branch.AddAccount(savings))

	err := branch.AddAccount(checking)
	assert.True(t, errors.Is(err, ledgererrors.ErrDuplicateAccount))

	found, err := branch.FindAccount("0002")
	require.NoError(t, err)
	assert.Same(t, savings, found)

	assert.True(t, decimal.NewFromInt(300).Equal(branch.TotalBalance()))

	removed, err := branch.RemoveAccount("0001")
	require.NoError(t, err)
	assert.Same(t, checking, removed)
	assert.Len(t, branch.Accounts(), 1)

	_, err = branch.RemoveAccount("0001")
	assert.True(t, errors.Is(err, ledgererrors.ErrAccountNotFound))

	_, err = branch.FindAccount("9999")
	assert.True(t, errors.Is(err, ledgererrors.ErrAccountNotFound))
}

func TestNewBank(t *testing.T) {
	bank, err := NewBank(BankParams{
		Name:      "Banco Pantanal",
		CompanyID: "11.222.333/0001-81",
		Address:   testAddress(t),
		Phone:     "(67) 3321-0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Banco Pantanal", bank.Name())

	_, err = NewBank(BankParams{
		Name:      "Banco Pantanal",
		CompanyID: "11.222.333/0001-00",
		Address:   testAddress(t),
		Phone:     "(67) 3321-0000",
	})
	var idErr *ledgererrors.InvalidIdentifierError
	require.True(t, errors.As(err, &idErr))
	assert.Equal(t, ledgererrors.KindCompanyID, idErr.Kind)
	assert.Equal(t, "11.222.333/0001-00", idErr.Value)
}

func TestBank_Branches(t *testing.T) {
	bank, err := NewBank(BankParams{
		Name:      "Banco Pantanal",
		CompanyID: "11.222.333/0001-81",
		Address:   testAddress(t),
		Phone:     "(67) 3321-0000",
	})
	require.NoError(t, err)

	centro := newTestBranch(t, "001")
	norte := newTestBranch(t, "002")

	require.NoError(t, bank.AddBranches(centro, norte, centro))
	assert.Len(t, bank.Branches(), 2)

	assert.Error(t, bank.AddBranches(newTestBranch(t, "001")))

	found, err := bank.FindBranch("002")
	require.NoError(t, err)
	assert.Same(t, norte, found)

	_, err = bank.FindBranch("404")
	assert.True(t, errors.Is(err, ledgererrors.ErrBranchNotFound))
}
