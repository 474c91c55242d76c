package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionType_IsCredit(t *testing.T) {
	tests := []struct {
		kind TransactionType
		want bool
	}{
		{TransactionTypeDeposit, true},
		{TransactionTypeInterest, true},
		{TransactionTypeTransferIn, true},
		{TransactionTypeWithdrawal, false},
		{TransactionTypeMaintenanceFee, false},
		{TransactionTypeTransferOut, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsCredit())
		})
	}
}

func TestTransaction_RecordedByAccount(t *testing.T) {
	account := newTestChecking(t, newTestCustomer(t), "0001", 100, 50)

	deposit, _ := account.Deposit(decimal.NewFromInt(20))
	withdrawal, _ := account.Withdraw(decimal.NewFromInt(70))

	assert.NotEqual(t, deposit.ID(), withdrawal.ID())
	assert.Equal(t, "Deposit", deposit.Description())
	assert.Equal(t, "0001", deposit.AccountNumber())
	assert.True(t, decimal.NewFromInt(120).Equal(deposit.BalanceAfter()))
	assert.True(t, decimal.NewFromInt(50).Equal(withdrawal.BalanceAfter()))
	assert.True(t, decimal.NewFromInt(-70).Equal(withdrawal.SignedAmount()))
	assert.False(t, withdrawal.Timestamp().Before(deposit.Timestamp()))
	assert.Contains(t, withdrawal.String(), "Withdrawal | 70.00 | account 0001")

	log := account.Transactions()
	log[0] = Transaction{}
	assert.False(t, account.Transactions()[0].IsZero(), "returned log is a copy")
}
