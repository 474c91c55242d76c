package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedErrors_MatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     ErrorCode
	}{
		{"insufficient balance", NewInsufficientBalance(decimal.NewFromInt(10), decimal.NewFromInt(20)), ErrInsufficientBalance, LedgerInsufficientBalance},
		{"limit exceeded", NewLimitExceeded(decimal.NewFromInt(10), decimal.NewFromInt(20)), ErrLimitExceeded, LedgerLimitExceeded},
		{"invalid amount", NewInvalidAmount(decimal.Zero), ErrInvalidAmount, LedgerInvalidAmount},
		{"invalid identifier", NewInvalidIdentifier(KindPersonID, "111.111.111-11"), ErrInvalidIdentifier, ValidationInvalidIdentifier},
		{"invalid age", NewInvalidAge(17, 18), ErrInvalidAge, ValidationInvalidAge},
		{"duplicate account", NewDuplicateAccount("0001"), ErrDuplicateAccount, AccountDuplicate},
		{"account not found", NewAccountNotFound("0001"), ErrAccountNotFound, AccountNotFound},
		{"branch not found", NewBranchNotFound("42"), ErrBranchNotFound, BranchNotFound},
		{"customer not found", NewCustomerNotFound("123"), ErrCustomerNotFound, CustomerNotFound},
		{"authentication failed", NewAuthenticationFailed("bad pin"), ErrAuthenticationFailed, AuthFailed},
		{"too many attempts", NewTooManyAttempts("alice"), ErrTooManyAttempts, AuthTooManyAttempts},
		{"session invalid", NewSessionInvalid("expired"), ErrSessionInvalid, AuthSessionInvalid},
		{"invalid transfer", NewInvalidTransfer("same account"), ErrInvalidTransfer, LedgerInvalidTransfer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("operation: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))

			code, ok := CodeOf(wrapped)
			require.True(t, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestTypedErrors_DoNotCrossMatch(t *testing.T) {
	err := NewLimitExceeded(decimal.NewFromInt(1), decimal.NewFromInt(2))

	assert.False(t, errors.Is(err, ErrInsufficientBalance))
	assert.False(t, errors.Is(err, ErrInvalidAmount))
}

func TestSessionInvalid_IsAuthenticationFailure(t *testing.T) {
	err := fmt.Errorf("verify: %w", NewSessionInvalid("no active session"))

	assert.True(t, errors.Is(err, ErrSessionInvalid))
	assert.True(t, errors.Is(err, ErrAuthenticationFailed))

	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, AuthSessionInvalid, code)

	assert.False(t, errors.Is(NewAuthenticationFailed("bad pin"), ErrSessionInvalid))
	assert.False(t, errors.Is(NewTooManyAttempts("alice"), ErrAuthenticationFailed))
}

func TestTypedErrors_PayloadReachableWithAs(t *testing.T) {
	err := fmt.Errorf("withdraw: %w", NewLimitExceeded(decimal.NewFromInt(1500), decimal.NewFromInt(10000)))

	var limitErr *LimitExceededError
	require.True(t, errors.As(err, &limitErr))
	assert.True(t, limitErr.Available.Equal(decimal.NewFromInt(1500)))
	assert.True(t, limitErr.Requested.Equal(decimal.NewFromInt(10000)))

	var idErr *InvalidIdentifierError
	require.True(t, errors.As(NewInvalidIdentifier(KindCompanyID, "11.222.333/0001-00"), &idErr))
	assert.Equal(t, KindCompanyID, idErr.Kind)
	assert.Equal(t, "11.222.333/0001-00", idErr.Value)
}

func TestDomainError_ErrorString(t *testing.T) {
	err := NewAccountNotFound("0001")
	assert.Equal(t, "ACCOUNT_002: Account not found (number=0001)", err.Error())

	assert.Equal(t, "AUTH_001: Authentication failed", ErrAuthenticationFailed.Error())
}

func TestCodeOf_UncodedError(t *testing.T) {
	_, ok := CodeOf(errors.New("plain"))
	assert.False(t, ok)
}
