package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		LedgerInsufficientBalance,
		LedgerInvalidAmount,
		LedgerLimitExceeded,
		LedgerInvalidTransfer,
		AuthFailed,
		AuthTooManyAttempts,
		AuthSessionInvalid,
		AccountDuplicate,
		AccountNotFound,
		CustomerNotFound,
		BranchNotFound,
		ValidationInvalidIdentifier,
		ValidationInvalidAge,
		ValidationInvalidField,
		SystemInternalError,
		SystemConfigurationError,
	}
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Limit Exceeded",
			code:     LedgerLimitExceeded,
			expected: "Withdrawal exceeds balance plus overdraft limit",
		},
		{
			name:     "Authentication Failed",
			code:     AuthFailed,
			expected: "Authentication failed",
		},
		{
			name:     "Branch Not Found",
			code:     BranchNotFound,
			expected: "Branch not found",
		},
		{
			name:     "Invalid Age",
			code:     ValidationInvalidAge,
			expected: "Person does not meet the minimum age",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes() {
		s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
	}

	for _, code := range []ErrorCode{"INVALID_001", "", "AUTH_999"} {
		s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}
