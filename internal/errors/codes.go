package errors

// ErrorCode represents a standardized error code used throughout the ledger
type ErrorCode string

// Ledger operation error codes (LEDGER_*)
const (
	LedgerInsufficientBalance ErrorCode = "LEDGER_001"
	LedgerInvalidAmount       ErrorCode = "LEDGER_002"
	LedgerLimitExceeded       ErrorCode = "LEDGER_003"
	LedgerInvalidTransfer     ErrorCode = "LEDGER_004"
)

// Authentication error codes (AUTH_*)
const (
	AuthFailed          ErrorCode = "AUTH_001"
	AuthTooManyAttempts ErrorCode = "AUTH_002"
	AuthSessionInvalid  ErrorCode = "AUTH_003"
)

// Account error codes (ACCOUNT_*)
const (
	AccountDuplicate ErrorCode = "ACCOUNT_001"
	AccountNotFound  ErrorCode = "ACCOUNT_002"
)

// Customer and branch error codes
const (
	CustomerNotFound ErrorCode = "CUSTOMER_001"
	BranchNotFound   ErrorCode = "BRANCH_001"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationInvalidIdentifier ErrorCode = "VALIDATION_001"
	ValidationInvalidAge        ErrorCode = "VALIDATION_002"
	ValidationInvalidField      ErrorCode = "VALIDATION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemConfigurationError ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Ledger errors
	LedgerInsufficientBalance: "Insufficient balance for this withdrawal",
	LedgerInvalidAmount:       "Amount must be greater than zero",
	LedgerLimitExceeded:       "Withdrawal exceeds balance plus overdraft limit",
	LedgerInvalidTransfer:     "Invalid transfer",

	// Authentication errors
	AuthFailed:          "Authentication failed",
	AuthTooManyAttempts: "Too many login attempts. Please try again later",
	AuthSessionInvalid:  "Session is invalid or has expired",

	// Account errors
	AccountDuplicate: "Account is already registered",
	AccountNotFound:  "Account not found",

	// Customer and branch errors
	CustomerNotFound: "Customer not found",
	BranchNotFound:   "Branch not found",

	// Validation errors
	ValidationInvalidIdentifier: "Invalid identifier",
	ValidationInvalidAge:        "Person does not meet the minimum age",
	ValidationInvalidField:      "Invalid field value",

	// System errors
	SystemInternalError:      "An unexpected error occurred",
	SystemConfigurationError: "System configuration error",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
