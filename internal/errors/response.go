package errors

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Process exit codes returned by the CLI for each error class
const (
	ExitOK         = 0
	ExitInternal   = 1
	ExitValidation = 2
	ExitAuth       = 3
	ExitNotFound   = 4
	ExitRejected   = 5
	ExitConflict   = 6
)

// ErrorResponse is the structured error rendered by the presentation layer
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
// Optional details can be added using functional options
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// FromError builds a response from any error. Uncoded errors are reported as
// internal errors without exposing their text.
func FromError(err error, traceID string) *ErrorResponse {
	code, ok := CodeOf(err)
	if !ok {
		return NewErrorResponse(SystemInternalError, traceID)
	}
	return NewErrorResponse(code, traceID, WithDetails(detailsOf(err)...))
}

func detailsOf(err error) []string {
	var domainErr *DomainError
	switch e := err.(type) {
	case *InsufficientBalanceError:
		return []string{"balance: " + e.Balance.StringFixed(2), "requested: " + e.Requested.StringFixed(2)}
	case *LimitExceededError:
		return []string{"available: " + e.Available.StringFixed(2), "requested: " + e.Requested.StringFixed(2)}
	case *InvalidAmountError:
		return []string{"amount: " + e.Amount.String()}
	case *InvalidIdentifierError:
		return []string{fmt.Sprintf("%s: %s", e.Kind, e.Value)}
	case *InvalidAgeError:
		return []string{fmt.Sprintf("age: %d", e.Age), fmt.Sprintf("minimum: %d", e.Minimum)}
	case *DomainError:
		domainErr = e
	default:
		if u, ok := err.(interface{ Unwrap() error }); ok && u.Unwrap() != nil {
			return detailsOf(u.Unwrap())
		}
		return []string{}
	}

	keys := make([]string, 0, len(domainErr.Details))
	for k := range domainErr.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	details := make([]string, 0, len(keys))
	for _, k := range keys {
		details = append(details, fmt.Sprintf("%s: %s", k, domainErr.Details[k]))
	}
	return details
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// ExitCode returns the process exit code for the error code
func ExitCode(code ErrorCode) int {
	switch code {
	case ValidationInvalidIdentifier, ValidationInvalidAge, ValidationInvalidField,
		LedgerInvalidAmount, LedgerInvalidTransfer:
		return ExitValidation

	case AuthFailed, AuthTooManyAttempts, AuthSessionInvalid:
		return ExitAuth

	case AccountNotFound, CustomerNotFound, BranchNotFound:
		return ExitNotFound

	case LedgerInsufficientBalance, LedgerLimitExceeded:
		return ExitRejected

	case AccountDuplicate:
		return ExitConflict

	default:
		return ExitInternal
	}
}

// ExitCode returns the process exit code for the error response
func (er *ErrorResponse) ExitCode() int {
	return ExitCode(ErrorCode(er.Error.Code))
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
