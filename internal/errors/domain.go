package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// IdentifierKind names the identifier family that failed validation
type IdentifierKind string

const (
	KindPersonID      IdentifierKind = "person_id"
	KindCompanyID     IdentifierKind = "company_id"
	KindPostalCode    IdentifierKind = "postal_code"
	KindPhone         IdentifierKind = "phone"
	KindStateCode     IdentifierKind = "state_code"
	KindLicenseNumber IdentifierKind = "license_number"
)

// Coded is implemented by every ledger error
type Coded interface {
	error
	ErrorCode() ErrorCode
}

// DomainError is a ledger failure identified by its code with optional string details
type DomainError struct {
	Code    ErrorCode
	Message string
	Details map[string]string
}

func (e *DomainError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = GetErrorMessage(e.Code)
	}
	if len(e.Details) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}

	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, e.Details[k]))
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, msg, strings.Join(parts, ", "))
}

// ErrorCode returns the error code
func (e *DomainError) ErrorCode() ErrorCode {
	return e.Code
}

// Is matches any coded error carrying the same code or its parent code
func (e *DomainError) Is(target error) bool {
	if matchCode(target, e.Code) {
		return true
	}
	parent, ok := parentCodes[e.Code]
	return ok && matchCode(target, parent)
}

// Detail returns a single detail value, or an empty string
func (e *DomainError) Detail(key string) string {
	return e.Details[key]
}

func newDomainError(code ErrorCode, details map[string]string) *DomainError {
	return &DomainError{Code: code, Message: GetErrorMessage(code), Details: details}
}

// parentCodes lets a narrower failure also match its broader kind.
// A dead session is an unauthenticated context.
var parentCodes = map[ErrorCode]ErrorCode{
	AuthSessionInvalid: AuthFailed,
}

// Sentinels for errors.Is comparisons
var (
	ErrInsufficientBalance  = newDomainError(LedgerInsufficientBalance, nil)
	ErrInvalidAmount        = newDomainError(LedgerInvalidAmount, nil)
	ErrLimitExceeded        = newDomainError(LedgerLimitExceeded, nil)
	ErrInvalidTransfer      = newDomainError(LedgerInvalidTransfer, nil)
	ErrAuthenticationFailed = newDomainError(AuthFailed, nil)
	ErrTooManyAttempts      = newDomainError(AuthTooManyAttempts, nil)
	ErrSessionInvalid       = newDomainError(AuthSessionInvalid, nil)
	ErrDuplicateAccount     = newDomainError(AccountDuplicate, nil)
	ErrAccountNotFound      = newDomainError(AccountNotFound, nil)
	ErrCustomerNotFound     = newDomainError(CustomerNotFound, nil)
	ErrBranchNotFound       = newDomainError(BranchNotFound, nil)
	ErrInvalidIdentifier    = newDomainError(ValidationInvalidIdentifier, nil)
	ErrInvalidAge           = newDomainError(ValidationInvalidAge, nil)
	ErrInvalidField         = newDomainError(ValidationInvalidField, nil)
)

// InsufficientBalanceError is returned when a savings withdrawal exceeds the balance
type InsufficientBalanceError struct {
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%s: %s (balance=%s, requested=%s)",
		LedgerInsufficientBalance, GetErrorMessage(LedgerInsufficientBalance),
		e.Balance.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *InsufficientBalanceError) ErrorCode() ErrorCode { return LedgerInsufficientBalance }

func (e *InsufficientBalanceError) Is(target error) bool {
	return matchCode(target, LedgerInsufficientBalance)
}

// LimitExceededError is returned when a checking withdrawal exceeds balance plus overdraft
type LimitExceededError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s: %s (available=%s, requested=%s)",
		LedgerLimitExceeded, GetErrorMessage(LedgerLimitExceeded),
		e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *LimitExceededError) ErrorCode() ErrorCode { return LedgerLimitExceeded }

func (e *LimitExceededError) Is(target error) bool {
	return matchCode(target, LedgerLimitExceeded)
}

// InvalidAmountError is returned for zero or negative amounts
type InvalidAmountError struct {
	Amount decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s: %s (amount=%s)", LedgerInvalidAmount, GetErrorMessage(LedgerInvalidAmount), e.Amount.String())
}

func (e *InvalidAmountError) ErrorCode() ErrorCode { return LedgerInvalidAmount }

func (e *InvalidAmountError) Is(target error) bool {
	return matchCode(target, LedgerInvalidAmount)
}

// InvalidIdentifierError carries the identifier family and the raw rejected value
type InvalidIdentifierError struct {
	Kind  IdentifierKind
	Value string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("%s: invalid %s %q", ValidationInvalidIdentifier, e.Kind, e.Value)
}

func (e *InvalidIdentifierError) ErrorCode() ErrorCode { return ValidationInvalidIdentifier }

func (e *InvalidIdentifierError) Is(target error) bool {
	return matchCode(target, ValidationInvalidIdentifier)
}

// InvalidAgeError is returned when a person is younger than the minimum age
type InvalidAgeError struct {
	Age     int
	Minimum int
}

func (e *InvalidAgeError) Error() string {
	return fmt.Sprintf("%s: age %d is below the minimum of %d", ValidationInvalidAge, e.Age, e.Minimum)
}

func (e *InvalidAgeError) ErrorCode() ErrorCode { return ValidationInvalidAge }

func (e *InvalidAgeError) Is(target error) bool {
	return matchCode(target, ValidationInvalidAge)
}

func NewInsufficientBalance(balance, requested decimal.Decimal) error {
	return &InsufficientBalanceError{Balance: balance, Requested: requested}
}

func NewLimitExceeded(available, requested decimal.Decimal) error {
	return &LimitExceededError{Available: available, Requested: requested}
}

func NewInvalidAmount(amount decimal.Decimal) error {
	return &InvalidAmountError{Amount: amount}
}

func NewInvalidIdentifier(kind IdentifierKind, value string) error {
	return &InvalidIdentifierError{Kind: kind, Value: value}
}

func NewInvalidAge(age, minimum int) error {
	return &InvalidAgeError{Age: age, Minimum: minimum}
}

func NewInvalidField(field, reason string) error {
	return newDomainError(ValidationInvalidField, map[string]string{"field": field, "reason": reason})
}

func NewInvalidTransfer(reason string) error {
	return newDomainError(LedgerInvalidTransfer, map[string]string{"reason": reason})
}

func NewAuthenticationFailed(reason string) error {
	return newDomainError(AuthFailed, map[string]string{"reason": reason})
}

func NewTooManyAttempts(username string) error {
	return newDomainError(AuthTooManyAttempts, map[string]string{"username": username})
}

func NewSessionInvalid(reason string) error {
	return newDomainError(AuthSessionInvalid, map[string]string{"reason": reason})
}

func NewDuplicateAccount(number string) error {
	return newDomainError(AccountDuplicate, map[string]string{"number": number})
}

func NewAccountNotFound(number string) error {
	return newDomainError(AccountNotFound, map[string]string{"number": number})
}

func NewCustomerNotFound(identifier string) error {
	return newDomainError(CustomerNotFound, map[string]string{"identifier": identifier})
}

func NewBranchNotFound(number string) error {
	return newDomainError(BranchNotFound, map[string]string{"number": number})
}

// CodeOf extracts the error code from anywhere in err's chain
func CodeOf(err error) (ErrorCode, bool) {
	var coded Coded
	if stderrors.As(err, &coded) {
		return coded.ErrorCode(), true
	}
	return "", false
}

func matchCode(target error, code ErrorCode) bool {
	coded, ok := target.(Coded)
	return ok && coded.ErrorCode() == code
}
