package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"bank-ledger/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DefaultMinimumAge is used when an adult tag carries no parameter
const DefaultMinimumAge = 18

var identifierTags = map[string]errors.IdentifierKind{
	"person_id":      errors.KindPersonID,
	"company_id":     errors.KindCompanyID,
	"postal_code":    errors.KindPostalCode,
	"phone":          errors.KindPhone,
	"state_code":     errors.KindStateCode,
	"license_number": errors.KindLicenseNumber,
}

// amountFields report amount tag failures as InvalidAmount instead of InvalidField
var amountFields = map[string]bool{
	"amount":          true,
	"initial_balance": true,
}

// Validator wraps the go-playground validator with ledger rules and typed error mapping
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// Option configures a Validator
type Option func(*Validator)

// WithClock sets the clock used to evaluate ages
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator(opts ...Option) *Validator {
	v := &Validator{validate: validator.New(), now: time.Now}
	for _, opt := range opts {
		opt(v)
	}

	_ = v.validate.RegisterValidation("person_id", stringRule(ValidatePersonID))
	_ = v.validate.RegisterValidation("company_id", stringRule(ValidateCompanyID))
	_ = v.validate.RegisterValidation("postal_code", stringRule(ValidatePostalCode))
	_ = v.validate.RegisterValidation("phone", stringRule(ValidatePhone))
	_ = v.validate.RegisterValidation("state_code", stringRule(ValidateStateCode))
	_ = v.validate.RegisterValidation("license_number", stringRule(ValidateLicenseNumber))
	_ = v.validate.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.validate.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.validate.RegisterValidation("adult", v.validateAdult)
	_ = v.validate.RegisterValidation("day_of_month", validateDayOfMonth)
	_ = v.validate.RegisterValidation("trimmed_required", validateTrimmedRequired)
	_ = v.validate.RegisterValidation("username", stringRule(ValidateUsername))

	v.validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct validates s field by field in declaration order and returns the first
// failure as a typed ledger error
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}

	return v.toDomainError(fieldErrs[0])
}

func (v *Validator) toDomainError(fe validator.FieldError) error {
	if kind, ok := identifierTags[fe.Tag()]; ok {
		return errors.NewInvalidIdentifier(kind, fmt.Sprint(fe.Value()))
	}

	switch fe.Tag() {
	case "adult":
		birth, _ := fe.Value().(time.Time)
		if birth.IsZero() {
			return errors.NewInvalidField(fe.Field(), "is required")
		}
		return errors.NewInvalidAge(AgeOn(birth, v.now()), minimumAge(fe.Param()))
	case "positive_amount", "non_negative_amount":
		amount, _ := decimal.NewFromString(fmt.Sprint(fe.Value()))
		if amountFields[fe.Field()] {
			return errors.NewInvalidAmount(amount)
		}
		if fe.Tag() == "positive_amount" {
			return errors.NewInvalidField(fe.Field(), "must be greater than zero")
		}
		return errors.NewInvalidField(fe.Field(), "must not be negative")
	case "required", "trimmed_required":
		return errors.NewInvalidField(fe.Field(), "is required")
	case "gt":
		return errors.NewInvalidField(fe.Field(), "must be greater than "+fe.Param())
	case "username":
		return errors.NewInvalidField(fe.Field(), "must have at least 3 letters, digits or underscores")
	case "oneof":
		return errors.NewInvalidField(fe.Field(), "must be one of: "+fe.Param())
	case "day_of_month":
		return errors.NewInvalidField(fe.Field(), "must be between 1 and 31")
	default:
		return errors.NewInvalidField(fe.Field(), "failed "+fe.Tag())
	}
}

func stringRule(rule func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return rule(fl.Field().String())
	}
}

// validateAdult checks a birth date against the minimum age given as the tag parameter
func (v *Validator) validateAdult(fl validator.FieldLevel) bool {
	birth, ok := fl.Field().Interface().(time.Time)
	if !ok || birth.IsZero() {
		return false
	}
	return AgeOn(birth, v.now()) >= minimumAge(fl.Param())
}

// decimalValue exposes decimal fields to the tag rules as their exact string form
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func amountRule(rule func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		amount, err := decimal.NewFromString(fl.Field().String())
		return err == nil && rule(amount)
	}
}

var (
	validatePositiveAmount    = amountRule(decimal.Decimal.IsPositive)
	validateNonNegativeAmount = amountRule(func(d decimal.Decimal) bool { return !d.IsNegative() })
)

func minimumAge(param string) int {
	if n, err := strconv.Atoi(param); err == nil {
		return n
	}
	return DefaultMinimumAge
}

func validateDayOfMonth(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 1 && day <= 31
}

func validateTrimmedRequired(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
