package models

import (
	"fmt"
	"strings"

	"bank-ledger/internal/validation"
)

// Address is a postal address value. Construct it with NewAddress.
type Address struct {
	PostalCode string `json:"postal_code" yaml:"postal_code" validate:"postal_code"`
	Number     string `json:"number" yaml:"number" validate:"trimmed_required"`
	Street     string `json:"street" yaml:"street" validate:"trimmed_required"`
	District   string `json:"district" yaml:"district" validate:"trimmed_required"`
	City       string `json:"city" yaml:"city" validate:"trimmed_required"`
	State      string `json:"state" yaml:"state" validate:"state_code"`
}

// NewAddress validates and returns an address
func NewAddress(postalCode, number, street, district, city, state string) (Address, error) {
	a := Address{
		PostalCode: postalCode,
		Number:     strings.TrimSpace(number),
		Street:     strings.TrimSpace(street),
		District:   strings.TrimSpace(district),
		City:       strings.TrimSpace(city),
		State:      state,
	}
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

// Validate checks the postal code, state code and required fields
func (a Address) Validate() error {
	return validation.GetValidator().Struct(a)
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s, %s - %s, CEP: %s", a.Street, a.Number, a.District, a.City, a.State, a.PostalCode)
}
