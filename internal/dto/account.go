package dto

import (
	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// OpenCheckingRequest carries the plaintext PIN; it is hashed before the
// account is built and never stored
type OpenCheckingRequest struct {
	Number         string
	Owner          *models.Customer
	InitialBalance decimal.Decimal
	PIN            string
	OverdraftLimit decimal.Decimal
}

// OpenSavingsRequest carries the plaintext PIN for a new savings account
type OpenSavingsRequest struct {
	Number         string
	Owner          *models.Customer
	InitialBalance decimal.Decimal
	PIN            string
	InterestRate   decimal.Decimal
	AnniversaryDay int
}
