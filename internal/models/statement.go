package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountStatement is a complete statement of one account's transaction log
type AccountStatement struct {
	AccountNumber  string                 `json:"account_number"`
	AccountType    AccountType            `json:"account_type"`
	HolderName     string                 `json:"holder_name"`
	OpeningBalance decimal.Decimal        `json:"opening_balance"`
	ClosingBalance decimal.Decimal        `json:"closing_balance"`
	Transactions   []StatementTransaction `json:"transactions"`
	Summary        StatementSummary       `json:"summary"`
	GeneratedAt    time.Time              `json:"generated_at"`
}

// StatementTransaction represents a transaction in the statement with running balance
type StatementTransaction struct {
	ID              uuid.UUID       `json:"id"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	TransactionType TransactionType `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	RunningBalance  decimal.Decimal `json:"running_balance"`
}

// StatementSummary provides aggregate information for the statement
type StatementSummary struct {
	TotalCredits     decimal.Decimal `json:"total_credits"`
	TotalDebits      decimal.Decimal `json:"total_debits"`
	TotalFees        decimal.Decimal `json:"total_fees"`
	NetChange        decimal.Decimal `json:"net_change"`
	TransactionCount int             `json:"transaction_count"`
	CreditCount      int             `json:"credit_count"`
	DebitCount       int             `json:"debit_count"`
}
