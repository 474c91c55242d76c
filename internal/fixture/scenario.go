package fixture

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultScenario []byte

// DateLayout is the layout of birth dates in scenario files.
const DateLayout = "2006-01-02"

// Operation kinds accepted in the operations list.
const (
	OpDeposit       = "deposit"
	OpWithdraw      = "withdraw"
	OpTransfer      = "transfer"
	OpApplyFees     = "apply_fees"
	OpApplyInterest = "apply_interest"
)

// Scenario is a complete ledger setup: a bank, its branches, customers,
// accounts and the operations to replay against them.
type Scenario struct {
	Bank       BankSpec        `yaml:"bank"`
	Branches   []BranchSpec    `yaml:"branches"`
	Customers  []CustomerSpec  `yaml:"customers"`
	Accounts   []AccountSpec   `yaml:"accounts"`
	Operations []OperationSpec `yaml:"operations,omitempty"`
}

type AddressSpec struct {
	PostalCode string `yaml:"postal_code"`
	Number     string `yaml:"number"`
	Street     string `yaml:"street"`
	District   string `yaml:"district"`
	City       string `yaml:"city"`
	State      string `yaml:"state"`
}

type BankSpec struct {
	Name      string      `yaml:"name"`
	CompanyID string      `yaml:"company_id"`
	Phone     string      `yaml:"phone"`
	Address   AddressSpec `yaml:"address"`
}

type BranchSpec struct {
	Name    string      `yaml:"name"`
	Number  string      `yaml:"number"`
	Phone   string      `yaml:"phone"`
	Address AddressSpec `yaml:"address"`
}

type CustomerSpec struct {
	Name          string `yaml:"name"`
	NationalID    string `yaml:"national_id"`
	BirthDate     string `yaml:"birth_date"` // DateLayout
	LicenseNumber string `yaml:"license_number"`
}

// AccountSpec describes one account. Amounts are decimal strings so they
// survive YAML without float rounding.
type AccountSpec struct {
	Type           string `yaml:"type"` // checking or savings
	Number         string `yaml:"number"`
	Owner          string `yaml:"owner"` // customer national ID
	Branch         string `yaml:"branch,omitempty"`
	InitialBalance string `yaml:"initial_balance"`
	PIN            string `yaml:"pin"`
	OverdraftLimit string `yaml:"overdraft_limit,omitempty"`
	InterestRate   string `yaml:"interest_rate,omitempty"`
	AnniversaryDay int    `yaml:"anniversary_day,omitempty"`
}

// OperationSpec is one step replayed in order. Expect names the error code
// the step must fail with; an empty Expect means the step must succeed.
type OperationSpec struct {
	Op      string `yaml:"op"`
	Account string `yaml:"account"`
	To      string `yaml:"to,omitempty"`
	Amount  string `yaml:"amount,omitempty"`
	Expect  string `yaml:"expect,omitempty"`
}

// Load reads a scenario file from disk.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario, rejecting unknown fields.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Default returns the built-in demo scenario.
func Default() *Scenario {
	sc, err := Parse(defaultScenario)
	if err != nil {
		panic(fmt.Sprintf("built-in scenario is invalid: %v", err))
	}
	return sc
}

// Save writes a scenario to disk.
func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return fmt.Errorf("marshaling scenario: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: invalid amount %q: %w", field, value, err)
	}
	return d, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date %q, want YYYY-MM-DD: %w", field, value, err)
	}
	return t, nil
}
