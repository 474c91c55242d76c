package models

import (
	"fmt"
	"strings"
	"time"

	"bank-ledger/internal/errors"
	"bank-ledger/internal/validation"

	"github.com/shopspring/decimal"
)

// PersonParams holds the identity fields shared by customers and employees.
// Fields are validated in declaration order, so a bad national ID is reported
// before an age violation.
type PersonParams struct {
	Name       string    `json:"name" yaml:"name" validate:"trimmed_required"`
	NationalID string    `json:"national_id" yaml:"national_id" validate:"person_id"`
	BirthDate  time.Time `json:"birth_date" yaml:"birth_date" validate:"adult=18"`
}

// Person is the identity embedded in Customer and Employee
type Person struct {
	name       string
	nationalID string
	birthDate  time.Time
}

func newPerson(p PersonParams) Person {
	return Person{
		name:       strings.TrimSpace(p.Name),
		nationalID: p.NationalID,
		birthDate:  p.BirthDate,
	}
}

func (p *Person) Name() string {
	return p.name
}

// SetName replaces the name after trimming; blank names are rejected
func (p *Person) SetName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.NewInvalidField("name", "is required")
	}
	p.name = trimmed
	return nil
}

func (p *Person) NationalID() string {
	return p.nationalID
}

func (p *Person) BirthDate() time.Time {
	return p.birthDate
}

// Age returns completed years as of today
func (p *Person) Age() int {
	return validation.AgeOn(p.birthDate, time.Now())
}

// CustomerParams holds the fields required to register a customer
type CustomerParams struct {
	PersonParams
	LicenseNumber string `json:"license_number" yaml:"license_number" validate:"license_number"`
}

// Customer owns an ordered list of accounts. Accounts register themselves with
// their owner when constructed.
type Customer struct {
	Person
	licenseNumber string
	accounts      []Account
}

// NewCustomer validates the params and returns a customer with no accounts
func NewCustomer(p CustomerParams) (*Customer, error) {
	if err := validation.GetValidator().Struct(p); err != nil {
		return nil, err
	}

	return &Customer{
		Person:        newPerson(p.PersonParams),
		licenseNumber: p.LicenseNumber,
	}, nil
}

func (c *Customer) LicenseNumber() string {
	return c.licenseNumber
}

// Accounts returns the customer's accounts in opening order
func (c *Customer) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// AccountByNumber looks up one of the customer's accounts
func (c *Customer) AccountByNumber(number string) (Account, bool) {
	for _, a := range c.accounts {
		if a.Number() == number {
			return a, true
		}
	}
	return nil, false
}

// TotalBalance sums the balances of every account the customer owns
func (c *Customer) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range c.accounts {
		total = total.Add(a.Balance())
	}
	return total
}

func (c *Customer) attach(a Account) error {
	for _, existing := range c.accounts {
		if existing == a || existing.Number() == a.Number() {
			return errors.NewDuplicateAccount(a.Number())
		}
	}
	c.accounts = append(c.accounts, a)
	return nil
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer: %s | ID: %s", c.name, c.nationalID)
}

// EmployeeParams holds the fields required to register an employee
type EmployeeParams struct {
	PersonParams
	Role       string          `json:"role" yaml:"role" validate:"trimmed_required"`
	EmployeeID string          `json:"employee_id" yaml:"employee_id" validate:"trimmed_required"`
	Salary     decimal.Decimal `json:"salary" yaml:"salary" validate:"positive_amount"`
}

type salaryRule struct {
	Salary decimal.Decimal `json:"salary" validate:"positive_amount"`
}

type Employee struct {
	Person
	role       string
	employeeID string
	salary     decimal.Decimal
}

// NewEmployee validates the params and returns an employee
func NewEmployee(p EmployeeParams) (*Employee, error) {
	if err := validation.GetValidator().Struct(p); err != nil {
		return nil, err
	}

	return &Employee{
		Person:     newPerson(p.PersonParams),
		role:       strings.TrimSpace(p.Role),
		employeeID: strings.TrimSpace(p.EmployeeID),
		salary:     p.Salary,
	}, nil
}

func (e *Employee) Role() string {
	return e.role
}

func (e *Employee) EmployeeID() string {
	return e.employeeID
}

func (e *Employee) Salary() decimal.Decimal {
	return e.salary
}

// SetSalary replaces the salary; it must stay positive
func (e *Employee) SetSalary(salary decimal.Decimal) error {
	if err := validation.GetValidator().Struct(salaryRule{Salary: salary}); err != nil {
		return err
	}
	e.salary = salary
	return nil
}

func (e *Employee) String() string {
	return fmt.Sprintf("Employee: %s | Role: %s | ID: %s", e.name, e.role, e.employeeID)
}
