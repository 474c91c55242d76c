package models

import (
	"fmt"
	"strings"
	"time"

	"bank-ledger/internal/validation"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
)

// UserParams holds the fields required to register a system user
type UserParams struct {
	Username     string `json:"username" validate:"username"`
	PasswordHash string `json:"password_hash" validate:"required"`
	Role         Role   `json:"role" validate:"oneof=admin customer employee"`
	Active       bool   `json:"active"`
}

// User is an operator of the ledger: an admin, a customer or an employee
type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func NewUser(p UserParams) (*User, error) {
	p.Username = strings.TrimSpace(p.Username)
	if err := validation.GetValidator().Struct(p); err != nil {
		return nil, err
	}

	return &User{
		ID:           uuid.New(),
		Username:     p.Username,
		PasswordHash: p.PasswordHash,
		Role:         p.Role,
		Active:       p.Active,
		CreatedAt:    time.Now(),
	}, nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) String() string {
	status := "active"
	if !u.Active {
		status = "inactive"
	}
	return fmt.Sprintf("User: %s | Role: %s | Status: %s", u.Username, u.Role, status)
}
