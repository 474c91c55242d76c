package services

import (
	"errors"
	"strings"
	"testing"

	"bank-ledger/internal/config"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

func testSecurityConfig() config.SecurityConfig {
	return config.SecurityConfig{
		BCryptCost:          bcrypt.MinCost,
		PasswordMinLength:   12,
		RequireUppercase:    true,
		RequireLowercase:    true,
		RequireNumbers:      true,
		RequireSpecialChars: true,
		LoginRatePerMinute:  6,
		MaxFailedAttempts:   3,
	}
}

// PasswordServiceTestSuite defines the test suite for PasswordService
type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

// SetupTest runs before each test
func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService(testSecurityConfig())
}

// TestPasswordServiceSuite runs the test suite
func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestValidatePassword_ValidPassword() {
	s.NoError(s.service.ValidatePassword("SecurePass123!@#"))
}

func (s *PasswordServiceTestSuite) TestValidatePassword_PolicyViolations() {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"empty", "", ErrPasswordEmpty},
		{"too short", "Short1!", ErrPasswordTooShort},
		{"too long", "A1!" + strings.Repeat("a", MaxPasswordLength), ErrPasswordTooLong},
		{"missing uppercase", "securepass123!@#", ErrPasswordNoUppercase},
		{"missing lowercase", "SECUREPASS123!@#", ErrPasswordNoLowercase},
		{"missing number", "SecurePass!@#", ErrPasswordNoNumber},
		{"missing special", "SecurePass123", ErrPasswordNoSpecial},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.service.ValidatePassword(tt.password)
			s.True(errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func (s *PasswordServiceTestSuite) TestValidatePassword_RelaxedPolicy() {
	cfg := testSecurityConfig()
	cfg.PasswordMinLength = 4
	cfg.RequireSpecialChars = false
	cfg.RequireUppercase = false

	service := NewPasswordService(cfg)
	s.NoError(service.ValidatePassword("abc123"))
}

func (s *PasswordServiceTestSuite) TestHashPassword_RoundTrip() {
	hash, err := s.service.HashPassword("SecurePass123!@#")
	s.Require().NoError(err)
	s.NotEqual("SecurePass123!@#", hash)
	s.True(strings.HasPrefix(hash, "$2a$"))

	s.True(s.service.ComparePassword("SecurePass123!@#", hash))
	s.False(s.service.ComparePassword("WrongPass123!@#", hash))
}

func (s *PasswordServiceTestSuite) TestHashPassword_RejectsWeakPassword() {
	_, err := s.service.HashPassword("weak")
	s.Error(err)
	s.Contains(err.Error(), "password validation failed")
}

func (s *PasswordServiceTestSuite) TestHashPassword_SaltsEachHash() {
	first, err := s.service.HashPasswordWithoutValidation("1234")
	s.Require().NoError(err)
	second, err := s.service.HashPasswordWithoutValidation("1234")
	s.Require().NoError(err)

	s.NotEqual(first, second)
	s.True(s.service.ComparePassword("1234", first))
	s.True(s.service.ComparePassword("1234", second))
}

func (s *PasswordServiceTestSuite) TestHashPasswordWithoutValidation_Limits() {
	_, err := s.service.HashPasswordWithoutValidation("")
	s.ErrorIs(err, ErrPasswordEmpty)

	_, err = s.service.HashPasswordWithoutValidation(strings.Repeat("9", MaxPasswordLength+1))
	s.ErrorIs(err, ErrPasswordTooLong)
}

func (s *PasswordServiceTestSuite) TestNewPasswordService_OutOfRangeCost() {
	cfg := testSecurityConfig()
	cfg.BCryptCost = 99

	service := NewPasswordService(cfg).(*PasswordService)
	s.Equal(DefaultBCryptCost, service.cost)
}
