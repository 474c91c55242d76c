package validation

import (
	"strings"
	"time"
	"unicode"
)

var (
	companyIDFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	companyIDSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidatePersonID checks an 11-digit individual taxpayer number (CPF).
// Punctuation is ignored.
func ValidatePersonID(id string) bool {
	digits := digitsOf(id)
	if len(digits) != 11 || allSame(digits) {
		return false
	}

	first := checkDigit(digits[:9], descendingWeights(10, 9))
	if digits[9] != first {
		return false
	}

	second := checkDigit(digits[:10], descendingWeights(11, 10))
	return digits[10] == second
}

// ValidateCompanyID checks a 14-digit company registration number (CNPJ).
func ValidateCompanyID(id string) bool {
	digits := digitsOf(id)
	if len(digits) != 14 || allSame(digits) {
		return false
	}

	if digits[12] != checkDigit(digits[:12], companyIDFirstWeights) {
		return false
	}
	return digits[13] == checkDigit(digits[:13], companyIDSecondWeights)
}

// ValidatePostalCode checks for exactly 8 digits (CEP).
func ValidatePostalCode(code string) bool {
	return len(digitsOf(code)) == 8
}

// ValidatePhone accepts 10 or 11 digits: area code plus a landline or mobile number.
func ValidatePhone(number string) bool {
	n := len(digitsOf(number))
	return n == 10 || n == 11
}

// ValidateStateCode accepts two uppercase ASCII letters.
func ValidateStateCode(state string) bool {
	if len(state) != 2 {
		return false
	}
	for i := 0; i < len(state); i++ {
		if state[i] < 'A' || state[i] > 'Z' {
			return false
		}
	}
	return true
}

// ValidateLicenseNumber accepts at least 9 digits once spaces and dashes are removed.
func ValidateLicenseNumber(license string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(license)
	if len(cleaned) < 9 {
		return false
	}
	for _, r := range cleaned {
		if !unicode.IsDigit(r) || r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// ValidateUsername accepts at least 3 letters, digits or underscores after trimming.
func ValidateUsername(username string) bool {
	trimmed := strings.TrimSpace(username)
	if len(trimmed) < 3 {
		return false
	}
	for _, r := range trimmed {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// AgeOn returns the completed years between birth and at.
func AgeOn(birth, at time.Time) int {
	years := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		years--
	}
	return years
}

// NormalizeDigits strips every non-digit rune.
func NormalizeDigits(s string) string {
	var b strings.Builder
	for _, d := range digitsOf(s) {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

func digitsOf(s string) []int {
	digits := make([]int, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	return digits
}

func allSame(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func descendingWeights(start, n int) []int {
	weights := make([]int, n)
	for i := range weights {
		weights[i] = start - i
	}
	return weights
}

// checkDigit computes a mod-11 verifier: remainder below 2 yields 0, else 11 minus remainder.
func checkDigit(digits, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}
