package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
)

// Validation constants
const (
	MaxUsernameLength = 64
	MaxPasswordLength = 128
)

// ValidateUsername validates a username at registration time.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: username cannot be empty", ErrInvalidUsername)
	}
	if len(username) > MaxUsernameLength {
		return fmt.Errorf("%w: username exceeds %d characters", ErrInvalidUsername, MaxUsernameLength)
	}
	if strings.TrimSpace(username) != username {
		return fmt.Errorf("%w: username cannot start or end with whitespace", ErrInvalidUsername)
	}
	if strings.ContainsAny(username, "\n\r\t") {
		return fmt.Errorf("%w: username contains control characters", ErrInvalidUsername)
	}
	return nil
}

// ValidatePassword validates a password at registration time.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrInvalidPassword)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: password exceeds %d characters", ErrInvalidPassword, MaxPasswordLength)
	}
	return nil
}

// ValidateAmount validates a credit or debit amount. Zero and negative
// amounts are rejected uniformly for both kinds.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}
