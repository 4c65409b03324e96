package domain

import "errors"

var (
	// Store errors
	ErrAlreadyExists   = errors.New("username already exists")
	ErrAccountNotFound = errors.New("account not found")
	ErrMalformedStore  = errors.New("store file is malformed")

	// Ledger errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownInterval   = errors.New("unknown interval")

	// Session errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotLoggedIn        = errors.New("no active session")

	// Export errors
	ErrExportFailure = errors.New("export failed")
)
