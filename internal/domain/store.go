package domain

import "time"

// Store is the full mapping of all accounts plus the resume marker.
// Usernames are case-sensitively unique; the map key enforces that.
// LastUser is a document-level field, never a sentinel account entry,
// so a real user can never collide with the marker.
type Store struct {
	Accounts map[string]*Account
	LastUser string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{Accounts: make(map[string]*Account)}
}

// Register inserts a fresh zero-balance account under username.
func (s *Store) Register(username, passwordHash string, now time.Time) (*Account, error) {
	if _, ok := s.Accounts[username]; ok {
		return nil, ErrAlreadyExists
	}
	acc := NewAccount(passwordHash, now)
	s.Accounts[username] = acc
	return acc, nil
}

// Authenticate resolves username and compares digests. An absent user
// and a wrong password report the same error on purpose, so a failed
// login does not leak which part was wrong.
func (s *Store) Authenticate(username, passwordHash string) (*Account, error) {
	acc, ok := s.Accounts[username]
	if !ok || acc.PasswordHash != passwordHash {
		return nil, ErrInvalidCredentials
	}
	return acc, nil
}

// Account looks up a username.
func (s *Store) Account(username string) (*Account, error) {
	acc, ok := s.Accounts[username]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}
