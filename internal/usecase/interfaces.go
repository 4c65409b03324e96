package usecase

import (
	"context"
	"io"

	"github.com/iho/pocketbook/internal/domain"
)

// StoreRepository persists the full account mapping as one document.
// The whole document is read once per launch and rewritten in full
// after every mutating operation.
type StoreRepository interface {
	// Load reads the persisted store. A missing, unreadable or
	// malformed document yields an empty store, never an error.
	Load(ctx context.Context) (*domain.Store, error)
	// Save serializes the full mapping, overwriting prior contents.
	Save(ctx context.Context, store *domain.Store) error
}

// SessionRepository persists the resume marker between launches.
type SessionRepository interface {
	// Current returns the marked username, or "" when logged out.
	Current(ctx context.Context) (string, error)
	Write(ctx context.Context, username string) error
	Clear(ctx context.Context) error
}

// PasswordHasher produces the digest persisted for each account.
type PasswordHasher interface {
	Hash(password string) string
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// HistoryExporter writes a transaction history to w.
type HistoryExporter interface {
	Export(w io.Writer, history []domain.Transaction) error
}
