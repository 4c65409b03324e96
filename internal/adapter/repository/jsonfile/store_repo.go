// Package jsonfile persists the account store as a single JSON document
// on local disk. The whole document is read once per launch and
// rewritten in full after every mutation.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/pocketbook/internal/domain"
)

const (
	storeVersion    = 1
	timestampLayout = "2006-01-02 15:04:05"
)

// storeDocument pins the on-disk layout independently of the domain
// structs. Amounts are serialized as strings to keep them exact.
type storeDocument struct {
	Version  int                      `json:"version"`
	LastUser string                   `json:"last_user,omitempty"`
	Accounts map[string]accountRecord `json:"accounts"`
}

type accountRecord struct {
	PasswordHash string              `json:"password_hash"`
	Balance      string              `json:"balance"`
	Income       string              `json:"income"`
	Expense      string              `json:"expense"`
	CreatedAt    string              `json:"created_at"`
	History      []transactionRecord `json:"history"`
}

type transactionRecord struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Amount    string `json:"amount"`
	Kind      string `json:"kind"`
	Category  string `json:"category"`
}

// StoreRepository implements usecase.StoreRepository over a JSON file.
type StoreRepository struct {
	path   string
	logger zerolog.Logger
}

// NewStoreRepository creates a new StoreRepository.
func NewStoreRepository(path string, logger zerolog.Logger) *StoreRepository {
	return &StoreRepository{
		path:   path,
		logger: logger,
	}
}

// Load reads the persisted store. Absent, unreadable or malformed
// documents recover as an empty store; corruption is logged, never
// surfaced. Cached totals are recomputed from history so a hand-edited
// file cannot smuggle in drifted totals.
func (r *StoreRepository) Load(ctx context.Context) (*domain.Store, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn().Err(err).Str("path", r.path).Msg("store file unreadable, starting empty")
		}
		return domain.NewStore(), nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.NewStore(), nil
	}

	var doc storeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("store file is malformed, starting empty")
		return domain.NewStore(), nil
	}
	if doc.Version > storeVersion {
		r.logger.Warn().Int("version", doc.Version).Str("path", r.path).Msg("store file version unsupported, starting empty")
		return domain.NewStore(), nil
	}

	store, err := doc.toDomain()
	if err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("store file is malformed, starting empty")
		return domain.NewStore(), nil
	}

	for _, acc := range store.Accounts {
		acc.RecomputeTotals()
	}

	return store, nil
}

// Save serializes the full mapping, replacing the file atomically
// (write temp, rename) so a crash mid-write never truncates the store.
func (r *StoreRepository) Save(ctx context.Context, store *domain.Store) error {
	payload, err := json.MarshalIndent(fromDomain(store), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}

	return nil
}

func fromDomain(store *domain.Store) storeDocument {
	doc := storeDocument{
		Version:  storeVersion,
		LastUser: store.LastUser,
		Accounts: make(map[string]accountRecord, len(store.Accounts)),
	}
	for username, acc := range store.Accounts {
		record := accountRecord{
			PasswordHash: acc.PasswordHash,
			Balance:      acc.Balance.String(),
			Income:       acc.Income.String(),
			Expense:      acc.Expense.String(),
			CreatedAt:    acc.CreatedAt.UTC().Format(timestampLayout),
			History:      make([]transactionRecord, 0, len(acc.History)),
		}
		for _, tx := range acc.History {
			record.History = append(record.History, transactionRecord{
				ID:        tx.ID,
				Timestamp: tx.Timestamp.UTC().Format(timestampLayout),
				Amount:    tx.Amount.String(),
				Kind:      string(tx.Kind),
				Category:  string(tx.Category),
			})
		}
		doc.Accounts[username] = record
	}
	return doc
}

func (doc storeDocument) toDomain() (*domain.Store, error) {
	store := domain.NewStore()
	store.LastUser = doc.LastUser

	for username, record := range doc.Accounts {
		acc, err := record.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: account %q: %v", domain.ErrMalformedStore, username, err)
		}
		store.Accounts[username] = acc
	}

	return store, nil
}

func (record accountRecord) toDomain() (*domain.Account, error) {
	balance, err := decimal.NewFromString(record.Balance)
	if err != nil {
		return nil, fmt.Errorf("balance %q: %v", record.Balance, err)
	}
	createdAt, err := parseTimestamp(record.CreatedAt)
	if err != nil {
		return nil, err
	}

	acc := &domain.Account{
		PasswordHash: record.PasswordHash,
		Balance:      balance,
		CreatedAt:    createdAt,
		History:      make([]domain.Transaction, 0, len(record.History)),
	}

	for _, tr := range record.History {
		tx, err := tr.toDomain()
		if err != nil {
			return nil, err
		}
		acc.History = append(acc.History, tx)
	}

	return acc, nil
}

func (tr transactionRecord) toDomain() (domain.Transaction, error) {
	amount, err := decimal.NewFromString(tr.Amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("amount %q: %v", tr.Amount, err)
	}
	ts, err := parseTimestamp(tr.Timestamp)
	if err != nil {
		return domain.Transaction{}, err
	}

	kind := domain.Kind(tr.Kind)
	if !kind.IsValid() {
		return domain.Transaction{}, fmt.Errorf("unknown kind %q", tr.Kind)
	}
	category := domain.Category(tr.Category)
	if !category.IsValid() {
		return domain.Transaction{}, fmt.Errorf("unknown category %q", tr.Category)
	}

	return domain.Transaction{
		ID:        tr.ID,
		Timestamp: ts,
		Amount:    amount,
		Kind:      kind,
		Category:  category,
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	ts, err := time.ParseInLocation(timestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %v", s, err)
	}
	return ts, nil
}
