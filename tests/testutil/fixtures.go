// Package testutil provides shared fixtures for integration tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/iho/pocketbook/internal/adapter/export"
	"github.com/iho/pocketbook/internal/adapter/repository/jsonfile"
	"github.com/iho/pocketbook/internal/domain"
	"github.com/iho/pocketbook/internal/infrastructure/auth"
	"github.com/iho/pocketbook/internal/usecase"
)

// TestEnv wires the full stack against a throwaway data directory,
// exactly as the CLI wires it per launch.
type TestEnv struct {
	DataDir   string
	Store     *domain.Store
	StoreRepo *jsonfile.StoreRepository

	Users    *usecase.UserUseCase
	Sessions *usecase.SessionUseCase
	Ledger   *usecase.LedgerUseCase
	Export   *usecase.ExportUseCase
}

// NewTestEnv loads (or creates) the store under dataDir and wires the
// use cases on top of it. Call it again with the same dataDir to
// simulate a fresh process launch.
func NewTestEnv(t *testing.T, dataDir string) *TestEnv {
	t.Helper()

	storeRepo := jsonfile.NewStoreRepository(filepath.Join(dataDir, "store.json"), zerolog.Nop())
	sessionRepo := jsonfile.NewSessionRepository(filepath.Join(dataDir, "session"))

	store, err := storeRepo.Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	hasher := auth.NewSHA256Hasher()

	return &TestEnv{
		DataDir:   dataDir,
		Store:     store,
		StoreRepo: storeRepo,
		Users:     usecase.NewUserUseCase(store, storeRepo, hasher),
		Sessions:  usecase.NewSessionUseCase(store, storeRepo, sessionRepo, hasher),
		Ledger:    usecase.NewLedgerUseCase(store, storeRepo, jsonfile.NewULIDGenerator()),
		Export:    usecase.NewExportUseCase(store, export.NewCSVExporter()),
	}
}
