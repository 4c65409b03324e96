// Package mocks provides hand-rolled mock implementations of the
// usecase interfaces for unit tests.
package mocks

import (
	"context"
	"io"
	"strconv"

	"github.com/iho/pocketbook/internal/domain"
)

// MockStoreRepository is a mock implementation of StoreRepository.
type MockStoreRepository struct {
	SaveCount int
	LastSaved *domain.Store

	LoadFunc func(ctx context.Context) (*domain.Store, error)
	SaveFunc func(ctx context.Context, store *domain.Store) error
}

func NewMockStoreRepository() *MockStoreRepository {
	return &MockStoreRepository{}
}

func (m *MockStoreRepository) Load(ctx context.Context) (*domain.Store, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return domain.NewStore(), nil
}

func (m *MockStoreRepository) Save(ctx context.Context, store *domain.Store) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, store)
	}
	m.SaveCount++
	m.LastSaved = store
	return nil
}

// MockSessionRepository is a mock implementation of SessionRepository.
type MockSessionRepository struct {
	Username string

	CurrentFunc func(ctx context.Context) (string, error)
	WriteFunc   func(ctx context.Context, username string) error
	ClearFunc   func(ctx context.Context) error
}

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

func (m *MockSessionRepository) Current(ctx context.Context) (string, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx)
	}
	return m.Username, nil
}

func (m *MockSessionRepository) Write(ctx context.Context, username string) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, username)
	}
	m.Username = username
	return nil
}

func (m *MockSessionRepository) Clear(ctx context.Context) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	m.Username = ""
	return nil
}

// MockPasswordHasher is a mock implementation of PasswordHasher. The
// default digest is reversible on sight, which keeps test fixtures
// readable.
type MockPasswordHasher struct {
	HashFunc func(password string) string
}

func NewMockPasswordHasher() *MockPasswordHasher {
	return &MockPasswordHasher{}
}

func (m *MockPasswordHasher) Hash(password string) string {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "digest:" + password
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.next++
	return "tx-" + strconv.Itoa(m.next)
}

// MockHistoryExporter is a mock implementation of HistoryExporter.
type MockHistoryExporter struct {
	Exported [][]domain.Transaction

	ExportFunc func(w io.Writer, history []domain.Transaction) error
}

func NewMockHistoryExporter() *MockHistoryExporter {
	return &MockHistoryExporter{}
}

func (m *MockHistoryExporter) Export(w io.Writer, history []domain.Transaction) error {
	if m.ExportFunc != nil {
		return m.ExportFunc(w, history)
	}
	m.Exported = append(m.Exported, history)
	return nil
}
