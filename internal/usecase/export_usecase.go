package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/iho/pocketbook/internal/domain"
)

// ExportUseCase writes an account's history to a user-chosen path.
type ExportUseCase struct {
	store    *domain.Store
	exporter HistoryExporter
}

// NewExportUseCase creates a new ExportUseCase.
func NewExportUseCase(store *domain.Store, exporter HistoryExporter) *ExportUseCase {
	return &ExportUseCase{
		store:    store,
		exporter: exporter,
	}
}

// ExportFile writes the full history, in insertion order, to path.
// Any write failure is reported as ErrExportFailure; in-memory state is
// never touched.
func (uc *ExportUseCase) ExportFile(ctx context.Context, username, path string) error {
	acc, err := uc.store.Account(username)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}

	if err := uc.exporter.Export(f, acc.History); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}

	return nil
}
