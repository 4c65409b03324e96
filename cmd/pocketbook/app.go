package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/pocketbook/internal/adapter/export"
	"github.com/iho/pocketbook/internal/adapter/repository/jsonfile"
	"github.com/iho/pocketbook/internal/domain"
	"github.com/iho/pocketbook/internal/infrastructure/auth"
	"github.com/iho/pocketbook/internal/infrastructure/config"
	"github.com/iho/pocketbook/internal/infrastructure/logger"
	"github.com/iho/pocketbook/internal/usecase"
)

// app holds the dependencies wired for one command invocation. Every
// command loads the store once and rewrites it after mutations, which
// matches the one-action-per-launch model of the store format.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger

	users    *usecase.UserUseCase
	sessions *usecase.SessionUseCase
	ledger   *usecase.LedgerUseCase
	export   *usecase.ExportUseCase
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	storeRepo := jsonfile.NewStoreRepository(cfg.StorePath(), log)
	sessionRepo := jsonfile.NewSessionRepository(cfg.SessionPath())

	store, err := storeRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("accounts", len(store.Accounts)).Str("path", cfg.StorePath()).Msg("store loaded")

	hasher := auth.NewSHA256Hasher()
	idGen := jsonfile.NewULIDGenerator()

	return &app{
		cfg:      cfg,
		logger:   log,
		users:    usecase.NewUserUseCase(store, storeRepo, hasher),
		sessions: usecase.NewSessionUseCase(store, storeRepo, sessionRepo, hasher),
		ledger:   usecase.NewLedgerUseCase(store, storeRepo, idGen),
		export:   usecase.NewExportUseCase(store, export.NewCSVExporter()),
	}, nil
}

// currentUser resolves the active session or fails with a hint.
func (a *app) currentUser(ctx context.Context) (string, *domain.Account, error) {
	username, acc, err := a.sessions.Resume(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("%w (run \"pocketbook login\" first)", err)
	}
	return username, acc, nil
}
