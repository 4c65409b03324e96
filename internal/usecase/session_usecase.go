package usecase

import (
	"context"

	"github.com/iho/pocketbook/internal/domain"
)

// SessionUseCase gates which account is active across launches.
// The marker is recorded twice: as the store's LastUser field and in a
// separate session file. The file wins on resume.
type SessionUseCase struct {
	store    *domain.Store
	repo     StoreRepository
	sessions SessionRepository
	hasher   PasswordHasher
}

// NewSessionUseCase creates a new SessionUseCase.
func NewSessionUseCase(store *domain.Store, repo StoreRepository, sessions SessionRepository, hasher PasswordHasher) *SessionUseCase {
	return &SessionUseCase{
		store:    store,
		repo:     repo,
		sessions: sessions,
		hasher:   hasher,
	}
}

// Login verifies credentials and records username as the resume marker.
func (uc *SessionUseCase) Login(ctx context.Context, username, password string) (*domain.Account, error) {
	acc, err := uc.store.Authenticate(username, uc.hasher.Hash(password))
	if err != nil {
		return nil, err
	}

	uc.store.LastUser = username
	if err := uc.repo.Save(ctx, uc.store); err != nil {
		return nil, err
	}
	if err := uc.sessions.Write(ctx, username); err != nil {
		return nil, err
	}

	return acc, nil
}

// Logout clears the resume marker. The account itself is untouched.
func (uc *SessionUseCase) Logout(ctx context.Context) error {
	uc.store.LastUser = ""
	if err := uc.repo.Save(ctx, uc.store); err != nil {
		return err
	}
	return uc.sessions.Clear(ctx)
}

// Resume returns the account named by the resume marker without
// prompting. A missing marker, or a marker naming an account that no
// longer exists, reports ErrNotLoggedIn.
func (uc *SessionUseCase) Resume(ctx context.Context) (string, *domain.Account, error) {
	username, err := uc.sessions.Current(ctx)
	if err != nil {
		return "", nil, err
	}
	if username == "" {
		username = uc.store.LastUser
	}
	if username == "" {
		return "", nil, domain.ErrNotLoggedIn
	}

	acc, err := uc.store.Account(username)
	if err != nil {
		return "", nil, domain.ErrNotLoggedIn
	}

	return username, acc, nil
}
