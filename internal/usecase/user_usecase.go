package usecase

import (
	"context"
	"time"

	"github.com/iho/pocketbook/internal/domain"
)

// UserUseCase handles account registration and credential checks.
type UserUseCase struct {
	store  *domain.Store
	repo   StoreRepository
	hasher PasswordHasher
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(store *domain.Store, repo StoreRepository, hasher PasswordHasher) *UserUseCase {
	return &UserUseCase{
		store:  store,
		repo:   repo,
		hasher: hasher,
	}
}

// RegisterInput represents input for creating an account.
type RegisterInput struct {
	Username string
	Password string
}

// Register creates a fresh zero-balance account and persists the store.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*domain.Account, error) {
	if err := domain.ValidateUsername(input.Username); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	acc, err := uc.store.Register(input.Username, uc.hasher.Hash(input.Password), now)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, uc.store); err != nil {
		return nil, err
	}

	return acc, nil
}

// Authenticate verifies credentials against the stored digest.
func (uc *UserUseCase) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	return uc.store.Authenticate(username, uc.hasher.Hash(password))
}
