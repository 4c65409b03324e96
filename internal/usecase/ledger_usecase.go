package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketbook/internal/domain"
)

var (
	// ErrOutOfBalance is returned when an account's balance does not
	// match the net of its history.
	ErrOutOfBalance = errors.New("account is out of balance: balance does not match history")
)

// LedgerUseCase mutates one account's balance and history as a single
// consistent unit and persists the store after every mutation.
type LedgerUseCase struct {
	store *domain.Store
	repo  StoreRepository
	idGen IDGenerator
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(store *domain.Store, repo StoreRepository, idGen IDGenerator) *LedgerUseCase {
	return &LedgerUseCase{
		store: store,
		repo:  repo,
		idGen: idGen,
	}
}

// EntryInput represents input for a credit or debit.
type EntryInput struct {
	Username string
	Amount   decimal.Decimal
	Category domain.Category
}

func (uc *LedgerUseCase) validate(input EntryInput) (*domain.Account, error) {
	acc, err := uc.store.Account(input.Username)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if !input.Category.IsValid() {
		return nil, domain.ErrUnknownCategory
	}
	return acc, nil
}

func (uc *LedgerUseCase) append(ctx context.Context, acc *domain.Account, input EntryInput, kind domain.Kind) (*domain.Transaction, error) {
	tx := domain.Transaction{
		ID:        uc.idGen.Generate(),
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Amount:    input.Amount,
		Kind:      kind,
		Category:  input.Category,
	}
	acc.Append(tx)

	if err := uc.repo.Save(ctx, uc.store); err != nil {
		return nil, err
	}

	return &tx, nil
}

// Credit records a credit transaction and raises the balance.
func (uc *LedgerUseCase) Credit(ctx context.Context, input EntryInput) (*domain.Transaction, error) {
	acc, err := uc.validate(input)
	if err != nil {
		return nil, err
	}
	return uc.append(ctx, acc, input, domain.KindCredit)
}

// Debit records a debit transaction and lowers the balance. A debit
// that would drive the balance negative is rejected before any state
// changes.
func (uc *LedgerUseCase) Debit(ctx context.Context, input EntryInput) (*domain.Transaction, error) {
	acc, err := uc.validate(input)
	if err != nil {
		return nil, err
	}
	if err := acc.ValidateDebit(input.Amount); err != nil {
		return nil, err
	}
	return uc.append(ctx, acc, input, domain.KindDebit)
}

// RecentHistory returns the last n transactions, most recent first.
func (uc *LedgerUseCase) RecentHistory(username string, n int) ([]domain.Transaction, error) {
	acc, err := uc.store.Account(username)
	if err != nil {
		return nil, err
	}
	return acc.RecentHistory(n), nil
}

// AggregateByCategory sums debit amounts per category within interval.
func (uc *LedgerUseCase) AggregateByCategory(username string, interval domain.Interval) (map[domain.Category]decimal.Decimal, error) {
	acc, err := uc.store.Account(username)
	if err != nil {
		return nil, err
	}
	if !interval.IsValid() {
		return nil, domain.ErrUnknownInterval
	}
	return acc.AggregateByCategory(interval, time.Now().UTC()), nil
}

// Verify checks that the account's balance and cached totals reconcile
// with its full history.
func (uc *LedgerUseCase) Verify(username string) error {
	acc, err := uc.store.Account(username)
	if err != nil {
		return err
	}

	if !acc.Balance.Equal(acc.NetHistory()) {
		return ErrOutOfBalance
	}
	if !acc.Income.Sub(acc.Expense).Equal(acc.Balance) {
		return ErrOutOfBalance
	}

	return nil
}
