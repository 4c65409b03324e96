package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketbook/internal/domain"
	"github.com/iho/pocketbook/internal/usecase"
	"github.com/iho/pocketbook/internal/usecase/mocks"
)

func newLedgerFixture(t *testing.T) (*domain.Store, *mocks.MockStoreRepository, *usecase.LedgerUseCase) {
	t.Helper()

	store := domain.NewStore()
	if _, err := store.Register("alice", "digest", time.Now().UTC()); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	repo := mocks.NewMockStoreRepository()
	uc := usecase.NewLedgerUseCase(store, repo, mocks.NewMockIDGenerator())
	return store, repo, uc
}

func TestLedgerUseCase_Credit(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.EntryInput
		wantErr error
	}{
		{
			name: "successful credit",
			input: usecase.EntryInput{
				Username: "alice",
				Amount:   decimal.NewFromInt(100),
				Category: domain.CategorySalary,
			},
		},
		{
			name: "zero amount rejected",
			input: usecase.EntryInput{
				Username: "alice",
				Amount:   decimal.Zero,
				Category: domain.CategorySalary,
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "negative amount rejected",
			input: usecase.EntryInput{
				Username: "alice",
				Amount:   decimal.NewFromInt(-5),
				Category: domain.CategorySalary,
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "unknown category rejected",
			input: usecase.EntryInput{
				Username: "alice",
				Amount:   decimal.NewFromInt(10),
				Category: domain.Category("groceries"),
			},
			wantErr: domain.ErrUnknownCategory,
		},
		{
			name: "unknown account",
			input: usecase.EntryInput{
				Username: "bob",
				Amount:   decimal.NewFromInt(10),
				Category: domain.CategorySalary,
			},
			wantErr: domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, repo, uc := newLedgerFixture(t)

			tx, err := uc.Credit(context.Background(), tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if repo.SaveCount != 0 {
					t.Error("expected no save on rejected credit")
				}
				acc, _ := store.Account("alice")
				if len(acc.History) != 0 {
					t.Error("expected history untouched on rejected credit")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tx.Kind != domain.KindCredit {
				t.Errorf("expected credit kind, got %s", tx.Kind)
			}
			if tx.ID == "" {
				t.Error("expected transaction ID to be set")
			}
			if tx.Timestamp.Nanosecond() != 0 {
				t.Error("expected second-resolution timestamp")
			}
			if repo.SaveCount != 1 {
				t.Errorf("expected one save, got %d", repo.SaveCount)
			}

			acc, _ := store.Account("alice")
			if !acc.Balance.Equal(tt.input.Amount) {
				t.Errorf("expected balance %s, got %s", tt.input.Amount, acc.Balance)
			}
			if !acc.Income.Equal(tt.input.Amount) {
				t.Errorf("expected income %s, got %s", tt.input.Amount, acc.Income)
			}
		})
	}
}

func TestLedgerUseCase_Debit(t *testing.T) {
	tests := []struct {
		name        string
		seedBalance int64
		amount      int64
		wantErr     error
	}{
		{name: "successful debit", seedBalance: 100, amount: 40},
		{name: "debit full balance", seedBalance: 100, amount: 100},
		{name: "insufficient funds", seedBalance: 100, amount: 150, wantErr: domain.ErrInsufficientFunds},
		{name: "debit from empty account", seedBalance: 0, amount: 10, wantErr: domain.ErrInsufficientFunds},
		{name: "zero amount rejected", seedBalance: 100, amount: 0, wantErr: domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, repo, uc := newLedgerFixture(t)

			if tt.seedBalance > 0 {
				_, err := uc.Credit(context.Background(), usecase.EntryInput{
					Username: "alice",
					Amount:   decimal.NewFromInt(tt.seedBalance),
					Category: domain.CategorySalary,
				})
				if err != nil {
					t.Fatalf("failed to seed balance: %v", err)
				}
			}
			savesBefore := repo.SaveCount
			acc, _ := store.Account("alice")
			historyBefore := len(acc.History)

			_, err := uc.Debit(context.Background(), usecase.EntryInput{
				Username: "alice",
				Amount:   decimal.NewFromInt(tt.amount),
				Category: domain.CategoryFood,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if !acc.Balance.Equal(decimal.NewFromInt(tt.seedBalance)) {
					t.Errorf("expected balance unchanged at %d, got %s", tt.seedBalance, acc.Balance)
				}
				if len(acc.History) != historyBefore {
					t.Error("expected history unchanged on rejected debit")
				}
				if repo.SaveCount != savesBefore {
					t.Error("expected no save on rejected debit")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := decimal.NewFromInt(tt.seedBalance - tt.amount)
			if !acc.Balance.Equal(want) {
				t.Errorf("expected balance %s, got %s", want, acc.Balance)
			}
			if !acc.Expense.Equal(decimal.NewFromInt(tt.amount)) {
				t.Errorf("expected expense %d, got %s", tt.amount, acc.Expense)
			}
			if repo.SaveCount != savesBefore+1 {
				t.Error("expected exactly one save for the debit")
			}
		})
	}
}

func TestLedgerUseCase_RecentHistory(t *testing.T) {
	_, _, uc := newLedgerFixture(t)
	ctx := context.Background()

	if _, err := uc.Credit(ctx, usecase.EntryInput{Username: "alice", Amount: decimal.NewFromInt(100), Category: domain.CategorySalary}); err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	if _, err := uc.Debit(ctx, usecase.EntryInput{Username: "alice", Amount: decimal.NewFromInt(40), Category: domain.CategoryFood}); err != nil {
		t.Fatalf("debit failed: %v", err)
	}

	history, err := uc.RecentHistory("alice", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(history) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(history))
	}
	if history[0].Kind != domain.KindDebit || !history[0].Amount.Equal(decimal.NewFromInt(40)) || history[0].Category != domain.CategoryFood {
		t.Errorf("expected most recent entry to be the 40 food debit, got %+v", history[0])
	}
	if history[1].Kind != domain.KindCredit || !history[1].Amount.Equal(decimal.NewFromInt(100)) || history[1].Category != domain.CategorySalary {
		t.Errorf("expected oldest entry to be the 100 salary credit, got %+v", history[1])
	}
}

func TestLedgerUseCase_AggregateByCategory(t *testing.T) {
	_, _, uc := newLedgerFixture(t)
	ctx := context.Background()

	if _, err := uc.Credit(ctx, usecase.EntryInput{Username: "alice", Amount: decimal.NewFromInt(500), Category: domain.CategorySalary}); err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	if _, err := uc.Debit(ctx, usecase.EntryInput{Username: "alice", Amount: decimal.NewFromInt(30), Category: domain.CategoryFood}); err != nil {
		t.Fatalf("debit failed: %v", err)
	}
	if _, err := uc.Debit(ctx, usecase.EntryInput{Username: "alice", Amount: decimal.NewFromInt(20), Category: domain.CategoryFood}); err != nil {
		t.Fatalf("debit failed: %v", err)
	}

	totals, err := uc.AggregateByCategory("alice", domain.IntervalLast7Days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(totals) != 1 {
		t.Fatalf("expected 1 category, got %d", len(totals))
	}
	if !totals[domain.CategoryFood].Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected food total 50, got %s", totals[domain.CategoryFood])
	}

	if _, err := uc.AggregateByCategory("alice", domain.Interval("90d")); !errors.Is(err, domain.ErrUnknownInterval) {
		t.Errorf("expected ErrUnknownInterval, got %v", err)
	}
}

func TestLedgerUseCase_Verify(t *testing.T) {
	store, _, uc := newLedgerFixture(t)
	ctx := context.Background()

	if _, err := uc.Credit(ctx, usecase.EntryInput{Username: "alice", Amount: decimal.NewFromInt(100), Category: domain.CategorySalary}); err != nil {
		t.Fatalf("credit failed: %v", err)
	}

	if err := uc.Verify("alice"); err != nil {
		t.Fatalf("expected consistent account, got %v", err)
	}

	// Tamper with the cached balance behind the ledger's back.
	acc, _ := store.Account("alice")
	acc.Balance = acc.Balance.Add(decimal.NewFromInt(1))

	if err := uc.Verify("alice"); !errors.Is(err, usecase.ErrOutOfBalance) {
		t.Errorf("expected ErrOutOfBalance, got %v", err)
	}
}
