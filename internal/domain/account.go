package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is one user's balance, derived totals and transaction history.
// History is append-only and its insertion order is chronological order.
type Account struct {
	PasswordHash string
	Balance      decimal.Decimal
	Income       decimal.Decimal
	Expense      decimal.Decimal
	History      []Transaction
	CreatedAt    time.Time
}

// NewAccount creates a fresh account with zero balance and empty history.
func NewAccount(passwordHash string, now time.Time) *Account {
	return &Account{
		PasswordHash: passwordHash,
		Balance:      decimal.Zero,
		Income:       decimal.Zero,
		Expense:      decimal.Zero,
		CreatedAt:    now,
	}
}

// ValidateDebit checks if the account can afford a debit of amount.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// Append records tx and moves the balance. Totals are recomputed from
// history on every append so the cached Income/Expense cannot drift.
func (a *Account) Append(tx Transaction) {
	a.History = append(a.History, tx)
	switch tx.Kind {
	case KindCredit:
		a.Balance = a.Balance.Add(tx.Amount)
	case KindDebit:
		a.Balance = a.Balance.Sub(tx.Amount)
	}
	a.RecomputeTotals()
}

// RecomputeTotals rebuilds the cached Income and Expense from history.
func (a *Account) RecomputeTotals() {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range a.History {
		switch tx.Kind {
		case KindCredit:
			income = income.Add(tx.Amount)
		case KindDebit:
			expense = expense.Add(tx.Amount)
		}
	}
	a.Income = income
	a.Expense = expense
}

// NetHistory returns credits minus debits over the full history.
func (a *Account) NetHistory() decimal.Decimal {
	net := decimal.Zero
	for _, tx := range a.History {
		switch tx.Kind {
		case KindCredit:
			net = net.Add(tx.Amount)
		case KindDebit:
			net = net.Sub(tx.Amount)
		}
	}
	return net
}

// RecentHistory returns the last n transactions, most recent first.
// The result is a fresh slice computed from current state.
func (a *Account) RecentHistory(n int) []Transaction {
	if n <= 0 || len(a.History) == 0 {
		return nil
	}
	if n > len(a.History) {
		n = len(a.History)
	}
	out := make([]Transaction, 0, n)
	for i := len(a.History) - 1; i >= len(a.History)-n; i-- {
		out = append(out, a.History[i])
	}
	return out
}

// AggregateByCategory sums debit amounts per category for transactions
// whose timestamp falls within the window ending at now. Credits never
// contribute. The lower bound is inclusive.
func (a *Account) AggregateByCategory(interval Interval, now time.Time) map[Category]decimal.Decimal {
	cutoff, bounded := interval.Cutoff(now)
	totals := make(map[Category]decimal.Decimal)
	for _, tx := range a.History {
		if tx.Kind != KindDebit {
			continue
		}
		if bounded && tx.Timestamp.Before(cutoff) {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}
