package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind tells whether a transaction adds to or subtracts from the balance.
type Kind string

const (
	KindCredit Kind = "credit"
	KindDebit  Kind = "debit"
)

// IsValid checks if the kind is a known kind.
func (k Kind) IsValid() bool {
	return k == KindCredit || k == KindDebit
}

// Category labels a transaction for reporting. The set is closed: stored
// data and aggregation logic share these exact labels.
type Category string

const (
	CategorySalary         Category = "salary"
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryParking        Category = "parking"
	CategoryUtilitiesA     Category = "utilities_a"
	CategoryUtilitiesB     Category = "utilities_b"
	CategoryOther          Category = "other"
)

var validCategories = map[Category]bool{
	CategorySalary:         true,
	CategoryFood:           true,
	CategoryTransportation: true,
	CategoryParking:        true,
	CategoryUtilitiesA:     true,
	CategoryUtilitiesB:     true,
	CategoryOther:          true,
}

// IsValid checks if the category is part of the closed set.
func (c Category) IsValid() bool {
	return validCategories[c]
}

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{
		CategorySalary,
		CategoryFood,
		CategoryTransportation,
		CategoryParking,
		CategoryUtilitiesA,
		CategoryUtilitiesB,
		CategoryOther,
	}
}

// ParseCategory parses a user-supplied category label.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Interval bounds a report window relative to the time of the call.
type Interval string

const (
	IntervalLast7Days  Interval = "7d"
	IntervalLast30Days Interval = "30d"
	IntervalAllTime    Interval = "all"
)

// IsValid checks if the interval is a known interval.
func (i Interval) IsValid() bool {
	switch i {
	case IntervalLast7Days, IntervalLast30Days, IntervalAllTime:
		return true
	}
	return false
}

// Cutoff returns the inclusive lower bound of the window ending at now.
// The second result is false for IntervalAllTime, which has no bound.
func (i Interval) Cutoff(now time.Time) (time.Time, bool) {
	switch i {
	case IntervalLast7Days:
		return now.Add(-7 * 24 * time.Hour), true
	case IntervalLast30Days:
		return now.Add(-30 * 24 * time.Hour), true
	default:
		return time.Time{}, false
	}
}

// ParseInterval parses a user-supplied interval label.
func ParseInterval(s string) (Interval, error) {
	i := Interval(strings.ToLower(strings.TrimSpace(s)))
	if !i.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownInterval, s)
	}
	return i, nil
}

// Transaction is one recorded credit or debit event. Amount is always
// positive; the sign lives in Kind.
type Transaction struct {
	ID        string
	Timestamp time.Time
	Amount    decimal.Decimal
	Kind      Kind
	Category  Category
}
