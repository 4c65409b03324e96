package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Category
		err   error
	}{
		{name: "exact label", input: "food", want: CategoryFood},
		{name: "mixed case", input: "Salary", want: CategorySalary},
		{name: "surrounding whitespace", input: "  parking ", want: CategoryParking},
		{name: "underscore label", input: "utilities_a", want: CategoryUtilitiesA},
		{name: "unknown label", input: "groceries", err: ErrUnknownCategory},
		{name: "empty", input: "", err: ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)

			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Interval
		err   error
	}{
		{name: "seven days", input: "7d", want: IntervalLast7Days},
		{name: "thirty days", input: "30d", want: IntervalLast30Days},
		{name: "all time", input: "all", want: IntervalAllTime},
		{name: "unknown", input: "90d", err: ErrUnknownInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInterval(tt.input)

			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestInterval_Cutoff(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cutoff, bounded := IntervalLast7Days.Cutoff(now)
	if !bounded {
		t.Fatal("expected 7d interval to be bounded")
	}
	if want := now.Add(-7 * 24 * time.Hour); !cutoff.Equal(want) {
		t.Errorf("expected cutoff %v, got %v", want, cutoff)
	}

	if _, bounded := IntervalAllTime.Cutoff(now); bounded {
		t.Error("expected all-time interval to be unbounded")
	}
}

func TestCategories_CoversClosedSet(t *testing.T) {
	all := Categories()

	if len(all) != len(validCategories) {
		t.Fatalf("expected %d categories, got %d", len(validCategories), len(all))
	}
	for _, c := range all {
		if !c.IsValid() {
			t.Errorf("category %s reported invalid", c)
		}
	}
}
