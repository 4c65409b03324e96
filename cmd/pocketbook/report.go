package main

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/pocketbook/internal/domain"
)

func newReportCmd() *cobra.Command {
	var interval string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Sum expenses by category over an interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			username, _, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			parsed, err := domain.ParseInterval(interval)
			if err != nil {
				return err
			}

			totals, err := a.ledger.AggregateByCategory(username, parsed)
			if err != nil {
				return err
			}
			if len(totals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses in this interval")
				return nil
			}

			type row struct {
				category domain.Category
				total    decimal.Decimal
			}
			rows := make([]row, 0, len(totals))
			sum := decimal.Zero
			for category, total := range totals {
				rows = append(rows, row{category: category, total: total})
				sum = sum.Add(total)
			}
			sort.Slice(rows, func(i, j int) bool {
				if !rows[i].total.Equal(rows[j].total) {
					return rows[i].total.GreaterThan(rows[j].total)
				}
				return rows[i].category < rows[j].category
			})

			for _, r := range rows {
				share := r.total.Div(sum).Mul(decimal.NewFromInt(100)).Round(1)
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %12s  %5s%%\n", r.category, r.total, share)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %12s\n", "total", sum)
			return nil
		},
	}

	cmd.Flags().StringVarP(&interval, "interval", "i", string(domain.IntervalAllTime), "report interval: 7d, 30d or all")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that balance and totals reconcile with history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			username, _, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			if err := a.ledger.Verify(username); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK: balance matches history")
			return nil
		},
	}
}
