package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/pocketbook/internal/domain"
	"github.com/iho/pocketbook/internal/usecase"
)

func newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show balance and running totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			_, acc, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Balance: %s\nIncome:  %s\nExpense: %s\n",
				acc.Balance, acc.Income, acc.Expense)
			return nil
		},
	}
}

func newCreditCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "credit <amount>",
		Short: "Add money to the balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntry(cmd, args[0], category, domain.KindCredit)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategorySalary), categoryFlagUsage())
	return cmd
}

func newDebitCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "debit <amount>",
		Short: "Take money from the balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntry(cmd, args[0], category, domain.KindDebit)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryOther), categoryFlagUsage())
	return cmd
}

func runEntry(cmd *cobra.Command, rawAmount, rawCategory string, kind domain.Kind) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	username, account, err := a.currentUser(cmd.Context())
	if err != nil {
		return err
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAmount, rawAmount)
	}
	category, err := domain.ParseCategory(rawCategory)
	if err != nil {
		return err
	}

	input := usecase.EntryInput{Username: username, Amount: amount, Category: category}

	var tx *domain.Transaction
	if kind == domain.KindCredit {
		tx, err = a.ledger.Credit(cmd.Context(), input)
	} else {
		tx, err = a.ledger.Debit(cmd.Context(), input)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s (%s), balance %s\n",
		tx.Kind, tx.Amount, tx.Category, account.Balance)
	return nil
}

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent transactions, most recent first",
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

			if limit <= 0 {
				limit = a.cfg.HistoryLimit
			}

			history, err := a.ledger.RecentHistory(username, limit)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions yet")
				return nil
			}

			for _, tx := range history {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-6s  %12s  %s\n",
					tx.Timestamp.Format("2006-01-02 15:04:05"), tx.Kind, tx.Amount, tx.Category)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of transactions to show (default from config)")
	return cmd
}

func categoryFlagUsage() string {
	usage := "transaction category: "
	for i, c := range domain.Categories() {
		if i > 0 {
			usage += ", "
		}
		usage += string(c)
	}
	return usage
}
