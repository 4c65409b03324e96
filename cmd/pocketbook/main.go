// Command pocketbook is a personal balance tracker backed by a local
// JSON store: one account per user, categorized transaction history,
// interval reports and CSV export.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pocketbook",
		Short: "Personal balance tracker",
		Long: `pocketbook tracks a balance and a categorized transaction history
in a local JSON file. Register once, then credit and debit against the
resumed session; reports aggregate expenses by category over 7 days,
30 days or all time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRegisterCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newBalanceCmd(),
		newCreditCmd(),
		newDebitCmd(),
		newHistoryCmd(),
		newReportCmd(),
		newExportCmd(),
		newVerifyCmd(),
	)

	return root
}
