package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the full transaction history as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			username, _, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			if err := a.export.ExportFile(cmd.Context(), username, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "History exported to %s\n", args[0])
			return nil
		},
	}
}
