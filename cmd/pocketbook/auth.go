package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iho/pocketbook/internal/usecase"
)

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username>",
		Short: "Create a new account and log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			password, err := promptPassword(cmd.OutOrStdout(), "Password: ")
			if err != nil {
				return err
			}

			if _, err := a.users.Register(cmd.Context(), usecase.RegisterInput{
				Username: args[0],
				Password: password,
			}); err != nil {
				return err
			}

			if _, err := a.sessions.Login(cmd.Context(), args[0], password); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account %q created, you are logged in\n", args[0])
			return nil
		},
	}
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and mark the account for auto-resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			password, err := promptPassword(cmd.OutOrStdout(), "Password: ")
			if err != nil {
				return err
			}

			acc, err := a.sessions.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %q, balance %s\n", args[0], acc.Balance)
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the auto-resume marker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			if err := a.sessions.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account the session would resume into",
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

			fmt.Fprintln(cmd.OutOrStdout(), username)
			return nil
		},
	}
}
