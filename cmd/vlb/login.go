package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Hata214/vanlang-budget-cli/internal/cli"
)

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, sessions, _, err := newClient()
			if err != nil {
				return err
			}

			if email == "" {
				if email, err = promptLine("Email"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = promptLine("Password"); err != nil {
					return err
				}
			}

			creds, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return friendlyErr(err)
			}
			if err := sessions.Save(creds.Token); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged in as %s", creds.User.Email)))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func registerCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, sessions, _, err := newClient()
			if err != nil {
				return err
			}

			if name == "" {
				if name, err = promptLine("Name"); err != nil {
					return err
				}
			}
			if email == "" {
				if email, err = promptLine("Email"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = promptLine("Password"); err != nil {
					return err
				}
			}

			creds, err := client.Register(cmd.Context(), name, email, password)
			if err != nil {
				return friendlyErr(err)
			}
			if err := sessions.Save(creds.Token); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Welcome, %s", creds.User.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, sessions, _, err := newClient()
			if err != nil {
				return err
			}

			// Best effort server-side; the local token goes away
			// regardless.
			if err := client.Logout(cmd.Context()); err != nil {
				slog.Debug("Server-side logout failed", "error", err)
			}
			if err := sessions.Clear(); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Logged out"))
			return nil
		},
	}
}
