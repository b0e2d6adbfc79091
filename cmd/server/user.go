package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/costtracker/internal/auth"
	"github.com/mmynk/costtracker/internal/models"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var name, email string
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a user and print its ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return fmt.Errorf("--email is required")
			}
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			user := models.NewUser(name, email)
			if err := store.CreateUser(cmd.Context(), user); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Email"},
				[][]string{{user.ID, user.Name, user.Email}},
			))
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "Display name used in alerts")
	add.Flags().StringVar(&email, "email", "", "Address limit alerts are sent to")

	cmd.AddCommand(add)
	return cmd
}

func newTokenCmd(a *app) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API bearer token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := store.GetUser(cmd.Context(), userID)
			if err != nil {
				return err
			}

			token, err := auth.NewJWTManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL).Generate(user)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.MarkFlagRequired("user")
	return cmd
}
