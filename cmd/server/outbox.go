package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/costtracker/internal/notify"
)

func newOutboxCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outbox",
		Short: "Inspect and deliver queued limit alerts",
	}

	flush := &cobra.Command{
		Use:   "flush",
		Short: "Deliver one batch of pending alerts now",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			mailer, err := newMailer(cmd.Context(), a.cfg.Notifications)
			if err != nil {
				return err
			}

			n := a.cfg.Notifications
			result, err := notify.NewWorker(store, mailer, nil, n.MaxAttempts, n.BatchSize).Flush(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Sent", "Retrying", "Failed"},
				[][]string{{fmt.Sprint(result.Sent), fmt.Sprint(result.Retried), fmt.Sprint(result.Failed)}},
			))
			return nil
		},
	}

	cmd.AddCommand(flush)
	return cmd
}
