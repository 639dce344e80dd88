package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addSendCommand(a *app) *cobra.Command {
	flags := &requestFlags{}

	cmd := &cobra.Command{
		Use:   "send [invoice-id]",
		Short: "Send the receipt email of a paid invoice",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invoiceID, err := flags.invoice(args)
			if err != nil {
				return err
			}

			sender, err := InitializeSender(a.path())
			if err != nil {
				return err
			}

			req := sender.NewRequest(invoiceID)
			if err = flags.apply(cmd, req); err != nil {
				return err
			}

			if err = sender.Send(cmd.Context(), req); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "receipt processed for invoice %s\n", invoiceID)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
