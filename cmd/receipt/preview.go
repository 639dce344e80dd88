package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func addPreviewCommand(a *app) *cobra.Command {
	flags := &requestFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "preview [invoice-id]",
		Short: "Render the receipt HTML of an invoice without sending it",
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

			html, err := sender.Preview(cmd.Context(), req)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), html)
				return err
			}
			return os.WriteFile(output, []byte(html), 0o644)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the HTML to this file instead of stdout")
	return cmd
}
