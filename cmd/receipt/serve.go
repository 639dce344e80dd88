package main

import (
	"github.com/spf13/cobra"
)

func addServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the Stripe webhook endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := InitializeServer(a.path())
			if err != nil {
				return err
			}
			return server.Run()
		},
	}
}
