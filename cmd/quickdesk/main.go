package main

import (
	"os"

	"github.com/spf13/cobra"

	"quickdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quickdesk",
		Short: "QuickDesk - a help desk ticketing service",
		Long:  `QuickDesk is a help desk service with tickets, comments, categories, and role-based access.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
