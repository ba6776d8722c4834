package main

import (
	"os"

	"github.com/spf13/cobra"

	"chamados/internal/interfaces/cli/migrate"
	"chamados/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chamados",
		Short: "Chamados - support ticket dashboard backend",
		Long:  `Chamados is the backend for the support ticket dashboard: ticket CRUD, kanban board views, period reports and cache reconciliation.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
