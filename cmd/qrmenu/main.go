package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tablescan/qrmenu/internal/interfaces/cli/migrate"
	"github.com/tablescan/qrmenu/internal/interfaces/cli/server"
	"github.com/tablescan/qrmenu/internal/interfaces/cli/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qrmenu",
		Short: "QR menu pricing and storefront service",
		Long:  `qrmenu serves partner storefront menus behind QR codes, prices orders and manages partner offers.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		worker.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
