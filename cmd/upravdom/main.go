package main

import (
	"os"

	"github.com/spf13/cobra"

	"upravdom/internal/interfaces/cli/migrate"
	"upravdom/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "upravdom",
		Short: "Upravdom - municipal service request tracking",
		Long:  `Upravdom is a backend for tracking municipal housing service requests, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
