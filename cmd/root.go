package cmd

import (
	"fmt"
	"os"

	"ardata/internal/config"
	"ardata/internal/logger"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

// appConfig holds the environment-backed defaults loaded at startup. It may
// be nil when the configuration could not be loaded; every command falls back
// to its flag defaults in that case.
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "ardata",
	Short: "ardata CLI - Synthetic accounts receivable dataset generator",
	Long: `ardata CLI generates a synthetic accounts receivable dataset for an
Indian B2B billing environment: customers, invoices, payments, ledger
entries, collection activity and portfolio analytics, exported as CSV files.

The same seed always produces the same dataset, which makes the output
suitable for demos, integration tests and analytics prototyping.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("ardata CLI executed")

		fmt.Println("Welcome to ardata CLI!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

// Execute runs the root command with the loaded configuration.
func Execute(cfg *config.Config) {
	appConfig = cfg
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
