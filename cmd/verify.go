package cmd

import (
	"fmt"

	"ardata/internal/logger"
	"ardata/internal/verify"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a generated dataset directory",
	Long: `Re-read the CSV files of a generated dataset and check the invariants
the generator promises: amount identities on invoices and line items,
balanced GL postings per document, referential integrity between tables,
payment and payment plan arithmetic, and status/date consistency on
collection cases and disputes.

The command exits non-zero when any invariant is violated.`,
	Example: `  # Verify the default output directory
  ardata verify

  # Verify a specific dataset
  ardata verify -d demo_data`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringP("dir", "d", "generated_data", "Dataset directory to verify")
}

func runVerify(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("verify")

	dir, _ := cmd.Flags().GetString("dir")
	if appConfig != nil && !cmd.Flags().Changed("dir") && appConfig.OutputDir != "" {
		dir = appConfig.OutputDir
	}

	log.Info().Str("dir", dir).Msg("Starting dataset verification")

	report, err := verify.New(dir).Run()
	if err != nil {
		return fmt.Errorf("verifying dataset: %w", err)
	}

	if !report.OK() {
		for _, violation := range report.Violations {
			fmt.Println(violation)
		}
		return fmt.Errorf("dataset verification failed: %d violations in %d records",
			len(report.Violations), report.RecordsChecked)
	}

	fmt.Printf("Dataset OK: %d records checked, no violations\n", report.RecordsChecked)
	return nil
}
