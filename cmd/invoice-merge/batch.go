package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/invoice-merge/internal/batch"
	"github.com/pdiddy/invoice-merge/internal/merge"
)

var batchCmd = &cobra.Command{
	Use:   "batch [jobfile]",
	Short: "Run the merges listed in a YAML job file",
	Long: `Batch reads a YAML job file listing merge jobs (inputs, output, and
per-job options), runs them in order, and prints a summary. Individual job
failures do not stop the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("report", "", "write a YAML report of per-job outcomes to this path")
	batchCmd.Flags().String("password", "", "user password for encrypted inputs")
	batchCmd.Flags().String("gs", "", "Ghostscript binary override")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	jf, err := batch.ReadJobFile(args[0])
	if err != nil {
		return err
	}

	engine := merge.New(mergeConfig(cmd), os.Stdout)
	result := batch.Run(engine, jf.Jobs, os.Stdout)

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := batch.WriteReport(reportPath, result.Report()); err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d job(s) failed", result.Failed)
	}
	return nil
}
