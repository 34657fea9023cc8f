package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/invoice-merge/internal/merge"
	"github.com/pdiddy/invoice-merge/internal/scan"
	"github.com/pdiddy/invoice-merge/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan [folder]",
	Short: "Merge a folder's vendor cover sheet with its invoice",
	Long: `Scan looks at the PDF files in a folder, identifies the vendor cover sheet
by filename keywords (vendor, cover, 6.0, whcrwa by default), pairs it with
the first other PDF, and merges them vendor-first into
FINAL_MERGED_INVOICE.pdf inside the same folder. An existing merged output
is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Bool("keep-metadata", false, "copy title/author from the vendor cover sheet into the output")
	scanCmd.Flags().String("password", "", "user password for encrypted inputs")
	scanCmd.Flags().String("gs", "", "Ghostscript binary override")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("reading folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a folder", dir)
	}

	cfg := types.ScanConfig{
		Keywords:   viper.GetStringSlice("scan.keywords"),
		OutputName: viper.GetString("scan.output_name"),
	}
	plan, err := scan.BuildPlan(dir, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("vendor:  %s\n", filepath.Base(plan.Vendor))
	fmt.Printf("invoice: %s\n", filepath.Base(plan.Invoice))

	keepMetadata, _ := cmd.Flags().GetBool("keep-metadata")

	engine := merge.New(mergeConfig(cmd), os.Stdout)
	return engine.Merge(plan.Inputs(), plan.Output, merge.Options{
		Overwrite:    true,
		KeepMetadata: keepMetadata,
	})
}
