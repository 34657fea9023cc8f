package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/invoice-merge/internal/merge"
	"github.com/pdiddy/invoice-merge/pkg/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [inputs...]",
	Short: "Flatten input PDFs and merge them into one output PDF",
	Long: `Merge flattens every input PDF, concatenates their pages in the order the
inputs were given, and writes the result atomically to the output path.
If any input fails, no output file is created or modified.`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringP("output", "o", "", "output PDF path (required)")
	mergeCmd.Flags().Bool("overwrite", false, "replace the output file if it exists")
	mergeCmd.Flags().Bool("keep-metadata", false, "copy title/author from the first input into the output")
	mergeCmd.Flags().String("password", "", "user password for encrypted inputs")
	mergeCmd.Flags().String("gs", "", "Ghostscript binary override")
	_ = mergeCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(mergeCmd)
}

// mergeConfig builds the engine config from flags with config-file fallback.
func mergeConfig(cmd *cobra.Command) types.MergeConfig {
	gs, _ := cmd.Flags().GetString("gs")
	if gs == "" {
		gs = viper.GetString("raster.ghostscript")
	}
	password, _ := cmd.Flags().GetString("password")

	return types.MergeConfig{
		Raster: types.RasterConfig{
			Ghostscript: gs,
			Epoch:       viper.GetInt64("raster.epoch"),
		},
		Password: password,
	}
}

func runMerge(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more input PDF paths")
	}

	output, _ := cmd.Flags().GetString("output")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	keepMetadata, _ := cmd.Flags().GetBool("keep-metadata")

	engine := merge.New(mergeConfig(cmd), os.Stdout)
	return engine.Merge(args, output, merge.Options{
		Overwrite:    overwrite,
		KeepMetadata: keepMetadata,
	})
}
