package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/invoice-merge/internal/merge"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten [input]",
	Short: "Flatten a single PDF without merging",
	Long: `Flatten burns a single PDF's interactive form fields and annotations into
static page content. By default the result is written next to the input
with a _flat suffix.`,
	Args: cobra.ExactArgs(1),
	RunE: runFlatten,
}

func init() {
	flattenCmd.Flags().StringP("output", "o", "", "output PDF path (default: <input>_flat.pdf)")
	flattenCmd.Flags().Bool("overwrite", false, "replace the output file if it exists")
	flattenCmd.Flags().Bool("keep-metadata", false, "copy title/author from the input into the output")
	flattenCmd.Flags().String("password", "", "user password for encrypted inputs")
	flattenCmd.Flags().String("gs", "", "Ghostscript binary override")

	rootCmd.AddCommand(flattenCmd)
}

func runFlatten(cmd *cobra.Command, args []string) error {
	input := args[0]

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		stem := strings.TrimSuffix(input, filepath.Ext(input))
		output = stem + "_flat.pdf"
	}
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	keepMetadata, _ := cmd.Flags().GetBool("keep-metadata")

	engine := merge.New(mergeConfig(cmd), os.Stdout)
	return engine.Merge([]string{input}, output, merge.Options{
		Overwrite:    overwrite,
		KeepMetadata: keepMetadata,
	})
}
