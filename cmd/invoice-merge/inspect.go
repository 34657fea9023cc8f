package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/invoice-merge/internal/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Print preflight info for a PDF",
	Long: `Inspect probes a PDF and reports page count, title, author, and whether
the document carries an interactive form or encryption. The same probe runs
as preflight before every merge.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output as JSON")
	inspectCmd.Flags().String("password", "", "user password for encrypted inputs")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	password, _ := cmd.Flags().GetString("password")

	info, err := inspect.New(password).Inspect(args[0])
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("path:      %s\n", info.Path)
	fmt.Printf("pages:     %d\n", info.Pages)
	fmt.Printf("title:     %s\n", info.Metadata.Title)
	fmt.Printf("author:    %s\n", info.Metadata.Author)
	fmt.Printf("form:      %t\n", info.HasForm)
	fmt.Printf("encrypted: %t\n", info.Encrypted)
	return nil
}
