// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the invoice-merge CLI, a one-shot
// tool that flattens invoice PDFs and concatenates them into a single
// output document.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/invoice-merge/internal/merge"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the invoice-merge CLI.
var rootCmd = &cobra.Command{
	Use:   "invoice-merge",
	Short: "Flatten and merge invoice PDFs into a single document",
	Long: `invoice-merge flattens invoice PDFs (burning interactive form fields and
annotations into static page content) and concatenates them, in input
order, into one output PDF written atomically.

Flattening runs through Ghostscript's pdfwrite device; the gs binary
(gswin64c on Windows) must be on PATH or configured via raster.ghostscript.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./invoice-merge.yaml or ~/.config/invoice-merge/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("invoice-merge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "invoice-merge"))
		}
	}

	viper.SetEnvPrefix("INVOICE_MERGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exitCode maps a merge failure to its distinguishing exit code; anything
// else exits 1.
func exitCode(err error) int {
	var me *merge.Error
	if errors.As(err, &me) {
		return me.Kind.ExitCode()
	}
	return 1
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
