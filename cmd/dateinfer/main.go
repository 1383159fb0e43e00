/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the dateinfer engine. Provides commands
for single-column and whole-file date format inference, configuration management,
and built-in self-checks, with structured logging throughout.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-dateinfer/cmd/dateinfer/commands"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool
	logDir     string
	logFormat  string

	// Input configuration
	inputPath string
	column    string

	// Inference configuration
	dayfirst      bool
	minConfidence float64
	strict        bool

	// Report configuration
	reportDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dateinfer",
		Short: "dateinfer - Consensus-based date format inference",
		Long: `dateinfer infers strptime format strings from example date strings. Unlike
per-element parsers, it analyzes all examples of a column together, so a single
unambiguous date (a day of 15 that cannot be a month) resolves every ambiguous
sibling such as 01/02/2025 in the same dataset.`,
		Version: "1.0.0",
	}

	// Persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty = console only)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	// infer command: one column
	inferCmd := &cobra.Command{
		Use:   "infer",
		Short: "Infer the date format of a single column",
		Long: `Infer the strptime format shared by the values of one column. The input is
either a plain text file (one value per line) or a CSV file with --column naming
the column to analyze.`,
		RunE: commands.RunInfer,
	}

	inferCmd.Flags().StringVar(&inputPath, "input", "", "Input file: newline-delimited values or CSV (required)")
	inferCmd.Flags().StringVar(&column, "column", "", "CSV column name to analyze (empty = plain text input)")
	inferCmd.Flags().BoolVar(&dayfirst, "dayfirst", true, "Prefer day-first for ambiguous dates")
	inferCmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.0, "Fail when confidence falls below this threshold")
	inferCmd.Flags().BoolVar(&strict, "strict", false, "Fail if any input disagrees with the inferred format")
	inferCmd.Flags().StringVar(&reportDir, "report-dir", "./reports", "Directory for JSON reports")
	inferCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(inferCmd)

	// batch command: every column of a CSV in parallel
	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Infer date formats for every column of a CSV file",
		Long: `Run inference across all columns of a CSV file in parallel. Columns that do
not contain dates are reported as failures without affecting the others.`,
		RunE: commands.RunBatch,
	}

	batchCmd.Flags().StringVar(&inputPath, "input", "", "Input CSV file (required)")
	batchCmd.Flags().BoolVar(&dayfirst, "dayfirst", true, "Prefer day-first for ambiguous dates")
	batchCmd.Flags().StringVar(&reportDir, "report-dir", "./reports", "Directory for JSON reports")
	batchCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(batchCmd)

	// check command: built-in self-checks
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Perform built-in self-checks for system validation",
		Long: `Run the engine against built-in reference corpora and verify the expected
formats come back. Very useful for CI/CD integration.`,
		RunE: commands.PerformSelfCheck,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
