/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: batch.go
Description: Batch inference command implementation for dateinfer. Loads every column
of a CSV file, runs the engine across them in parallel, prints a per-column summary,
and saves a combined JSON report.
*/

package commands

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/kleascm/akaylee-dateinfer/pkg/infer"
	"github.com/kleascm/akaylee-dateinfer/pkg/utils"
)

// RunBatch analyzes every column of a CSV file in parallel
func RunBatch(cmd *cobra.Command, args []string) error {
	fmt.Println("📅 dateinfer - Batch Inference")
	fmt.Println("==============================")
	fmt.Println()

	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	inputPath, _ := cmd.Flags().GetString("input")
	fmt.Printf("📁 Input: %s\n", inputPath)
	fmt.Println()

	columns, err := ReadCSVColumns(inputPath)
	if err != nil {
		return err
	}
	fmt.Printf("📊 Found %d columns\n", len(columns))
	fmt.Println()

	dayfirst, _ := cmd.Flags().GetBool("dayfirst")
	opts := infer.Options{PreferDayfirst: dayfirst}
	engine := infer.NewEngine(opts)
	engine.SetLogger(logger.GetLogger())

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("🧠 Performing consensus inference across columns...")
	startTime := time.Now()

	// Columns that hold no dates should not sink the run, so the tolerant
	// fan-out is used here rather than the all-or-nothing batch entry point.
	results, failures := engine.InferColumns(columns)
	elapsed := time.Since(startTime)

	report := utils.NewRunReport(inputPath)
	inferred := 0
	for _, name := range names {
		values := columns[name]
		if err := failures[name]; err != nil {
			logger.LogInferenceFailure(name, err, nil)
			report.Columns = append(report.Columns, utils.ColumnReport{
				Column: name,
				Error:  err.Error(),
				Rows:   len(values),
			})
			fmt.Printf("  ❌ %-20s %v\n", name, err)
			continue
		}
		result := results[name]
		inferred++
		logger.LogInference(name, result.Format, result.Confidence, map[string]interface{}{
			"rows": len(values),
		})
		report.Columns = append(report.Columns, utils.ColumnReport{
			Column:     name,
			Format:     result.Format,
			Confidence: result.Confidence,
			TokenTypes: result.TokenTypeNames(),
			Rows:       len(values),
		})
		fmt.Printf("  ✅ %-20s %-24s confidence %.2f\n", name, result.Format, result.Confidence)
	}
	logger.LogBatch(len(names), elapsed, map[string]interface{}{"inferred": inferred})

	fmt.Println()
	fmt.Printf("✨ Batch inference completed in %v: %d of %d columns inferred\n", elapsed, inferred, len(names))
	reportDir, _ := cmd.Flags().GetString("report-dir")
	saveReport(reportDir, report)

	return nil
}
