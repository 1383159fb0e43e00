/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer.go
Description: Single-column inference command implementation for dateinfer. Reads the
values of one column, runs consensus inference, prints the resolved format and role
breakdown, and saves a JSON report.
*/

package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kleascm/akaylee-dateinfer/pkg/infer"
	"github.com/kleascm/akaylee-dateinfer/pkg/utils"
)

// RunInfer analyzes one column and reports its date format
func RunInfer(cmd *cobra.Command, args []string) error {
	fmt.Println("📅 dateinfer - Date Format Inference")
	fmt.Println("====================================")
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
	column, _ := cmd.Flags().GetString("column")

	fmt.Printf("📁 Input: %s\n", inputPath)
	if column != "" {
		fmt.Printf("📊 Column: %s\n", column)
	}
	fmt.Println()

	values, err := ReadColumn(inputPath, column)
	if err != nil {
		return err
	}
	fmt.Printf("📖 Loaded %d values\n", len(values))
	fmt.Println()

	dayfirst, _ := cmd.Flags().GetBool("dayfirst")
	minConfidence, _ := cmd.Flags().GetFloat64("min-confidence")
	strict, _ := cmd.Flags().GetBool("strict")
	opts := infer.Options{
		PreferDayfirst: dayfirst,
		MinConfidence:  minConfidence,
		Strict:         strict,
	}

	engine := infer.NewEngine(opts)
	engine.SetLogger(logger.GetLogger())

	fmt.Println("🧠 Performing consensus inference...")
	startTime := time.Now()

	result, err := engine.Infer(values)
	elapsed := time.Since(startTime)

	label := column
	if label == "" {
		label = inputPath
	}

	reportDir, _ := cmd.Flags().GetString("report-dir")

	report := utils.NewRunReport(inputPath)
	if err != nil {
		logger.LogInferenceFailure(label, err, nil)
		report.Columns = append(report.Columns, utils.ColumnReport{
			Column: label,
			Error:  err.Error(),
			Rows:   len(values),
		})
		saveReport(reportDir, report)
		return fmt.Errorf("inference failed: %w", err)
	}

	logger.LogInference(label, result.Format, result.Confidence, map[string]interface{}{
		"rows":     len(values),
		"duration": elapsed,
	})

	fmt.Printf("✅ Inference completed in %v\n", elapsed)
	fmt.Println()
	fmt.Println("📋 Inferred Format")
	fmt.Println("==================")
	fmt.Printf("Format:     %s\n", result.Format)
	fmt.Printf("Confidence: %.2f\n", result.Confidence)
	fmt.Printf("Roles:      %s\n", strings.Join(result.TokenTypeNames(), " "))
	fmt.Println()

	report.Columns = append(report.Columns, utils.ColumnReport{
		Column:     label,
		Format:     result.Format,
		Confidence: result.Confidence,
		TokenTypes: result.TokenTypeNames(),
		Rows:       len(values),
	})
	saveReport(reportDir, report)

	return nil
}

// saveReport writes the run report, downgrading failures to a warning so a
// read-only working directory never masks the inference outcome
func saveReport(reportDir string, report *utils.RunReport) {
	if reportDir == "" {
		return
	}
	path, err := utils.WriteReport(reportDir, report)
	if err != nil {
		fmt.Printf("⚠️  Failed to save report: %v\n", err)
		return
	}
	fmt.Printf("💾 Report saved to: %s\n", path)
}
