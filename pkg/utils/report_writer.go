/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer.go
Description: Utility for writing inference reports to the reports directory.
Handles timestamped, run-scoped file naming, ensures directories exist, and
writes JSON files for easy downstream analysis.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ColumnReport captures the inference outcome for a single column
type ColumnReport struct {
	Column     string   `json:"column"`
	Format     string   `json:"format,omitempty"`
	Confidence float64  `json:"confidence,omitempty"`
	TokenTypes []string `json:"token_types,omitempty"`
	Error      string   `json:"error,omitempty"`
	Rows       int      `json:"rows"`
}

// RunReport is the top-level report document for one CLI invocation
type RunReport struct {
	RunID     string         `json:"run_id"`
	Timestamp string         `json:"timestamp"`
	Source    string         `json:"source"`
	Columns   []ColumnReport `json:"columns"`
}

// NewRunReport creates a report shell with a fresh run identifier
func NewRunReport(source string) *RunReport {
	return &RunReport{
		RunID:     uuid.New().String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Source:    source,
	}
}

// WriteReport writes a run report to the reports directory and returns the
// file path. Filenames carry the timestamp and run id so repeated runs never
// collide.
func WriteReport(reportsDir string, report *RunReport) (string, error) {
	if err := os.MkdirAll(reportsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.json", timestamp, report.RunID[:8])
	path := filepath.Join(reportsDir, filename)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return path, nil
}
