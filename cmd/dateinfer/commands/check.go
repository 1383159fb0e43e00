/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: check.go
Description: Built-in self-check command for dateinfer. Runs the engine against
reference corpora with known formats and validates report-directory writability,
so CI pipelines can verify the installation before trusting its output.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-dateinfer/pkg/infer"
)

// selfCheck is one reference corpus with its expected outcome
type selfCheck struct {
	name     string
	dates    []string
	dayfirst bool
	expected string
}

var selfChecks = []selfCheck{
	{
		name:     "day-first slash",
		dates:    []string{"15/03/2025", "01/02/2025", "28/12/2025"},
		dayfirst: true,
		expected: "%d/%m/%Y",
	},
	{
		name:     "month-first preference",
		dates:    []string{"01/02/2025", "03/04/2025"},
		dayfirst: false,
		expected: "%m/%d/%Y",
	},
	{
		name:     "iso date",
		dates:    []string{"2025-01-15", "2025-03-20"},
		dayfirst: true,
		expected: "%Y-%m-%d",
	},
	{
		name:     "iso datetime",
		dates:    []string{"2025-03-15T10:30:00"},
		dayfirst: true,
		expected: "%Y-%m-%dT%H:%M:%S",
	},
	{
		name:     "unix ctime",
		dates:    []string{"Mon Jan 13 09:52:52 MST 2014"},
		dayfirst: true,
		expected: "%a %b %d %H:%M:%S %Z %Y",
	},
	{
		name:     "abbreviated month",
		dates:    []string{"26-May-2023", "01-Jul-2024", "02-Aug-2024"},
		dayfirst: true,
		expected: "%d-%b-%Y",
	},
}

// PerformSelfCheck validates the installation end to end
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 dateinfer - Self Check")
	fmt.Println("=========================")
	fmt.Println()

	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	failed := 0
	for _, check := range selfChecks {
		result, err := infer.InferWithOptions(check.dates, infer.Options{PreferDayfirst: check.dayfirst})
		switch {
		case err != nil:
			fmt.Printf("  ❌ %-24s error: %v\n", check.name, err)
			failed++
		case result.Format != check.expected:
			fmt.Printf("  ❌ %-24s got %q, want %q\n", check.name, result.Format, check.expected)
			failed++
		default:
			fmt.Printf("  ✅ %-24s %s\n", check.name, result.Format)
		}
	}
	fmt.Println()

	// Report directory writability
	reportDir := viper.GetString("report_dir")
	if reportDir == "" {
		reportDir = "./reports"
	}
	probe := filepath.Join(reportDir, ".write_probe")
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		fmt.Printf("  ⚠️  Report directory not creatable: %v\n", err)
	} else if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		fmt.Printf("  ⚠️  Report directory not writable: %v\n", err)
	} else {
		os.Remove(probe)
		fmt.Printf("  ✅ Report directory writable: %s\n", reportDir)
	}
	fmt.Println()

	if failed > 0 {
		return fmt.Errorf("self check failed: %d of %d reference corpora incorrect", failed, len(selfChecks))
	}

	fmt.Println("✨ All self checks passed!")
	return nil
}
