/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the dateinfer commands. Provides common configuration
loading, logging setup, and input reading used across all command implementations.
*/

package commands

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-dateinfer/pkg/logging"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("DATEINFER")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the shared logger from the current configuration
func SetupLogging() (*logging.Logger, error) {
	format := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		Timestamp: true,
		Colors:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}

// ReadColumn reads the values to analyze from the input file. A CSV column is
// selected by name with the column argument; an empty column means the file
// is plain text with one value per line.
func ReadColumn(path string, column string) ([]string, error) {
	if column == "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		values := make([]string, 0, len(lines))
		for _, line := range lines {
			values = append(values, strings.TrimRight(line, "\r"))
		}
		return values, nil
	}

	columns, err := ReadCSVColumns(path)
	if err != nil {
		return nil, err
	}
	values, ok := columns[column]
	if !ok {
		return nil, fmt.Errorf("column %q not found in %s", column, path)
	}
	return values, nil
}

// ReadCSVColumns reads a CSV file into a column-name to values mapping.
// The first record is the header.
func ReadCSVColumns(path string) (map[string][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file %s is empty", path)
	}

	header := records[0]
	columns := make(map[string][]string, len(header))
	for _, name := range header {
		columns[name] = make([]string, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		for i, name := range header {
			if i < len(record) {
				columns[name] = append(columns[name], record[i])
			} else {
				columns[name] = append(columns[name], "")
			}
		}
	}

	return columns, nil
}
