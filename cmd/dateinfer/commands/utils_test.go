/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils_test.go
Description: Tests for the shared command utilities. Covers plain-text and CSV
column reading, missing-column errors, and ragged row handling.
*/

package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-dateinfer/cmd/dateinfer/commands"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadColumnPlainText(t *testing.T) {
	path := writeTempFile(t, "dates.txt", "15/03/2025\n01/02/2025\n28/12/2025\n")

	values, err := commands.ReadColumn(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"15/03/2025", "01/02/2025", "28/12/2025"}, values)
}

func TestReadColumnPlainTextCRLF(t *testing.T) {
	path := writeTempFile(t, "dates.txt", "15/03/2025\r\n01/02/2025\r\n")

	values, err := commands.ReadColumn(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"15/03/2025", "01/02/2025"}, values)
}

func TestReadColumnFromCSV(t *testing.T) {
	path := writeTempFile(t, "orders.csv",
		"id,order_date,amount\n1,15/03/2025,10.50\n2,01/02/2025,7.20\n")

	values, err := commands.ReadColumn(path, "order_date")
	require.NoError(t, err)
	assert.Equal(t, []string{"15/03/2025", "01/02/2025"}, values)
}

func TestReadColumnMissing(t *testing.T) {
	path := writeTempFile(t, "orders.csv", "id,order_date\n1,15/03/2025\n")

	_, err := commands.ReadColumn(path, "shipped_at")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "shipped_at" not found`)
}

func TestReadCSVColumns(t *testing.T) {
	path := writeTempFile(t, "orders.csv",
		"id,order_date\n1,15/03/2025\n2,01/02/2025\n")

	columns, err := commands.ReadCSVColumns(path)
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, []string{"1", "2"}, columns["id"])
	assert.Equal(t, []string{"15/03/2025", "01/02/2025"}, columns["order_date"])
}

func TestReadCSVColumnsRaggedRows(t *testing.T) {
	// Short rows pad with empty strings so every column stays aligned
	path := writeTempFile(t, "ragged.csv",
		"id,order_date\n1,15/03/2025\n2\n")

	columns, err := commands.ReadCSVColumns(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"15/03/2025", ""}, columns["order_date"])
}

func TestReadCSVColumnsEmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.csv", "")
	_, err := commands.ReadCSVColumns(path)
	assert.Error(t, err)
}
