package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/axellelanca/fileprocessor/cmd"
	"github.com/axellelanca/fileprocessor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the root command with args against a database in dir.
func run(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_NAME", dbPath)
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	cmd.RootCmd.SetOut(&stdout)
	cmd.RootCmd.SetErr(&stderr)
	cmd.RootCmd.SetArgs(args)
	defer cmd.RootCmd.SetArgs(nil)

	_, err := cmd.RootCmd.ExecuteC()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestUploadListShow(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "cli.db")
	notes := writeFile(t, dir, "notes.txt", "Hello world\nThis is a test")
	data := writeFile(t, dir, "data.csv", "a,b\nc d e\n")

	out, _, err := run(t, dbPath, "upload", notes, data, "--output", "json")
	require.NoError(t, err)

	var uploaded []models.UploadRecord
	require.NoError(t, json.Unmarshal([]byte(out), &uploaded))
	require.Len(t, uploaded, 2)
	assert.Equal(t, "notes.txt", uploaded[0].FileName)
	assert.Equal(t, int64(2), uploaded[0].LineCount)
	assert.Equal(t, int64(6), uploaded[0].WordCount)
	assert.Equal(t, int64(4), uploaded[1].WordCount)

	out, _, err = run(t, dbPath, "list", "--page", "0", "--size", "5", "--output", "json")
	require.NoError(t, err)

	var page models.Page
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, int64(2), page.TotalElements)
	require.Len(t, page.Content, 2)

	out, _, err = run(t, dbPath, "show", "1", "--output", "yaml")
	require.NoError(t, err)

	var shown map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "notes.txt", shown["fileName"])
	assert.Equal(t, 6, shown["wordCount"])
}

func TestUpload_ReportsRejectedFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "fine")
	bad := writeFile(t, dir, "bad.exe", "nope")

	out, stderr, err := run(t, filepath.Join(dir, "cli.db"), "upload", good, bad, "--output", "table")

	assert.ErrorContains(t, err, "1 of 2 file(s) failed")
	assert.Contains(t, stderr, "Unsupported file type. Only .txt and .csv are allowed.")
	assert.Contains(t, out, "good.txt")
	assert.NotContains(t, out, "bad.exe")
}

func TestShow_NotFound(t *testing.T) {
	_, _, err := run(t, filepath.Join(t.TempDir(), "cli.db"), "show", "42", "--output", "table")
	assert.ErrorContains(t, err, "record 42 not found")

	_, _, err = run(t, filepath.Join(t.TempDir(), "cli.db"), "show", "9223372036854775808", "--output", "table")
	assert.ErrorContains(t, err, "record 9223372036854775808 not found")

	_, _, err = run(t, filepath.Join(t.TempDir(), "cli.db"), "show", "abc", "--output", "table")
	assert.ErrorContains(t, err, "invalid record id")
}

func TestMigrate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.db")

	out, _, err := run(t, dbPath, "migrate")
	require.NoError(t, err)

	assert.Contains(t, out, "Database migrations executed successfully.")
	assert.FileExists(t, dbPath)
}

func TestPrintRecords_Table(t *testing.T) {
	var buf bytes.Buffer
	records := []models.UploadRecord{
		{ID: 3, FileName: "a.txt", LineCount: 2, WordCount: 5, UploadedAt: time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)},
	}

	require.NoError(t, printRecords(&buf, outputTable, records))

	assert.Contains(t, buf.String(), "FILE NAME")
	assert.Contains(t, buf.String(), "a.txt")
	assert.Contains(t, buf.String(), "2025-02-03T04:05:06Z")
}

func TestPrintPage_Formats(t *testing.T) {
	page := models.NewPage([]models.UploadRecord{{ID: 1, FileName: "x.csv"}}, 0, 5, 1)

	var table bytes.Buffer
	require.NoError(t, printPage(&table, outputTable, page))
	assert.Contains(t, table.String(), "Page 1 of 1 (1 record(s) in total)")

	var js bytes.Buffer
	require.NoError(t, printPage(&js, outputJSON, page))
	assert.Contains(t, js.String(), `"totalElements": 1`)

	var yml bytes.Buffer
	require.NoError(t, printPage(&yml, outputYAML, page))
	assert.Contains(t, yml.String(), "totalElements: 1")

	assert.ErrorContains(t, printPage(&bytes.Buffer{}, "xml", page), "unsupported output format")
}
