package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/axellelanca/fileprocessor/internal/models"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func encode(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func printRecords(w io.Writer, format string, records []models.UploadRecord) error {
	if records == nil {
		records = []models.UploadRecord{}
	}
	if format != outputTable {
		return encode(w, format, records)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFILE NAME\tLINES\tWORDS\tUPLOADED AT")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n", r.ID, r.FileName, r.LineCount, r.WordCount, r.UploadedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func printPage(w io.Writer, format string, page models.Page) error {
	if format != outputTable {
		return encode(w, format, page)
	}

	if err := printRecords(w, format, page.Content); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nPage %d of %d (%d record(s) in total)\n", page.Number+1, page.TotalPages, page.TotalElements)
	return err
}
