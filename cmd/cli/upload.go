package cli

import (
	"fmt"

	"github.com/axellelanca/fileprocessor/cmd"
	"github.com/axellelanca/fileprocessor/internal/models"
	"github.com/axellelanca/fileprocessor/internal/services"
	"github.com/spf13/cobra"
)

var uploadOutputFlag string

// UploadCmd processes local files through the same pipeline as the HTTP upload.
var UploadCmd = &cobra.Command{
	Use:   "upload <path>...",
	Short: "Counts lines and words of local files and stores the results.",
	Long: `Each file is validated (.txt or .csv, within the size limit), counted and
stored as a new record. Files that fail are reported and the others still run.

Example:
  fileprocessor upload notes.txt data.csv --output json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		fileService, closeRepo, err := cmd.NewFileService(cmd.Cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		records, failed := uploadFiles(c, fileService, args)
		if err := printRecords(c.OutOrStdout(), uploadOutputFlag, records); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) failed", failed, len(args))
		}
		return nil
	},
}

func uploadFiles(c *cobra.Command, fileService *services.FileService, paths []string) ([]models.UploadRecord, int) {
	var records []models.UploadRecord
	failed := 0

	for _, path := range paths {
		file, err := services.NewLocalFile(path)
		if err == nil {
			var record *models.UploadRecord
			record, err = fileService.ProcessAndSave(c.Context(), file)
			if err == nil {
				records = append(records, *record)
				continue
			}
		}

		failed++
		fmt.Fprintf(c.ErrOrStderr(), "Error: %s: %v\n", path, err)
	}

	return records, failed
}

func init() {
	UploadCmd.Flags().StringVarP(&uploadOutputFlag, "output", "o", outputTable, "Output format: table, json or yaml")
	cmd.RootCmd.AddCommand(UploadCmd)
}
