package cli

import (
	"fmt"
	"strconv"

	"github.com/axellelanca/fileprocessor/cmd"
	"github.com/axellelanca/fileprocessor/internal/models"
	"github.com/spf13/cobra"
)

var showOutputFlag string

// ShowCmd prints one stored record.
var ShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Shows the stored record with the given id.",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 0)
		if err != nil {
			return fmt.Errorf("invalid record id %q", args[0])
		}

		fileService, closeRepo, err := cmd.NewFileService(cmd.Cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		record, found, err := fileService.FindByID(c.Context(), uint(id))
		if err != nil {
			return fmt.Errorf("error retrieving record: %w", err)
		}
		if !found {
			return fmt.Errorf("record %d not found", id)
		}

		if showOutputFlag == outputTable {
			return printRecords(c.OutOrStdout(), outputTable, []models.UploadRecord{*record})
		}
		return encode(c.OutOrStdout(), showOutputFlag, record)
	},
}

func init() {
	ShowCmd.Flags().StringVarP(&showOutputFlag, "output", "o", outputTable, "Output format: table, json or yaml")
	cmd.RootCmd.AddCommand(ShowCmd)
}
