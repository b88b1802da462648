package cli

import (
	"github.com/axellelanca/fileprocessor/cmd"
	"github.com/spf13/cobra"
)

var (
	listPageFlag   int
	listSizeFlag   int
	listOutputFlag string
)

// ListCmd prints a page of stored records, newest first.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists stored file records, newest first.",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		fileService, closeRepo, err := cmd.NewFileService(cmd.Cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		size := listSizeFlag
		if size == 0 {
			size = cmd.Cfg.Listing.DefaultPageSize
		}

		page, err := fileService.ListPaginated(c.Context(), listPageFlag, size)
		if err != nil {
			return err
		}
		return printPage(c.OutOrStdout(), listOutputFlag, page)
	},
}

func init() {
	ListCmd.Flags().IntVar(&listPageFlag, "page", 0, "Zero-based page number")
	ListCmd.Flags().IntVar(&listSizeFlag, "size", 0, "Page size (defaults to listing.default_page_size)")
	ListCmd.Flags().StringVarP(&listOutputFlag, "output", "o", outputTable, "Output format: table, json or yaml")
	cmd.RootCmd.AddCommand(ListCmd)
}
