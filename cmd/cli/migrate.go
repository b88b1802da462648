package cli

import (
	"fmt"

	"github.com/axellelanca/fileprocessor/cmd"
	"github.com/axellelanca/fileprocessor/internal/repository"
	"github.com/spf13/cobra"
)

// MigrateCmd creates or updates the file_metadata table.
var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Executes database migrations to create or update tables.",
	Long: `This command connects to the configured SQLite database and runs GORM
automatic migrations for the 'file_metadata' table.`,
	RunE: func(c *cobra.Command, _ []string) error {
		dbCfg := cmd.Cfg.Database
		if dbCfg.Driver == repository.DriverMemory {
			fmt.Fprintln(c.OutOrStdout(), "In-memory driver configured, nothing to migrate.")
			return nil
		}

		db, err := repository.OpenDatabase(dbCfg.Name)
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get underlying SQL database: %w", err)
		}
		defer sqlDB.Close()

		if err := repository.Migrate(db); err != nil {
			return err
		}

		fmt.Fprintln(c.OutOrStdout(), "Database migrations executed successfully.")
		return nil
	},
}

func init() {
	cmd.RootCmd.AddCommand(MigrateCmd)
}
