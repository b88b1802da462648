package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/axellelanca/fileprocessor/internal/config"
	"github.com/axellelanca/fileprocessor/internal/logging"
	"github.com/axellelanca/fileprocessor/internal/repository"
	"github.com/axellelanca/fileprocessor/internal/services"
	"github.com/spf13/cobra"
)

// Cfg holds the configuration loaded before any command runs.
var Cfg *config.Config

// RootCmd is the base command for the CLI application.
// Subcommands (run-server, migrate, upload, list, show) register themselves
// from their own init() functions to avoid import cycles.
var RootCmd = &cobra.Command{
	Use:   "fileprocessor",
	Short: "Count lines and words of uploaded text and CSV files",
	Long: `fileprocessor accepts .txt and .csv files, counts their lines and words,
stores the result and serves the stored metadata over HTTP.`,
	SilenceUsage: true,
}

// Execute is the main entry point for the Cobra application.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Init("info")
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Init(cfg.Log.Level)
	Cfg = cfg
}

// NewFileService opens the configured repository and builds the file service
// on top of it. The returned function closes the repository.
func NewFileService(cfg *config.Config) (*services.FileService, func() error, error) {
	repo, closeFn, err := repository.Open(cfg.Database.Driver, cfg.Database.Name)
	if err != nil {
		return nil, nil, err
	}

	svc := services.NewFileService(services.Dependency{
		Repo:        repo,
		MaxFileSize: cfg.Upload.MaxFileSize,
		MaxPageSize: cfg.Listing.MaxPageSize,
	})
	return svc, closeFn, nil
}
