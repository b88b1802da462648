package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/axellelanca/fileprocessor/cmd"
	"github.com/axellelanca/fileprocessor/internal/api"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// RunServerCmd starts the HTTP API.
var RunServerCmd = &cobra.Command{
	Use:   "run-server",
	Short: "Starts the file processor HTTP API.",
	Long: `This command opens the metadata store, runs migrations, configures the
HTTP routes and serves them until SIGINT or SIGTERM is received.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg := cmd.Cfg

		fileService, closeRepo, err := cmd.NewFileService(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialise file service: %w", err)
		}
		defer func() {
			if err := closeRepo(); err != nil {
				slog.Error("failed to close repository", "error", err)
			}
		}()
		slog.Info("file service initialised",
			"driver", cfg.Database.Driver, "database", cfg.Database.Name, "max_file_size", fileService.MaxFileSize())

		gin.SetMode(cfg.Server.Mode)
		router := api.NewRouter(fileService, cfg.Listing.DefaultPageSize)

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:           api.WithCORS(router, cfg.Server.CORSAllowedOrigins),
			ReadHeaderTimeout: 10 * time.Second,
		}

		serverErr := make(chan error, 1)
		go func() {
			slog.Info("http server listening", "address", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-serverErr:
			if err != nil {
				return fmt.Errorf("http server failed: %w", err)
			}
			return nil
		case sig := <-quit:
			slog.Info("shutdown signal received", "signal", sig.String())
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}

		slog.Info("server stopped")
		return nil
	},
}

func init() {
	cmd.RootCmd.AddCommand(RunServerCmd)
}
