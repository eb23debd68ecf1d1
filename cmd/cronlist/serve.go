package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xzzpig/cronlist/internal/api"
	"github.com/xzzpig/cronlist/internal/core/config"
	"github.com/xzzpig/cronlist/internal/core/datelist"
	"github.com/xzzpig/cronlist/internal/core/logger"
)

var servePort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the date list API over HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logger.Named("cmd.serve")

		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		config.Watch(func(updated *config.Config, err error) {
			if err != nil {
				log.Error("Failed to reload config", zap.Error(err))
				return
			}
			logger.InitLevelConfig(updated.Log.Levels, parseLevelOrInfo(updated.Log.Level))
			log.Info("Config reloaded, log levels re-applied")
		})

		builder := datelist.NewBuilder(cfg.Schedule.Timezone)
		if _, err := builder.Location(""); err != nil {
			return fmt.Errorf("schedule.timezone: %w", err)
		}

		r := api.SetupRouter(cfg, builder)

		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Info("Server starting", zap.String("address", addr), zap.String("timezone", cfg.Schedule.Timezone))

		srv := &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		serveErr := make(chan error, 1)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err, ok := <-serveErr:
			if ok {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-quit:
		}
		log.Info("Shutdown signal received, stopping server...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}

		log.Info("Server exiting")
		return nil
	},
}

func parseLevelOrInfo(s string) zapcore.Level {
	level, err := logger.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
