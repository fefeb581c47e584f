package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/de-tools/retention-audit/pkg/server"
	"github.com/de-tools/retention-audit/pkg/services/audit"
	"github.com/de-tools/retention-audit/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the retention audit API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (yaml, json or toml); AUDIT_* env vars override it")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stdout).
		Level(cfg.Log.ZerologLevel()).
		With().Timestamp().Logger()

	settings, err := cfg.AuditSettings()
	if err != nil {
		return fmt.Errorf("failed to load benchmarks: %w", err)
	}
	if cfg.Benchmarks.Path != "" {
		logger.Info().Msgf("Benchmarks at `%s` successfully loaded.", cfg.Benchmarks.Path)
	}
	logger.Info().Strs("industries", settings.Benchmarks.Industries()).Msg("benchmark industries")

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Calculator: audit.NewCalculator(settings),
		},
	})

	if err := webAPI.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
