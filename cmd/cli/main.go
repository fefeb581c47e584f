package main

import (
	"fmt"
	"os"

	"github.com/de-tools/retention-audit/pkg/runtime/terminal"
	"github.com/de-tools/retention-audit/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("AUDIT_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.Log.ZerologLevel()).
		With().Timestamp().Logger()

	settings, err := cfg.AuditSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Settings: settings,
		Logger:   logger,
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
