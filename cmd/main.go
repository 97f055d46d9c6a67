package main

import (
	"log/slog"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"adrecon/internal/config"
)

var (
	cfg    config.Config
	logger *slog.Logger

	// caught is the signal that stopped the server, if any.
	caught os.Signal
)

var rootCmd = &cobra.Command{
	Use:           "adrecon",
	Short:         "Multi-source campaign metric reconciliation service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration from environment variables.
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		// Initialise structured logger based on configuration.
		var handler slog.Handler
		opts := cfg.Log.HandlerOptions()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, opts)
		default:
			handler = slog.NewTextHandler(os.Stdout, opts)
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// main is the entry point of adrecon. The serve command exits with
// 128+signal after a graceful shutdown, any failure exits with 1.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("command failed", slog.Any("error", err))
		return
	}
	exitCode = 0
	if sig, ok := caught.(syscall.Signal); ok {
		exitCode = 128 + int(sig)
	}
}
