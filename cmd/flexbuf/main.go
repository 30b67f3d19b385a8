package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	capturecmd "github.com/pavver/flexbuf/internal/cmd/capture"
	serverrun "github.com/pavver/flexbuf/internal/cmd/server"
	cfgpkg "github.com/pavver/flexbuf/internal/config"
	logpkg "github.com/pavver/flexbuf/pkg/log"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	// Respect FLEXBUF_LOG_LEVEL for CLI output before config is loaded.
	level := os.Getenv("FLEXBUF_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "flexbuf",
		Short: "flexbuf ring buffer CLI",
		Long:  "flexbuf keeps the most recent records from a stream in a fixed-capacity ring buffer. This CLI runs the diagnostic server and one-shot captures.",
	}

	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Ingest stdin and serve diagnostic endpoints over HTTP",
		Aliases: []string{"server"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			httpAddr, _ := cmd.Flags().GetString("http")
			capacity, _ := cmd.Flags().GetInt("capacity")
			maxRecords, _ := cmd.Flags().GetInt("max-records")
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")

			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfgpkg.FromEnv(&cfg)
			if httpAddr != "" {
				cfg.HTTPAddr = httpAddr
			}
			if capacity > 0 {
				cfg.Capacity = capacity
			}
			if maxRecords > 0 {
				cfg.MaxRecords = maxRecords
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			if logFormat != "" {
				cfg.Log.Format = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := serverrun.Run(ctx, serverrun.Options{Config: cfg}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
	serveCmd.Flags().String("config", os.Getenv("FLEXBUF_CONFIG"), "Config file path (JSON or YAML)")
	serveCmd.Flags().String("http", "", "HTTP listen address (overrides config)")
	serveCmd.Flags().Int("capacity", 0, "Buffer capacity in cells (overrides config)")
	serveCmd.Flags().Int("max-records", 0, "Maximum retained records (overrides config)")
	serveCmd.Flags().String("log-level", os.Getenv("FLEXBUF_LOG_LEVEL"), "Log level: debug|info|warn|error")
	serveCmd.Flags().String("log-format", os.Getenv("FLEXBUF_LOG_FORMAT"), "Log format: text|json (default text)")
	rootCmd.AddCommand(serveCmd)

	rootCmd.AddCommand(capturecmd.NewCommand())

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println("flexbuf", version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
