// =============================================================================
// QBO Payload Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (qbo-convert)
//   ├── processCmd  (qbo-convert process)
//   ├── validateCmd (qbo-convert validate)
//   ├── watchCmd    (qbo-convert watch)
//   └── versionCmd  (qbo-convert version)
//
// The root command owns the global flags (--config, --verbose), loading of
// the main and profile configurations, and logger setup.
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
var cfgFile string

// verbose forces debug logging.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

var rootCmd = &cobra.Command{
	Use:   "qbo-convert",
	Short: "QBO Payload Converter - Turn CSV and XLSX exports into QuickBooks Online request bodies",
	Long: `QBO Payload Converter reads CSV and XLSX exports, groups their rows into
documents and writes QuickBooks Online JSON request bodies (Invoice,
SalesReceipt, Payment) ready to post, one per document or as batch envelopes.

Key Features:
  - Per-profile column mapping, static fields and transformation rules
  - Row-level validation with detailed error logs
  - Concurrent processing of input files
  - Watch mode for drop-folder workflows
  - Automatic archival of processed inputs

Example Usage:
  qbo-convert process                     # Process all files in the input directory
  qbo-convert process --config ./my.yaml  # Use a custom configuration file
  qbo-convert validate                    # Check configuration and inputs without writing
  qbo-convert watch                       # Process files as they arrive`,

	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main(). Interrupts
// cancel the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// =============================================================================
// ENVIRONMENT
// =============================================================================

// environment is what every working command needs: the loaded
// configuration and a logger.
type environment struct {
	main     *config.MainConfig
	profiles []*config.ProfileConfig
	logger   *slog.Logger
	closeLog func() error
}

// loadEnvironment loads the main configuration, every profile, and sets up
// logging. Call close when done.
func loadEnvironment() (*environment, error) {
	mainConfig, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load main config: %w", err)
	}

	logger, closeLog, err := newLogger(mainConfig, verbose)
	if err != nil {
		return nil, err
	}

	profiles, err := config.LoadProfileConfigs(mainConfig.ConfigsDir)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to load profile configs: %w", err)
	}
	logger.Debug("loaded configuration", "config", cfgFile, "profiles", len(profiles))

	return &environment{
		main:     mainConfig,
		profiles: profiles,
		logger:   logger,
		closeLog: closeLog,
	}, nil
}

func (e *environment) close() {
	if err := e.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
}

// newLogger builds a text logger on stderr at cfg.LogLevel, also writing to
// cfg.LogFile when set. debug overrides the level.
func newLogger(cfg *config.MainConfig, debug bool) (*slog.Logger, func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log_level: %w", err)
	}
	if debug {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	closeLog := func() error { return nil }

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = io.MultiWriter(os.Stderr, f)
		closeLog = f.Close
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closeLog, nil
}
