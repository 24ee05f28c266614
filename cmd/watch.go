// =============================================================================
// QBO Payload Converter - Watch Command
// =============================================================================
//
// Processes files as they are dropped into the input directory. Files
// already present when the command starts are processed first. Each new
// file is converted once it has not changed for watch_debounce_ms.
//
// COMMAND USAGE:
//   qbo-convert watch [--profile code] [--strict]
//
// Stops on interrupt.
//
// =============================================================================

package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/qbo-request-builder/internal/validation"
	"github.com/ginjaninja78/qbo-request-builder/internal/watcher"
	"github.com/ginjaninja78/qbo-request-builder/pkg/utils"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process input files as they arrive",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&profileCode, "profile", "", "Use the profile with this code instead of matching by file name")
	watchCmd.Flags().BoolVar(&strict, "strict", false, "Treat validation warnings as errors")
}

func runWatch(ctx context.Context) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	opts := runOptions{
		Profile:    profileCode,
		Validation: validation.ValidationOptions{TreatWarningsAsErrors: strict},
	}

	existing, err := selectInputFiles(env, "")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		env.logger.Info("processing existing files", "count", len(existing))
		processFiles(ctx, env, existing, opts)
	}

	err = watcher.Watch(ctx, env.main.InputDir, watcher.Options{
		Debounce: time.Duration(env.main.WatchDebounceMS) * time.Millisecond,
		Filter:   utils.IsInputFile,
		Logger:   env.logger,
	}, func(paths []string) {
		summary := processFiles(ctx, env, paths, opts)
		env.logger.Info("batch complete",
			"files", summary.TotalFiles,
			"successful", summary.SuccessfulFiles,
			"failed", summary.FailedFiles,
			"documents", summary.TotalDocuments)
	})
	if err != nil {
		return err
	}

	env.logger.Info("watch stopped")
	return nil
}
