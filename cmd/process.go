// =============================================================================
// QBO Payload Converter - Process Command
// =============================================================================
//
// This file defines the 'process' command, the main command for converting
// input files to QBO request bodies. It orchestrates the pipeline across
// files.
//
// COMMAND USAGE:
//   qbo-convert process [flags]
//
// FLAGS:
//   --dry-run  : Print the request bodies instead of writing them
//   --file     : Process only this file
//   --profile  : Use this profile instead of matching by file name
//   --strict   : Treat validation warnings as errors
//
// PROCESSING PIPELINE:
//   1. Load configuration files
//   2. Discover input files in the input directory
//   3. Match each file to a profile
//   4. Convert files concurrently (at most max_concurrency at once)
//   5. Write a summary report
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
	"github.com/ginjaninja78/qbo-request-builder/internal/converter"
	"github.com/ginjaninja78/qbo-request-builder/internal/validation"
	"github.com/ginjaninja78/qbo-request-builder/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun prints output bodies instead of writing them.
var dryRun bool

// filePath is a single file to process.
var filePath string

// profileCode forces a profile.
var profileCode string

// strict treats validation warnings as errors.
var strict bool

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Convert input files into QBO request bodies",
	Long: `The process command scans the input directory for CSV and XLSX files,
matches each to a profile and converts it into QuickBooks Online JSON request
bodies.

Files are processed concurrently. Each file is processed independently, and
errors in one file do not affect the processing of others.

On successful processing:
  - The request bodies are placed in the output directory
  - The input file is moved to the input archive
  - A summary report is generated

On error:
  - An error log is created in the output directory
  - The input file remains in the input directory
  - Processing continues for other files`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Print the request bodies to stdout without writing or archiving anything",
	)

	processCmd.Flags().StringVar(
		&filePath,
		"file",
		"",
		"Process only this file",
	)

	processCmd.Flags().StringVar(
		&profileCode,
		"profile",
		"",
		"Use the profile with this code instead of matching by file name",
	)

	processCmd.Flags().BoolVar(
		&strict,
		"strict",
		false,
		"Treat validation warnings (such as inconsistent header values) as errors",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

func runProcess(ctx context.Context) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	fmt.Println("=== QBO Payload Converter ===")
	fmt.Printf("Loaded %d profile(s)\n", len(env.profiles))

	inputFiles, err := selectInputFiles(env, filePath)
	if err != nil {
		return err
	}
	if len(inputFiles) == 0 {
		fmt.Println("No input files found in the input directory.")
		return nil
	}
	fmt.Printf("Found %d file(s) to process\n", len(inputFiles))

	summary := processFiles(ctx, env, inputFiles, runOptions{
		DryRun:     dryRun,
		Profile:    profileCode,
		Validation: validation.ValidationOptions{TreatWarningsAsErrors: strict},
	})
	printSummary(summary)

	if !dryRun {
		path, err := utils.WriteSummaryLog(summary, env.main.OutputDir)
		if err != nil {
			env.logger.Error("failed to write summary", "error", err)
		} else {
			fmt.Printf("Summary written to %s\n", path)
		}
	}

	if summary.FailedFiles > 0 {
		return fmt.Errorf("%d of %d file(s) failed", summary.FailedFiles, summary.TotalFiles)
	}
	return nil
}

// selectInputFiles returns the single requested file, or every input file
// in the input directory.
func selectInputFiles(env *environment, single string) ([]string, error) {
	if single != "" {
		if !utils.FileExists(single) {
			return nil, fmt.Errorf("file not found: %s", single)
		}
		return []string{single}, nil
	}

	fm := utils.NewFileManager(env.main.InputDir, env.main.OutputDir, env.main.InputArchiveDir)
	files, err := fm.DiscoverInputFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to discover input files: %w", err)
	}
	return files, nil
}

// resolveProfile picks the forced profile or the first whose patterns match
// the file name.
func resolveProfile(profiles []*config.ProfileConfig, path, forced string) (*config.ProfileConfig, error) {
	if forced != "" {
		p, ok := config.FindProfile(profiles, forced)
		if !ok {
			return nil, fmt.Errorf("no profile with code %q", forced)
		}
		return p, nil
	}
	p, ok := config.MatchProfile(profiles, filepath.Base(path))
	if !ok {
		return nil, fmt.Errorf("no matching profile configuration found")
	}
	return p, nil
}

// runOptions are the per-run choices shared by every file of a run.
type runOptions struct {
	DryRun     bool
	Profile    string
	Validation validation.ValidationOptions
}

// processFiles converts files with at most env.main.MaxConcurrency running
// at once and returns the run summary.
func processFiles(ctx context.Context, env *environment, files []string, opts runOptions) utils.ProcessingSummary {
	summary := utils.ProcessingSummary{StartTime: time.Now(), TotalFiles: len(files)}

	var wg sync.WaitGroup
	sem := make(chan struct{}, max(env.main.MaxConcurrency, 1))
	results := make(chan converter.Result, len(files))

	for _, file := range files {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results <- converter.Result{FilePath: path, Error: ctx.Err()}
				return
			}

			profile, err := resolveProfile(env.profiles, path, opts.Profile)
			if err != nil {
				env.logger.Warn("skipping file", "file", path, "error", err)
				results <- converter.Result{FilePath: path, Error: err}
				return
			}

			conv := converter.New(path, profile, env.main,
				converter.WithLogger(env.logger.With("profile", profile.ProfileCode)),
				converter.WithDryRun(opts.DryRun),
				converter.WithValidationOptions(opts.Validation))
			results <- conv.Run(ctx)
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var collected []converter.Result
	for result := range results {
		collected = append(collected, result)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].FilePath < collected[j].FilePath })

	for _, result := range collected {
		summary.TotalRows += result.Stats.RowsProcessed
		summary.ValidationErrors += result.Stats.ValidationErrors
		summary.SkippedDocuments += result.Stats.DocumentsSkipped

		if !result.Success {
			summary.FailedFiles++
			summary.FailedFilesList = append(summary.FailedFilesList, utils.FailedFileInfo{
				InputFile:    result.FilePath,
				ErrorMessage: fmt.Sprint(result.Error),
				ErrorLog:     result.ErrorLog,
			})
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(result.FilePath), result.Error)
			continue
		}

		summary.SuccessfulFiles++
		summary.TotalDocuments += result.Stats.DocumentsCreated
		summary.TotalLines += result.Stats.LinesCreated
		summary.ProcessedFiles = append(summary.ProcessedFiles, utils.ProcessedFileInfo{
			InputFile:   result.FilePath,
			OutputFiles: result.OutputFiles,
			ArchivePath: result.ArchivePath,
			Rows:        result.Stats.RowsProcessed,
			Documents:   result.Stats.DocumentsCreated,
			Lines:       result.Stats.LinesCreated,
			ProcessTime: result.Stats.ProcessingTime,
		})

		if opts.DryRun {
			fmt.Printf("  ✓ %s -> %d body(ies) (dry run)\n", filepath.Base(result.FilePath), len(result.Outputs))
			for _, out := range result.Outputs {
				fmt.Printf("--- %s (%s, %d item(s)) ---\n", out.Name, out.Resource, out.Items)
				os.Stdout.Write(out.Body)
				fmt.Println()
			}
			continue
		}
		fmt.Printf("  ✓ %s -> %d file(s)\n", filepath.Base(result.FilePath), len(result.OutputFiles))
	}

	summary.EndTime = time.Now()
	return summary
}

func printSummary(summary utils.ProcessingSummary) {
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:       %d\n", summary.TotalFiles)
	fmt.Printf("Successful:        %d\n", summary.SuccessfulFiles)
	fmt.Printf("Errors:            %d\n", summary.FailedFiles)
	fmt.Printf("Documents written: %d\n", summary.TotalDocuments)
	fmt.Printf("Documents skipped: %d\n", summary.SkippedDocuments)
	fmt.Printf("Time elapsed:      %s\n", summary.EndTime.Sub(summary.StartTime))

	if summary.FailedFiles > 0 {
		fmt.Println("\nErrors have been logged to the output directory.")
	}
}
