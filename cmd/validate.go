// =============================================================================
// QBO Payload Converter - Validate Command
// =============================================================================
//
// Checks configuration and inputs without writing anything:
//   1. Load and validate the main and profile configurations
//   2. Match every input file to a profile
//   3. List the worksheets of XLSX inputs and the one that will be read
//   4. Run each file through the pipeline in dry-run mode and report issues
//
// COMMAND USAGE:
//   qbo-convert validate [--file path] [--profile code] [--strict] [--fail-fast]
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
	"github.com/ginjaninja78/qbo-request-builder/internal/converter"
	"github.com/ginjaninja78/qbo-request-builder/internal/validation"
	"github.com/ginjaninja78/qbo-request-builder/internal/xlsxparser"
)

// failFast stops checking a file at its first error.
var failFast bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and input files without writing output",
	Long: `The validate command loads every configuration file, then runs each input
file through parsing, transformation, validation and request building without
writing output, archiving or error logs. Every issue found is printed.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&filePath, "file", "", "Validate only this file")
	validateCmd.Flags().StringVar(&profileCode, "profile", "", "Use the profile with this code instead of matching by file name")
	validateCmd.Flags().BoolVar(&strict, "strict", false, "Treat validation warnings as errors")
	validateCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Report only the first error of each file")
}

func runValidate(ctx context.Context) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	fmt.Printf("Configuration OK: %d profile(s)\n", len(env.profiles))
	for _, p := range env.profiles {
		fmt.Printf("  %-12s %-14s %v\n", p.ProfileCode, p.Resource, p.FileMatchingPatterns)
	}

	files, err := selectInputFiles(env, filePath)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		profile, err := resolveProfile(env.profiles, path, profileCode)
		if err != nil {
			failed++
			fmt.Printf("\n✗ %s: %v\n", filepath.Base(path), err)
			continue
		}

		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			fmt.Printf("\n%s\n", describeSheets(path, profile))
		}

		result := converter.New(path, profile, env.main,
			converter.WithLogger(env.logger),
			converter.WithDryRun(true),
			converter.WithValidationOptions(validation.ValidationOptions{
				StopOnFirstError:      failFast,
				TreatWarningsAsErrors: strict,
			})).Run(ctx)

		if result.Success && result.Stats.DocumentsSkipped == 0 {
			fmt.Printf("\n✓ %s (%s): %d document(s), %d line(s)\n", filepath.Base(path), profile.ProfileCode,
				result.Stats.DocumentsCreated, result.Stats.LinesCreated)
		} else {
			failed++
			fmt.Printf("\n✗ %s (%s): %v\n", filepath.Base(path), profile.ProfileCode, describeFailure(result))
		}
		if len(result.Issues) > 0 {
			fmt.Print(validation.FormatErrors(result.Issues))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) have problems", failed, len(files))
	}
	return nil
}

// describeSheets lists the workbook's sheets and names the one the profile
// reads: its sheet_name, or the first sheet.
func describeSheets(path string, profile *config.ProfileConfig) string {
	names, err := xlsxparser.SheetNames(path)
	if err != nil {
		return fmt.Sprintf("  sheets: %v", err)
	}
	reading := profile.SheetName
	if reading == "" && len(names) > 0 {
		reading = names[0]
	}
	return fmt.Sprintf("  sheets: %s (reading '%s')", strings.Join(names, ", "), reading)
}

func describeFailure(result converter.Result) string {
	if result.Error != nil {
		return result.Error.Error()
	}
	return fmt.Sprintf("%d document(s) would be skipped", result.Stats.DocumentsSkipped)
}
