// =============================================================================
// QBO Payload Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It orchestrates the entire
// conversion pipeline for a single file, from parsing to JSON output.
//
// CONVERSION PIPELINE:
//   1. Parse the input file (CSV or XLSX, by extension)
//   2. Group rows into documents
//   3. Apply the profile's transformation rules
//   4. Validate the transformed rows
//   5. Build a QBO request per document
//   6. Drop or reject documents with errors
//   7. Write the request bodies
//   8. Archive the input file and write the error log
//
// CONCURRENCY:
//   A Converter handles one file and holds no shared state; callers run one
//   per file in their own goroutines.
//
// =============================================================================

package converter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
	"github.com/ginjaninja78/qbo-request-builder/internal/csvparser"
	"github.com/ginjaninja78/qbo-request-builder/internal/jsonwriter"
	"github.com/ginjaninja78/qbo-request-builder/internal/types"
	"github.com/ginjaninja78/qbo-request-builder/internal/validation"
	"github.com/ginjaninja78/qbo-request-builder/internal/xlsxparser"
	"github.com/ginjaninja78/qbo-request-builder/pkg/qbo"
	"github.com/ginjaninja78/qbo-request-builder/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// Profile is the code of the profile the file was processed with.
	Profile string

	// OutputFiles are the written JSON files. Empty on failure and in dry
	// runs.
	OutputFiles []string

	// Outputs holds the rendered bodies. Filled in dry runs only.
	Outputs []jsonwriter.Output

	// ArchivePath is where the input file was moved to, if it was.
	ArchivePath string

	// ErrorLog is the path of the error log written for this file, if any.
	ErrorLog string

	// Issues lists every validation error and warning found.
	Issues []*validation.ValidationError

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// RowsProcessed is the number of data rows read.
	RowsProcessed int

	// DocumentsCreated is the number of documents written.
	DocumentsCreated int

	// DocumentsSkipped is the number of documents dropped because of errors.
	DocumentsSkipped int

	// LinesCreated is the number of lines across the written documents.
	LinesCreated int

	// ValidationErrors is the number of fatal issues.
	ValidationErrors int

	// Warnings is the number of non-fatal issues.
	Warnings int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Logger is the logging surface the converter needs. *slog.Logger
// satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Converter handles the conversion of a single input file.
type Converter struct {
	inputPath  string
	profile    *config.ProfileConfig
	mainConfig *config.MainConfig
	files      *utils.FileManager
	writer     *jsonwriter.Writer
	logger     Logger
	dryRun     bool
	validation validation.ValidationOptions
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger Logger) Option {
	return func(c *Converter) { c.logger = logger }
}

// WithDryRun renders the output without writing files, archiving the input
// or writing an error log.
func WithDryRun(dryRun bool) Option {
	return func(c *Converter) { c.dryRun = dryRun }
}

// WithValidationOptions sets how strictly rows are validated. When
// StopOnFirstError is set, the first fatal issue fails the file even with
// continue_on_error.
func WithValidationOptions(opts validation.ValidationOptions) Option {
	return func(c *Converter) { c.validation = opts }
}

// New creates a Converter for the file at inputPath.
func New(inputPath string, profile *config.ProfileConfig, mainConfig *config.MainConfig, opts ...Option) *Converter {
	c := &Converter{
		inputPath:  inputPath,
		profile:    profile,
		mainConfig: mainConfig,
		files:      utils.NewFileManager(mainConfig.InputDir, mainConfig.OutputDir, mainConfig.InputArchiveDir),
		writer:     jsonwriter.New(jsonwriter.OptionsFromConfig(mainConfig)),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline for the file. ctx is checked between
// pipeline steps.
func (c *Converter) Run(ctx context.Context) (result Result) {
	startTime := time.Now()
	result = Result{FilePath: c.inputPath, Profile: c.profile.ProfileCode}
	defer func() { result.Stats.ProcessingTime = time.Since(startTime) }()

	log := c.logger
	log.Info("processing file", "file", c.inputPath, "profile", c.profile.ProfileCode, "resource", c.profile.Resource)

	// =========================================================================
	// STEP 1: PARSE INPUT
	// =========================================================================

	table, err := c.parse()
	if err != nil {
		result.Error = fmt.Errorf("failed to parse input: %w", err)
		return result
	}
	result.Stats.RowsProcessed = len(table.Rows)
	log.Debug("parsed input", "file", c.inputPath, "rows", len(table.Rows), "columns", len(table.Headers))

	// =========================================================================
	// STEP 2: GROUP ROWS INTO DOCUMENTS
	// =========================================================================

	groupBy := c.profile.TransactionGrouping.GroupByField
	if groupBy != "" && !slices.Contains(table.Headers, groupBy) {
		result.Error = fmt.Errorf("group_by_field column '%s' not found in input headers", groupBy)
		return result
	}
	docs := GroupDocuments(table, groupBy)
	log.Debug("grouped rows", "file", c.inputPath, "documents", len(docs))

	if err := ctx.Err(); err != nil {
		result.Error = err
		return result
	}

	// =========================================================================
	// STEP 3: APPLY TRANSFORMATION RULES
	// =========================================================================

	transformer, err := NewTransformer(c.profile.TransformationRules)
	if err != nil {
		result.Error = fmt.Errorf("invalid transformation rules: %w", err)
		return result
	}
	for i := range docs {
		if err := transformer.TransformDocument(&docs[i]); err != nil {
			result.Error = fmt.Errorf("failed to apply transformations: %w", err)
			return result
		}
	}

	// =========================================================================
	// STEP 4: VALIDATE ROWS
	// =========================================================================

	validated := validation.NewValidatorWithOptions(c.profile, c.validation).ValidateAll(docs)
	result.Issues = append(result.Issues, validated.Errors...)
	fatal := validated.FatalDocuments()
	stopped := c.validation.StopOnFirstError && !validated.IsValid

	// =========================================================================
	// STEP 5: BUILD REQUESTS
	// =========================================================================

	var built []BuiltDocument
	for _, doc := range docs {
		if stopped {
			break
		}
		if fatal[doc.Index] {
			continue
		}
		b, errs := BuildDocument(c.profile, doc)
		if len(errs) > 0 {
			result.Issues = append(result.Issues, errs...)
			fatal[doc.Index] = true
			continue
		}
		built = append(built, b)
	}

	for _, issue := range result.Issues {
		if issue.IsFatal() {
			result.Stats.ValidationErrors++
			log.Warn("validation error", "file", c.inputPath, "error", issue.Error())
		} else {
			result.Stats.Warnings++
			log.Debug("validation warning", "file", c.inputPath, "warning", issue.Error())
		}
	}
	result.Stats.DocumentsSkipped = len(fatal)

	// =========================================================================
	// STEP 6: DECIDE
	// =========================================================================

	if stopped {
		result.Error = fmt.Errorf("validation stopped at first error: %s", result.Issues[len(result.Issues)-1].Error())
		c.writeErrorLog(&result)
		return result
	}
	if len(fatal) > 0 && !c.mainConfig.ContinueOnError {
		result.Error = fmt.Errorf("validation failed with %d error(s) in %d document(s)",
			result.Stats.ValidationErrors, len(fatal))
		c.writeErrorLog(&result)
		return result
	}
	if len(built) == 0 {
		result.Error = fmt.Errorf("no documents to write")
		c.writeErrorLog(&result)
		return result
	}

	if err := ctx.Err(); err != nil {
		result.Error = err
		return result
	}

	resources := make([]qbo.Resource, len(built))
	for i, b := range built {
		resources[i] = b.Resource
		result.Stats.LinesCreated += b.Lines
	}
	result.Stats.DocumentsCreated = len(built)

	// =========================================================================
	// STEP 7: WRITE OUTPUT
	// =========================================================================

	if c.dryRun {
		outputs, err := c.writer.Render(c.profile.ProfileCode, resources)
		if err != nil {
			result.Error = fmt.Errorf("failed to render output: %w", err)
			return result
		}
		result.Outputs = outputs
		result.Success = true
		log.Info("dry run complete", "file", c.inputPath, "documents", len(built), "outputs", len(outputs))
		return result
	}

	paths, err := c.writer.Write(c.mainConfig.OutputDir, c.profile.ProfileCode, resources)
	result.OutputFiles = paths
	if err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}
	for _, p := range paths {
		log.Info("wrote output", "file", c.inputPath, "output", p)
	}

	// =========================================================================
	// STEP 8: ARCHIVE AND REPORT
	// =========================================================================

	c.writeErrorLog(&result)

	archived, err := c.files.ArchiveInputFile(c.inputPath)
	if err != nil {
		// The output is already written; a failed archive does not fail the file.
		log.Warn("failed to archive input", "file", c.inputPath, "error", err)
	} else {
		result.ArchivePath = archived
		log.Debug("archived input", "file", c.inputPath, "archive", archived)
	}

	result.Success = true
	return result
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func (c *Converter) parse() (*types.Table, error) {
	switch strings.ToLower(filepath.Ext(c.inputPath)) {
	case ".xlsx":
		return xlsxparser.Parse(c.inputPath, c.profile.SheetName, c.profile.CSVSettings)
	case ".csv", ".txt", ".tsv":
		return csvparser.Parse(c.inputPath, c.profile.CSVSettings)
	}
	return nil, fmt.Errorf("unsupported input file type %q", filepath.Ext(c.inputPath))
}

// writeErrorLog writes result's issues to the output directory. Dry runs
// only log.
func (c *Converter) writeErrorLog(result *Result) {
	if len(result.Issues) == 0 || c.dryRun {
		return
	}

	now := time.Now()
	entries := make([]utils.ErrorLogEntry, 0, len(result.Issues))
	for _, issue := range result.Issues {
		entries = append(entries, utils.ErrorLogEntry{
			Timestamp:     now,
			FileName:      filepath.Base(c.inputPath),
			ErrorType:     fmt.Sprintf("%s/%s", issue.Severity, issue.Rule),
			ErrorMessage:  issue.Message,
			RowNumber:     issue.RowNumber,
			FieldName:     issue.Field,
			FieldValue:    issue.Value,
			DocumentIndex: issue.DocumentIndex,
			GroupKey:      issue.GroupKey,
		})
	}

	path, err := utils.WriteErrorLog(entries, c.mainConfig.OutputDir, c.inputPath)
	if err != nil {
		c.logger.Error("failed to write error log", "file", c.inputPath, "error", err)
		return
	}
	result.ErrorLog = path
	c.logger.Info("wrote error log", "file", c.inputPath, "log", path)
}

// GroupDocuments groups rows into documents by the value of groupBy, in
// first-seen order. An empty groupBy makes every row its own document.
// Documents are numbered from 1.
func GroupDocuments(table *types.Table, groupBy string) []types.Document {
	if groupBy == "" {
		docs := make([]types.Document, len(table.Rows))
		for i, row := range table.Rows {
			docs[i] = types.Document{Index: i + 1, Rows: []types.Row{row}}
		}
		return docs
	}

	index := make(map[string]int)
	var docs []types.Document
	for _, row := range table.Rows {
		key := row.Get(groupBy)
		i, ok := index[key]
		if !ok {
			i = len(docs)
			index[key] = i
			docs = append(docs, types.Document{Index: i + 1, GroupKey: key})
		}
		docs[i].Rows = append(docs[i].Rows, row)
	}
	return docs
}
