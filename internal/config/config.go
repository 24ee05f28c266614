// =============================================================================
// QBO Payload Converter - Configuration Module
// =============================================================================
//
// Loads the main application configuration and the per-profile
// configurations that describe how an input file becomes QBO request bodies.
//
// CONFIGURATION FILES:
//   1. Main Config (config.yaml): directories, logging and output settings
//   2. Profile Configs (configs/*.yaml): one file per kind of input file
//
// A profile names the QBO resource it produces (Invoice, SalesReceipt or
// Payment), the files it applies to, and the column each QBO field is read
// from.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

const (
	// OutputModePayload writes one request body per document.
	OutputModePayload = "payload"

	// OutputModeBatch writes BatchItemRequest envelopes of up to 30 documents.
	OutputModeBatch = "batch"
)

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is scanned for CSV and XLSX files to process.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir receives the generated JSON files.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir receives input files after successful processing.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// ConfigsDir holds the profile configurations.
	// Default: "./configs"
	ConfigsDir string `yaml:"configs_dir"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogFile receives a copy of the log output. Empty disables file logging.
	LogFile string `yaml:"log_file"`

	// LogLevel is one of "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputFileFormat names output files. Placeholders:
	//   {uuid}      - a random UUID
	//   {timestamp} - current time (YYYYMMDD_HHMMSS)
	//   {profile}   - profile code
	//   {resource}  - QBO resource name, or "batch"
	// Default: "{profile}_{resource}_{uuid}.json"
	OutputFileFormat string `yaml:"output_file_format"`

	// OutputMode is OutputModePayload or OutputModeBatch.
	// Default: "payload"
	OutputMode string `yaml:"output_mode"`

	// Indent pretty-prints output files with two-space indentation.
	Indent bool `yaml:"indent"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency is the number of files processed at once.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError writes the documents that converted cleanly even when
	// other documents in the same file had row issues.
	ContinueOnError bool `yaml:"continue_on_error"`

	// WatchDebounceMS is how long the watch command waits after the last
	// file event before processing a file.
	// Default: 500
	WatchDebounceMS int `yaml:"watch_debounce_ms"`
}

// =============================================================================
// PROFILE CONFIGURATION STRUCTURE
// =============================================================================

// ProfileConfig describes how one kind of input file is converted.
type ProfileConfig struct {
	// ProfileName is the human-readable name used in logs.
	ProfileName string `yaml:"profile_name"`

	// ProfileCode is a short code used in output file names. Must be unique.
	ProfileCode string `yaml:"profile_code"`

	// Resource is the QBO resource built for each document: "Invoice",
	// "SalesReceipt" or "Payment".
	Resource string `yaml:"resource"`

	// FileMatchingPatterns are glob patterns matched against input file
	// names, e.g. "invoices_*.csv".
	FileMatchingPatterns []string `yaml:"file_matching_patterns"`

	// CSVSettings apply to .csv inputs.
	CSVSettings CSVSettings `yaml:"csv_settings"`

	// SheetName is the worksheet read from .xlsx inputs. Empty selects the
	// first sheet.
	SheetName string `yaml:"sheet_name,omitempty"`

	// DateLayout is the Go time layout of date columns. Empty accepts
	// RFC 3339 timestamps and zone-less "2006-01-02[ 15:04:05]" values.
	DateLayout string `yaml:"date_layout,omitempty"`

	// TransactionGrouping decides which rows form one document.
	TransactionGrouping TransactionGrouping `yaml:"transaction_grouping"`

	// FieldMapping maps a field key (see Fields) to the input column it is
	// read from.
	FieldMapping map[string]string `yaml:"field_mapping"`

	// TransformationRules are applied to column values before mapping.
	TransformationRules []TransformationRule `yaml:"transformation_rules"`

	// StaticFields supply constant values for field keys.
	StaticFields []StaticField `yaml:"static_fields"`
}

// CSVSettings contains settings for parsing CSV files.
type CSVSettings struct {
	// Delimiter separates fields. Accepts a single character or one of
	// "tab", "pipe", "semicolon".
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// HeaderRows is the number of header rows; multi-row headers are merged
	// column by column.
	// Default: 1
	HeaderRows int `yaml:"header_rows"`

	// DataStartRow is the 1-indexed row where data begins.
	// Default: HeaderRows + 1
	DataStartRow int `yaml:"data_start_row"`

	// Comment skips lines starting with this character.
	Comment string `yaml:"comment,omitempty"`
}

// TransformationRule defines the actions applied to one column.
type TransformationRule struct {
	// Field is the input column header.
	Field string `yaml:"field"`

	// Actions run in order.
	Actions []TransformationAction `yaml:"actions"`
}

// TransformationAction is a single transformation step.
//
// Supported types: trim, uppercase, lowercase, prepend_string, append_string,
// pad_zeros_to_length, replace, regex_replace, lookup, if_empty_use_default,
// format_date ("input_layout|output_layout"), format_number (decimal places).
type TransformationAction struct {
	Type        string            `yaml:"type"`
	Value       string            `yaml:"value"`
	Find        string            `yaml:"find,omitempty"`
	LookupTable map[string]string `yaml:"lookup_table,omitempty"`
}

// TransactionGrouping defines how rows are grouped into documents.
type TransactionGrouping struct {
	// GroupByField is the column whose value identifies a document. Rows
	// sharing a value become one document, in first-seen order. Empty makes
	// every row its own document.
	GroupByField string `yaml:"group_by_field"`
}

// StaticField sets a field key to a constant.
type StaticField struct {
	// Field is a field key, e.g. "currency_ref" or "apply_tax_after_discount".
	Field string `yaml:"field"`

	// Value is a scalar. Boolean fields require a YAML boolean.
	Value any `yaml:"value"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the main configuration from a YAML file, applies
// defaults, validates it and creates the working directories.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func applyMainConfigDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.InputArchiveDir == "" {
		config.InputArchiveDir = "./input_archive"
	}
	if config.ConfigsDir == "" {
		config.ConfigsDir = "./configs"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.OutputFileFormat == "" {
		config.OutputFileFormat = "{profile}_{resource}_{uuid}.json"
	}
	if config.OutputMode == "" {
		config.OutputMode = OutputModePayload
	}
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = 4
	}
	if config.WatchDebounceMS <= 0 {
		config.WatchDebounceMS = 500
	}
}

func validateMainConfig(config *MainConfig) error {
	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q must be one of debug, info, warn, error", config.LogLevel)
	}

	switch config.OutputMode {
	case OutputModePayload, OutputModeBatch:
	default:
		return fmt.Errorf("output_mode %q must be %q or %q", config.OutputMode, OutputModePayload, OutputModeBatch)
	}

	dirs := []string{
		config.InputDir,
		config.OutputDir,
		config.InputArchiveDir,
		config.ConfigsDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// LoadProfileConfigs loads every *.yaml and *.yml profile in configsDir, in
// file name order. Profiles are matched against input files in that order.
func LoadProfileConfigs(configsDir string) ([]*ProfileConfig, error) {
	files, err := filepath.Glob(filepath.Join(configsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list config files: %w", err)
	}
	ymlFiles, err := filepath.Glob(filepath.Join(configsDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list config files: %w", err)
	}
	files = append(files, ymlFiles...)

	profiles := make([]*ProfileConfig, 0, len(files))
	seen := make(map[string]string)

	for _, file := range files {
		profile, err := LoadProfileConfig(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		if prev, dup := seen[profile.ProfileCode]; dup {
			return nil, fmt.Errorf("profile_code %q is used by both %s and %s", profile.ProfileCode, prev, file)
		}
		seen[profile.ProfileCode] = file
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// LoadProfileConfig loads and validates a single profile file. A profile
// without profile_code takes the file name without extension.
func LoadProfileConfig(filePath string) (*ProfileConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var profile ProfileConfig
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	if profile.ProfileCode == "" {
		profile.ProfileCode = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}
	applyProfileDefaults(&profile)

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return &profile, nil
}

func applyProfileDefaults(profile *ProfileConfig) {
	if profile.ProfileName == "" {
		profile.ProfileName = profile.ProfileCode
	}
	if profile.CSVSettings.Delimiter == "" {
		profile.CSVSettings.Delimiter = ","
	}
	if profile.CSVSettings.HeaderRows <= 0 {
		profile.CSVSettings.HeaderRows = 1
	}
	if profile.CSVSettings.DataStartRow <= 0 {
		profile.CSVSettings.DataStartRow = profile.CSVSettings.HeaderRows + 1
	}
	if profile.FieldMapping == nil {
		profile.FieldMapping = map[string]string{}
	}
}

// Validate checks the profile against the field keys of its resource.
// All problems are reported together.
func (p *ProfileConfig) Validate() error {
	var errs []error

	if !IsSupportedResource(p.Resource) {
		errs = append(errs, fmt.Errorf("resource %q must be one of %s", p.Resource, strings.Join(SupportedResources, ", ")))
	}
	if len(p.FileMatchingPatterns) == 0 {
		errs = append(errs, errors.New("file_matching_patterns must not be empty"))
	}
	for _, pattern := range p.FileMatchingPatterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			errs = append(errs, fmt.Errorf("file_matching_patterns: bad pattern %q: %w", pattern, err))
		}
	}
	if p.CSVSettings.DataStartRow <= p.CSVSettings.HeaderRows {
		errs = append(errs, fmt.Errorf("csv_settings.data_start_row %d must come after %d header rows",
			p.CSVSettings.DataStartRow, p.CSVSettings.HeaderRows))
	}

	for key, column := range p.FieldMapping {
		spec, ok := LookupField(key)
		if !ok {
			errs = append(errs, fmt.Errorf("field_mapping: unknown field %q", key))
			continue
		}
		if spec.Kind == KindBoolean {
			errs = append(errs, fmt.Errorf("field_mapping: %q can only be set in static_fields", key))
		}
		if column == "" {
			errs = append(errs, fmt.Errorf("field_mapping: %q has no column", key))
		}
	}

	for _, sf := range p.StaticFields {
		if err := validateStaticField(sf); err != nil {
			errs = append(errs, err)
		}
	}

	if IsSupportedResource(p.Resource) {
		for _, key := range RequiredFields(p.Resource) {
			if _, mapped := p.FieldMapping[key]; !mapped && !p.HasStatic(key) {
				errs = append(errs, fmt.Errorf("%s profiles must map %q", p.Resource, key))
			}
		}
	}

	for _, rule := range p.TransformationRules {
		if rule.Field == "" {
			errs = append(errs, errors.New("transformation_rules: rule without field"))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("profile %q: %w", p.ProfileCode, errors.Join(errs...))
	}
	return nil
}

// Matches reports whether fileName matches one of the profile's patterns.
func (p *ProfileConfig) Matches(fileName string) bool {
	base := filepath.Base(fileName)
	for _, pattern := range p.FileMatchingPatterns {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// Static returns the static value configured for key.
func (p *ProfileConfig) Static(key string) (any, bool) {
	for _, sf := range p.StaticFields {
		if sf.Field == key {
			return sf.Value, true
		}
	}
	return nil, false
}

// HasStatic reports whether key has a static value.
func (p *ProfileConfig) HasStatic(key string) bool {
	_, ok := p.Static(key)
	return ok
}

// MatchProfile returns the first profile whose patterns match fileName.
func MatchProfile(profiles []*ProfileConfig, fileName string) (*ProfileConfig, bool) {
	for _, p := range profiles {
		if p.Matches(fileName) {
			return p, true
		}
	}
	return nil, false
}

// FindProfile returns the profile with the given code.
func FindProfile(profiles []*ProfileConfig, code string) (*ProfileConfig, bool) {
	for _, p := range profiles {
		if p.ProfileCode == code {
			return p, true
		}
	}
	return nil, false
}
