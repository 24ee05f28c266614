// =============================================================================
// QBO Payload Converter - Validation Engine
// =============================================================================
//
// Validates grouped input rows against a profile before any request body is
// built:
//   - Required field checks (per resource)
//   - Decimal and date parsing of typed columns
//   - Fixed QBO vocabularies (payment type, linked transaction type)
//   - Consistency of header-level fields across the rows of one document
//
// ERROR HANDLING:
//   - Errors are collected, not thrown immediately
//   - Each error carries the document, source row, field key and column
//   - Warnings do not block a document; errors do
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
	"github.com/ginjaninja78/qbo-request-builder/internal/types"
	"github.com/ginjaninja78/qbo-request-builder/pkg/qbo"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Rules reported by the validator. Builder failures use "qbo_" plus the
// builder's rule name.
const (
	RuleRequired    = "required"
	RuleDecimal     = "decimal"
	RuleDate        = "date"
	RuleVocabulary  = "vocabulary"
	RuleConsistency = "consistency"
)

// ValidationError is a single problem found in an input file.
type ValidationError struct {
	// Severity is SeverityError or SeverityWarning.
	Severity string

	// Field is the profile field key, or the QBO field path for builder
	// failures.
	Field string

	// Column is the input column the value came from, when known.
	Column string

	// Value is the offending value.
	Value string

	// Rule is the violated rule.
	Rule string

	// Message is a human-readable description.
	Message string

	// DocumentIndex is the 1-indexed document the row belongs to.
	DocumentIndex int

	// GroupKey is the document's grouping value.
	GroupKey string

	// RowNumber is the row number in the source file.
	RowNumber int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] Document %d", strings.ToUpper(e.Severity), e.DocumentIndex)
	if e.GroupKey != "" {
		fmt.Fprintf(&b, " (%s)", e.GroupKey)
	}
	if e.RowNumber > 0 {
		fmt.Fprintf(&b, ", row %d", e.RowNumber)
	}
	fmt.Fprintf(&b, ", field '%s'", e.Field)
	if e.Column != "" {
		fmt.Fprintf(&b, " (column '%s')", e.Column)
	}
	fmt.Fprintf(&b, ": %s (value: '%s')", e.Message, e.Value)
	return b.String()
}

// IsFatal reports whether the error blocks its document.
func (e *ValidationError) IsFatal() bool {
	return e.Severity != SeverityWarning
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// ValidationResult contains the results of validation.
type ValidationResult struct {
	// IsValid is true if there are no fatal errors.
	IsValid bool

	// Errors contains all validation errors, warnings included.
	Errors []*ValidationError

	ErrorCount   int
	WarningCount int

	DocumentsValidated int
}

// FatalDocuments returns the indexes of documents with at least one fatal
// error.
func (r *ValidationResult) FatalDocuments() map[int]bool {
	out := make(map[int]bool)
	for _, e := range r.Errors {
		if e.IsFatal() {
			out[e.DocumentIndex] = true
		}
	}
	return out
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator checks documents against one profile.
type Validator struct {
	profile *config.ProfileConfig
	options ValidationOptions
}

// ValidationOptions contains options for validation.
type ValidationOptions struct {
	// StopOnFirstError stops validation after the first fatal error.
	StopOnFirstError bool

	// TreatWarningsAsErrors reports warnings with SeverityError, so the
	// documents they belong to are skipped like any other failure.
	TreatWarningsAsErrors bool
}

// NewValidator creates a Validator with default options.
func NewValidator(profile *config.ProfileConfig) *Validator {
	return &Validator{profile: profile}
}

// NewValidatorWithOptions creates a Validator with custom options.
func NewValidatorWithOptions(profile *config.ProfileConfig, options ValidationOptions) *Validator {
	return &Validator{profile: profile, options: options}
}

// Validate validates docs against profile and returns every problem found.
func Validate(docs []types.Document, profile *config.ProfileConfig) []*ValidationError {
	return NewValidator(profile).ValidateAll(docs).Errors
}

// ValidateAll validates all documents and returns a detailed result.
func (v *Validator) ValidateAll(docs []types.Document) *ValidationResult {
	result := &ValidationResult{
		IsValid:            true,
		Errors:             make([]*ValidationError, 0),
		DocumentsValidated: len(docs),
	}

	for _, doc := range docs {
		for _, err := range v.ValidateDocument(doc) {
			if !err.IsFatal() && v.options.TreatWarningsAsErrors {
				err.Severity = SeverityError
			}
			result.Errors = append(result.Errors, err)

			if !err.IsFatal() {
				result.WarningCount++
				continue
			}
			result.ErrorCount++
			result.IsValid = false
			if v.options.StopOnFirstError {
				return result
			}
		}
	}

	return result
}

// ValidateDocument validates one document. Header-level fields are checked
// on the first row; line fields on every row.
func (v *Validator) ValidateDocument(doc types.Document) []*ValidationError {
	var errs []*ValidationError

	required := make(map[string]bool)
	for _, key := range config.RequiredFields(v.profile.Resource) {
		required[key] = true
	}

	for _, spec := range config.Fields() {
		column, mapped := v.profile.FieldMapping[spec.Key]
		if !mapped {
			continue
		}

		rows := doc.Rows
		if !spec.Line {
			rows = []types.Row{doc.Header()}
			errs = append(errs, v.checkConsistency(doc, spec.Key, column)...)
		}

		for _, row := range rows {
			value := row.Get(column)
			if value == "" {
				if required[spec.Key] && !v.profile.HasStatic(spec.Key) {
					errs = append(errs, v.newError(doc, row, spec.Key, column, value,
						RuleRequired, fmt.Sprintf("required field '%s' is empty", spec.Key)))
				}
				continue
			}
			if msg := v.checkValue(spec, value); msg != "" {
				errs = append(errs, v.newError(doc, row, spec.Key, column, value, ruleFor(spec), msg))
			}
		}
	}

	return errs
}

// checkValue returns a message when value cannot be used for spec.
func (v *Validator) checkValue(spec config.FieldSpec, value string) string {
	switch spec.Kind {
	case config.KindDecimal:
		if _, err := ParseDecimal(value); err != nil {
			return fmt.Sprintf("'%s' is not a valid decimal number", value)
		}
	case config.KindDate:
		if _, err := ParseDate(value, v.profile.DateLayout); err != nil {
			if v.profile.DateLayout != "" {
				return fmt.Sprintf("'%s' does not match date layout '%s'", value, v.profile.DateLayout)
			}
			return fmt.Sprintf("'%s' is not a valid date", value)
		}
	}

	var allowed []string
	switch spec.Key {
	case config.FieldPaymentType:
		allowed = qbo.PaymentTypes
	case config.FieldLinkedTxnType:
		allowed = qbo.LinkedTxnTypes
	}
	if allowed != nil {
		if err := qbo.SanitizeFromSet(spec.Key, value, allowed); err != nil {
			return err.Error()
		}
	}
	return ""
}

func ruleFor(spec config.FieldSpec) string {
	switch spec.Kind {
	case config.KindDecimal:
		return RuleDecimal
	case config.KindDate:
		return RuleDate
	default:
		return RuleVocabulary
	}
}

// checkConsistency warns when later rows of a document carry a different
// value for a header-level field than the first row.
func (v *Validator) checkConsistency(doc types.Document, key, column string) []*ValidationError {
	var errs []*ValidationError
	first := doc.Header().Get(column)
	for _, row := range doc.Rows[min(1, len(doc.Rows)):] {
		value := row.Get(column)
		if value != "" && value != first {
			e := v.newError(doc, row, key, column, value, RuleConsistency,
				fmt.Sprintf("differs from the document's first row ('%s'); the first row is used", first))
			e.Severity = SeverityWarning
			errs = append(errs, e)
		}
	}
	return errs
}

func (v *Validator) newError(doc types.Document, row types.Row, field, column, value, rule, msg string) *ValidationError {
	return &ValidationError{
		Severity:      SeverityError,
		Field:         field,
		Column:        column,
		Value:         value,
		Rule:          rule,
		Message:       msg,
		DocumentIndex: doc.Index,
		GroupKey:      doc.GroupKey,
		RowNumber:     row.Number,
	}
}

// =============================================================================
// BUILDER FAILURES
// =============================================================================

// FromBuilder converts the failures recorded by a qbo builder into
// validation errors attributed to row. Non-validation errors are reported
// with rule "qbo".
func FromBuilder(doc types.Document, row types.Row, err error) []*ValidationError {
	if err == nil {
		return nil
	}

	var out []*ValidationError
	for _, e := range flatten(err) {
		ve := &ValidationError{
			Severity:      SeverityError,
			DocumentIndex: doc.Index,
			GroupKey:      doc.GroupKey,
			RowNumber:     row.Number,
			Rule:          "qbo",
			Message:       e.Error(),
		}
		var qe *qbo.ValidationError
		if errors.As(e, &qe) {
			ve.Field = qe.Field
			ve.Value = fmt.Sprint(qe.Value)
			ve.Rule = "qbo_" + string(qe.Rule)
		}
		out = append(out, ve)
	}
	return out
}

func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatErrors renders errors for display or logging.
func FormatErrors(errs []*ValidationError) string {
	if len(errs) == 0 {
		return "No validation errors."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Validation completed with %d error(s):\n\n", len(errs))
	for i, err := range errs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, err.Error())
	}
	return b.String()
}
