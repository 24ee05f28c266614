// =============================================================================
// QBO Request Builder - Base Builder
// =============================================================================
//
// Every builder in this package embeds BaseBuilder. It owns the Request
// mapping, serializes it, and provides the validate-then-write helpers the
// field setters are made of.
//
// ERROR HANDLING:
//   Setters return the builder so calls can be chained. A setter whose value
//   fails validation leaves the mapping untouched and records a
//   *ValidationError instead. Recorded errors surface through Err(), Errors()
//   and ToJSON(). Writing the same field again with a valid value clears the
//   failure recorded for that field.
//
// =============================================================================

package qbo

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"
)

// Builder is implemented by every builder: it exposes the current
// serializable state.
type Builder interface {
	Request() *Request
}

// Resource is a top-level QBO entity builder. ResourceName is the entity name
// the transport posts the body to ("Invoice", "Payment", ...).
type Resource interface {
	Builder
	ResourceName() string
	ToJSON() (string, error)
	Err() error
}

// errorCarrier is implemented by builders that record validation failures.
type errorCarrier interface {
	Errors() []*ValidationError
}

// BaseBuilder holds the request mapping and recorded validation failures.
type BaseBuilder struct {
	request *Request
	errs    []*ValidationError
}

func newBaseBuilder() BaseBuilder {
	return BaseBuilder{request: NewRequest()}
}

// Request returns the live mapping. Parents embed a Clone of it.
func (b *BaseBuilder) Request() *Request {
	return b.request
}

// Errors returns the validation failures recorded so far, in call order.
func (b *BaseBuilder) Errors() []*ValidationError {
	out := make([]*ValidationError, len(b.errs))
	copy(out, b.errs)
	return out
}

// Err joins the recorded validation failures, or returns nil.
func (b *BaseBuilder) Err() error {
	if len(b.errs) == 0 {
		return nil
	}
	errs := make([]error, len(b.errs))
	for i, e := range b.errs {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// ToJSON serializes the mapping. It refuses to serialize a builder that has
// recorded validation failures and returns them instead.
func (b *BaseBuilder) ToJSON() (string, error) {
	if err := b.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := b.request.encode(&buf); err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}
	return buf.String(), nil
}

// =============================================================================
// VALIDATE-THEN-WRITE HELPERS
// =============================================================================

func (b *BaseBuilder) set(field string, value any) {
	b.request.Set(field, value)
	b.clearErrors(field)
}

func (b *BaseBuilder) fail(err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		b.errs = append(b.errs, ve)
		return
	}
	b.errs = append(b.errs, &ValidationError{Field: "", Value: err.Error()})
}

func (b *BaseBuilder) clearErrors(field string) {
	kept := b.errs[:0]
	for _, e := range b.errs {
		if e.Field == field || strings.HasPrefix(e.Field, field+".") {
			continue
		}
		kept = append(kept, e)
	}
	b.errs = kept
}

func (b *BaseBuilder) setString(field, value string, maxLength int) {
	if err := SanitizeLength(field, value, maxLength); err != nil {
		b.fail(err)
		return
	}
	b.set(field, value)
}

func (b *BaseBuilder) setFromSet(field, value string, allowed []string) {
	if err := SanitizeFromSet(field, value, allowed); err != nil {
		b.fail(err)
		return
	}
	b.set(field, value)
}

func (b *BaseBuilder) setDate(field string, date time.Time) {
	b.set(field, ConvertDate(date))
}

// embed stores a snapshot of child under field. A child carrying validation
// failures is not embedded; its failures are recorded under field instead.
func (b *BaseBuilder) embed(field string, child Builder) {
	if b.rejectNil(field, child) || b.absorbErrors(field, child) {
		return
	}
	b.set(field, child.Request().Clone())
}

// appendTo appends a snapshot of child to the sequence under field.
func (b *BaseBuilder) appendTo(field string, child Builder) {
	if b.rejectNil(field, child) || b.absorbErrors(field, child) {
		return
	}
	if err := b.request.Append(field, child.Request().Clone()); err != nil {
		b.errs = append(b.errs, &ValidationError{Field: field, Value: err.Error()})
	}
}

// rejectNil records a RuleMissing failure when child is nil, including a nil
// pointer wrapped in the interface.
func (b *BaseBuilder) rejectNil(field string, child Builder) bool {
	if !isNil(child) {
		return false
	}
	b.errs = append(b.errs, &ValidationError{Field: field, Rule: RuleMissing})
	return true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (b *BaseBuilder) absorbErrors(field string, child Builder) bool {
	carrier, ok := child.(errorCarrier)
	if !ok {
		return false
	}
	childErrs := carrier.Errors()
	for _, e := range childErrs {
		b.errs = append(b.errs, e.withPrefix(field))
	}
	return len(childErrs) > 0
}

// =============================================================================
// SANITIZERS
// =============================================================================

// SanitizeLength fails when value is longer than maxLength characters.
func SanitizeLength(field, value string, maxLength int) error {
	if runeLen(value) > maxLength {
		return &ValidationError{Field: field, Value: value, Rule: RuleLength, Limit: maxLength}
	}
	return nil
}

// SanitizeFromSet fails when value is not one of allowed.
func SanitizeFromSet(field, value string, allowed []string) error {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return &ValidationError{Field: field, Value: value, Rule: RuleSet, Allowed: allowed}
}

// SanitizeBoolean fails unless value's dynamic type is bool.
// Truthy values such as 1 or "true" are rejected.
func SanitizeBoolean(field string, value any) error {
	if _, ok := value.(bool); !ok {
		return &ValidationError{Field: field, Value: value, Rule: RuleBoolean}
	}
	return nil
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// =============================================================================
// DATES
// =============================================================================

// DateSuffix terminates every date QBO receives from this package.
const DateSuffix = "Z"

// ConvertDate converts date to UTC and renders it as YYYY-MM-DDZ.
// The time of day is dropped after the conversion, so 2021-06-15T23:30:00-05:00
// becomes "2021-06-16Z".
func ConvertDate(date time.Time) string {
	return date.UTC().Format(time.DateOnly) + DateSuffix
}

// naiveLayouts carry no zone; time.Parse reads them as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseDate parses an RFC 3339 timestamp, or a timestamp without zone
// information which is taken to be UTC already.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
