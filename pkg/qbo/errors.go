package qbo

import (
	"fmt"
	"strings"
)

// Rule names the kind of check a ValidationError reports.
type Rule string

const (
	RuleLength  Rule = "length"
	RuleSet     Rule = "set"
	RuleBoolean Rule = "boolean"
	RuleCount   Rule = "count"
	RuleMissing Rule = "missing"
)

// ValidationError reports a field value rejected by a builder setter.
type ValidationError struct {
	// Field is the QBO field name, dotted for nested builders (e.g. "Line.Amount").
	Field string

	// Value is the rejected value.
	Value any

	// Rule is the violated rule.
	Rule Rule

	// Limit is the maximum length (RuleLength) or item count (RuleCount).
	Limit int

	// Allowed lists the accepted members for RuleSet failures.
	Allowed []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch e.Rule {
	case RuleLength:
		return fmt.Sprintf("field '%s': length %d exceeds maximum of %d (value: '%v')",
			e.Field, runeLen(fmt.Sprint(e.Value)), e.Limit, e.Value)
	case RuleSet:
		return fmt.Sprintf("field '%s': '%v' is not one of [%s]",
			e.Field, e.Value, strings.Join(e.Allowed, ", "))
	case RuleBoolean:
		return fmt.Sprintf("field '%s': %#v (%T) is not a boolean", e.Field, e.Value, e.Value)
	case RuleMissing:
		return fmt.Sprintf("field '%s': no value given (nil builder)", e.Field)
	case RuleCount:
		return fmt.Sprintf("field '%s': cannot hold more than %d items (rejected: '%v')", e.Field, e.Limit, e.Value)
	default:
		return fmt.Sprintf("field '%s': invalid value '%v'", e.Field, e.Value)
	}
}

// withPrefix returns a copy of e whose Field is nested under prefix.
func (e *ValidationError) withPrefix(prefix string) *ValidationError {
	out := *e
	out.Field = prefix + "." + e.Field
	return &out
}
