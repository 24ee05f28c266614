// =============================================================================
// QBO Payload Converter - Transformation Engine
// =============================================================================
//
// Rewrites input column values before they are validated and mapped onto
// QBO fields. Each profile lists rules per input column; a rule's actions
// run in order, each receiving the previous action's output.
//
// TRANSFORMATION TYPES:
//   - String manipulations (trim, case, prepend, append, replace, regex)
//   - Numeric formatting (zero padding, decimal places)
//   - Date layout conversion
//   - Lookup table replacements and defaults
//
// A value an action cannot interpret (a non-numeric amount given to
// format_number, a date that does not match format_date's input layout) is
// passed through unchanged so the validator reports it against the source
// row.
//
// =============================================================================

package converter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
	"github.com/ginjaninja78/qbo-request-builder/internal/types"
)

// Action types understood by the transformer.
const (
	ActionTrim              = "trim"
	ActionUppercase         = "uppercase"
	ActionLowercase         = "lowercase"
	ActionPrepend           = "prepend_string"
	ActionAppend            = "append_string"
	ActionPadZeros          = "pad_zeros_to_length"
	ActionReplace           = "replace"
	ActionRegexReplace      = "regex_replace"
	ActionLookup            = "lookup"
	ActionIfEmptyUseDefault = "if_empty_use_default"
	ActionFormatDate        = "format_date"
	ActionFormatNumber      = "format_number"
)

// =============================================================================
// TRANSFORMER
// =============================================================================

// Transformer applies a profile's transformation rules to rows.
type Transformer struct {
	rules   []config.TransformationRule
	regexps map[string]*regexp.Regexp
}

// NewTransformer compiles rules. It fails on unknown action types and
// invalid regular expressions so a broken profile is reported before any
// row is touched.
func NewTransformer(rules []config.TransformationRule) (*Transformer, error) {
	t := &Transformer{
		rules:   rules,
		regexps: make(map[string]*regexp.Regexp),
	}

	for _, rule := range rules {
		for _, action := range rule.Actions {
			switch action.Type {
			case ActionTrim, ActionUppercase, ActionLowercase, ActionPrepend, ActionAppend,
				ActionPadZeros, ActionReplace, ActionLookup, ActionIfEmptyUseDefault,
				ActionFormatDate, ActionFormatNumber:
			case ActionRegexReplace:
				if _, ok := t.regexps[action.Find]; ok {
					continue
				}
				re, err := regexp.Compile(action.Find)
				if err != nil {
					return nil, fmt.Errorf("field '%s': invalid regex pattern %q: %w", rule.Field, action.Find, err)
				}
				t.regexps[action.Find] = re
			default:
				return nil, fmt.Errorf("field '%s': unknown transformation type: %s", rule.Field, action.Type)
			}
		}
	}

	return t, nil
}

// Transform applies every rule whose field is column to value.
func (t *Transformer) Transform(column, value string) (string, error) {
	result := value
	for _, rule := range t.rules {
		if rule.Field != column {
			continue
		}
		for _, action := range rule.Actions {
			var err error
			result, err = t.apply(result, action)
			if err != nil {
				return "", fmt.Errorf("transformation '%s' failed: %w", action.Type, err)
			}
		}
	}
	return result, nil
}

// TransformRow rewrites the row's fields in place. Columns named by a rule
// but missing from the row are created, so if_empty_use_default can supply
// a value for a column the input does not carry.
func (t *Transformer) TransformRow(row *types.Row) error {
	if row.Fields == nil {
		row.Fields = make(map[string]string)
	}

	seen := make(map[string]bool, len(t.rules))
	for _, rule := range t.rules {
		if seen[rule.Field] {
			continue
		}
		seen[rule.Field] = true

		value, err := t.Transform(rule.Field, row.Fields[rule.Field])
		if err != nil {
			return fmt.Errorf("row %d, column '%s': %w", row.Number, rule.Field, err)
		}
		row.Fields[rule.Field] = value
	}
	return nil
}

// TransformDocument transforms every row of doc.
func (t *Transformer) TransformDocument(doc *types.Document) error {
	for i := range doc.Rows {
		if err := t.TransformRow(&doc.Rows[i]); err != nil {
			return fmt.Errorf("document %d: %w", doc.Index, err)
		}
	}
	return nil
}

// =============================================================================
// ACTIONS
// =============================================================================

func (t *Transformer) apply(value string, action config.TransformationAction) (string, error) {
	switch action.Type {
	case ActionTrim:
		return strings.TrimSpace(value), nil

	case ActionUppercase:
		return strings.ToUpper(value), nil

	case ActionLowercase:
		return strings.ToLower(value), nil

	case ActionPrepend:
		return action.Value + value, nil

	case ActionAppend:
		return value + action.Value, nil

	case ActionPadZeros:
		// "123" with value "8" becomes "00000123".
		n, err := strconv.Atoi(action.Value)
		if err != nil || n <= 0 {
			return "", fmt.Errorf("invalid length %q", action.Value)
		}
		return PadLeft(value, n, '0'), nil

	case ActionReplace:
		if action.Find == "" {
			return value, nil
		}
		return strings.ReplaceAll(value, action.Find, action.Value), nil

	case ActionRegexReplace:
		return t.regexps[action.Find].ReplaceAllString(value, action.Value), nil

	case ActionLookup:
		if replacement, ok := action.LookupTable[value]; ok {
			return replacement, nil
		}
		return value, nil

	case ActionIfEmptyUseDefault:
		if strings.TrimSpace(value) == "" {
			return action.Value, nil
		}
		return value, nil

	case ActionFormatDate:
		// VALUE FORMAT: "input_layout|output_layout", e.g.
		// "01/02/2006|2006-01-02" turns "01/15/2024" into "2024-01-15".
		in, out, ok := strings.Cut(action.Value, "|")
		if !ok {
			return "", fmt.Errorf("value must be 'input_layout|output_layout', got %q", action.Value)
		}
		if strings.TrimSpace(value) == "" {
			return value, nil
		}
		parsed, err := time.Parse(strings.TrimSpace(in), strings.TrimSpace(value))
		if err != nil {
			return value, nil
		}
		return parsed.Format(strings.TrimSpace(out)), nil

	case ActionFormatNumber:
		places, err := strconv.Atoi(action.Value)
		if err != nil || places < 0 {
			return "", fmt.Errorf("invalid decimal places %q", action.Value)
		}
		num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return value, nil
		}
		return strconv.FormatFloat(num, 'f', places, 64), nil
	}

	return "", fmt.Errorf("unknown transformation type: %s", action.Type)
}

// PadLeft pads s with padChar on the left to length characters.
func PadLeft(s string, length int, padChar rune) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return strings.Repeat(string(padChar), length-n) + s
}
