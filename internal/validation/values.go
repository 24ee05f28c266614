package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/qbo-request-builder/pkg/qbo"
)

// ParseDecimal parses an amount or quantity. Thousands separators and a
// leading currency symbol are accepted: "$1,234.50" parses as 1234.5.
// NaN and infinities are rejected; they have no JSON encoding.
func ParseDecimal(value string) (float64, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty decimal")
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("decimal %q is not a finite number", value)
	}
	return f, nil
}

// ParseDate parses value with layout. An empty layout accepts what
// qbo.ParseDate accepts. Values without zone information are read as UTC.
func ParseDate(value, layout string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if layout == "" {
		return qbo.ParseDate(value)
	}
	return time.Parse(layout, value)
}
