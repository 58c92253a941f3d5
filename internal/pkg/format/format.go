// Package format renders alert field values for presentation: naira amounts
// with digit grouping and human-readable timestamps.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Dash stands in for absent display values.
const Dash = "—"

var printer = message.NewPrinter(language.English)

// accepted timestamp layouts, in order: RFC 3339 (with optional fraction),
// then the zone-less forms upstream systems occasionally write.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Currency renders a numeric amount as "₦1,234.50" (grouped thousands, two
// decimals). Numeric strings are parsed first; non-numeric values pass
// through as-is; nil and empty render as a dash.
func Currency(v any) string {
	switch n := v.(type) {
	case nil:
		return Dash
	case float64:
		return naira(n)
	case float32:
		return naira(float64(n))
	case int:
		return naira(float64(n))
	case int64:
		return naira(float64(n))
	case string:
		if n == "" {
			return Dash
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return naira(f)
		}
		return n
	default:
		return fmt.Sprint(v)
	}
}

func naira(f float64) string {
	return "₦" + printer.Sprint(number.Decimal(f, number.Scale(2)))
}

// Display renders any value for presentation, substituting a dash for nil
// and empty strings.
func Display(v any) string {
	if v == nil {
		return Dash
	}
	if s, ok := v.(string); ok {
		if s == "" {
			return Dash
		}
		return s
	}
	return fmt.Sprint(v)
}

// HumanTime reformats a timestamp string as "02 Jan, 2006 | 03:04:05 PM".
// Values that do not parse pass through unchanged.
func HumanTime(s string) string {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02 Jan, 2006 | 03:04:05 PM")
		}
	}
	return s
}
