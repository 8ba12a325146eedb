package parse

import (
	"strconv"
	"strings"
	"time"
)

// ParseDate parses the ledger's DD/MM/YYYY dates. Blank or malformed input
// returns the zero time; callers decide whether that means "use a fallback
// date" or "not applicable". It never fails.
func ParseDate(dateStr string) time.Time {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}
	}
	t, err := time.Parse("02/01/2006", dateStr)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatDate renders a date back in ledger form. Zero times render empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// ParseAmount parses Chilean-locale numbers: "." thousands separator and
// "," decimal separator ("1.361.358" → 1361358, "23,45" → 23.45).
// Empty or unparseable input degrades to 0.
func ParseAmount(valStr string) float64 {
	valStr = strings.TrimSpace(valStr)
	if valStr == "" {
		return 0
	}
	cleanStr := strings.ReplaceAll(valStr, ".", "")
	cleanStr = strings.ReplaceAll(cleanStr, ",", ".")
	val, err := strconv.ParseFloat(cleanStr, 64)
	if err != nil {
		return 0
	}
	return val
}

// ParseInt parses a plain integer field, degrading to 0 like ParseAmount.
func ParseInt(valStr string) int {
	valStr = strings.TrimSpace(valStr)
	if valStr == "" {
		return 0
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0
	}
	return val
}
