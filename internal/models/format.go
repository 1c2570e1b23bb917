package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the roster timestamp format, e.g. "2025/03/14 08:00".
	DateLayout = "2006/01/02 15:04"
	// ShortLayout is the compact form used by change-log columns.
	ShortLayout = "01/02 15:04"
)

// ParseDate parses a roster timestamp.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a timestamp in the roster format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatShort renders a timestamp in the change-log column format.
func FormatShort(t time.Time) string {
	return t.Format(ShortLayout)
}

// FormatShift renders a signed schedule shift in days and hours:
// "+6H", "-1D 2H", "+0H". Sub-hour remainders are truncated.
func FormatShift(d time.Duration) string {
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}

	total := int(d / time.Hour)
	days := total / 24
	hours := total % 24

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dD", days))
	}
	if hours > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dH", hours))
	}
	return sign + strings.Join(parts, " ")
}

// DisplayVoyage reduces a carrier voyage code to its display form. Codes
// like "0012W/0013E" show only the segment after the last slash.
func DisplayVoyage(voyage string) string {
	if voyage == "" {
		return ""
	}
	if i := strings.LastIndex(voyage, "/"); i >= 0 {
		return strings.TrimSpace(voyage[i+1:])
	}
	return strings.TrimSpace(voyage)
}
