// Package tabular parses tab-separated booking rosters, the exchange
// format schedule coordinators export from terminal operating systems.
// The first row names the columns; terminal, berth, vessel, eta and etd
// are required, voyage, line and route are recognized, and every other
// column rides along as a pass-through field.
package tabular

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmkang/berthwatch/internal/models"
)

// ErrNoHeader is returned for input without a usable header row.
var ErrNoHeader = errors.New("roster has no header row")

var required = []string{"terminal", "berth", "vessel", "eta", "etd"}

// ParseRoster parses TSV roster text into bookings. Blank lines are
// skipped; a data row with a missing required value or an unparseable
// timestamp fails the whole parse, matching the all-or-nothing load
// contract.
func ParseRoster(text string) ([]*models.Booking, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var header []string
	start := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		header = splitRow(line)
		start = i + 1
		break
	}
	if header == nil {
		return nil, ErrNoHeader
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("roster header missing %q column", name)
		}
	}

	var bookings []*models.Booking
	for n, line := range lines[start:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := splitRow(line)
		if len(row) != len(header) {
			return nil, fmt.Errorf("roster row %d has %d columns, want %d", n+2, len(row), len(header))
		}

		b, err := parseRow(header, cols, row)
		if err != nil {
			return nil, fmt.Errorf("roster row %d: %w", n+2, err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func splitRow(line string) []string {
	parts := strings.Split(line, "\t")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseRow(header []string, cols map[string]int, row []string) (*models.Booking, error) {
	get := func(name string) string {
		if i, ok := cols[name]; ok {
			return row[i]
		}
		return ""
	}

	for _, name := range required {
		if get(name) == "" {
			return nil, fmt.Errorf("missing required field %q", name)
		}
	}

	b := &models.Booking{
		Vessel: get("vessel"),
		Voyage: get("voyage"),
		Berth:  get("terminal") + "-" + get("berth"),
		Line:   get("line"),
		Route:  get("route"),
	}

	var err error
	if b.ETA, err = models.ParseDate(get("eta")); err != nil {
		return nil, err
	}
	if b.ETD, err = models.ParseDate(get("etd")); err != nil {
		return nil, err
	}
	if !b.ETD.After(b.ETA) {
		return nil, fmt.Errorf("booking %s: etd %s not after eta %s",
			b.ID().Display(), get("etd"), get("eta"))
	}

	known := map[string]bool{
		"terminal": true, "berth": true, "vessel": true, "voyage": true,
		"line": true, "route": true, "eta": true, "etd": true,
	}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if known[key] || row[i] == "" {
			continue
		}
		if b.Extra == nil {
			b.Extra = make(map[string]string)
		}
		b.Extra[strings.TrimSpace(h)] = row[i]
	}
	return b, nil
}
