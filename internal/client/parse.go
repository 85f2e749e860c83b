package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// tradeDateLayout is the gateway's date format in row payloads.
const tradeDateLayout = "2006/01/02"

// parseNumber parses a KRX comma-grouped numeric string like "77,000" or
// "2,655.28".
func parseNumber(s string) (float64, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if cleaned == "" || cleaned == "-" {
		return 0, fmt.Errorf("empty numeric field %q", s)
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	return n, nil
}

// parseCount parses a comma-grouped whole number such as a volume field.
func parseCount(s string) (int64, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if cleaned == "" || cleaned == "-" {
		return 0, fmt.Errorf("empty count field %q", s)
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	return n, nil
}

func parseTradeDate(s string) (time.Time, error) {
	t, err := time.Parse(tradeDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing trade date %q: %w", s, err)
	}
	return t, nil
}
