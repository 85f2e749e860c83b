package service

import (
	"context"
	"time"
)

// dateLayout is the wire format for request dates.
const dateLayout = "20060102"

// ValidDate reports whether s is a real calendar date in YYYYMMDD form.
// It never errors; any parse failure is simply false.
func ValidDate(s string) bool {
	if len(s) != len(dateLayout) {
		return false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return false
	}
	// Round-trip guards against inputs time.Parse normalizes away.
	return t.Format(dateLayout) == s
}

// ValidStockCode reports whether the provider resolves code to a non-empty
// display name right now. Each call costs one provider lookup; results are
// not cached.
func (s *MarketService) ValidStockCode(ctx context.Context, code string) bool {
	sec, err := s.source.Resolve(ctx, code)
	return err == nil && sec.Name != ""
}
