package kernel

import (
	"fmt"
	"strings"
	"time"

	"cogs/internal/pkg/errs"
)

var orderDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02.01.2006",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseOrderDate parses a purchase order date in one of the accepted layouts:
// YYYY-MM-DD, MM/DD/YYYY, DD.MM.YYYY or a full timestamp.
// Blank input yields now; dates without a zone are taken as UTC.
func ParseOrderDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now.UTC(), nil
	}
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
		"order date",
		fmt.Errorf("unrecognized date format %q, use YYYY-MM-DD (e.g. 2024-02-14)", s),
	)
}
