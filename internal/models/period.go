package models

import (
	"fmt"
	"strings"
)

// PeriodKind names the calendar period a limit or a stats query covers.
type PeriodKind string

const (
	PeriodDaily     PeriodKind = "daily"
	PeriodWeekly    PeriodKind = "weekly"
	PeriodMonthly   PeriodKind = "monthly"
	PeriodQuarterly PeriodKind = "quarterly"
	PeriodYearly    PeriodKind = "yearly"
)

// PeriodKinds lists every period kind from shortest to longest. Limit
// evaluation walks them in this order.
var PeriodKinds = []PeriodKind{
	PeriodDaily,
	PeriodWeekly,
	PeriodMonthly,
	PeriodQuarterly,
	PeriodYearly,
}

// Valid reports whether k is one of the known period kinds.
func (k PeriodKind) Valid() bool {
	for _, known := range PeriodKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Title returns the kind with its first letter upper-cased ("Weekly"), as
// used in alert text.
func (k PeriodKind) Title() string {
	if k == "" {
		return ""
	}
	s := string(k)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParsePeriodKind converts a user-supplied name into a PeriodKind.
func ParsePeriodKind(s string) (PeriodKind, error) {
	k := PeriodKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown period %q", ErrInvalidArgument, s)
	}
	return k, nil
}
