package dtc

import (
	"fmt"
	"time"
)

// CanonicalDate is a calendar date in the engine's canonical textual
// form, YYYY:MM:DD. Values are only ever produced by NormalizeDate;
// code downstream of validation treats them as opaque.
type CanonicalDate string

const (
	colonLayout = "2006:01:02"
	dashLayout  = "2006-01-02"
)

// NormalizeDate parses a user-supplied date string into canonical form.
// Exactly two shapes are accepted, YYYY:MM:DD and YYYY-MM-DD; anything
// else, including mixed separators and impossible calendar dates,
// fails with ErrInvalidDate. The output is always YYYY:MM:DD.
func NormalizeDate(raw string) (CanonicalDate, error) {
	if raw == "" {
		return "", fmt.Errorf("empty date: %w", ErrInvalidDate)
	}

	// time.Parse tolerates unpadded components ("2025:1:2"); the
	// round-trip comparison rejects anything but the exact grouping.
	if t, err := time.Parse(colonLayout, raw); err == nil && t.Format(colonLayout) == raw {
		return CanonicalDate(raw), nil
	}
	if t, err := time.Parse(dashLayout, raw); err == nil && t.Format(dashLayout) == raw {
		return CanonicalDate(t.Format(colonLayout)), nil
	}

	return "", fmt.Errorf("date %q is not YYYY:MM:DD or YYYY-MM-DD: %w", raw, ErrInvalidDate)
}
