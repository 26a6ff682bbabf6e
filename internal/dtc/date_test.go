package dtc_test

import (
	"errors"
	"testing"

	"dtc-go/internal/dtc"
)

func TestNormalizeDate(t *testing.T) {
	t.Run("accepts colon form unchanged", func(t *testing.T) {
		got, err := dtc.NormalizeDate("2025:10:25")
		if err != nil {
			t.Fatalf("NormalizeDate() error = %v", err)
		}
		if got != "2025:10:25" {
			t.Errorf("NormalizeDate() = %q, want %q", got, "2025:10:25")
		}
	})

	t.Run("converts dash form to canonical", func(t *testing.T) {
		got, err := dtc.NormalizeDate("2025-10-25")
		if err != nil {
			t.Fatalf("NormalizeDate() error = %v", err)
		}
		if got != "2025:10:25" {
			t.Errorf("NormalizeDate() = %q, want %q", got, "2025:10:25")
		}
	})

	t.Run("both shapes normalize to the same value", func(t *testing.T) {
		a, err := dtc.NormalizeDate("2025-10-25")
		if err != nil {
			t.Fatalf("dash form error = %v", err)
		}
		b, err := dtc.NormalizeDate("2025:10:25")
		if err != nil {
			t.Fatalf("colon form error = %v", err)
		}
		if a != b {
			t.Errorf("normalized values differ: %q vs %q", a, b)
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		cases := []string{
			"",
			"2025:10-25", // mixed separators
			"2025-10:25",
			"2025:13:40", // impossible month and day
			"2025:02:30",
			"2025:1:2", // wrong digit grouping
			"25:10:25",
			"2025/10/25",
			"2025:10:25 12:00:00",
			"yesterday",
		}
		for _, raw := range cases {
			got, err := dtc.NormalizeDate(raw)
			if err == nil {
				t.Errorf("NormalizeDate(%q) = %q, want error", raw, got)
				continue
			}
			if !errors.Is(err, dtc.ErrInvalidDate) {
				t.Errorf("NormalizeDate(%q) error = %v, want ErrInvalidDate", raw, err)
			}
			if got != "" {
				t.Errorf("NormalizeDate(%q) produced partial value %q", raw, got)
			}
		}
	})

	t.Run("accepts leap day", func(t *testing.T) {
		got, err := dtc.NormalizeDate("2024-02-29")
		if err != nil {
			t.Fatalf("NormalizeDate() error = %v", err)
		}
		if got != "2024:02:29" {
			t.Errorf("NormalizeDate() = %q, want %q", got, "2024:02:29")
		}
	})

	t.Run("rejects leap day in a common year", func(t *testing.T) {
		if _, err := dtc.NormalizeDate("2025:02:29"); !errors.Is(err, dtc.ErrInvalidDate) {
			t.Errorf("error = %v, want ErrInvalidDate", err)
		}
	})
}
