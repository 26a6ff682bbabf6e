package dtc_test

import (
	"errors"
	"testing"

	"dtc-go/internal/dtc"
)

func TestParseMatchMode(t *testing.T) {
	t.Run("accepts known modes", func(t *testing.T) {
		for _, raw := range []string{"embedded", "modified"} {
			mode, err := dtc.ParseMatchMode(raw)
			if err != nil {
				t.Errorf("ParseMatchMode(%q) error = %v", raw, err)
			}
			if string(mode) != raw {
				t.Errorf("ParseMatchMode(%q) = %q", raw, mode)
			}
		}
	})

	t.Run("rejects unknown modes", func(t *testing.T) {
		if _, err := dtc.ParseMatchMode("exif"); err == nil {
			t.Error("ParseMatchMode(\"exif\") expected error")
		}
	})
}

func TestJobRequest_Validate(t *testing.T) {
	valid := dtc.JobRequest{
		SourceRoot: "/photos",
		MatchMode:  dtc.MatchModified,
		MatchDate:  "2025:10:25",
	}

	t.Run("accepts a selection no-op request", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("requires a target date for set-modified", func(t *testing.T) {
		req := valid
		req.SetModified = true
		if err := req.Validate(); !errors.Is(err, dtc.ErrMissingTargetDate) {
			t.Errorf("Validate() error = %v, want ErrMissingTargetDate", err)
		}

		req.TargetDate = "2025:11:01"
		if err := req.Validate(); err != nil {
			t.Errorf("Validate() with target error = %v", err)
		}
	})

	t.Run("requires a source root", func(t *testing.T) {
		req := valid
		req.SourceRoot = ""
		if err := req.Validate(); err == nil {
			t.Error("Validate() expected error for missing source root")
		}
	})

	t.Run("requires a match date", func(t *testing.T) {
		req := valid
		req.MatchDate = ""
		if err := req.Validate(); !errors.Is(err, dtc.ErrInvalidDate) {
			t.Errorf("Validate() error = %v, want ErrInvalidDate", err)
		}
	})
}

func TestJobRequest_AllFiles(t *testing.T) {
	cases := []struct {
		name string
		exts []string
		want bool
	}{
		{"nil extensions", nil, true},
		{"sentinel", []string{dtc.AllExtensions}, true},
		{"explicit list", []string{"jpg", "jpeg"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := dtc.JobRequest{Extensions: tc.exts}
			if got := req.AllFiles(); got != tc.want {
				t.Errorf("AllFiles() = %v, want %v", got, tc.want)
			}
		})
	}
}
