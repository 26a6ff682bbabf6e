package dtc_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"dtc-go/internal/dtc"
)

func TestBuildPlan(t *testing.T) {
	t.Run("empty when neither flag is set", func(t *testing.T) {
		req := dtc.JobRequest{
			SourceRoot: "/photos",
			MatchMode:  dtc.MatchEmbedded,
			MatchDate:  "2025:10:25",
			TargetDate: "2025:11:01",
		}
		plan, err := dtc.BuildPlan(req)
		if err != nil {
			t.Fatalf("BuildPlan() error = %v", err)
		}
		if len(plan) != 0 {
			t.Errorf("BuildPlan() = %v, want empty plan", plan)
		}
	})

	t.Run("copies modified into created", func(t *testing.T) {
		// Scenario: match by file-modified date, only sync creation.
		req := dtc.JobRequest{
			SourceRoot:             "/files",
			MatchMode:              dtc.MatchModified,
			MatchDate:              "2025:10:25",
			SetCreatedFromModified: true,
		}
		plan, err := dtc.BuildPlan(req)
		if err != nil {
			t.Fatalf("BuildPlan() error = %v", err)
		}
		if len(plan) != 1 {
			t.Fatalf("len(plan) = %d, want 1", len(plan))
		}
		if got, want := plan[0].Arg(), "-FileCreateDate<FileModifyDate"; got != want {
			t.Errorf("plan[0].Arg() = %q, want %q", got, want)
		}
	})

	t.Run("rewrites modified before created", func(t *testing.T) {
		// Scenario: embedded match, retarget the date, then sync creation.
		req := dtc.JobRequest{
			SourceRoot:             "/photos",
			MatchMode:              dtc.MatchEmbedded,
			MatchDate:              "2025:10:25",
			TargetDate:             "2025:11:01",
			Extensions:             []string{"jpg", "jpeg"},
			SetModified:            true,
			SetCreatedFromModified: true,
		}
		plan, err := dtc.BuildPlan(req)
		if err != nil {
			t.Fatalf("BuildPlan() error = %v", err)
		}
		if len(plan) != 2 {
			t.Fatalf("len(plan) = %d, want 2", len(plan))
		}
		if got, want := plan[0].Arg(), "-FileModifyDate<${DateTimeOriginal;$_=~s/^2025:10:25/2025:11:01/}"; got != want {
			t.Errorf("plan[0].Arg() = %q, want %q", got, want)
		}
		if got, want := plan[1].Arg(), "-FileCreateDate<FileModifyDate"; got != want {
			t.Errorf("plan[1].Arg() = %q, want %q", got, want)
		}
	})

	t.Run("modified mode rewrites from the modify date itself", func(t *testing.T) {
		req := dtc.JobRequest{
			SourceRoot:  "/files",
			MatchMode:   dtc.MatchModified,
			MatchDate:   "2025:10:25",
			TargetDate:  "2025:11:01",
			SetModified: true,
		}
		plan, err := dtc.BuildPlan(req)
		if err != nil {
			t.Fatalf("BuildPlan() error = %v", err)
		}
		if got, want := plan[0].Arg(), "-FileModifyDate<${FileModifyDate;$_=~s/^2025:10:25/2025:11:01/}"; got != want {
			t.Errorf("plan[0].Arg() = %q, want %q", got, want)
		}
	})

	t.Run("fails without a target date", func(t *testing.T) {
		req := dtc.JobRequest{
			SourceRoot:  "/files",
			MatchMode:   dtc.MatchModified,
			MatchDate:   "2025:10:25",
			SetModified: true,
		}
		if _, err := dtc.BuildPlan(req); !errors.Is(err, dtc.ErrMissingTargetDate) {
			t.Errorf("BuildPlan() error = %v, want ErrMissingTargetDate", err)
		}
	})

	t.Run("is idempotent on its inputs", func(t *testing.T) {
		req := dtc.JobRequest{
			SourceRoot:             "/photos",
			MatchMode:              dtc.MatchEmbedded,
			MatchDate:              "2025:10:25",
			TargetDate:             "2025:11:01",
			SetModified:            true,
			SetCreatedFromModified: true,
		}
		first, err := dtc.BuildPlan(req)
		if err != nil {
			t.Fatalf("first BuildPlan() error = %v", err)
		}
		second, err := dtc.BuildPlan(req)
		if err != nil {
			t.Fatalf("second BuildPlan() error = %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("plans differ:\nfirst  = %v\nsecond = %v", first, second)
		}
	})
}

func TestBuildPreview(t *testing.T) {
	t.Run("shows current and would-be modified value", func(t *testing.T) {
		req := dtc.JobRequest{
			SourceRoot:  "/photos",
			MatchMode:   dtc.MatchEmbedded,
			MatchDate:   "2025:10:25",
			TargetDate:  "2025:11:01",
			SetModified: true,
		}
		proj, err := dtc.BuildPreview(req)
		if err != nil {
			t.Fatalf("BuildPreview() error = %v", err)
		}
		if !strings.Contains(proj, "$FileName") {
			t.Errorf("projection %q does not name the file", proj)
		}
		if !strings.Contains(proj, "$DateTimeOriginal") {
			t.Errorf("projection %q does not show the current value", proj)
		}
		if !strings.Contains(proj, "2025:11:01") {
			t.Errorf("projection %q does not show the would-be date", proj)
		}
	})

	t.Run("falls back to created and modified values", func(t *testing.T) {
		req := dtc.JobRequest{
			SourceRoot:             "/files",
			MatchMode:              dtc.MatchModified,
			MatchDate:              "2025:10:25",
			SetCreatedFromModified: true,
		}
		proj, err := dtc.BuildPreview(req)
		if err != nil {
			t.Fatalf("BuildPreview() error = %v", err)
		}
		want := "$FileName | Created will become Modified | $FileCreateDate -> $FileModifyDate"
		if proj != want {
			t.Errorf("BuildPreview() = %q, want %q", proj, want)
		}
	})

	t.Run("fails without a target date", func(t *testing.T) {
		req := dtc.JobRequest{
			SourceRoot:  "/files",
			MatchMode:   dtc.MatchModified,
			MatchDate:   "2025:10:25",
			SetModified: true,
		}
		if _, err := dtc.BuildPreview(req); !errors.Is(err, dtc.ErrMissingTargetDate) {
			t.Errorf("BuildPreview() error = %v, want ErrMissingTargetDate", err)
		}
	})
}
