package dtc

import "fmt"

// MatchMode selects which timestamp family a job matches on and, when
// applicable, rewrites.
type MatchMode string

const (
	// MatchEmbedded matches on the dates recorded inside the file's
	// own metadata (DateTimeOriginal / CreateDate).
	MatchEmbedded MatchMode = "embedded"

	// MatchModified matches on the filesystem modification timestamp.
	MatchModified MatchMode = "modified"
)

// ParseMatchMode converts a raw mode string into a MatchMode.
func ParseMatchMode(raw string) (MatchMode, error) {
	switch MatchMode(raw) {
	case MatchEmbedded, MatchModified:
		return MatchMode(raw), nil
	default:
		return "", fmt.Errorf("unknown match mode: %q", raw)
	}
}

// AllExtensions is the sentinel extension set meaning "no extension
// filter"; every file under the source root is in scope.
const AllExtensions = "all"

// JobRequest is the fully-resolved parameter set for one run. It is
// constructed once at run start and passed by value into the engine;
// the engine never reads live caller state mid-run.
type JobRequest struct {
	// SourceRoot is the directory scanned recursively.
	SourceRoot string

	// MatchMode selects the timestamp family to match.
	MatchMode MatchMode

	// MatchDate is the date files must carry to be selected.
	MatchDate CanonicalDate

	// TargetDate is the date written over the matched prefix when
	// SetModified is true. Empty means absent.
	TargetDate CanonicalDate

	// Extensions holds lowercase, dot-free extension tokens limiting
	// the scan, or the single sentinel AllExtensions.
	Extensions []string

	// SetModified rewrites the filesystem modification timestamp,
	// replacing the matched date prefix with TargetDate and keeping
	// the time-of-day suffix.
	SetModified bool

	// SetCreatedFromModified copies the (possibly just-rewritten)
	// modification timestamp into the creation timestamp.
	SetCreatedFromModified bool

	// DryRun previews the selection and would-be values without
	// performing any write.
	DryRun bool
}

// AllFiles reports whether the extension filter is disabled.
func (r JobRequest) AllFiles() bool {
	return len(r.Extensions) == 0 ||
		(len(r.Extensions) == 1 && r.Extensions[0] == AllExtensions)
}

// Validate checks the request invariants that must hold before any
// plan is built or tool invoked.
func (r JobRequest) Validate() error {
	if r.SourceRoot == "" {
		return fmt.Errorf("source root is required")
	}
	if _, err := ParseMatchMode(string(r.MatchMode)); err != nil {
		return err
	}
	if r.MatchDate == "" {
		return fmt.Errorf("match date is required: %w", ErrInvalidDate)
	}
	if r.SetModified && r.TargetDate == "" {
		return fmt.Errorf("set-modified requested: %w", ErrMissingTargetDate)
	}
	return nil
}

// JobResult is the terminal outcome of one run. Immutable once the
// job terminates; a non-zero ExitCode from the tool is a normal,
// inspectable result, not an error.
type JobResult struct {
	Lines    []string
	ExitCode int
}
