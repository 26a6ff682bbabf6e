package dtc

import "fmt"

// Assignment is one field mutation applied to each file that passes
// the predicate. Expr is an exiftool copy expression; the assignment
// renders as "-Field<Expr" on the invocation.
type Assignment struct {
	Field string
	Expr  string
}

// Arg renders the assignment as a single exiftool argument.
func (a Assignment) Arg() string {
	return fmt.Sprintf("-%s<%s", a.Field, a.Expr)
}

// AssignmentPlan is the ordered list of field assignments for a write
// run. Order matters: copying the modification timestamp into the
// creation timestamp must observe the result of any modified-date
// rewrite, so that rewrite always comes first.
type AssignmentPlan []Assignment

// sourceDateTag returns the tag whose value seeds the modified-date
// rewrite for the given match mode.
func sourceDateTag(mode MatchMode) string {
	if mode == MatchEmbedded {
		return tagDateTimeOriginal
	}
	return tagFileModifyDate
}

// substituteExpr builds the copy expression that replaces the leading
// matchDate text in the source tag's value with targetDate. This is a
// textual substitution, not calendar arithmetic: only the literal
// matched prefix changes, the time-of-day suffix rides along intact.
func substituteExpr(sourceTag string, matchDate, targetDate CanonicalDate) string {
	return fmt.Sprintf("${%s;$_=~s/^%s/%s/}", sourceTag, matchDate, targetDate)
}

// BuildPlan derives the ordered assignment list for a write run.
// An empty plan is legal: with neither flag set the job degrades to a
// selection no-op. Fails with ErrMissingTargetDate before any tool is
// invoked when a modified-date rewrite is requested without a target.
func BuildPlan(req JobRequest) (AssignmentPlan, error) {
	if req.SetModified && req.TargetDate == "" {
		return nil, fmt.Errorf("building plan: %w", ErrMissingTargetDate)
	}

	var plan AssignmentPlan
	if req.SetModified {
		plan = append(plan, Assignment{
			Field: tagFileModifyDate,
			Expr:  substituteExpr(sourceDateTag(req.MatchMode), req.MatchDate, req.TargetDate),
		})
	}
	if req.SetCreatedFromModified {
		plan = append(plan, Assignment{
			Field: tagFileCreateDate,
			Expr:  tagFileModifyDate,
		})
	}
	return plan, nil
}

// BuildPreview derives the dry-run projection: one textual line per
// matched file showing the file's name, the current value of the field
// that would be rewritten, and the value that would result. The
// would-be value is computed by the same prefix substitution as the
// write plan, applied to a read-only copy; no mutation occurs.
func BuildPreview(req JobRequest) (string, error) {
	if req.SetModified && req.TargetDate == "" {
		return "", fmt.Errorf("building preview: %w", ErrMissingTargetDate)
	}

	if req.SetModified {
		src := sourceDateTag(req.MatchMode)
		// Strip the date prefix from a copy of the source value so the
		// projection shows targetDate plus the preserved time-of-day.
		return fmt.Sprintf(`$FileName | $%s -> %s ${%s;$_=~s/^\d{4}:\d{2}:\d{2} //}`,
			src, req.TargetDate, src), nil
	}

	// No modified-date rewrite requested: show the current creation
	// and modification values the copy would read from.
	return fmt.Sprintf("$FileName | Created will become Modified | $%s -> $%s",
		tagFileCreateDate, tagFileModifyDate), nil
}
