package dtc

import "fmt"

// Exiftool tag names for the two timestamp families the engine
// matches and rewrites.
const (
	tagDateTimeOriginal = "DateTimeOriginal"
	tagCreateDate       = "CreateDate"
	tagFileModifyDate   = "FileModifyDate"
	tagFileCreateDate   = "FileCreateDate"
)

// BuildPredicate produces the -if expression selecting candidate
// files. Matching is a prefix match on the date portion: the
// underlying fields carry a time-of-day suffix that must be ignored,
// and files where a field is absent or malformed simply fail the
// predicate rather than erroring.
func BuildPredicate(mode MatchMode, matchDate CanonicalDate) string {
	if mode == MatchEmbedded {
		// Either embedded field matching is sufficient.
		return fmt.Sprintf("$%s=~/^%s/ or $%s=~/^%s/",
			tagDateTimeOriginal, matchDate, tagCreateDate, matchDate)
	}
	return fmt.Sprintf("$%s=~/^%s/", tagFileModifyDate, matchDate)
}
