package dtc

import "errors"

// ErrInvalidDate reports a malformed or impossible date string.
// Detected before any predicate or plan construction.
var ErrInvalidDate = errors.New("invalid date")

// ErrMissingTargetDate reports a request to rewrite the modified date
// without a target date to write. Detected before invocation.
var ErrMissingTargetDate = errors.New("missing target date")

// ErrToolUnavailable reports that the external metadata tool could not
// be found and could not be installed.
var ErrToolUnavailable = errors.New("metadata tool unavailable")
