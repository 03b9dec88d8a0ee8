package profiles

import "errors"

// Sentinel errors returned by profile sources.
var (
	ErrUnexpectedStatus  = errors.New("unexpected status from profile service")
	ErrMalformedResponse = errors.New("malformed profile response")
	ErrUnknownSource     = errors.New("unknown profile source")
)
