package agc

import "errors"

// MaxBufferLength is the largest lookahead ring a channel will allocate.
const MaxBufferLength = 1 << 24

var (
	// ErrInvalidSampleRate is returned for a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("agc: sample rate must be > 0")
	// ErrInvalidLookahead is returned for a non-positive or non-finite lookahead.
	ErrInvalidLookahead = errors.New("agc: lookahead must be positive and finite")
	// ErrAllocation is returned when the lookahead ring cannot be allocated.
	ErrAllocation = errors.New("agc: lookahead buffer cannot be allocated")
	// ErrMalformedValue is returned by Set for a value that is not a finite
	// decimal number.
	ErrMalformedValue = errors.New("agc: malformed parameter value")
)
