package reveal

import "errors"

// Configuration errors returned by New and Reconfigure.
var (
	// ErrInvalidInterval indicates a tick interval that is zero or negative.
	ErrInvalidInterval = errors.New("reveal: tick interval must be positive")

	// ErrInvalidDelay indicates a negative start delay.
	ErrInvalidDelay = errors.New("reveal: start delay must not be negative")

	// ErrInvalidStep indicates a negative graphemes-per-tick count. Zero
	// selects DefaultStep.
	ErrInvalidStep = errors.New("reveal: step must not be negative")
)
