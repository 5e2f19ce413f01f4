package identicon

import "errors"

// Sentinel errors for the identicon package.
var (
	// ErrInvalidInput is returned when a pipeline stage is invoked directly
	// with malformed intermediate data, such as a digest shorter than three
	// bytes or a cell index outside the 5x5 grid. The full Generate pipeline
	// never produces such values, so hitting this error means a caller wired
	// the stages together incorrectly.
	ErrInvalidInput = errors.New("identicon: invalid input")
)
