package builder

import "errors"

var (
	// ErrRaggedRows indicates a literal whose rows have differing lengths.
	ErrRaggedRows = errors.New("builder: all rows must have the same length")
)
