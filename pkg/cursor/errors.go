package cursor

import "errors"

// Contract errors reported by Classify and Verify. The read path itself never
// returns errors; these exist for diagnostics and tests.
var (
	ErrUnclassified   = errors.New("cursor declares no known category")
	ErrSinkResult     = errors.New("sink cursor result is not the sink itself")
	ErrReadableResult = errors.New("readable cursor result is a sink handle")
)
