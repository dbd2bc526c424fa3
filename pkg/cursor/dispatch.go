package cursor

import "golang.org/x/exp/constraints"

// Read evaluates c at its current position. A readable cursor yields its
// element reference; a sink yields a copy of itself.
func Read[C Cursor[R], R any](c C) R {
	return c.Deref()
}

// ReadAt evaluates c at offset n from its current position. It agrees with
// Read when n is zero. For a sink the result is a copy of c advanced n slots;
// nothing is read.
func ReadAt[C RandomAccess[R], R any, I constraints.Integer](c C, n I) R {
	return c.DerefAt(int(n))
}

// Vend is the current-position read clause for sink cursors: it returns c
// unchanged. Elementary sinks implement Deref with it.
func Vend[C SinkCursor](c C) C {
	return c
}

// VendAt is the offset read clause for sink cursors: it returns c advanced n
// slots without reading anything.
func VendAt[C AdvancingSink[C]](c C, n int) C {
	return c.Advance(n)
}

// ReadAdvanced reads a readable cursor at offset n by advancing a copy and
// reading its current position. Elementary cursors without a native offset
// read implement DerefAt with it.
func ReadAdvanced[C Seeker[C, R], R any](c C, n int) R {
	return c.Advance(n).Deref()
}
