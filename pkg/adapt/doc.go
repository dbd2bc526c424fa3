// Package adapt provides the composite cursor adapters: offset, transform,
// counting, constant, discard, zip, reverse, permutation and tagged views.
//
// Every adapter keeps its underlying cursors fixed and tracks its own
// position, routing each read through cursor.Read or cursor.ReadAt on the
// underlying cursor at the mapped position. Category is derived from the
// underlying cursors' types, never from adapter state: offset, reverse,
// permutation and tagged views inherit it, zip is a sink when any component
// is, transform, counting and constant are always readable, and discard is
// always a sink.
//
// Offset, reverse, permutation and tagged views over an output use their sink
// forms, which vend themselves on read and route Set to the output at the
// mapped position.
package adapt

import "github.com/mesh-intelligence/cursors/pkg/cursor"

// categoryOf returns the category declared by C.
func categoryOf[C cursor.Categorized]() cursor.Category {
	var zero C
	return zero.Category()
}
