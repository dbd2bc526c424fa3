package adapt

import (
	"golang.org/x/exp/constraints"

	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
)

// Permutation reads elems at the positions listed by index. The index cursor
// is only ever read; the category is inherited from elems alone.
type Permutation[E cursor.RandomAccess[RE], RE any, X cursor.RandomAccess[I], I constraints.Integer] struct {
	elems E
	index X
	pos   int
}

// NewPermutation returns elems permuted by index. Index cursors over stored
// integers are adapted with Values.
func NewPermutation[E cursor.RandomAccess[RE], RE any, X cursor.RandomAccess[I], I constraints.Integer](elems E, index X) Permutation[E, RE, X, I] {
	return Permutation[E, RE, X, I]{elems: elems, index: index}
}

// Category is inherited from the element cursor.
func (Permutation[E, RE, X, I]) Category() cursor.Category { return categoryOf[E]() }

// Deref reads the index at the current position, then elems at that index.
func (p Permutation[E, RE, X, I]) Deref() RE {
	return p.at(p.pos)
}

// DerefAt reads the index n positions away, then elems at that index.
func (p Permutation[E, RE, X, I]) DerefAt(n int) RE {
	return p.at(p.pos + n)
}

// Advance returns a copy of p moved n positions.
func (p Permutation[E, RE, X, I]) Advance(n int) Permutation[E, RE, X, I] {
	p.pos += n
	return p
}

// Position returns the view position.
func (p Permutation[E, RE, X, I]) Position() int { return p.pos }

// Backend returns the backend of the element cursor.
func (p Permutation[E, RE, X, I]) Backend() backend.Tag { return backend.Of(p.elems) }

func (p Permutation[E, RE, X, I]) at(k int) RE {
	i := cursor.ReadAt[X, I](p.index, k)
	return cursor.ReadAt[E, RE](p.elems, i)
}

// PermutationSink scatters assigned values into elems at the slots named by
// index.
type PermutationSink[E cursor.Output[E, T], T any, X cursor.RandomAccess[I], I constraints.Integer] struct {
	cursor.Sink
	elems E
	index X
	pos   int
}

// NewPermutationSink returns a scatter view of elems through index.
func NewPermutationSink[E cursor.Output[E, T], T any, X cursor.RandomAccess[I], I constraints.Integer](elems E, index X) PermutationSink[E, T, X, I] {
	return PermutationSink[E, T, X, I]{elems: elems, index: index}
}

func (p PermutationSink[E, T, X, I]) Deref() PermutationSink[E, T, X, I] { return cursor.Vend(p) }

func (p PermutationSink[E, T, X, I]) DerefAt(n int) PermutationSink[E, T, X, I] {
	return cursor.VendAt(p, n)
}

// Set reads the index at the current position and writes v to that slot of
// elems.
func (p PermutationSink[E, T, X, I]) Set(v T) {
	i := cursor.ReadAt[X, I](p.index, p.pos)
	cursor.ReadAt[E, E](p.elems, i).Set(v)
}

func (p PermutationSink[E, T, X, I]) Advance(n int) PermutationSink[E, T, X, I] {
	p.pos += n
	return p
}

func (p PermutationSink[E, T, X, I]) Position() int { return p.pos }

func (p PermutationSink[E, T, X, I]) Backend() backend.Tag { return backend.Of(p.elems) }
