package adapt

import "github.com/mesh-intelligence/cursors/pkg/cursor"

// Zip2 reads two cursors in lockstep and packages their results. It is a sink
// when either component is; the tuple then mixes references and sink handles,
// and cursor.Store2 writes through each of them.
type Zip2[A cursor.RandomAccess[RA], RA any, B cursor.RandomAccess[RB], RB any] struct {
	a   A
	b   B
	pos int
}

// NewZip2 zips a and b.
func NewZip2[A cursor.RandomAccess[RA], RA any, B cursor.RandomAccess[RB], RB any](a A, b B) Zip2[A, RA, B, RB] {
	return Zip2[A, RA, B, RB]{a: a, b: b}
}

// Category is CategorySink when either component is a sink.
func (Zip2[A, RA, B, RB]) Category() cursor.Category {
	return cursor.Join(categoryOf[A](), categoryOf[B]())
}

// Deref reads both components at the current position.
func (z Zip2[A, RA, B, RB]) Deref() cursor.Tuple2[RA, RB] {
	return z.at(z.pos)
}

// DerefAt reads both components n positions away.
func (z Zip2[A, RA, B, RB]) DerefAt(n int) cursor.Tuple2[RA, RB] {
	return z.at(z.pos + n)
}

// Advance returns a copy of z moved n positions.
func (z Zip2[A, RA, B, RB]) Advance(n int) Zip2[A, RA, B, RB] {
	z.pos += n
	return z
}

// Position returns the zip position.
func (z Zip2[A, RA, B, RB]) Position() int { return z.pos }

func (z Zip2[A, RA, B, RB]) at(p int) cursor.Tuple2[RA, RB] {
	return cursor.Tuple2[RA, RB]{
		First:  cursor.ReadAt[A, RA](z.a, p),
		Second: cursor.ReadAt[B, RB](z.b, p),
	}
}

// Zip3 reads three cursors in lockstep.
type Zip3[A cursor.RandomAccess[RA], RA any, B cursor.RandomAccess[RB], RB any, C cursor.RandomAccess[RC], RC any] struct {
	a   A
	b   B
	c   C
	pos int
}

// NewZip3 zips a, b and c.
func NewZip3[A cursor.RandomAccess[RA], RA any, B cursor.RandomAccess[RB], RB any, C cursor.RandomAccess[RC], RC any](a A, b B, c C) Zip3[A, RA, B, RB, C, RC] {
	return Zip3[A, RA, B, RB, C, RC]{a: a, b: b, c: c}
}

// Category is CategorySink when any component is a sink.
func (Zip3[A, RA, B, RB, C, RC]) Category() cursor.Category {
	return cursor.Join(categoryOf[A](), categoryOf[B](), categoryOf[C]())
}

// Deref reads every component at the current position.
func (z Zip3[A, RA, B, RB, C, RC]) Deref() cursor.Tuple3[RA, RB, RC] {
	return z.at(z.pos)
}

// DerefAt reads every component n positions away.
func (z Zip3[A, RA, B, RB, C, RC]) DerefAt(n int) cursor.Tuple3[RA, RB, RC] {
	return z.at(z.pos + n)
}

// Advance returns a copy of z moved n positions.
func (z Zip3[A, RA, B, RB, C, RC]) Advance(n int) Zip3[A, RA, B, RB, C, RC] {
	z.pos += n
	return z
}

// Position returns the zip position.
func (z Zip3[A, RA, B, RB, C, RC]) Position() int { return z.pos }

func (z Zip3[A, RA, B, RB, C, RC]) at(p int) cursor.Tuple3[RA, RB, RC] {
	return cursor.Tuple3[RA, RB, RC]{
		First:  cursor.ReadAt[A, RA](z.a, p),
		Second: cursor.ReadAt[B, RB](z.b, p),
		Third:  cursor.ReadAt[C, RC](z.c, p),
	}
}
