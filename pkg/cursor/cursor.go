package cursor

// Cursor is a cursor whose read at the current position yields R.
// For readable cursors R is the element reference type; for sinks R is the
// cursor type itself.
type Cursor[R any] interface {
	Categorized
	Deref() R
}

// RandomAccess is a Cursor that also reads at an offset from its position.
// Deref and DerefAt return the same type, so both read forms of a cursor type
// always agree on their result.
type RandomAccess[R any] interface {
	Cursor[R]
	DerefAt(n int) R
}

// Advancer moves a copy of a cursor n positions and returns it.
type Advancer[C any] interface {
	Advance(n int) C
}

// Seeker is a cursor that can be advanced but has no native offset read.
type Seeker[C, R any] interface {
	Cursor[R]
	Advancer[C]
}

// SinkCursor is satisfied only by types that embed Sink.
type SinkCursor interface {
	Categorized
	isSink()
}

// AdvancingSink is a sink that also supports offset advancement. Only the
// offset form of a sink read requires it.
type AdvancingSink[C any] interface {
	SinkCursor
	Advancer[C]
}

// Output is a sink that can be advanced and accepts values of type T. Sink
// views route each assigned value to the output at the mapped slot.
type Output[C, T any] interface {
	AdvancingSink[C]
	RandomAccess[C]
	Setter[T]
}

// Getter reads the element a reference aliases.
type Getter[T any] interface {
	Get() T
}

// Setter writes through a reference or a sink handle.
type Setter[T any] interface {
	Set(v T)
}

// Reference is a reference-like proxy to an addressable element.
type Reference[T any] interface {
	Getter[T]
	Setter[T]
}

func (Sink) isSink() {}
