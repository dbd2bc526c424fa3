package cursor

// Tuple2 packages the read results of two component cursors. A component may
// be a reference or a sink handle.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Category is CategorySink when any component is a sink handle.
func (t Tuple2[A, B]) Category() Category {
	return Join(handleCategory(t.First), handleCategory(t.Second))
}

// Tuple3 packages the read results of three component cursors.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Category is CategorySink when any component is a sink handle.
func (t Tuple3[A, B, C]) Category() Category {
	return Join(handleCategory(t.First), handleCategory(t.Second), handleCategory(t.Third))
}

// tupled is implemented by the tuple result types.
type tupled interface{ isTuple() }

func (Tuple2[A, B]) isTuple()    {}
func (Tuple3[A, B, C]) isTuple() {}

// Store2 assigns a and b through the components of t: references are written,
// sink handles receive the value as their output.
func Store2[A Setter[VA], B Setter[VB], VA, VB any](t Tuple2[A, B], a VA, b VB) {
	t.First.Set(a)
	t.Second.Set(b)
}

// Store3 assigns a, b and c through the components of t.
func Store3[A Setter[VA], B Setter[VB], C Setter[VC], VA, VB, VC any](t Tuple3[A, B, C], a VA, b VB, c VC) {
	t.First.Set(a)
	t.Second.Set(b)
	t.Third.Set(c)
}

// Load2 reads both components of a readable tuple.
func Load2[A Getter[VA], B Getter[VB], VA, VB any](t Tuple2[A, B]) (VA, VB) {
	return t.First.Get(), t.Second.Get()
}

// Load3 reads all components of a readable tuple.
func Load3[A Getter[VA], B Getter[VB], C Getter[VC], VA, VB, VC any](t Tuple3[A, B, C]) (VA, VB, VC) {
	return t.First.Get(), t.Second.Get(), t.Third.Get()
}
