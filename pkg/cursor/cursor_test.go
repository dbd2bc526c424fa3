package cursor

// Minimal cursors shared by the tests in this package.

type cell struct{ v *int }

func (c cell) Get() int  { return *c.v }
func (c cell) Set(v int) { *c.v = v }

// slots is a readable cursor over a slice.
type slots struct {
	Readable
	data []int
	pos  int
}

func (s slots) Deref() cell        { return cell{&s.data[s.pos]} }
func (s slots) DerefAt(n int) cell { return cell{&s.data[s.pos+n]} }

func (s slots) Advance(n int) slots {
	s.pos += n
	return s
}

// walker has no native offset read.
type walker struct {
	Readable
	data []int
	pos  int
}

func (w walker) Deref() cell        { return cell{&w.data[w.pos]} }
func (w walker) DerefAt(n int) cell { return ReadAdvanced(w, n) }

func (w walker) Advance(n int) walker {
	w.pos += n
	return w
}

// counter is a sink that records how far it has been advanced.
type counter struct {
	Sink
	pos int
}

func (c counter) Deref() counter        { return Vend(c) }
func (c counter) DerefAt(n int) counter { return VendAt(c, n) }
func (counter) Set(int)                 {}

func (c counter) Advance(n int) counter {
	c.pos += n
	return c
}

// unmarked declares no category.
type unmarked struct{}

func (unmarked) Category() Category { return CategoryUnknown }
func (unmarked) Deref() int         { return 0 }

// liar claims to be a sink but yields plain values.
type liar struct{}

func (liar) Category() Category { return CategorySink }
func (liar) Deref() int         { return 0 }

// forwarder is a sink that hands out a different sink instead of itself.
type forwarder struct{ Sink }

func (forwarder) Deref() counter { return counter{} }

// leaky is readable but hands out sink handles.
type leaky struct{ Readable }

func (leaky) Deref() counter { return counter{} }
