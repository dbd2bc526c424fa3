package adapt

import "github.com/mesh-intelligence/cursors/pkg/cursor"

// tape is an output that records the position of every value written
// through it.
type tape struct {
	cursor.Sink
	log *map[int]int
	pos int
}

func newTape() tape {
	log := map[int]int{}
	return tape{log: &log}
}

func (t tape) Deref() tape        { return cursor.Vend(t) }
func (t tape) DerefAt(n int) tape { return cursor.VendAt(t, n) }
func (t tape) Set(v int)          { (*t.log)[t.pos] = v }

func (t tape) Advance(n int) tape {
	t.pos += n
	return t
}

func (t tape) written() map[int]int { return *t.log }
