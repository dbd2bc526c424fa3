package probe

import (
	"context"
	"fmt"
	"slices"

	"github.com/mesh-intelligence/cursors/pkg/adapt"
	"github.com/mesh-intelligence/cursors/pkg/backend"
	"github.com/mesh-intelligence/cursors/pkg/cursor"
	"github.com/mesh-intelligence/cursors/pkg/memory"
)

type check[C Pointer[C, R], R cursor.Reference[int]] struct {
	name string
	run  func(ctx context.Context, env Env[C, R]) error
}

// Bind returns the backend scenarios with env as their memory.
func Bind[C Pointer[C, R], R cursor.Reference[int]](env Env[C, R]) []Scenario {
	checks := []check[C, R]{
		{"alias", alias[C, R]},
		{"offset-consistency", offsetConsistency[C, R]},
		{"idempotence", idempotence[C, R]},
		{"zip-discard", zipDiscard[C, R]},
		{"reverse", reverse[C, R]},
		{"transform", transform[C, R]},
		{"permutation", permutation[C, R]},
		{"offset-view", offsetView[C, R]},
	}
	out := make([]Scenario, 0, len(checks))
	for _, c := range checks {
		out = append(out, Scenario{
			Name:    c.name,
			Backend: env.Tag.Name(),
			Run:     func(ctx context.Context) error { return c.run(ctx, env) },
		})
	}
	return out
}

// Portable returns the scenarios for cursors without storage.
func Portable(size int) []Scenario {
	tag := backend.Any{}.Name()
	return []Scenario{
		{Name: "discard", Backend: tag, Run: discard},
		{Name: "counting", Backend: tag, Run: func(ctx context.Context) error { return counting(ctx, size) }},
		{Name: "constant", Backend: tag, Run: func(ctx context.Context) error { return constant(ctx, size) }},
	}
}

// ascending returns 10, 20, 30, ... n values long.
func ascending(n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = 10 * (i + 1)
	}
	return vals
}

func expect[T comparable](what string, got, want T) error {
	if got != want {
		return fmt.Errorf("%s: got %v, want %v", what, got, want)
	}
	return nil
}

func expectValues(what string, got, want []int) error {
	if !slices.Equal(got, want) {
		return fmt.Errorf("%s: got %v, want %v", what, got, want)
	}
	return nil
}

// alias writes through an offset read and checks the backing array changed.
func alias[C Pointer[C, R], R cursor.Reference[int]](_ context.Context, env Env[C, R]) error {
	arr, err := env.Alloc([]int{10, 20, 30})
	if err != nil {
		return err
	}
	p := arr.Begin()
	if err := expect("read_at(p, 1)", cursor.ReadAt[C, R](p, 1).Get(), 20); err != nil {
		return err
	}

	cursor.ReadAt[C, R](p, 1).Set(99)
	got, err := arr.Values()
	if err != nil {
		return err
	}
	return expectValues("after write", got, []int{10, 99, 30})
}

// offsetConsistency checks read_at(p, k), read(advance(p, k)) and
// read_at(advance(p, k), 0) agree at every position.
func offsetConsistency[C Pointer[C, R], R cursor.Reference[int]](ctx context.Context, env Env[C, R]) error {
	vals := ascending(env.Size)
	arr, err := env.Alloc(vals)
	if err != nil {
		return err
	}
	p := arr.Begin()
	for k := range vals {
		if err := ctx.Err(); err != nil {
			return err
		}
		moved := p.Advance(k)
		at := cursor.ReadAt[C, R](p, k).Get()
		if err := expect(fmt.Sprintf("read_at(p, %d)", k), at, vals[k]); err != nil {
			return err
		}
		if err := expect(fmt.Sprintf("read(advance(p, %d))", k), cursor.Read[C, R](moved).Get(), at); err != nil {
			return err
		}
		if err := expect(fmt.Sprintf("read_at(advance(p, %d), 0)", k), cursor.ReadAt[C, R](moved, 0).Get(), at); err != nil {
			return err
		}
	}
	return nil
}

// idempotence checks two reads of one cursor name the same element.
func idempotence[C Pointer[C, R], R cursor.Reference[int]](_ context.Context, env Env[C, R]) error {
	arr, err := env.Alloc(ascending(env.Size))
	if err != nil {
		return err
	}
	p := arr.Begin().Advance(env.Size - 1)
	first := cursor.Read[C, R](p)
	second := cursor.Read[C, R](p)

	first.Set(-7)
	if err := expect("second read after write through first", second.Get(), -7); err != nil {
		return err
	}
	return expect("read_at(p, 0)", cursor.ReadAt[C, R](p, 0).Get(), -7)
}

// zipDiscard zips the array with a discard sink and writes the pair at 1.
func zipDiscard[C Pointer[C, R], R cursor.Reference[int]](_ context.Context, env Env[C, R]) error {
	arr, err := env.Alloc([]int{1, 2, 3})
	if err != nil {
		return err
	}
	if !cursor.IsSink[adapt.Zip2[C, R, adapt.Discard[int], adapt.Discard[int]]]() {
		return fmt.Errorf("zip with discard: category %s", cursor.CategoryReadable)
	}

	z := adapt.NewZip2[C, R, adapt.Discard[int], adapt.Discard[int]](arr.Begin(), adapt.NewDiscard[int]())
	pair := cursor.ReadAt[adapt.Zip2[C, R, adapt.Discard[int], adapt.Discard[int]], cursor.Tuple2[R, adapt.Discard[int]]](z, 1)
	cursor.Store2[R, adapt.Discard[int], int, int](pair, 99, 0)

	got, err := arr.Values()
	if err != nil {
		return err
	}
	return expectValues("after zipped write", got, []int{1, 99, 3})
}

// reverse checks read_at(reverse(p), n) == read_at(p, len-1-n).
func reverse[C Pointer[C, R], R cursor.Reference[int]](_ context.Context, env Env[C, R]) error {
	vals := ascending(env.Size)
	arr, err := env.Alloc(vals)
	if err != nil {
		return err
	}
	r := adapt.ReverseOf[C, R](arr.Begin(), len(vals))
	for n := range vals {
		got := cursor.ReadAt[adapt.Reverse[C, R], R](r, n).Get()
		if err := expect(fmt.Sprintf("reverse at %d", n), got, vals[len(vals)-1-n]); err != nil {
			return err
		}
	}
	return nil
}

// transform doubles every element through a readable view.
func transform[C Pointer[C, R], R cursor.Reference[int]](_ context.Context, env Env[C, R]) error {
	vals := ascending(env.Size)
	arr, err := env.Alloc(vals)
	if err != nil {
		return err
	}
	if cursor.IsSink[adapt.Transform[C, R, int]]() {
		return fmt.Errorf("transform: category %s", cursor.CategorySink)
	}

	doubled := adapt.NewTransform[C, R, int](arr.Begin(), func(r R) int { return 2 * r.Get() })
	for k := range vals {
		got := cursor.ReadAt[adapt.Transform[C, R, int], int](doubled, k)
		if err := expect(fmt.Sprintf("transform at %d", k), got, 2*vals[k]); err != nil {
			return err
		}
	}
	got, err := arr.Values()
	if err != nil {
		return err
	}
	return expectValues("source after transform", got, vals)
}

// reversedIndex maps position k to len-1-k.
type reversedIndex = adapt.Transform[adapt.Counting[int], int, int]

// permutation gathers through a reversed index and scatters one write.
func permutation[C Pointer[C, R], R cursor.Reference[int]](_ context.Context, env Env[C, R]) error {
	vals := ascending(env.Size)
	arr, err := env.Alloc(vals)
	if err != nil {
		return err
	}
	last := len(vals) - 1
	index := adapt.NewTransform[adapt.Counting[int], int, int](adapt.NewCounting(0), func(i int) int { return last - i })
	perm := adapt.NewPermutation[C, R, reversedIndex, int](arr.Begin(), index)

	for k := range vals {
		got := cursor.ReadAt[adapt.Permutation[C, R, reversedIndex, int], R](perm, k).Get()
		if err := expect(fmt.Sprintf("permutation at %d", k), got, vals[last-k]); err != nil {
			return err
		}
	}

	cursor.ReadAt[adapt.Permutation[C, R, reversedIndex, int], R](perm, 0).Set(-1)
	got, err := arr.Values()
	if err != nil {
		return err
	}
	return expect("scattered write", got[last], -1)
}

// offsetView reads every second element starting at 1.
func offsetView[C Pointer[C, R], R cursor.Reference[int]](_ context.Context, env Env[C, R]) error {
	vals := ascending(env.Size)
	arr, err := env.Alloc(vals)
	if err != nil {
		return err
	}
	view := adapt.NewOffset[C, R](arr.Begin(), 1, 2)
	for k := 0; 1+2*k < len(vals); k++ {
		want := vals[1+2*k]
		if err := expect(fmt.Sprintf("view at %d", k), cursor.ReadAt[adapt.Offset[C, R], R](view, k).Get(), want); err != nil {
			return err
		}
		if err := expect(fmt.Sprintf("view advanced %d", k), cursor.Read[adapt.Offset[C, R], R](view.Advance(k)).Get(), want); err != nil {
			return err
		}
	}
	return nil
}

// parallel has workers write disjoint chunks of one multi-core buffer through
// their own offset reads, then checks every element landed.
func parallel(ctx context.Context, size, workers int) error {
	buf := memory.MultiCore(make([]int, size))
	begin := buf.Begin()
	err := buf.Parallel(ctx, workers, func(_ context.Context, lo, hi int) error {
		chunk := begin.Advance(lo)
		for k := 0; k < hi-lo; k++ {
			cursor.ReadAt(chunk, k).Set(lo + k)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for i, v := range buf.Snapshot() {
		if err := expect(fmt.Sprintf("element %d", i), v, i); err != nil {
			return err
		}
	}
	return nil
}

// discard checks a sink vends itself and never reads.
func discard(context.Context) error {
	if err := cursor.Verify[adapt.Discard[int], adapt.Discard[int]](); err != nil {
		return err
	}
	d := adapt.NewDiscard[int]()
	h := cursor.Read(d)
	h.Set(42)
	if err := expect("vended handle", h, d); err != nil {
		return err
	}
	if err := expect("read_at(d, 3) position", cursor.ReadAt(d, 3).Position(), 3); err != nil {
		return err
	}
	if err := expect("source position", d.Position(), 0); err != nil {
		return err
	}
	view := adapt.NewOffsetSink[adapt.Discard[int], int](d, 2, 3)
	if err := cursor.Verify[adapt.OffsetSink[adapt.Discard[int], int], adapt.OffsetSink[adapt.Discard[int], int]](); err != nil {
		return err
	}
	return expect("offset view handle", cursor.ReadAt(view, 4), view.Advance(4))
}

func counting(ctx context.Context, size int) error {
	c := adapt.NewCounting(5)
	for k := 0; k < size; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := expect(fmt.Sprintf("counting at %d", k), cursor.ReadAt(c, k), 5+k); err != nil {
			return err
		}
		if err := expect(fmt.Sprintf("counting advanced %d", k), cursor.Read(c.Advance(k)), 5+k); err != nil {
			return err
		}
	}
	return nil
}

func constant(_ context.Context, size int) error {
	c := adapt.NewConstant(7)
	for _, k := range []int{-1, 0, size} {
		if err := expect(fmt.Sprintf("constant at %d", k), cursor.ReadAt(c, k), 7); err != nil {
			return err
		}
	}
	return expect("constant read", cursor.Read(c), 7)
}
