package cursor

import (
	"fmt"
	"reflect"
)

// Result describes the outcome of resolving a read for one cursor type.
type Result struct {
	Cursor   reflect.Type // the cursor type C
	Type     reflect.Type // the read result type R
	Category Category     // category declared by C
}

// Identity reports whether the result type is the cursor type itself.
func (r Result) Identity() bool {
	return r.Cursor == r.Type
}

// String formats r as "C -> R (category)".
func (r Result) String() string {
	return fmt.Sprintf("%s -> %s (%s)", typeName(r.Cursor), typeName(r.Type), r.Category)
}

// ResultOf reifies the result type of reading C.
func ResultOf[C Cursor[R], R any]() Result {
	var zero C
	return Result{
		Cursor:   reflect.TypeFor[C](),
		Type:     reflect.TypeFor[R](),
		Category: zero.Category(),
	}
}

// Verify checks the read contract of C: the category must be known, a sink
// must vend itself, and a readable cursor must not vend a sink handle. A tuple
// of component results is the one sink result that differs from C.
func Verify[C Cursor[R], R any]() error {
	res := ResultOf[C, R]()
	if !res.Category.Valid() {
		return fmt.Errorf("%s: %w", typeName(res.Cursor), ErrUnclassified)
	}
	var out R
	handle := handleCategory(out) == CategorySink
	_, tuple := any(out).(tupled)
	switch {
	case res.Category == CategorySink && !handle:
		return fmt.Errorf("%s: %w", res, ErrSinkResult)
	case res.Category == CategorySink && !res.Identity() && !tuple:
		return fmt.Errorf("%s: %w", res, ErrSinkResult)
	case res.Category == CategoryReadable && handle:
		return fmt.Errorf("%s: %w", res, ErrReadableResult)
	}
	return nil
}

// handleCategory returns the category of a read result when the result is
// itself categorised, and CategoryReadable otherwise.
func handleCategory(v any) Category {
	c, ok := v.(Categorized)
	if !ok {
		return CategoryReadable
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return CategoryReadable
	}
	return c.Category()
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
