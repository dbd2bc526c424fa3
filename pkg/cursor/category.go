package cursor

import "fmt"

// Category is the traversal category a cursor type declares.
type Category uint8

// Recognised categories. CategoryUnknown is the zero value and is never a
// valid declaration.
const (
	CategoryUnknown Category = iota
	CategoryReadable
	CategorySink
)

// String returns the lower-case category name.
func (c Category) String() string {
	switch c {
	case CategoryReadable:
		return "readable"
	case CategorySink:
		return "sink"
	case CategoryUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

// Valid reports whether c is CategoryReadable or CategorySink.
func (c Category) Valid() bool {
	return c == CategoryReadable || c == CategorySink
}

// Categorized is implemented by every cursor type. Category must not depend
// on the receiver's state: it is evaluated on the zero value.
type Categorized interface {
	Category() Category
}

// Readable is embedded by cursor types whose reads yield a reference to an
// addressable element.
type Readable struct{}

// Category returns CategoryReadable.
func (Readable) Category() Category { return CategoryReadable }

// Sink is embedded by write-only output cursors. A type that embeds both
// Readable and Sink at the same depth has an ambiguous Category selector and
// satisfies no cursor constraint.
type Sink struct{}

// Category returns CategorySink.
func (Sink) Category() Category { return CategorySink }

// IsSink reports whether C is a write-only sink cursor.
func IsSink[C Categorized]() bool {
	var zero C
	return zero.Category() == CategorySink
}

// Classify returns the category C declares, or ErrUnclassified when the
// declaration is not a recognised category.
func Classify[C Categorized]() (Category, error) {
	var zero C
	cat := zero.Category()
	if !cat.Valid() {
		return cat, fmt.Errorf("%T: %w", zero, ErrUnclassified)
	}
	return cat, nil
}

// Join combines component categories for cursors built from several
// underlying cursors: the result is a sink when any component is a sink.
func Join(cats ...Category) Category {
	out := CategoryReadable
	for _, c := range cats {
		switch c {
		case CategorySink:
			out = CategorySink
		case CategoryReadable:
		default:
			return CategoryUnknown
		}
	}
	return out
}
