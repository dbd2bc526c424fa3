// Package backend defines the execution-domain tags carried by elementary
// memory cursors. A tag names the domain whose memory a cursor addresses; the
// read dispatch layer routes to the cursor's own read and never checks the tag.
package backend

// Tag identifies an execution backend.
type Tag interface {
	Name() string
}

// Tags for the built-in backends.
type (
	Host        struct{}
	MultiCore   struct{}
	Vector      struct{}
	Accelerator struct{}
	Any         struct{} // cursors with no storage, usable from every domain
)

func (Host) Name() string        { return "host" }
func (MultiCore) Name() string   { return "multicore" }
func (Vector) Name() string      { return "vector" }
func (Accelerator) Name() string { return "accelerator" }
func (Any) Name() string         { return "any" }

// Placed is implemented by cursors that declare a backend.
type Placed interface {
	Backend() Tag
}

// Of returns the backend c declares, or Any when it declares none.
func Of(c any) Tag {
	if p, ok := c.(Placed); ok {
		return p.Backend()
	}
	return Any{}
}

// Names lists the names of the storage backends, in declaration order.
var Names = []string{
	Host{}.Name(),
	MultiCore{}.Name(),
	Vector{}.Name(),
	Accelerator{}.Name(),
}

// Lookup returns the tag registered under name.
func Lookup(name string) (Tag, bool) {
	switch name {
	case "host":
		return Host{}, true
	case "multicore":
		return MultiCore{}, true
	case "vector":
		return Vector{}, true
	case "accelerator":
		return Accelerator{}, true
	case "any":
		return Any{}, true
	}
	return nil, false
}
