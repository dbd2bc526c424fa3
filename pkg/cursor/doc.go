// Package cursor defines the read dispatch layer shared by every cursor family:
// the category markers, the Cursor constraints, the classification predicate,
// and the Read/ReadAt entry points used by algorithms.
//
// A cursor declares its category by embedding Readable or Sink. Reading a
// readable cursor yields its element reference type; reading a sink yields a
// copy of the sink itself, so that assigning through the copy performs the
// write. The result type of a read is the type parameter R bound by the
// Cursor[R] constraint and is fixed when the call site is compiled.
//
// Implements: read dispatch (classification predicate, result type, dispatch surface).
package cursor
