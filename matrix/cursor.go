package matrix

import "github.com/webbmaffian/go-zorder/morton"

// Begin returns a cursor at the first element in storage order.
func (m *Matrix[T]) Begin() Cursor[T] {
	return Cursor[T]{base: m.data}
}

// End returns the cursor one past the last element.
func (m *Matrix[T]) End() Cursor[T] {
	return Cursor[T]{base: m.data, off: m.Size()}
}

// Cursor is a bidirectional position in a matrix's storage. It does not own
// anything: it is only valid while the matrix it came from still owns its
// buffer. The coordinates of the current element are decoded from the
// storage offset on every call.
type Cursor[T any] struct {
	base []T
	off  uint64
}

// Value returns a reference to the current element. Calling it on End
// panics.
func (c *Cursor[T]) Value() *T {
	return &c.base[c.off]
}

// Next advances by one storage slot.
func (c *Cursor[T]) Next() *Cursor[T] {
	c.off++
	return c
}

// Prev moves back by one storage slot. Moving back from Begin is undefined.
func (c *Cursor[T]) Prev() *Cursor[T] {
	c.off--
	return c
}

// X returns the first coordinate of the current element.
func (c *Cursor[T]) X() uint32 {
	return morton.X(c.off)
}

// Y returns the second coordinate of the current element.
func (c *Cursor[T]) Y() uint32 {
	return morton.Y(c.off)
}

// Offset returns the Morton code of the current element.
func (c *Cursor[T]) Offset() uint64 {
	return c.off
}

// Equal reports whether both cursors point at the same element. Comparing
// cursors of different matrices is meaningless.
func (c *Cursor[T]) Equal(other Cursor[T]) bool {
	return c.off == other.off
}
