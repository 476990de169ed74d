// Package matrix provides a square matrix whose elements are stored in
// Morton (Z-order) rather than row-major order.
//
// Element (i, j) lives at index morton.Encode(i, j) of the underlying
// buffer, so i occupies the even bits and j the odd bits of the storage
// position. Traversal with Begin/End and the slice returned by Data both
// follow this storage order, which is neither row-major nor column-major
// for ranks above 2.
//
// A Matrix owns its buffer and must not be copied by value; use Duplicate
// for a deep copy and Move to transfer ownership.
package matrix

import (
	"math"

	"github.com/webbmaffian/go-zorder/morton"
)

// storage is implemented by file-backed buffers.
type storage interface {
	Flush() error
	Close() error
}

// Square matrix of side length Rank, stored in Morton order. The zero value
// is an empty matrix of rank 0.
type Matrix[T any] struct {
	_     noCopy
	rank  uint32
	data  []T
	store storage
}

// New allocates an r by r matrix on the heap. The rank must be zero or a
// power of two.
func New[T any](rank uint32) (m *Matrix[T], err error) {
	if err = validateRank(rank); err != nil {
		return
	}

	m = &Matrix[T]{
		rank: rank,
	}

	if rank > 0 {
		m.data = make([]T, size(rank))
	}

	return
}

func validateRank(rank uint32) error {
	if rank&(rank-1) != 0 {
		return ErrRankNotPowerOfTwo
	}

	if size(rank) > math.MaxInt {
		return ErrRankTooLarge
	}

	return nil
}

func size(rank uint32) uint64 {
	return uint64(rank) * uint64(rank)
}

// Rank returns the side length.
func (m *Matrix[T]) Rank() uint32 {
	return m.rank
}

// Size returns the number of elements, Rank squared.
func (m *Matrix[T]) Size() uint64 {
	return size(m.rank)
}

// At returns a reference to element (i, j). Both coordinates must be less
// than Rank; this is not checked beyond the bounds of the buffer.
func (m *Matrix[T]) At(i, j uint32) *T {
	return &m.data[morton.Encode(i, j)]
}

// Get returns the value of element (i, j).
func (m *Matrix[T]) Get(i, j uint32) T {
	return m.data[morton.Encode(i, j)]
}

// Set alters element (i, j) to val.
func (m *Matrix[T]) Set(i, j uint32, val T) {
	m.data[morton.Encode(i, j)] = val
}

// Data returns the underlying buffer in Morton order. The slice aliases the
// matrix storage and is only valid while the matrix owns it.
func (m *Matrix[T]) Data() []T {
	return m.data
}

// Duplicate returns a heap-allocated deep copy with the same rank. This is
// the only way to copy a matrix.
func (m *Matrix[T]) Duplicate() *Matrix[T] {
	dup := &Matrix[T]{
		rank: m.rank,
	}

	if m.rank > 0 {
		dup.data = make([]T, len(m.data))
		copy(dup.data, m.data)
	}

	return dup
}

// Move transfers the buffer to a new matrix. The receiver is left empty
// with rank 0. Cursors taken from the receiver must not be used afterwards.
func (m *Matrix[T]) Move() *Matrix[T] {
	dst := &Matrix[T]{
		rank:  m.rank,
		data:  m.data,
		store: m.store,
	}

	m.reset()
	return dst
}

// Fill sets every element to val.
func (m *Matrix[T]) Fill(val T) {
	for i := range m.data {
		m.data[i] = val
	}
}

// Each calls fn for every element in storage order.
func (m *Matrix[T]) Each(fn func(i, j uint32, val *T)) {
	for z := range m.data {
		i, j := morton.Decode(uint64(z))
		fn(i, j, &m.data[z])
	}
}

// Flush writes a file-backed matrix to disk. It is a no-op for heap
// matrices.
func (m *Matrix[T]) Flush() error {
	if m.store == nil {
		return nil
	}

	return m.store.Flush()
}

// Close releases the buffer and leaves the matrix empty. File-backed
// matrices are flushed and unmapped first.
func (m *Matrix[T]) Close() (err error) {
	if m.store != nil {
		err = m.store.Close()
	}

	m.reset()
	return
}

func (m *Matrix[T]) reset() {
	m.rank = 0
	m.data = nil
	m.store = nil
}

// noCopy makes `go vet` report matrices passed or assigned by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
