package mmarr

import (
	"unsafe"
)

func newHeader[T any, H any](length int, custom H) *header[H] {
	var item T

	h := &header[H]{
		length: length,
		custom: custom,
	}
	h.headSize = int(unsafe.Sizeof(*h))
	h.itemSize = int(unsafe.Sizeof(item))

	return h
}

type header[H any] struct {
	headSize int
	itemSize int
	length   int
	custom   H
}

func (h header[H]) fileSize() int {
	return h.headSize + h.itemSize*h.length
}
