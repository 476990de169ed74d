package utils

import (
	"unsafe"
)

// PointerToBytes returns the memory behind val as a byte slice of the
// given length. No copy is made.
func PointerToBytes[T any](val *T, length int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(val)), length)
}

// BytesToPointer reinterprets the start of b as a *T. No copy is made.
func BytesToPointer[T any](b []byte) *T {
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// BytesToSlice reinterprets b as a slice of n items of type T.
func BytesToSlice[T any](b []byte, n int) []T {
	if n == 0 {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// SliceToBytes returns the memory behind s as a byte slice.
func SliceToBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}

	var item T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(item)))
}
