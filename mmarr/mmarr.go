// Package mmarr implements a fixed-length array backed by a memory-mapped
// file. The file starts with a header describing the item size and length,
// optionally followed by a custom header, and then the items themselves.
package mmarr

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/webbmaffian/go-zorder/internal/utils"
)

// Initialize a new memory-mapped array with a filepath and a length. If the
// file already exists, the length must match the value from the file.
// The provided type (`T`) MUST NOT contain any pointer nor slice.
func New[T any](filepath string, length int) (arr *Array[T, struct{}], err error) {
	return NewWithHeader[T](filepath, length, struct{}{})
}

// NewWithHeader works like New, but also stores a custom header of type H.
// The custom header is only written when the file is created; when opening
// an existing file the stored header is kept and can be inspected with Head.
func NewWithHeader[T any, H any](filepath string, length int, custom H) (arr *Array[T, H], err error) {
	if length < 0 {
		return nil, errors.New("length must not be negative")
	}

	arr = &Array[T, H]{
		head: newHeader[T](length, custom),
	}

	if arr.head.itemSize <= 0 {
		return nil, errors.New("item must be at least 1 byte")
	}

	var created bool
	info, err := os.Stat(filepath)

	if err == nil {
		if arr.file, err = os.OpenFile(filepath, os.O_RDWR, 0); err != nil {
			return nil, err
		}

		if err = arr.validateHead(info.Size(), length); err != nil {
			arr.file.Close()
			return nil, err
		}
	} else if os.IsNotExist(err) {
		if arr.file, err = os.Create(filepath); err != nil {
			return nil, err
		}

		if err = arr.file.Truncate(int64(arr.head.fileSize())); err != nil {
			arr.file.Close()
			return nil, err
		}

		created = true
	} else {
		return nil, err
	}

	if arr.data, err = mmap.Map(arr.file, mmap.RDWR, 0); err != nil {
		arr.file.Close()
		return nil, err
	}

	if created {
		if copy(arr.data[:arr.head.headSize], utils.PointerToBytes(arr.head, arr.head.headSize)) != arr.head.headSize {
			arr.Close()
			return nil, errors.New("failed to write header")
		}

		if err = arr.Flush(); err != nil {
			arr.Close()
			return nil, err
		}
	}

	arr.head = utils.BytesToPointer[header[H]](arr.data[:arr.head.headSize])

	return arr, nil
}

// OpenRO opens an existing array read-only. Writing to the returned items
// will fault.
func OpenRO[T any](filepath string) (arr *Array[T, struct{}], err error) {
	return OpenROWithHeader[T, struct{}](filepath)
}

func OpenROWithHeader[T any, H any](filepath string) (arr *Array[T, H], err error) {
	var custom H

	arr = &Array[T, H]{
		head:     newHeader[T](-1, custom),
		readOnly: true,
	}

	if arr.head.itemSize <= 0 {
		return nil, errors.New("item must be at least 1 byte")
	}

	info, err := os.Stat(filepath)

	if err != nil {
		return nil, err
	}

	if arr.file, err = os.OpenFile(filepath, os.O_RDONLY, 0); err != nil {
		return nil, err
	}

	if err = arr.validateHead(info.Size(), -1); err != nil {
		arr.file.Close()
		return nil, err
	}

	if arr.data, err = mmap.Map(arr.file, mmap.RDONLY, 0); err != nil {
		arr.file.Close()
		return nil, err
	}

	arr.head = utils.BytesToPointer[header[H]](arr.data[:arr.head.headSize])

	return arr, nil
}

// ErrLengthMismatch is returned when an existing file holds a different
// number of items than requested.
var ErrLengthMismatch = errors.New("length mismatch")

// Memory-mapped array
type Array[T any, H any] struct {
	data     mmap.MMap
	file     *os.File
	head     *header[H]
	readOnly bool
}

// validateHead checks the header stored in the file against the expected
// item type. A negative length accepts whatever length the file holds.
func (arr *Array[T, H]) validateHead(fileSize int64, length int) (err error) {
	if fileSize < int64(arr.head.headSize) {
		return errors.New("file too small")
	}

	if arr.file == nil {
		return errors.New("file is not open")
	}

	if _, err = arr.file.Seek(0, io.SeekStart); err != nil {
		return
	}

	b := make([]byte, arr.head.headSize)

	if _, err = io.ReadFull(arr.file, b); err != nil {
		return
	}

	head := utils.BytesToPointer[header[H]](b)

	if head.headSize != arr.head.headSize {
		return errors.New("invalid header size")
	}

	if head.itemSize != arr.head.itemSize {
		return errors.New("invalid item size")
	}

	if length >= 0 && head.length != length {
		return fmt.Errorf("file holds %d items, expected %d: %w", head.length, length, ErrLengthMismatch)
	}

	if fileSize != int64(head.fileSize()) {
		return errors.New("invalid file size")
	}

	return
}

func (arr *Array[T, H]) Flush() error {
	return arr.data.Flush()
}

// Close flushes and unmaps the file and closes it. Any slice or pointer
// previously returned by the array is invalid afterwards.
func (arr *Array[T, H]) Close() (err error) {
	if arr.data == nil {
		return nil
	}

	if !arr.readOnly {
		if err = arr.Flush(); err != nil {
			return
		}
	}

	if err = arr.data.Unmap(); err != nil {
		return
	}

	arr.data = nil
	arr.head = nil

	return arr.file.Close()
}

func (arr *Array[T, H]) Set(pos int, val *T) {
	idx := arr.posToIdx(pos)
	copy(arr.data[idx:idx+arr.head.itemSize], utils.PointerToBytes(val, arr.head.itemSize))
}

func (arr *Array[T, H]) Get(pos int) *T {
	idx := arr.posToIdx(pos)
	return utils.BytesToPointer[T](arr.data[idx : idx+arr.head.itemSize])
}

func (arr *Array[T, H]) Len() int {
	return arr.head.length
}

func (arr *Array[T, H]) ItemSize() int {
	return arr.head.itemSize
}

// Items returns all items as a slice aliasing the mapped memory.
func (arr *Array[T, H]) Items() []T {
	return utils.BytesToSlice[T](arr.data[arr.head.headSize:], arr.head.length)
}

// Head returns the custom header stored in the file.
func (arr *Array[T, H]) Head() *H {
	return &arr.head.custom
}

func (arr *Array[T, H]) posToIdx(pos int) int {
	return arr.head.headSize + pos*arr.head.itemSize
}
