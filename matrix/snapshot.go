package matrix

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unsafe"

	"github.com/klauspost/compress/zstd"
	"github.com/webbmaffian/go-zorder/internal/utils"
)

var snapshotMagic = [4]byte{'Z', 'M', 'A', 'T'}

type snapshotHead struct {
	Magic    [4]byte
	ItemSize uint32
	Rank     uint32
}

// WriteTo writes the matrix as a snapshot: a small uncompressed header
// followed by the zstd-compressed buffer in Morton order. The element type
// MUST NOT contain any pointer nor slice.
func (m *Matrix[T]) WriteTo(w io.Writer) (n int64, err error) {
	var item T

	cw := &countingWriter{w: w}
	head := snapshotHead{
		Magic:    snapshotMagic,
		ItemSize: uint32(unsafe.Sizeof(item)),
		Rank:     m.rank,
	}

	if err = binary.Write(cw, binary.LittleEndian, &head); err != nil {
		return cw.n, err
	}

	enc, err := zstd.NewWriter(cw)

	if err != nil {
		return cw.n, err
	}

	if _, err = enc.Write(utils.SliceToBytes(m.data)); err != nil {
		enc.Close()
		return cw.n, err
	}

	err = enc.Close()
	return cw.n, err
}

// ReadFrom reads a snapshot written by WriteTo into a new heap matrix. The
// element type MUST NOT contain any pointer nor slice.
//
// The rank in the header is not trusted for allocation: the payload is
// decoded first, and the matrix is only built when the decoded length
// matches the header.
func ReadFrom[T any](r io.Reader) (m *Matrix[T], err error) {
	var (
		item T
		head snapshotHead
	)

	if err = binary.Read(r, binary.LittleEndian, &head); err != nil {
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}

	if head.Magic != snapshotMagic {
		return nil, ErrBadSnapshot
	}

	if head.ItemSize != uint32(unsafe.Sizeof(item)) {
		return nil, fmt.Errorf("snapshot item size %d, expected %d: %w", head.ItemSize, unsafe.Sizeof(item), ErrBadSnapshot)
	}

	if err = validateRank(head.Rank); err != nil {
		return nil, fmt.Errorf("snapshot rank %d: %w: %w", head.Rank, err, ErrBadSnapshot)
	}

	items := size(head.Rank)

	if head.ItemSize > 0 && items > uint64(math.MaxInt64-1)/uint64(head.ItemSize) {
		return nil, fmt.Errorf("snapshot rank %d: %w", head.Rank, ErrBadSnapshot)
	}

	expected := int64(items * uint64(head.ItemSize))

	if expected == 0 {
		return New[T](head.Rank)
	}

	dec, err := zstd.NewReader(r)

	if err != nil {
		return nil, fmt.Errorf("read snapshot data: %v: %w", err, ErrBadSnapshot)
	}

	defer dec.Close()

	// One extra byte tells an oversized payload apart from an exact one.
	payload, err := io.ReadAll(io.LimitReader(dec, expected+1))

	if err != nil {
		return nil, fmt.Errorf("read snapshot data: %v: %w", err, ErrBadSnapshot)
	}

	if int64(len(payload)) != expected {
		return nil, fmt.Errorf("snapshot holds %d bytes, header claims %d: %w", len(payload), expected, ErrBadSnapshot)
	}

	if m, err = New[T](head.Rank); err != nil {
		return nil, err
	}

	copy(utils.SliceToBytes(m.data), payload)
	return
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (n int, err error) {
	n, err = cw.w.Write(p)
	cw.n += int64(n)
	return
}
