package mmarr

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type testHead struct {
	Rank uint32
}

func TestNewSetGetReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arr.bin")

	arr, err := NewWithHeader[float64](path, 16, testHead{Rank: 4})
	require.NoError(t, err)
	require.Equal(t, 16, arr.Len())
	require.Equal(t, 8, arr.ItemSize())
	require.Equal(t, uint32(4), arr.Head().Rank)

	for i := 0; i < arr.Len(); i++ {
		v := float64(i) * 1.5
		arr.Set(i, &v)
	}

	require.Equal(t, 4.5, *arr.Get(3))
	require.Len(t, arr.Items(), 16)
	require.Equal(t, 22.5, arr.Items()[15])
	require.NoError(t, arr.Close())

	// Reopening ignores the passed custom header and keeps the stored one.
	arr, err = NewWithHeader[float64](path, 16, testHead{Rank: 99})
	require.NoError(t, err)
	require.Equal(t, uint32(4), arr.Head().Rank)
	require.Equal(t, 4.5, *arr.Get(3))
	require.NoError(t, arr.Close())

	ro, err := OpenROWithHeader[float64, testHead](path)
	require.NoError(t, err)
	require.Equal(t, 16, ro.Len())
	require.Equal(t, 22.5, ro.Items()[15])
	require.NoError(t, ro.Close())
}

func TestValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arr.bin")

	arr, err := New[uint32](path, 4)
	require.NoError(t, err)
	require.NoError(t, arr.Close())

	_, err = New[uint32](path, 8)
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = New[uint64](path, 4)
	require.Error(t, err)

	_, err = New[uint32](filepath.Join(t.TempDir(), "neg.bin"), -1)
	require.Error(t, err)

	_, err = New[struct{}](filepath.Join(t.TempDir(), "empty.bin"), 1)
	require.ErrorContains(t, err, "at least 1 byte")

	_, err = OpenRO[uint32](filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}

func TestCloseFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arr.bin")

	arr, err := New[uint64](path, 8)
	require.NoError(t, err)

	for i := 0; i < arr.Len(); i++ {
		v := uint64(i * i)
		arr.Set(i, &v)
	}

	require.NoError(t, arr.Close())

	headSize := int(unsafe.Sizeof(header[struct{}]{}))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, raw, headSize+8*8)
	require.Equal(t, uint64(49), binary.NativeEndian.Uint64(raw[headSize+7*8:]))

	ro, err := OpenRO[uint64](path)
	require.NoError(t, err)
	require.Equal(t, uint64(36), *ro.Get(6))
	require.NoError(t, ro.Close())
}

func TestEmpty(t *testing.T) {
	arr, err := New[int32](filepath.Join(t.TempDir(), "empty.bin"), 0)
	require.NoError(t, err)
	require.Equal(t, 0, arr.Len())
	require.Empty(t, arr.Items())
	require.NoError(t, arr.Close())
	require.NoError(t, arr.Close())
}

func BenchmarkSet(b *testing.B) {
	arr, err := New[uint64](filepath.Join(b.TempDir(), "bench.bin"), 1024)

	if err != nil {
		b.Fatal(err)
	}

	b.Cleanup(func() {
		arr.Close()
	})

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		v := uint64(i)
		arr.Set(i&1023, &v)
	}
}
