package matrix

import (
	"errors"
	"fmt"

	"github.com/webbmaffian/go-zorder/mmarr"
)

// fileHead is stored after the array header of a mapped matrix.
type fileHead struct {
	Rank uint32
}

// Map creates or opens a file-backed r by r matrix. When the file exists it
// must hold a matrix of the same rank and element size. The element type
// MUST NOT contain any pointer nor slice.
func Map[T any](filepath string, rank uint32) (m *Matrix[T], err error) {
	if err = validateRank(rank); err != nil {
		return
	}

	arr, err := mmarr.NewWithHeader[T](filepath, int(size(rank)), fileHead{Rank: rank})

	if errors.Is(err, mmarr.ErrLengthMismatch) {
		return nil, fmt.Errorf("map %s: %w: %w", filepath, err, ErrRankMismatch)
	}

	if err != nil {
		return nil, fmt.Errorf("map %s: %w", filepath, err)
	}

	if r := arr.Head().Rank; r != rank {
		arr.Close()
		return nil, fmt.Errorf("map %s: file has rank %d, expected %d: %w", filepath, r, rank, ErrRankMismatch)
	}

	return &Matrix[T]{
		rank:  rank,
		data:  arr.Items(),
		store: arr,
	}, nil
}

// OpenRO maps an existing matrix file read-only. The rank is taken from the
// file. Writing to the matrix faults.
func OpenRO[T any](filepath string) (m *Matrix[T], err error) {
	arr, err := mmarr.OpenROWithHeader[T, fileHead](filepath)

	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath, err)
	}

	rank := arr.Head().Rank

	if err = validateRank(rank); err != nil || uint64(arr.Len()) != size(rank) {
		arr.Close()

		if err == nil {
			err = ErrRankMismatch
		}

		return nil, fmt.Errorf("open %s: %w", filepath, err)
	}

	return &Matrix[T]{
		rank:  rank,
		data:  arr.Items(),
		store: arr,
	}, nil
}
