package matrix

import "github.com/webbmaffian/go-zorder/morton"

// FromRows builds a matrix from row-major input, so that rows[i][j] ends up
// at (i, j). The input must be square with a power-of-two side length.
func FromRows[T any](rows [][]T) (m *Matrix[T], err error) {
	rank := uint32(len(rows))

	if int(rank) != len(rows) {
		return nil, ErrRankTooLarge
	}

	for _, row := range rows {
		if len(row) != len(rows) {
			return nil, ErrNotSquare
		}
	}

	if m, err = New[T](rank); err != nil {
		return
	}

	for i, row := range rows {
		for j, val := range row {
			m.data[morton.Encode(uint32(i), uint32(j))] = val
		}
	}

	return
}

// Rows copies the matrix out in row-major order, so that rows[i][j] is the
// value of (i, j).
func (m *Matrix[T]) Rows() [][]T {
	rows := make([][]T, m.rank)
	flat := make([]T, len(m.data))

	for i := range rows {
		rows[i] = flat[i*int(m.rank) : (i+1)*int(m.rank) : (i+1)*int(m.rank)]
	}

	m.Each(func(i, j uint32, val *T) {
		rows[i][j] = *val
	})

	return rows
}
