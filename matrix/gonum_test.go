package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGonumView(t *testing.T) {
	m, err := FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	v := Gonum(m)
	r, c := v.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 2.0, v.At(0, 1))
	require.Equal(t, 3.0, v.T().At(0, 1))

	var p mat.Dense
	p.Mul(v, v.T())
	require.True(t, mat.Equal(&p, mat.NewDense(2, 2, []float64{5, 11, 11, 25})))

	v.Set(1, 0, -3)
	require.Equal(t, -3.0, m.Get(1, 0))
	require.Equal(t, -3.0, v.T().At(0, 1))

	require.Panics(t, func() { v.At(2, 0) })
	require.Panics(t, func() { v.Set(0, -1, 1) })
}
