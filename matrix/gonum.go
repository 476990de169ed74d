package matrix

import "gonum.org/v1/gonum/mat"

var _ mat.Mutable = Float64View{}

// Float64View exposes a float64 matrix as a gonum mat.Mutable, so it can be
// passed to gonum routines without copying.
type Float64View struct {
	m *Matrix[float64]
}

// Gonum wraps m in a view usable wherever gonum expects a mat.Matrix.
// The view shares storage with m.
func Gonum(m *Matrix[float64]) Float64View {
	return Float64View{m: m}
}

// Dims returns the dimensions (rows + columns) of a Matrix.
func (v Float64View) Dims() (r, c int) {
	return int(v.m.rank), int(v.m.rank)
}

// At returns the value of a matrix element at row i, column j.
func (v Float64View) At(i, j int) float64 {
	if uint(i) >= uint(v.m.rank) || uint(j) >= uint(v.m.rank) {
		panic(mat.ErrIndexOutOfRange)
	}

	return v.m.Get(uint32(i), uint32(j))
}

// Set alters the matrix element at row i, column j to val.
func (v Float64View) Set(i, j int, val float64) {
	if uint(i) >= uint(v.m.rank) || uint(j) >= uint(v.m.rank) {
		panic(mat.ErrIndexOutOfRange)
	}

	v.m.Set(uint32(i), uint32(j), val)
}

// T returns a transposed view sharing the same storage.
func (v Float64View) T() mat.Matrix {
	return mat.Transpose{Matrix: v}
}
