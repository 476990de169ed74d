package matrix

type matrixError string

var _ error = matrixError("")

func (err matrixError) Error() string {
	return string(err)
}

const (
	ErrRankNotPowerOfTwo = matrixError("rank must be a power of two")
	ErrRankTooLarge      = matrixError("rank too large to allocate")
	ErrRankMismatch      = matrixError("rank mismatch")
	ErrNotSquare         = matrixError("rows do not form a square matrix")
	ErrBadSnapshot       = matrixError("not a matrix snapshot")
)
