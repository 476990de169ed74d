// Package morton maps 2D coordinates to a position on the Z-order curve
// and back.
//
// The first coordinate occupies the even bits of the code and the second
// coordinate the odd bits:
//
//	Encode(0, 0) == 0
//	Encode(1, 0) == 1
//	Encode(0, 1) == 2
//	Encode(1, 1) == 3
//
// Coordinates use the full 32-bit range, codes are 64 bits wide. For any
// power-of-two rank r, x < r and y < r imply Encode(x, y) < r*r.
package morton

// Encode interleaves the bits of x and y into a Morton code.
func Encode(x, y uint32) uint64 {
	return Spread(x) | (Spread(y) << 1)
}

// Decode splits a Morton code into its coordinates.
func Decode(z uint64) (x, y uint32) {
	return Pack(z), Pack(z >> 1)
}

// X returns only the first coordinate of z.
func X(z uint64) uint32 {
	return Pack(z)
}

// Y returns only the second coordinate of z.
func Y(z uint64) uint32 {
	return Pack(z >> 1)
}
