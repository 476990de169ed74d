package morton

var (
	masks = [...]uint64{
		0x5555555555555555,
		0x3333333333333333,
		0x0F0F0F0F0F0F0F0F,
		0x00FF00FF00FF00FF,
		0x0000FFFF0000FFFF,
		0x00000000FFFFFFFF,
	}
	shifts = [...]uint{1, 2, 4, 8, 16}
)

// Spread inserts a zero bit above every bit of v, so that bit n of v
// ends up at bit 2n of the result.
func Spread(v uint32) uint64 {
	x := uint64(v)

	for i := 4; i >= 0; i-- {
		x = (x | (x << shifts[i])) & masks[i]
	}

	return x
}

// Pack is the inverse of Spread: it collects the even bits of z into a
// contiguous value. Odd bits are ignored.
func Pack(z uint64) uint32 {
	x := z & masks[0]

	for i := 0; i <= 4; i++ {
		x = (x | (x >> shifts[i])) & masks[i+1]
	}

	return uint32(x)
}
