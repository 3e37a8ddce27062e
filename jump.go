package bcnrand

// JumpLarge walks the large generator's table for the index k. The low five
// bits of k pick the starting point 2^(k&31) and the remaining fifty bits
// count steps, so the result equals k>>5 applications of StepLarge to
// 2^(k&31). Bits above 2^55 are ignored.
//
// The digit consumed at position i is paired with row i-1 of the table: row
// i-1 holds powers of LargeMultiplier^(32^(i-1)), which is exactly the weight
// of digit i once the low digit is spent on the starting point.
//
// The table is built from LargeMultiplier, so the large stream differs from
// the one produced by the CUDA bcnrand release, whose table holds powers of 2.
func JumpLarge(k uint64, t *Table) uint64 {
	acc := uint64(1) << (k & digitMask)
	for i := 1; i < tableRows; i++ {
		k >>= digitBits
		acc = mulLarge(acc, t[i-1][k&digitMask])
	}
	return acc
}

// JumpSmall walks the small generator's table for the index k. The result
// equals k applications of StepSmall to 1. Bits above 2^55 are ignored.
func JumpSmall(k uint64, t *Table) uint64 {
	return t.Pow(k, mulSmall)
}
