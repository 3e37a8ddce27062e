package tests

import (
	"math/big"

	"github.com/zeebo/pcg"
)

// MulMod returns x*y mod m using arbitrary precision arithmetic.
func MulMod(x, y, m uint64) uint64 {
	bx := new(big.Int).SetUint64(x)
	by := new(big.Int).SetUint64(y)
	bx.Mul(bx, by)
	return bx.Mod(bx, new(big.Int).SetUint64(m)).Uint64()
}

// PowMod returns b^e mod m using arbitrary precision arithmetic.
func PowMod(b, e, m uint64) uint64 {
	bb := new(big.Int).SetUint64(b)
	be := new(big.Int).SetUint64(e)
	return bb.Exp(bb, be, new(big.Int).SetUint64(m)).Uint64()
}

// Steps applies step n times to start.
func Steps(step func(uint64) uint64, start uint64, n uint64) uint64 {
	for i := uint64(0); i < n; i++ {
		start = step(start)
	}
	return start
}

// Below returns a value uniformly distributed in [0, m) using the rng.
func Below(rng *pcg.T, m uint64) uint64 {
	// rejection keeps the sample unbiased; m is never more than 2^63 here.
	lim := ^uint64(0) - ^uint64(0)%m
	for {
		if v := rng.Uint64(); v < lim {
			return v % m
		}
	}
}

// Edges returns the edge operands for a modulus.
func Edges(m uint64) []uint64 {
	return []uint64{0, 1, 2, m / 2, m - 2, m - 1}
}
