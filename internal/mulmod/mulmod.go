package mulmod

import (
	"math/bits"

	"github.com/zeebo/errs"
)

// MulMod returns x*y mod m computed with the full 128 bit product. It requires
// x, y < m so that the high word of the product is below m. It works for any
// modulus and is the reference the faster Barrett and Schrage reductions are
// checked against.
func MulMod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

//
// barrett reduction
//

// Barrett reduces 128 bit products by a fixed modulus using a precomputed
// reciprocal instead of a division.
type Barrett struct {
	M    uint64
	mu   uint64 // floor(2^(2n) / M)
	n    uint   // bit length of M
	mask uint64 // 2^(n+2) - 1
}

// NewBarrett constructs a Barrett reducer for the modulus m, which must have
// between 33 and 62 bits.
func NewBarrett(m uint64) (Barrett, error) {
	n := uint(bits.Len64(m))
	if n < 33 || n > 62 {
		return Barrett{}, errs.New("invalid barrett modulus: %d (%d bits)", m, n)
	}

	// 2^(2n) has its high word at bit 2n-64, which is below m for n < 63.
	mu, _ := bits.Div64(1<<(2*n-64), 0, m)

	return Barrett{
		M:    m,
		mu:   mu,
		n:    n,
		mask: 1<<(n+2) - 1,
	}, nil
}

// MustBarrett is like NewBarrett but panics on an invalid modulus.
func MustBarrett(m uint64) Barrett {
	b, err := NewBarrett(m)
	if err != nil {
		panic(err)
	}
	return b
}

// Mul returns x*y mod M. It requires x, y < M.
func (b Barrett) Mul(x, y uint64) uint64 {
	xhi, xlo := bits.Mul64(x, y)

	// q = ((x >> (n-1)) * mu) >> (n+1). the product is below 2^(2n), so the
	// shifted value fits in n+1 bits and the estimate is low by at most 2.
	q := xhi<<(65-b.n) | xlo>>(b.n-1)
	qhi, qlo := bits.Mul64(q, b.mu)
	q = qhi<<(63-b.n) | qlo>>(b.n+1)

	// the true remainder is below 3M < 2^(n+2), so only the low bits matter.
	r1 := xlo & b.mask
	r2 := (q * b.M) & b.mask
	r := (r1 - r2) & b.mask

	for r >= b.M {
		r -= b.M
	}
	return r
}

//
// schrage's method
//

// Schrage computes z*A mod M without a double width product by splitting M
// as A*Q + R.
type Schrage struct {
	A, M uint64
	Q, R uint64
}

// NewSchrage constructs a Schrage stepper. It requires R < Q so that neither
// partial product exceeds M.
func NewSchrage(a, m uint64) (Schrage, error) {
	if a == 0 || a >= m {
		return Schrage{}, errs.New("invalid schrage multiplier: %d mod %d", a, m)
	}
	s := Schrage{A: a, M: m, Q: m / a, R: m % a}
	if s.R >= s.Q {
		return Schrage{}, errs.New("invalid schrage parameters: r=%d >= q=%d", s.R, s.Q)
	}
	return s, nil
}

// MustSchrage is like NewSchrage but panics on invalid parameters.
func MustSchrage(a, m uint64) Schrage {
	s, err := NewSchrage(a, m)
	if err != nil {
		panic(err)
	}
	return s
}

// Step returns z*A mod M. It requires z < M.
func (s Schrage) Step(z uint64) uint64 {
	t1 := s.A * (z % s.Q)
	t2 := s.R * (z / s.Q)
	if t1 >= t2 {
		return t1 - t2
	}
	return t1 + s.M - t2
}
