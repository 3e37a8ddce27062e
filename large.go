package bcnrand

import "github.com/zeebo/bcnrand/internal/mulmod"

// Parameters of the large modulus generator.
const (
	LargeModulus    = 5559060566555523 // 3^33
	LargeMultiplier = 1 << 25

	// LargePeriod is the multiplicative order of LargeMultiplier. 2 is a
	// primitive root modulo every power of 3 and 25 is coprime to the group
	// order 2*3^32, so the multiplier generates the whole unit group.
	LargePeriod = 2 * 1853020188851841 // 2 * 3^32

	// largeHalf is floor(LargeModulus / 2), the closing multiplier of the
	// large jump ahead.
	largeHalf = LargeModulus / 2
)

var (
	largeBarrett = mulmod.MustBarrett(LargeModulus)
	largeSchrage = mulmod.MustSchrage(LargeMultiplier, LargeModulus)
)

// mulLarge returns x*y mod LargeModulus. It requires x, y < LargeModulus.
func mulLarge(x, y uint64) uint64 { return largeBarrett.Mul(x, y) }

// StepLarge advances a large generator state by one step.
func StepLarge(z uint64) uint64 { return largeSchrage.Step(z) }
