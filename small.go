package bcnrand

// Parameters of the small modulus generator.
const (
	SmallModulus    = 1<<31 + 1
	SmallMultiplier = 39373
)

// mulSmall returns x*y mod SmallModulus. Both operands are below 2^32 so the
// product cannot overflow.
func mulSmall(x, y uint64) uint64 { return x * y % SmallModulus }

// StepSmall advances a small generator state by one step.
func StepSmall(w uint64) uint64 { return SmallMultiplier * w % SmallModulus }
