package bcnrand

const outputMask = 1<<31 - 1

// Lane is the state of one combined generator. The zero value is invalid:
// zero is a fixed point of both generators. Use NewLane or Seed.
type Lane struct {
	Z uint64 // large generator state
	W uint64 // small generator state
}

// NewLane returns a Lane seeded for the large and small indices.
func NewLane(large, small uint64) (Lane, error) {
	z, w, err := Seed(large, small)
	if err != nil {
		return Lane{}, err
	}
	return Lane{Z: z, W: w}, nil
}

// Next advances both generators once and returns the combined 31 bit output
// along with the new states.
func Next(z, w uint64) (out uint32, nz, nw uint64) {
	nz, nw = StepLarge(z), StepSmall(w)
	return uint32((nw - nz) & outputMask), nz, nw
}

// Valid reports if both states are in range and non-zero.
func (l Lane) Valid() bool {
	return 0 < l.Z && l.Z < LargeModulus && 0 < l.W && l.W < SmallModulus
}

// Uint32 returns a random value in [0, 2^31).
func (l *Lane) Uint32() (out uint32) {
	out, l.Z, l.W = Next(l.Z, l.W)
	return out
}

// Intn returns an int uniformly in [0, n). It requires 0 < n <= 2^31.
func (l *Lane) Intn(n int) int {
	return int((uint64(l.Uint32()) * uint64(n)) >> 31)
}

// Float64 returns a float uniformly in [0, 1) built from two outputs.
func (l *Lane) Float64() float64 {
	u53 := uint64(l.Uint32())<<22 | uint64(l.Uint32())>>9
	return float64(u53) / (1 << 53)
}

// Fill writes successive outputs into dst.
func (l *Lane) Fill(dst []uint32) {
	z, w := l.Z, l.W
	for i := range dst {
		dst[i], z, w = Next(z, w)
	}
	l.Z, l.W = z, w
}
