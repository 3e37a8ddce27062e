package bcnrand

import "github.com/zeebo/errs"

// MaxIndex is the largest lane index the eleven digit jump ahead accepts.
const MaxIndex = 1<<windowBits - 1

var (
	// Error is the class of errors returned by this package.
	Error = errs.Class("bcnrand")

	// OutOfRangeError is the class of errors for lane indices past MaxIndex.
	// Every such error is also of class Error.
	OutOfRangeError = errs.Class("index out of range")
)

// outOfRange returns an error of both OutOfRangeError and Error.
func outOfRange(format string, args ...interface{}) error {
	return Error.Wrap(OutOfRangeError.New(format, args...))
}

func checkIndex(name string, k uint64) error {
	if k > MaxIndex {
		return outOfRange("%s index %d > %d", name, k, uint64(MaxIndex))
	}
	return nil
}

// seedLarge returns the initial large state for the index.
func seedLarge(k uint64, t *Table) uint64 { return mulLarge(JumpLarge(k, t), largeHalf) }

// seedSmall returns the initial small state for the index.
func seedSmall(k uint64, t *Table) uint64 { return StepSmall(JumpSmall(k, t)) }

// Seed returns the initial states of both generators for a lane. The large
// state is JumpLarge(large) times floor(LargeModulus/2) and the small state
// is one step past JumpSmall(small). Neither is ever zero.
func Seed(large, small uint64) (z, w uint64, err error) {
	if err := checkIndex("large", large); err != nil {
		return 0, 0, err
	}
	if err := checkIndex("small", small); err != nil {
		return 0, 0, err
	}

	lt, st := Tables()
	return seedLarge(large, lt), seedSmall(small, st), nil
}
