package bcnrand

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/zeebo/errs"
)

// NewLanes returns n lanes where lane i is seeded with index i*stride for both
// generators. Lanes stay disjoint for as long as each draws fewer than
// stride/32 values, so stride should be a multiple of 32 and at least 32
// times the number of draws per lane.
func NewLanes(n int, stride uint64) ([]Lane, error) {
	if n < 0 {
		return nil, Error.New("invalid lane count: %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	if last := uint64(n - 1); stride > 0 && last > MaxIndex/stride {
		return nil, outOfRange("%d lanes at stride %d exceed %d", n, stride, uint64(MaxIndex))
	}

	lt, st := Tables()
	lanes := make([]Lane, n)
	for i := range lanes {
		k := uint64(i) * stride
		lanes[i] = Lane{Z: seedLarge(k, lt), W: seedSmall(k, st)}
	}
	return lanes, nil
}

// FillLanes fills outs[i] from lanes[i] for every lane, spreading the lanes
// over GOMAXPROCS goroutines. Lanes that have not been started when ctx is
// done are left untouched and the context error is returned.
func FillLanes(ctx context.Context, lanes []Lane, outs [][]uint32) error {
	if len(lanes) != len(outs) {
		return Error.New("mismatched lanes and outputs: %d != %d", len(lanes), len(outs))
	}

	procs := runtime.GOMAXPROCS(-1)
	if procs > len(lanes) {
		procs = len(lanes)
	}

	var next, filled int64
	var wg sync.WaitGroup

	for p := 0; p < procs; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				i := atomic.AddInt64(&next, 1) - 1
				if i >= int64(len(lanes)) {
					return
				}
				lanes[i].Fill(outs[i])
				atomic.AddInt64(&filled, 1)
			}
		}()
	}
	wg.Wait()

	if atomic.LoadInt64(&filled) < int64(len(lanes)) {
		return errs.Wrap(ctx.Err())
	}
	return nil
}
