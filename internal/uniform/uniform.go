package uniform

import (
	"sync/atomic"
)

const (
	// 64 buckets over the top 6 bits of a 31 bit value.
	bucketBits = 6
	buckets    = 1 << bucketBits
	valueBits  = 31
)

// Counter counts 31 bit values into equal width buckets. It is safe for
// concurrent use.
type Counter struct {
	counts [buckets]int64
}

// Observe records the value. Bits above the low 31 are ignored.
func (c *Counter) Observe(v uint32) {
	atomic.AddInt64(&c.counts[(v&(1<<valueBits-1))>>(valueBits-bucketBits)], 1)
}

// Total returns the number of observed values.
func (c *Counter) Total() (total int64) {
	for i := range c.counts {
		total += atomic.LoadInt64(&c.counts[i])
	}
	return total
}

// DegreesOfFreedom returns the degrees of freedom of ChiSquare.
func (c *Counter) DegreesOfFreedom() int { return buckets - 1 }

// ChiSquare returns Pearson's statistic against the uniform distribution.
func (c *Counter) ChiSquare() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}

	exp := float64(total) / buckets
	acc := 0.0
	for i := range c.counts {
		dev := float64(atomic.LoadInt64(&c.counts[i])) - exp
		acc += dev * dev / exp
	}
	return acc
}
