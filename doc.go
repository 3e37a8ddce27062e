// Package bcnrand is a combined congruential generator for running many
// independent lanes at once. Each lane is seeded directly from an index with a
// base 32 jump ahead, so lanes never need to communicate or step through each
// other's sequences.
//
// The large generator is z <- 2^25 z mod 3^33 and the small generator is
// w <- 39373 w mod 2^31+1. Every draw steps both and returns the low 31 bits
// of their difference.
package bcnrand
