package bcnrand

import (
	"sync"

	"github.com/zeebo/errs"
)

const (
	tableRows  = 11
	digitBits  = 5
	tableCols  = 1 << digitBits // 32
	digitMask  = tableCols - 1
	windowBits = tableRows * digitBits // 55
)

// Table holds multiplier^(j * 32^i) mod modulus at row i, column j.
type Table [tableRows][tableCols]uint64

// NewTable builds the power table for the multiplier with the given modular
// multiplication. The multiplier must already be reduced.
func NewTable(multiplier uint64, mul func(x, y uint64) uint64) *Table {
	var t Table

	base := multiplier
	for i := range t {
		if i > 0 {
			// 32^i = 32 * 32^(i-1): square the previous base five times.
			base = t[i-1][1]
			for s := 0; s < digitBits; s++ {
				base = mul(base, base)
			}
		}

		t[i][0] = 1
		for j := 1; j < tableCols; j++ {
			t[i][j] = mul(t[i][j-1], base)
		}
	}

	return &t
}

// check validates the structural properties every table must have.
func (t *Table) check(multiplier, modulus uint64) error {
	if t[0][1] != multiplier {
		return errs.New("table[0][1] = %d, expected multiplier %d", t[0][1], multiplier)
	}
	for i := range t {
		if t[i][0] != 1 {
			return errs.New("table[%d][0] = %d, expected 1", i, t[i][0])
		}
		for j, v := range t[i] {
			if v == 0 || v >= modulus {
				return errs.New("table[%d][%d] = %d out of range (0, %d)", i, j, v, modulus)
			}
		}
	}
	return nil
}

// Pow returns multiplier^e through the table, consuming e in base 32 digits.
// Exponents of 2^55 or more are reduced modulo 2^55.
func (t *Table) Pow(e uint64, mul func(x, y uint64) uint64) uint64 {
	acc := uint64(1)
	for i := range t {
		acc = mul(acc, t[i][e&digitMask])
		e >>= digitBits
	}
	return acc
}

var (
	tablesOnce sync.Once
	largeTable *Table
	smallTable *Table
)

// Tables returns the process wide power tables for the large and small
// generators. They are built on first use and must not be modified.
func Tables() (large, small *Table) {
	tablesOnce.Do(func() {
		lt := NewTable(LargeMultiplier, mulLarge)
		st := NewTable(SmallMultiplier, mulSmall)

		// an invalid table is a construction bug, not a runtime condition.
		if err := errs.Combine(
			lt.check(LargeMultiplier, LargeModulus),
			st.check(SmallMultiplier, SmallModulus),
		); err != nil {
			panic(err)
		}

		largeTable, smallTable = lt, st
	})
	return largeTable, smallTable
}
