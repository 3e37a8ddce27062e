package mulmod

import (
	"runtime"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/bcnrand/internal/tests"
	"github.com/zeebo/pcg"
)

const (
	m1 = 5559060566555523 // 3^33
	a1 = 1 << 25
	m2 = 1<<31 + 1
	a2 = 39373
)

func TestMulMod(t *testing.T) {
	t.Run("Edges", func(t *testing.T) {
		for _, m := range []uint64{m1, m2, 1<<63 - 25, 7} {
			for _, x := range tests.Edges(m) {
				for _, y := range tests.Edges(m) {
					assert.Equal(t, MulMod(x, y, m), tests.MulMod(x, y, m))
				}
			}
		}
	})

	t.Run("Random", func(t *testing.T) {
		rng := pcg.New(1)
		for i := 0; i < 100000; i++ {
			x, y := tests.Below(&rng, m1), tests.Below(&rng, m1)
			assert.Equal(t, MulMod(x, y, m1), tests.MulMod(x, y, m1))
		}
	})
}

func TestBarrett(t *testing.T) {
	t.Run("Invalid", func(t *testing.T) {
		_, err := NewBarrett(1 << 31)
		assert.Error(t, err)
		_, err = NewBarrett(1 << 62)
		assert.Error(t, err)
	})

	t.Run("Edges", func(t *testing.T) {
		for _, m := range []uint64{m1, 1<<32 + 15, 1<<62 - 57, 1<<53 - 111} {
			b := MustBarrett(m)
			for _, x := range tests.Edges(m) {
				for _, y := range tests.Edges(m) {
					assert.Equal(t, b.Mul(x, y), tests.MulMod(x, y, m))
				}
			}
		}
	})

	t.Run("Random", func(t *testing.T) {
		rng := pcg.New(2)
		b := MustBarrett(m1)
		for i := 0; i < 1000000; i++ {
			x, y := tests.Below(&rng, m1), tests.Below(&rng, m1)
			if got, exp := b.Mul(x, y), tests.MulMod(x, y, m1); got != exp {
				t.Fatalf("%d * %d: got %d, expected %d", x, y, got, exp)
			}
		}
	})

	t.Run("RandomModulus", func(t *testing.T) {
		rng := pcg.New(3)
		for i := 0; i < 1000; i++ {
			m := rng.Uint64()>>2 | 1<<32
			b := MustBarrett(m)
			for j := 0; j < 100; j++ {
				x, y := tests.Below(&rng, m), tests.Below(&rng, m)
				assert.Equal(t, b.Mul(x, y), tests.MulMod(x, y, m))
			}
		}
	})

	t.Run("MatchesMulMod", func(t *testing.T) {
		rng := pcg.New(4)
		b := MustBarrett(m1)
		for i := 0; i < 100000; i++ {
			x, y := tests.Below(&rng, m1), tests.Below(&rng, m1)
			assert.Equal(t, b.Mul(x, y), MulMod(x, y, m1))
		}
	})
}

func TestSchrage(t *testing.T) {
	t.Run("Invalid", func(t *testing.T) {
		_, err := NewSchrage(0, m1)
		assert.Error(t, err)
		_, err = NewSchrage(m1, m1)
		assert.Error(t, err)
		_, err = NewSchrage(1<<40, m1) // r >= q
		assert.Error(t, err)
	})

	t.Run("Parameters", func(t *testing.T) {
		s := MustSchrage(a1, m1)
		assert.Equal(t, s.Q, uint64(165672915))
		assert.Equal(t, s.R, uint64(5946243))

		s = MustSchrage(a2, m2)
		assert.Equal(t, s.Q, uint64(54542))
		assert.Equal(t, s.R, uint64(1483))
	})

	t.Run("Edges", func(t *testing.T) {
		for _, p := range [][2]uint64{{a1, m1}, {a2, m2}} {
			s := MustSchrage(p[0], p[1])
			for _, z := range tests.Edges(p[1]) {
				assert.Equal(t, s.Step(z), tests.MulMod(z, p[0], p[1]))
			}
		}
	})

	t.Run("Random", func(t *testing.T) {
		rng := pcg.New(5)
		s := MustSchrage(a1, m1)
		b := MustBarrett(m1)
		for i := 0; i < 100000; i++ {
			z := tests.Below(&rng, m1)
			exp := tests.MulMod(z, a1, m1)
			assert.Equal(t, s.Step(z), exp)
			assert.Equal(t, b.Mul(z, a1), exp)
		}
	})
}

func BenchmarkMulMod(b *testing.B) {
	rng := pcg.New(0)
	x, y := tests.Below(&rng, m1), tests.Below(&rng, m1)

	b.Run("Div64", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			x = MulMod(x, y, m1)
		}
		runtime.KeepAlive(x)
	})

	b.Run("Barrett", func(b *testing.B) {
		br := MustBarrett(m1)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			x = br.Mul(x, y)
		}
		runtime.KeepAlive(x)
	})

	b.Run("Schrage", func(b *testing.B) {
		s := MustSchrage(a1, m1)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			x = s.Step(x)
		}
		runtime.KeepAlive(x)
	})
}
