package sim

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

// RangeF32 returns a value in [min, max).
func (r *Rand) RangeF32(min, max float32) float32 {
	if max <= min {
		return min
	}
	v := min + (max-min)*float32(r.Float64())
	if v >= max {
		// float32 rounding can land exactly on max.
		v = min
	}
	return v
}
