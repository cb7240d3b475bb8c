package radspec

import (
	"math"
	"math/bits"
)

// PCG32 constants (see https://www.pcg-random.org/).
const (
	PCG32DefaultState  = 0x853c49e6748fea9b
	PCG32DefaultStream = 0xda3e39cb94b95bdb
	PCG32Mult          = 0x5851f42d4c957f2d
)

// PCG32 is a 64-bit state permuted congruential generator with 32-bit output (XSH-RR).
// It is a plain value: copying it forks an independent stream that continues
// from the same point. Not safe for concurrent use.
type PCG32 struct {
	state uint64
	inc   uint64 // always odd
}

// NewPCG32 seeds a generator on the given stream, starting at offset.
func NewPCG32(stream, offset uint64) PCG32 {
	var g PCG32
	g.SetSequence(stream, offset)
	return g
}

// DefaultPCG32 returns the generator seeded with the reference state and stream.
func DefaultPCG32() PCG32 { return NewPCG32(PCG32DefaultStream, PCG32DefaultState) }

// SetSequence resets the generator: stream selects the increment, offset moves the start.
// Both draws are needed so that seed and stream influence the very first output.
func (g *PCG32) SetSequence(stream, offset uint64) {
	g.state = 0
	g.inc = (stream << 1) | 1
	g.Uint32()
	g.state += offset
	g.Uint32()
}

// Reseed restarts the generator from seed on the default stream.
func (g *PCG32) Reseed(seed uint64) { g.SetSequence(PCG32DefaultStream, seed) }

// Uint32 returns a uniformly distributed 32-bit value.
func (g *PCG32) Uint32() uint32 {
	old := g.state
	g.state = old*PCG32Mult + g.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Uint64 packs two 32-bit draws high:low. It also makes *PCG32 a math/rand/v2 Source.
func (g *PCG32) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}

// Float32 returns a value in [0,1) built from the top 23 output bits.
func (g *PCG32) Float32() float32 {
	u := g.Uint32()
	return math.Float32frombits(u>>9|0x3f800000) - 1
}

// Float64 returns a value in [0,1); the 32 output bits fill the top of the mantissa.
func (g *PCG32) Float64() float64 {
	u := uint64(g.Uint32())
	return math.Float64frombits(u<<20|0x3ff0000000000000) - 1
}

// Uint32n returns a value in [0,max) without modulo bias.
// Draws below 2^32 mod max are rejected, so each residue is equally likely.
func (g *PCG32) Uint32n(max uint32) uint32 {
	if max == 0 {
		panic("radspec: Uint32n called with zero bound")
	}
	threshold := -max % max
	for {
		r := g.Uint32()
		if r >= threshold {
			return r % max
		}
	}
}

// Uint64n is the 64-bit variant of Uint32n.
func (g *PCG32) Uint64n(max uint64) uint64 {
	if max == 0 {
		panic("radspec: Uint64n called with zero bound")
	}
	threshold := -max % max
	for {
		r := g.Uint64()
		if r >= threshold {
			return r % max
		}
	}
}

// Int32 and Int64 reinterpret raw draws as signed values.
func (g *PCG32) Int32() int32 { return int32(g.Uint32()) }
func (g *PCG32) Int64() int64 { return int64(g.Uint64()) }

// Intn returns an int in [0,n). n must be positive.
func (g *PCG32) Intn(n int) int {
	if n <= 0 {
		panic("radspec: Intn called with non-positive bound")
	}
	if uint64(n) <= math.MaxUint32 {
		return int(g.Uint32n(uint32(n)))
	}
	return int(g.Uint64n(uint64(n)))
}

// Shuffle permutes n elements in place (Fisher–Yates, last index first).
func (g *PCG32) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, g.Intn(i+1))
	}
}

// Advance moves the generator delta steps in O(log delta).
// A negative delta wraps modulo 2^64 and therefore steps backwards.
func (g *PCG32) Advance(delta int64) {
	curMult, curPlus := uint64(PCG32Mult), g.inc
	accMult, accPlus := uint64(1), uint64(0)
	for d := uint64(delta); d > 0; d >>= 1 {
		if d&1 != 0 {
			accMult *= curMult
			accPlus = accPlus*curMult + curPlus
		}
		curPlus = (curMult + 1) * curPlus
		curMult *= curMult
	}
	g.state = accMult*g.state + accPlus
}
