package radspec

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
)

// MixBits is a 64-bit multiply-xor-shift finalizer: every input bit
// affects every output bit. Not cryptographic.
func MixBits(v uint64) uint64 {
	v ^= v >> 31
	v *= 0x7fb5d329728ea185
	v ^= v >> 27
	v *= 0x81dadef4bc2dd44d
	v ^= v >> 33
	return v
}

// Hash digests the little-endian image of values. Used to derive per-pixel
// and per-dimension keys from small integer tuples.
func Hash(values ...uint64) uint64 {
	var stack [8 * 8]byte
	buf := stack[:0]
	if len(values) > 8 {
		buf = make([]byte, 0, 8*len(values))
	}
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint64(buf, v)
	}
	return xxhash.Sum64(buf)
}

// pixelKey packs a pixel coordinate into one word; negative coordinates keep their low 32 bits.
func pixelKey(p Point2i) uint64 {
	return uint64(uint32(p.X))<<32 | uint64(uint32(p.Y))
}
