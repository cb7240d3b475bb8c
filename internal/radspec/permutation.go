package radspec

// PermutationElement returns the i-th element of a pseudo-random permutation
// of [0,l) selected by key p (Kensler, "Correlated Multi-Jittered Sampling").
// The scramble is a bijection on the next power-of-two range; values that land
// outside [0,l) are walked again until they fall inside, so for a fixed (l,p)
// the map i -> PermutationElement(i,l,p) visits every element exactly once.
// l must be positive and i < l.
func PermutationElement(i, l, p uint32) uint32 {
	if l == 0 {
		panic("radspec: permutation of empty range")
	}
	w := l - 1
	w |= w >> 1
	w |= w >> 2
	w |= w >> 4
	w |= w >> 8
	w |= w >> 16
	for {
		i ^= p
		i *= 0xe170893d
		i ^= p >> 16
		i ^= (i & w) >> 4
		i ^= p >> 8
		i *= 0x0929eb3f
		i ^= p >> 23
		i ^= (i & w) >> 1
		i *= 1 | p>>27
		i *= 0x6935fa69
		i ^= (i & w) >> 11
		i *= 0x74dcb303
		i ^= (i & w) >> 2
		i *= 0x9e501cc3
		i ^= (i & w) >> 2
		i *= 0xc860a3df
		i &= w
		i ^= i >> 5
		if i < l {
			break
		}
	}
	// 64-bit sum: a wrapped 32-bit sum would break the bijection for keys near 2^32.
	return uint32((uint64(i) + uint64(p)) % uint64(l))
}
