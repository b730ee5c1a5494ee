// Package hash contains hash functions and combinators for building hashes of
// persistent containers out of the hashes of their elements.
package hash

import "math"

// DJBInit is the initial accumulator of the DJB combination.
const DJBInit uint32 = 5381

// DJBCombine mixes h into the accumulator acc.
func DJBCombine(acc, h uint32) uint32 {
	return mul33(acc) + h
}

// DJB combines all of hs, starting from DJBInit.
func DJB(hs ...uint32) uint32 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

func UInt32(u uint32) uint32 {
	return u
}

func UInt64(u uint64) uint32 {
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

func Int(i int) uint32 {
	return UInt64(uint64(i))
}

// Float64 hashes the bits of f. Positive and negative zeros hash the same.
func Float64(f float64) uint32 {
	if f == 0 {
		f = 0
	}
	return UInt64(math.Float64bits(f))
}

func Bool(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func String(s string) uint32 {
	h := DJBInit
	for i := 0; i < len(s); i++ {
		h = DJBCombine(h, uint32(s[i]))
	}
	return h
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
