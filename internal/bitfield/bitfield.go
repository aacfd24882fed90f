// Package bitfield provides the bit-range, BCD and parity primitives the
// DCF77 codec is built on.
package bitfield

import "math/bits"

// Extract returns bits lo..hi (inclusive, 0-based, LSB = bit 0) of x,
// shifted down so that bit lo lands at bit 0.
func Extract(x uint64, lo, hi uint) uint64 {
	width := hi - lo + 1
	return (x >> lo) & (1<<width - 1)
}

// DecodeBCD interprets v as two packed 4-bit decimal digits, high nibble
// worth ten. Nibbles above 9 are not rejected here; a corrupted frame
// surfaces downstream when the decoded value fails its calendar range check.
func DecodeBCD(v uint64) int {
	return int(v>>4&0xF)*10 + int(v&0xF)
}

// EncodeBCD packs a non-negative integer into 4-bit decimal digits, least
// significant digit in the low nibble.
func EncodeBCD(n int) uint64 {
	var v uint64
	for shift := uint(0); n > 0; shift += 4 {
		v |= uint64(n%10) << shift
		n /= 10
	}
	return v
}

// OddParity reports whether the number of set bits of x in lo..hi
// (inclusive) is odd.
func OddParity(x uint64, lo, hi uint) bool {
	return bits.OnesCount64(Extract(x, lo, hi))%2 == 1
}
