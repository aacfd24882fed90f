package dcf77

import (
	"fmt"
	"strings"

	"github.com/giordano/godcf77/internal/bitfield"
)

// FrameBits is the number of seconds, and therefore bits, in one DCF77
// minute.
const FrameBits = 60

// frameMask covers the 60 usable bits; the top 4 bits of the carrier uint64
// stay zero.
const frameMask uint64 = 1<<FrameBits - 1

// Frame is one minute's DCF77 transmission. Bit i (LSB = bit 0) carries the
// value broadcast during second i. Frames are immutable once constructed.
type Frame struct {
	bits uint64
}

// FrameFromUint64 wraps a raw 60-bit value. The 4 most significant bits of v
// must be zero.
func FrameFromUint64(v uint64) (Frame, error) {
	if v&^frameMask != 0 {
		return Frame{}, fmt.Errorf("frame value 0x%015X has bits set above bit %d", v, FrameBits-1)
	}
	return Frame{bits: v}, nil
}

// FrameFromBitString parses a string of exactly 60 '0'/'1' characters.
// Character i (left to right) maps to bit i, so the start-of-minute marker
// is the first character.
func FrameFromBitString(s string) (Frame, error) {
	if len(s) != FrameBits {
		return Frame{}, fmt.Errorf("bit string must be %d characters, got %d", FrameBits, len(s))
	}
	var v uint64
	for i := 0; i < FrameBits; i++ {
		switch s[i] {
		case '1':
			v |= 1 << uint(i)
		case '0':
		default:
			return Frame{}, fmt.Errorf("bit string position %d: invalid character %q", i, s[i])
		}
	}
	return Frame{bits: v}, nil
}

// Bit returns bit i as 0 or 1.
func (f Frame) Bit(i uint) uint64 {
	return bitfield.Extract(f.bits, i, i)
}

// Bits returns bits lo..hi inclusive, shifted down to bit 0.
func (f Frame) Bits(lo, hi uint) uint64 {
	return bitfield.Extract(f.bits, lo, hi)
}

// Uint64 returns the raw frame value.
func (f Frame) Uint64() uint64 {
	return f.bits
}

// BitString renders the frame as 60 characters, bit 0 first.
func (f Frame) BitString() string {
	var b strings.Builder
	b.Grow(FrameBits)
	for i := uint(0); i < FrameBits; i++ {
		b.WriteByte('0' + byte(f.Bit(i)))
	}
	return b.String()
}

func (f Frame) field(sp span) uint64 {
	return bitfield.Extract(f.bits, sp.lo, sp.hi)
}

func (f Frame) bcd(sp span) int {
	return bitfield.DecodeBCD(f.field(sp))
}

// parityMatches reports whether the odd parity of sp equals the transmitted
// parity bit.
func (f Frame) parityMatches(sp span, parityBit uint) bool {
	return bitfield.OddParity(f.bits, sp.lo, sp.hi) == (f.Bit(parityBit) == 1)
}
