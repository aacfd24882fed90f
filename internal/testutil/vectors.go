// Package testutil holds known-good DCF77 frames shared by package tests.
package testutil

import "time"

// Vector pairs a captured frame with the broadcast it carries. Bits is the
// 60-character representation, bit 0 first. OffsetSec is the UTC offset of
// the decoded time, which distinguishes CET from CEST.
type Vector struct {
	Name      string
	Bits      string
	Year      int
	Month     time.Month
	Day       int
	Hour      int
	Minute    int
	OffsetSec int
}

// Vectors are off-air captures with their known transmission times.
var Vectors = []Vector{
	{
		Name: "cet_november_night",
		Bits: "000010100101001000101110010011000001010010001100010000010000",
		Year: 2020, Month: time.November, Day: 12, Hour: 1, Minute: 13,
		OffsetSec: 1 * 60 * 60,
	},
	{
		Name: "cest_july_evening",
		Bits: "000000000000000001001000100100000011111010001111001010010010",
		Year: 2025, Month: time.July, Day: 17, Hour: 20, Minute: 48,
		OffsetSec: 2 * 60 * 60,
	},
}

// Valid returns a copy of the named vector's bit string.
func Valid(name string) string {
	for _, v := range Vectors {
		if v.Name == name {
			return v.Bits
		}
	}
	panic("unknown vector " + name)
}

// FlipBit returns bits with position i inverted.
func FlipBit(bits string, i int) string {
	b := []byte(bits)
	if b[i] == '0' {
		b[i] = '1'
	} else {
		b[i] = '0'
	}
	return string(b)
}
