package dcf77

import (
	"time"

	"github.com/giordano/godcf77/internal/bitfield"
)

// Encode builds the frame broadcasting t's minute. The input is normalized
// into the Central-European zone first; seconds and finer are dropped. Only
// the year within the century is transmitted, so datetimes outside 2000-2099
// encode without error but decode into the wrong century.
func Encode(t time.Time) Frame {
	utc := t.UTC()
	summer := summerTimeActive(utc)
	local := utc.In(zoneFor(summer))

	var v uint64
	if announceExpected(utc) {
		v |= 1 << layout.announce
	}
	if summer {
		v |= 1 << layout.cest
	} else {
		v |= 1 << layout.cet
	}
	v |= 1 << layout.startOfTime
	v |= place(bitfield.EncodeBCD(local.Minute()), layout.minute)
	v |= place(bitfield.EncodeBCD(local.Hour()), layout.hour)
	v |= place(bitfield.EncodeBCD(local.Day()), layout.day)
	v |= place(bitfield.EncodeBCD(isoWeekday(local)), layout.weekday)
	v |= place(bitfield.EncodeBCD(int(local.Month())), layout.month)
	v |= place(bitfield.EncodeBCD(local.Year()%100), layout.year)
	v |= parityBit(v, layout.minute, layout.minuteParity)
	v |= parityBit(v, layout.hour, layout.hourParity)
	v |= parityBit(v, dateSpan(), layout.dateParity)
	return Frame{bits: v}
}

// EncodeParts builds the Central-European wall-clock time from components
// and encodes it. During the repeated hour of the autumn fallback the
// standard-time (CET) reading is chosen; use Encode with an explicit instant
// to pick the summer-time occurrence.
func EncodeParts(year int, month time.Month, day, hour, minute int) Frame {
	t := time.Date(year, month, day, hour, minute, 0, 0, zoneCET)
	if summerTimeActive(t.UTC()) {
		t = time.Date(year, month, day, hour, minute, 0, 0, zoneCEST)
	}
	return Encode(t)
}

func place(field uint64, sp span) uint64 {
	return field << sp.lo
}

// parityBit returns the parity bit for sp positioned at pos, set so that it
// mirrors the odd parity of the just-written field.
func parityBit(v uint64, sp span, pos uint) uint64 {
	if bitfield.OddParity(v, sp.lo, sp.hi) {
		return 1 << pos
	}
	return 0
}
