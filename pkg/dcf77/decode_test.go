package dcf77

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/giordano/godcf77/internal/bitfield"
	"github.com/giordano/godcf77/internal/testutil"
)

func TestDecodeKnownVectors(t *testing.T) {
	for _, v := range testutil.Vectors {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			f, err := FrameFromBitString(v.Bits)
			require.NoError(t, err)
			decoded, err := Decode(f)
			require.NoError(t, err)
			require.Equal(t, v.Year, decoded.Year())
			require.Equal(t, v.Month, decoded.Month())
			require.Equal(t, v.Day, decoded.Day())
			require.Equal(t, v.Hour, decoded.Hour())
			require.Equal(t, v.Minute, decoded.Minute())
			_, offset := decoded.Zone()
			require.Equal(t, v.OffsetSec, offset)
		})
	}
}

func requireDecodeError(t *testing.T, bits string, kind ErrorKind, field string) {
	t.Helper()
	f, err := FrameFromBitString(bits)
	require.NoError(t, err)
	_, err = Decode(f)
	require.Error(t, err)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, kind, derr.Kind)
	require.Equal(t, field, derr.Field)
	require.Equal(t, f, derr.Frame)
}

func TestDecodeFailFastOnStartMarker(t *testing.T) {
	// Corrupt the start marker and a parity bit; the marker check must win.
	bits := testutil.FlipBit(testutil.Valid("cet_november_night"), 0)
	bits = testutil.FlipBit(bits, 28)
	requireDecodeError(t, bits, KindStructural, "start-of-minute marker")
}

func TestDecodeCETCESTFlags(t *testing.T) {
	bits := testutil.FlipBit(testutil.Valid("cet_november_night"), 17)
	requireDecodeError(t, bits, KindConsistency, "CET/CEST flags")
}

func TestDecodeStartOfTimeMarker(t *testing.T) {
	bits := testutil.FlipBit(testutil.Valid("cet_november_night"), 20)
	requireDecodeError(t, bits, KindStructural, "start-of-time marker")
}

func TestDecodeParityFailures(t *testing.T) {
	cases := []struct {
		name  string
		bit   int
		field string
	}{
		{"minutes", 28, "minutes"},
		{"hours", 35, "hours"},
		{"date", 58, "date"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			bits := testutil.FlipBit(testutil.Valid("cest_july_evening"), tc.bit)
			requireDecodeError(t, bits, KindParity, tc.field)
		})
	}
}

func TestDecodeEndOfMinuteMarker(t *testing.T) {
	bits := testutil.FlipBit(testutil.Valid("cet_november_night"), 59)
	requireDecodeError(t, bits, KindStructural, "end-of-minute marker")
}

func TestDecodeInvalidCalendarDate(t *testing.T) {
	// April only has 30 days; the fields pass every parity check.
	f := buildFrame(2021, time.April, 31, 6, 10, 15, true, false)
	_, err := Decode(f)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, KindStructural, derr.Kind)
	require.Equal(t, "invalid calendar date", derr.Field)
}

func TestDecodeWeekdayMismatch(t *testing.T) {
	// 2024-01-15 is a Monday; the frame claims Tuesday.
	f := buildFrame(2024, time.January, 15, 2, 10, 30, false, false)
	_, err := Decode(f)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, KindConsistency, derr.Kind)
	require.Equal(t, "weekday", derr.Field)
}

func TestDecodeTimezoneOffsetMismatch(t *testing.T) {
	// Mid-January flagged as summer time.
	f := buildFrame(2024, time.January, 15, 1, 10, 30, true, false)
	_, err := Decode(f)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, KindConsistency, derr.Kind)
	require.Equal(t, "timezone offset", derr.Field)
}

func TestDecodeSummerTimeAnnouncement(t *testing.T) {
	// 02:30 CEST on 2019-10-27 is half an hour before the fall transition,
	// so the announcement bit is mandatory.
	missing := buildFrame(2019, time.October, 27, 7, 2, 30, true, false)
	_, err := Decode(missing)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, KindConsistency, derr.Kind)
	require.Equal(t, "summer-time announcement", derr.Field)

	announced := buildFrame(2019, time.October, 27, 7, 2, 30, true, true)
	decoded, err := Decode(announced)
	require.NoError(t, err)
	require.Equal(t, 2, decoded.Hour())
	require.Equal(t, 30, decoded.Minute())
}

func TestFallbackHourDisambiguation(t *testing.T) {
	// The same wall clock 2019-10-27 02:30 exists twice; the flags (and the
	// announcement bit before the transition) tell the readings apart.
	cestBits := "000000000000000011001000011000100001111001111000011001100010"
	cetBits := "000000000000000000101000011000100001111001111000011001100010"

	cestFrame, err := FrameFromBitString(cestBits)
	require.NoError(t, err)
	cestTime, err := Decode(cestFrame)
	require.NoError(t, err)

	cetFrame, err := FrameFromBitString(cetBits)
	require.NoError(t, err)
	cetTime, err := Decode(cetFrame)
	require.NoError(t, err)

	for _, decoded := range []time.Time{cestTime, cetTime} {
		require.Equal(t, 2019, decoded.Year())
		require.Equal(t, time.October, decoded.Month())
		require.Equal(t, 27, decoded.Day())
		require.Equal(t, 2, decoded.Hour())
		require.Equal(t, 30, decoded.Minute())
	}
	_, cestOffset := cestTime.Zone()
	_, cetOffset := cetTime.Zone()
	require.Equal(t, 2*60*60, cestOffset)
	require.Equal(t, 1*60*60, cetOffset)
	require.Equal(t, time.Hour, cetTime.Sub(cestTime))
}

func TestDecodeErrorMessage(t *testing.T) {
	// The raw frame renders as 15 zero-padded hex digits, one per 4-bit
	// column of the 60-bit frame.
	bits := testutil.FlipBit(testutil.Valid("cet_november_night"), 28)
	f, err := FrameFromBitString(bits)
	require.NoError(t, err)
	_, err = Decode(f)
	require.EqualError(t, err, "parity error: minutes (frame 0x082312822744A50)")
}

// buildFrame assembles a frame from raw field values, markers and parities
// set correctly, without going through Encode. This lets tests express field
// combinations the encoder would never produce.
func buildFrame(year int, month time.Month, day, weekday, hour, minute int, summer, announce bool) Frame {
	var v uint64
	if announce {
		v |= 1 << layout.announce
	}
	if summer {
		v |= 1 << layout.cest
	} else {
		v |= 1 << layout.cet
	}
	v |= 1 << layout.startOfTime
	v |= bitfield.EncodeBCD(minute) << layout.minute.lo
	v |= bitfield.EncodeBCD(hour) << layout.hour.lo
	v |= bitfield.EncodeBCD(day) << layout.day.lo
	v |= bitfield.EncodeBCD(weekday) << layout.weekday.lo
	v |= bitfield.EncodeBCD(int(month)) << layout.month.lo
	v |= bitfield.EncodeBCD(year%100) << layout.year.lo
	v |= parityBit(v, layout.minute, layout.minuteParity)
	v |= parityBit(v, layout.hour, layout.hourParity)
	v |= parityBit(v, dateSpan(), layout.dateParity)
	return Frame{bits: v}
}
