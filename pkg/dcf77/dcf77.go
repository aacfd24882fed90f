// Package dcf77 implements the DCF77 longwave time-code: the 60-bit frame
// model, the bit-field/BCD/parity primitives underneath it, and the
// decode/encode algorithms with their chained consistency checks.
//
// One frame is broadcast per minute, one bit per second. Decoding yields a
// timezone-aware datetime in the Central-European zone or a typed
// *DecodeError; encoding is the inverse path, used for testing and for
// signal simulation.
package dcf77

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Result captures the outcome of Analyze.
type Result struct {
	Frame Frame
	Time  time.Time
	Err   error // decode failure, if any
}

// String renders the two-line report consumed by the CLI: the decoded date
// (or "Invalid date") followed by the binary representation, bit 0 first.
func (r Result) String() string {
	date := "Invalid date"
	if r.Err == nil {
		date = r.Time.Format(time.RFC3339)
	}
	return fmt.Sprintf("Date: %s\nBinary representation: %s", date, r.Frame.BitString())
}

// Analyze parses raw as a frame and decodes it. raw is either a 60-character
// bit string or a 0x-prefixed hexadecimal word; whitespace and '|'/'_'
// separators are ignored. A frame that fails validation is reported inside
// the Result; only input that cannot be parsed into a frame at all returns
// an error.
func Analyze(raw string) (Result, error) {
	clean := stripSeparators(raw)
	var (
		f   Frame
		err error
	)
	if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X") {
		v, perr := strconv.ParseUint(clean[2:], 16, 64)
		if perr != nil {
			return Result{}, fmt.Errorf("parse hex frame: %w", perr)
		}
		f, err = FrameFromUint64(v)
	} else {
		f, err = FrameFromBitString(clean)
	}
	if err != nil {
		return Result{}, err
	}
	t, derr := Decode(f)
	return Result{Frame: f, Time: t, Err: derr}, nil
}

func stripSeparators(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
