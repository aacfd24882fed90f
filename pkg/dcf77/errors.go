package dcf77

import "fmt"

// ErrorKind classifies decode failures.
type ErrorKind int

const (
	// KindStructural marks a wrong fixed marker bit, a malformed frame, or
	// decoded fields that do not form a valid calendar date.
	KindStructural ErrorKind = iota

	// KindParity marks a transmitted parity bit that does not match the
	// parity computed over its field.
	KindParity

	// KindConsistency marks two independently derived pieces of information
	// that disagree, such as the weekday field and the constructed date.
	KindConsistency
)

// String returns the lowercase name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindParity:
		return "parity"
	case KindConsistency:
		return "consistency"
	default:
		return "unknown"
	}
}

// DecodeError reports the first validation that failed while decoding a
// frame, naming the implicated field and carrying the raw frame value.
type DecodeError struct {
	Kind  ErrorKind
	Field string
	Frame Frame
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s error: %s (frame 0x%015X)", e.Kind, e.Field, e.Frame.Uint64())
}

func structuralErr(f Frame, field string) *DecodeError {
	return &DecodeError{Kind: KindStructural, Field: field, Frame: f}
}

func parityErr(f Frame, field string) *DecodeError {
	return &DecodeError{Kind: KindParity, Field: field, Frame: f}
}

func consistencyErr(f Frame, field string) *DecodeError {
	return &DecodeError{Kind: KindConsistency, Field: field, Frame: f}
}
