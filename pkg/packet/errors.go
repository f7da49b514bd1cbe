package packet

import "errors"

// Sentinel errors for the per-packet failure taxonomy. All of these are
// per-packet conditions: the processing loop drops the packet and keeps
// running.
var (
	// ErrUnknownField reports a field name absent from a header type.
	ErrUnknownField = errors.New("unknown field")

	// ErrValueRange reports a value that exceeds the field's bit width.
	ErrValueRange = errors.New("value exceeds field width")

	// ErrHeaderNotPresent reports a reference to a header instance that
	// does not exist in the packet's current header stack.
	ErrHeaderNotPresent = errors.New("header not present")

	// ErrHeaderPresent reports an attempt to add a header instance that
	// already exists in the stack.
	ErrHeaderPresent = errors.New("header already present")

	// ErrParseReject reports that parsing reached the reject state or
	// ran out of buffer before a declared header could be extracted.
	ErrParseReject = errors.New("parse reject")
)
