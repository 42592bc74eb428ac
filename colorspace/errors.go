package colorspace

import "github.com/pkg/errors"

// FormatError reports a fatal, unrecoverable defect in a color-space
// descriptor: a malformed array, a missing required parameter, an unknown
// color-space name, or an ICCBased stream with no usable fallback. Parsing
// aborts when one of these is produced.
type FormatError struct {
	// ColorSpace names the offending descriptor, e.g. "CalGray" or
	// "Indexed".
	ColorSpace string
	cause      error
}

func (e *FormatError) Error() string {
	return "colorspace: " + e.ColorSpace + ": " + e.cause.Error()
}

// Unwrap exposes the underlying cause so callers can use errors.Is/As.
func (e *FormatError) Unwrap() error { return e.cause }

// newFormatError builds a FormatError naming the color-space descriptor
// that failed to parse, wrapping msg (and any args) with a stack trace via
// github.com/pkg/errors so the root cause survives across the parse/
// construct boundary.
func newFormatError(csName, format string, args ...interface{}) error {
	return &FormatError{ColorSpace: csName, cause: errors.Errorf(format, args...)}
}

// TypeError reports a caller bug: a pixel-conversion call against a Pattern
// color space (spec.md §9's "Pattern.num_comps is null" open question is
// resolved as fail-fast here), or an IR with an unknown tag passed to FromIR.
// It is always a programming error, never a data error.
type TypeError struct {
	msg string
}

func (e *TypeError) Error() string { return "colorspace: " + e.msg }

func newTypeError(format string, args ...interface{}) error {
	return &TypeError{msg: errors.Errorf(format, args...).Error()}
}
