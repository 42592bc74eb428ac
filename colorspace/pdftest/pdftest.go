// Package pdftest provides minimal in-memory implementations of the
// colorspace package's Xref/Dict/Stream/TintFnFactory capabilities, for use
// by the parser's own tests. It is not a PDF reader: it only holds the
// handful of types a test needs to assemble a fake color-space descriptor.
package pdftest

import "github.com/aykutyamanj/pdfcolor/colorspace"

// Ref is an indirect reference: a plain lookup key into an Xref's object
// table.
type Ref int

// Xref is an in-memory object table keyed by Ref.
type Xref map[Ref]colorspace.Object

// FetchIfRef resolves obj if it is a Ref, recursively; any other value is
// returned unchanged.
func (x Xref) FetchIfRef(obj colorspace.Object) colorspace.Object {
	for {
		ref, ok := obj.(Ref)
		if !ok {
			return obj
		}
		obj = x[ref]
	}
}

// Dict is a plain string-keyed map implementing colorspace.Dict.
type Dict map[string]colorspace.Object

func (d Dict) Get(key string) colorspace.Object {
	return d[key]
}

// Stream is an in-memory stream implementing colorspace.Stream: a Dict
// plus already-decoded bytes.
type Stream struct {
	D     Dict
	Bytes []byte
}

func (s Stream) Dict() colorspace.Dict { return s.D }

func (s Stream) GetBytes(n int) ([]byte, error) {
	if n < 0 || n > len(s.Bytes) {
		return s.Bytes, nil
	}
	return s.Bytes[:n], nil
}

// ConstTintFn is a TintFn test double that ignores its input and always
// writes the same values, or (if Identity is set) copies its input through
// unchanged for the first N components.
type ConstTintFn struct {
	Out      []float32
	Identity bool
}

func (f ConstTintFn) Apply(src []float32, srcOff int, dest []float32, destOff int) {
	if f.Identity {
		copy(dest[destOff:], src[srcOff:])
		return
	}
	copy(dest[destOff:], f.Out)
}

// ConstTintFnFactory always returns the same TintFn regardless of the
// Function object it is asked to build from, which is sufficient for
// exercising the parser (the Function evaluator itself is out of scope).
type ConstTintFnFactory struct {
	Fn colorspace.TintFn
}

func (f ConstTintFnFactory) Create(obj colorspace.Object) (colorspace.TintFn, error) {
	return f.Fn, nil
}
