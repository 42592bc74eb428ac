package colorspace

// This file defines the small capability surface the parser consumes from
// the PDF object model and the PDF function evaluator. Both are explicitly
// out of scope for this package (spec.md §1); callers supply
// implementations backed by their own PDF reader and function evaluator.

// Object is any value produced by the PDF object model: a name, a number,
// a string, a byte slice, an Array, a Dict, a Stream, or an indirect
// reference the Xref capability can resolve.
type Object interface{}

// Xref resolves indirect references lazily. Direct objects are returned
// unchanged.
type Xref interface {
	FetchIfRef(obj Object) Object
}

// Dict is a PDF dictionary: a string-keyed map whose values are Objects.
// Get returns nil if the key is absent.
type Dict interface {
	Get(key string) Object
}

// Stream is a PDF stream object: a Dict plus a byte payload.
type Stream interface {
	Dict() Dict
	// GetBytes returns the decoded stream bytes, truncated/validated to n
	// bytes if n >= 0 (n < 0 means "return everything").
	GetBytes(n int) ([]byte, error)
}

// Name is a PDF name object's string value (the leading '/' stripped).
type Name string

// Array is a PDF array object.
type Array []Object

// TintFnFactory builds a TintFn from a PDF Function object. The function
// evaluator itself is out of scope for this package.
type TintFnFactory interface {
	Create(obj Object) (TintFn, error)
}

// --- predicates (spec.md §6) ---

func isName(o Object) (Name, bool) {
	n, ok := o.(Name)
	return n, ok
}

func isDict(o Object) (Dict, bool) {
	d, ok := o.(Dict)
	return d, ok
}

func isStream(o Object) (Stream, bool) {
	s, ok := o.(Stream)
	return s, ok
}

func isArray(o Object) (Array, bool) {
	a, ok := o.(Array)
	return a, ok
}

// asFloat coerces an Object holding an integer or float PDF number to
// float64.
func asFloat(o Object) (float64, bool) {
	switch v := o.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// asFloatArray coerces every element of a PDF array to float64.
func asFloatArray(a Array) ([]float64, bool) {
	out := make([]float64, len(a))
	for i, o := range a {
		f, ok := asFloat(o)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// asBytes extracts raw bytes from a Lookup object: a Stream (drained via
// GetBytes), a PDF string (already a []byte), or a plain []byte — the
// three forms spec.md §4.8 allows for an Indexed lookup table.
func asBytes(o Object) ([]byte, error) {
	switch v := o.(type) {
	case Stream:
		return v.GetBytes(-1)
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, newFormatError("Indexed", "lookup table has unsupported type %T", o)
	}
}
