package colorspace

// Indexed is a lookup-table color space: a source sample is an index into
// a table of colors expressed in a base color space (spec.md §4.8).
type Indexed struct {
	Base    ColorSpace
	HiVal   int    // number of table entries, in [1, 256]
	Lookup  []byte // raw bytes, length Base.NumComps() * HiVal
}

// NewIndexed constructs an Indexed color space. hiVal is the PDF Hival
// field plus one (spec.md §3: "the stored value is (Hival field) + 1"),
// and must be in [1, 256]. lookup must contain at least
// base.NumComps()*hiVal bytes; it is trimmed to that length (a PDF file
// with a too-long lookup table is accepted, matching common reader
// leniency).
func NewIndexed(base ColorSpace, hiVal int, lookup []byte) (*Indexed, error) {
	if hiVal < 1 || hiVal > 256 {
		return nil, newFormatError("Indexed", "HiVal %d out of range [1,256]", hiVal)
	}
	need := base.NumComps() * hiVal
	if len(lookup) < need {
		return nil, newFormatError("Indexed", "lookup table too short: got %d bytes, need %d", len(lookup), need)
	}
	return &Indexed{Base: base, HiVal: hiVal, Lookup: lookup[:need]}, nil
}

func (cs *Indexed) Name() string  { return "Indexed" }
func (cs *Indexed) NumComps() int { return 1 }

func (cs *Indexed) UsesZeroToOneRange() bool { return true }
func (cs *Indexed) IsPassthrough(bits int) bool { return false }

// lookupSample copies the n bytes of the base-space color at table
// index i into a scratch []uint32, for forwarding to Base.GetRGBBuffer.
func (cs *Indexed) lookupSample(i int, scratch []uint32) []uint32 {
	n := cs.Base.NumComps()
	off := i * n
	for k := 0; k < n; k++ {
		scratch[k] = uint32(cs.Lookup[off+k])
	}
	return scratch
}

// GetRGBItem interprets src[srcOff] directly as an integer table index
// (truncated toward zero), not as a [0,1]-normalized value, matching
// GetRGBBuffer's contract (spec.md §8 invariant 5).
func (cs *Indexed) GetRGBItem(src []float64, srcOff int, dest []byte, destOff int) {
	idx := int(src[srcOff])
	scratch := make([]uint32, cs.Base.NumComps())
	cs.Base.GetRGBBuffer(cs.lookupSample(idx, scratch), 0, 1, dest, destOff, 8, 0)
}

func (cs *Indexed) GetRGBBuffer(src []uint32, srcOff, count int, dest []byte, destOff, bits, alpha01 int) {
	alpha01 = alpha01Normalize(alpha01)
	n := cs.Base.NumComps()
	stride := cs.Base.GetOutputLength(n, alpha01)
	scratch := make([]uint32, n)
	do := destOff
	for i := 0; i < count; i++ {
		cs.Base.GetRGBBuffer(cs.lookupSample(int(src[srcOff+i]), scratch), 0, 1, dest, do, 8, alpha01)
		do += stride
	}
}

func (cs *Indexed) GetOutputLength(inputLength, alpha01 int) int {
	return cs.Base.GetOutputLength(inputLength*cs.Base.NumComps(), alpha01)
}

// IsDefaultDecode checks against [0, 2^bpc - 1], the Indexed-specific
// decode default (spec.md §4.8), not the generic [0,1] check.
func (cs *Indexed) IsDefaultDecode(decode []float64, bpc int) bool {
	if len(decode) == 0 {
		return true
	}
	if len(decode) != 2 {
		log().Warning("Indexed: decode array length %d != 2; treating as default", len(decode))
		return true
	}
	hi := float64((uint32(1) << uint(bpc)) - 1)
	return decode[0] == 0 && decode[1] == hi
}
