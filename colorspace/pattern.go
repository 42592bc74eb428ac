package colorspace

// Pattern carries an optional base color space for uncolored tiling
// patterns; colored patterns carry none. It has no fixed component count
// and must never be asked to convert a pixel: spec.md §9 resolves the
// "Pattern.num_comps is null" open question as a programming error that
// fails fast, rather than leaving pixel conversion on a Pattern undefined.
type Pattern struct {
	Base ColorSpace // nil for colored patterns
}

// NewPattern constructs a Pattern color space. base may be nil.
func NewPattern(base ColorSpace) *Pattern {
	return &Pattern{Base: base}
}

func (cs *Pattern) Name() string { return "Pattern" }

// NumComps panics: Pattern has no fixed component count (spec.md §3, §9).
// Callers must special-case Pattern before asking for NumComps/pixel
// conversion; ColorSpace.parse never returns a caller a reason to call
// this in the ordinary fill/resize path.
func (cs *Pattern) NumComps() int {
	panic(newTypeError("Pattern has no fixed NumComps; check for *Pattern before converting pixels"))
}

func (cs *Pattern) GetRGBItem(src []float64, srcOff int, dest []byte, destOff int) {
	panic(newTypeError("Pattern.GetRGBItem: pixel conversion is undefined on a Pattern color space"))
}

func (cs *Pattern) GetRGBBuffer(src []uint32, srcOff, count int, dest []byte, destOff, bits, alpha01 int) {
	panic(newTypeError("Pattern.GetRGBBuffer: pixel conversion is undefined on a Pattern color space"))
}

func (cs *Pattern) GetOutputLength(inputLength, alpha01 int) int {
	panic(newTypeError("Pattern.GetOutputLength: undefined on a Pattern color space"))
}

func (cs *Pattern) IsPassthrough(bits int) bool { return false }

func (cs *Pattern) UsesZeroToOneRange() bool { return true }

func (cs *Pattern) IsDefaultDecode(decode []float64, bpc int) bool { return true }
