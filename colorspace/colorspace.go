// Package colorspace implements the PDF color-space engine: DeviceGray,
// DeviceRGB, DeviceCMYK, CalGray, CalRGB, Lab, Indexed, Separation/DeviceN
// (modeled as Alternate) and Pattern, plus the parser that turns a PDF
// color-space descriptor into one of these, and the fill/resize routine
// that applies a color space to a raster image.
//
// The package does not know how to read a PDF file: it consumes the object
// model through the small Xref/Dict/Stream interfaces in external.go, and
// consumes PDF Function evaluation through the TintFn interface. Both are
// the caller's responsibility.
package colorspace

// ColorSpace is the common interface implemented by every color-space
// variant: DeviceGray, DeviceRGB, DeviceCMYK, CalGray, CalRGB, Lab, Indexed,
// Alternate (Separation/DeviceN) and Pattern. The set is closed — there is
// no mechanism for a caller to add a tenth variant.
type ColorSpace interface {
	// Name returns the color space's PDF family tag, e.g. "DeviceRGB" or
	// "ICCBased" folded into its fallback ("DeviceGray").
	Name() string

	// NumComps returns the number of components per source pixel. Pattern
	// has no fixed component count; see Pattern.NumComps.
	NumComps() int

	// GetRGBItem converts a single pixel. src holds NumComps() floats (Lab
	// uses its native L*a*b* ranges, not [0,1]); dest[destOff:destOff+3]
	// receives the RGB bytes.
	GetRGBItem(src []float64, srcOff int, dest []byte, destOff int)

	// GetRGBBuffer converts count pixels in bulk. src holds integer
	// component samples in [0, 2^bits); each output pixel writes 3 bytes
	// to dest starting at destOff, then skips alpha01 bytes.
	GetRGBBuffer(src []uint32, srcOff, count int, dest []byte, destOff, bits, alpha01 int)

	// GetOutputLength returns the byte length of the dest region that
	// GetRGBBuffer would fill for inputLength input samples.
	GetOutputLength(inputLength, alpha01 int) int

	// IsPassthrough reports whether a sample of the given bit depth can be
	// copied verbatim into RGB output. Only DeviceRGB at 8 bits.
	IsPassthrough(bits int) bool

	// UsesZeroToOneRange reports whether GetRGBItem's src is normalized to
	// [0,1]. True for every variant except Lab.
	UsesZeroToOneRange() bool

	// IsDefaultDecode reports whether decode is the identity decode map
	// for this color space at the given bit depth.
	IsDefaultDecode(decode []float64, bpc int) bool
}

// alpha01Normalize coerces any alpha01 value other than 1 to 0, matching
// resize_rgb_image's normalization rule (spec.md §9 "alpha01 parameter").
func alpha01Normalize(alpha01 int) int {
	if alpha01 == 1 {
		return 1
	}
	return 0
}

// fillRGBBufferDefault is the scalar-over-buffer fallback used by variants
// whose per-pixel conversion has no faster bulk form: it scales each
// integer sample to [0,1] and calls GetRGBItem once per pixel. Spec.md
// §4.1's "fallback implementation rule".
func fillRGBBufferDefault(cs ColorSpace, src []uint32, srcOff, count int, dest []byte, destOff, bits, alpha01 int) {
	alpha01 = alpha01Normalize(alpha01)
	n := cs.NumComps()
	scale := 1.0 / float64((uint32(1)<<uint(bits))-1)
	scaled := make([]float64, n)
	so, do := srcOff, destOff
	for i := 0; i < count; i++ {
		for c := 0; c < n; c++ {
			scaled[c] = float64(src[so+c]) * scale
		}
		cs.GetRGBItem(scaled, 0, dest, do)
		so += n
		do += 3 + alpha01
	}
}

// IsDefaultDecode is the static helper from spec.md §6: true if decode is
// nil/empty, true (with a logged correction) if its length doesn't match
// 2*numComps, and otherwise true only if it is the alternating identity
// sequence 0,1,0,1,….
func IsDefaultDecode(decode []float64, numComps int) bool {
	if len(decode) == 0 {
		return true
	}
	if len(decode) != 2*numComps {
		log().Warning("decode array length %d does not match 2*numComps (%d); treating as default", len(decode), 2*numComps)
		return true
	}
	for i := 0; i < numComps; i++ {
		if decode[2*i] != 0 || decode[2*i+1] != 1 {
			return false
		}
	}
	return true
}
