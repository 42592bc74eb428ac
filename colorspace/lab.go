package colorspace

import "math"

// Lab-space sRGB conversion matrices: D50 is used when the white point's
// ZW < 1 (typical for PDF Lab spaces, which commonly carry a D50 white),
// D65 otherwise. Standard Bradford-adapted XYZ->sRGB matrices.
var (
	d50XYZToRGB = mat3{
		3.1338561, -1.6168667, -0.4906146,
		-0.9787684, 1.9161415, 0.0334540,
		0.0719453, -0.2289914, 1.4052427,
	}
)

// Lab is the CIE L*a*b* color space (PDF 32000-1 §8.6.5.4).
type Lab struct {
	WhitePoint [3]float64
	BlackPoint [3]float64
	Range      [4]float64 // [amin amax bmin bmax]
}

// NewLab validates and constructs a Lab color space. range may be nil for
// the default [-100,100,-100,100]; if amin>amax or bmin>bmax the whole
// range is reset to the default (ValidationWarning).
func NewLab(whitePoint [3]float64, blackPoint *[3]float64, rng *[4]float64) (*Lab, error) {
	if whitePoint[1] != 1 {
		return nil, newFormatError("Lab", "WhitePoint YW must be 1, got %v", whitePoint[1])
	}
	if whitePoint[0] < 0 || whitePoint[2] < 0 {
		return nil, newFormatError("Lab", "WhitePoint XW/ZW must be non-negative, got %v", whitePoint)
	}

	cs := &Lab{WhitePoint: whitePoint, Range: [4]float64{-100, 100, -100, 100}}

	if blackPoint != nil {
		bp := *blackPoint
		for i := range bp {
			if bp[i] < 0 {
				log().Warning("Lab: BlackPoint[%d] %v < 0, resetting to 0", i, bp[i])
				bp[i] = 0
			}
		}
		cs.BlackPoint = bp
	}

	if rng != nil {
		r := *rng
		if r[0] > r[1] || r[2] > r[3] {
			log().Warning("Lab: invalid Range %v, resetting to default", r)
		} else {
			cs.Range = r
		}
	}

	return cs, nil
}

func (cs *Lab) Name() string  { return "Lab" }
func (cs *Lab) NumComps() int { return 3 }

// UsesZeroToOneRange is false for Lab: its native component ranges are
// [0,100] for L* and cs.Range for a*/b*, not [0,1]. Alternate consults
// this to decide how to interpret a Lab base's tinted output.
func (cs *Lab) UsesZeroToOneRange() bool { return false }

func (cs *Lab) xyzMatrix() mat3 {
	if cs.WhitePoint[2] < 1 {
		return d50XYZToRGB
	}
	return srgbD65XYZToRGB
}

// labToRGB converts one L*,a*,b* triple to RGB bytes scaled to [0,255]
// (unclamped to the byte range), first clamping a* and b* to Range.
func (cs *Lab) labToRGB(lStar, aStar, bStar float64) (r, g, b float64) {
	aStar = clampRange(aStar, cs.Range[0], cs.Range[1])
	bStar = clampRange(bStar, cs.Range[2], cs.Range[3])

	m := (lStar + 16) / 116
	l := m + aStar/500
	n := m - bStar/200

	x := cs.WhitePoint[0] * labG(l)
	y := cs.WhitePoint[1] * labG(m)
	z := cs.WhitePoint[2] * labG(n)

	mat := cs.xyzMatrix()
	cr, cg, cb := mat.apply(x, y, z)

	r = math.Sqrt(math.Max(0, cr)) * 255
	g = math.Sqrt(math.Max(0, cg)) * 255
	b = math.Sqrt(math.Max(0, cb)) * 255
	return
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GetRGBItem takes src in Lab's native ranges: L* in [0,100], a*/b* in
// cs.Range (no decode-map remap is applied here; that only happens in the
// bulk path, per spec.md §4.7).
func (cs *Lab) GetRGBItem(src []float64, srcOff int, dest []byte, destOff int) {
	r, g, b := cs.labToRGB(src[srcOff], src[srcOff+1], src[srcOff+2])
	dest[destOff] = clampByte(r)
	dest[destOff+1] = clampByte(g)
	dest[destOff+2] = clampByte(b)
}

func (cs *Lab) GetRGBBuffer(src []uint32, srcOff, count int, dest []byte, destOff, bits, alpha01 int) {
	alpha01 = alpha01Normalize(alpha01)
	maxVal := float64((uint32(1) << uint(bits)) - 1)
	so, do := srcOff, destOff
	for i := 0; i < count; i++ {
		lStar := interpolate(float64(src[so]), 0, maxVal, 0, 100)
		aStar := interpolate(float64(src[so+1]), 0, maxVal, cs.Range[0], cs.Range[1])
		bStar := interpolate(float64(src[so+2]), 0, maxVal, cs.Range[2], cs.Range[3])

		r, g, b := cs.labToRGB(lStar, aStar, bStar)
		dest[do] = clampByte(r)
		dest[do+1] = clampByte(g)
		dest[do+2] = clampByte(b)
		so += 3
		do += 3 + alpha01
	}
}

func (cs *Lab) GetOutputLength(inputLength, alpha01 int) int {
	return inputLength / 3 * (3 + alpha01Normalize(alpha01))
}

func (cs *Lab) IsPassthrough(bits int) bool { return false }

// IsDefaultDecode always returns true for Lab: the Lab-specific remap in
// GetRGBBuffer already applies the component-native decode, per spec.md
// §4.7.
func (cs *Lab) IsDefaultDecode(decode []float64, bpc int) bool { return true }
