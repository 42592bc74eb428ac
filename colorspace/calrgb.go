package colorspace

import "math"

// Bradford chromatic-adaptation matrices (XYZ -> LMS cone response and
// back), and the linear-sRGB D65 XYZ->RGB matrix. These are the standard
// color-science constants (Lindbloom's Bradford-adapted sRGB matrices);
// spec.md §4.6 and §6 require them reproduced exactly.
var (
	bradfordScale = mat3{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}
	bradfordScaleInverse = mat3{
		0.9869929, -0.1470543, 0.1599627,
		0.4323053, 0.5183603, 0.0492912,
		-0.0085287, 0.0400428, 0.9684867,
	}
	srgbD65XYZToRGB = mat3{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	}
)

// D65 reference white, used as the chromatic-adaptation target in step 6
// of the CalRGB pipeline (spec.md §4.6).
const (
	d65X = 0.95047
	d65Y = 1.0
	d65Z = 1.08883
)

// CalRGB is the CIE-based calibrated RGB color space (PDF 32000-1 §8.6.5.3),
// carrying the full gamma -> linear XYZ -> Bradford adaptation -> black-
// point compensation -> D65 -> sRGB pipeline.
type CalRGB struct {
	WhitePoint [3]float64
	BlackPoint [3]float64
	Gamma      [3]float64
	Matrix     mat3 // column-major per PDF [XA YA ZA XB YB ZB XC YC ZC], stored here as a row-major mat3 for apply()
}

// NewCalRGB validates and constructs a CalRGB color space.
// whitePoint is required ([XW,1,ZW], XW/ZW >= 0). blackPoint defaults to
// zeros (negative components silently reset to 0). gamma defaults to
// [1,1,1] (any negative component silently reset to 1). matrix defaults
// to the identity, given column-major as the nine PDF Matrix values
// [XA YA ZA XB YB ZB XC YC ZC].
func NewCalRGB(whitePoint [3]float64, blackPoint, gamma *[3]float64, matrixColMajor *[9]float64) (*CalRGB, error) {
	if whitePoint[1] != 1 {
		return nil, newFormatError("CalRGB", "WhitePoint YW must be 1, got %v", whitePoint[1])
	}
	if whitePoint[0] < 0 || whitePoint[2] < 0 {
		return nil, newFormatError("CalRGB", "WhitePoint XW/ZW must be non-negative, got %v", whitePoint)
	}

	cs := &CalRGB{
		WhitePoint: whitePoint,
		Gamma:      [3]float64{1, 1, 1},
		Matrix:     mat3{1, 0, 0, 0, 1, 0, 0, 0, 1},
	}

	if blackPoint != nil {
		bp := *blackPoint
		for i := range bp {
			if bp[i] < 0 {
				log().Warning("CalRGB: BlackPoint[%d] %v < 0, resetting to 0", i, bp[i])
				bp[i] = 0
			}
		}
		cs.BlackPoint = bp
	}

	if gamma != nil {
		g := *gamma
		bad := false
		for i := range g {
			if g[i] < 0 {
				bad = true
			}
		}
		if bad {
			log().Warning("CalRGB: Gamma %v has a negative component, resetting to [1,1,1]", g)
		} else {
			cs.Gamma = g
		}
	}

	if matrixColMajor != nil {
		m := *matrixColMajor
		// PDF Matrix is column-major [XA YA ZA XB YB ZB XC YC ZC]; mat3 is
		// row-major for apply(), so transpose on the way in.
		cs.Matrix = mat3{
			m[0], m[3], m[6],
			m[1], m[4], m[7],
			m[2], m[5], m[8],
		}
	}

	return cs, nil
}

func (cs *CalRGB) Name() string  { return "CalRGB" }
func (cs *CalRGB) NumComps() int { return 3 }

// whiteLMS returns the source white point's LMS (Bradford cone-response)
// coordinates, used to scale the chromatic-adaptation step.
func (cs *CalRGB) whiteLMS() (l, m, s float64) {
	return bradfordScale.apply(cs.WhitePoint[0], cs.WhitePoint[1], cs.WhitePoint[2])
}

// toRGB runs the 9-step pipeline from spec.md §4.6 on one pixel (a,b,c) in
// [0,1], returning RGB floats already scaled to [0,255] (unclamped to
// byte range; callers clampByte the result).
func (cs *CalRGB) toRGB(a, b, c float64) (r, g, bl float64) {
	a = clamp01(a)
	b = clamp01(b)
	c = clamp01(c)

	aPrime := math.Pow(a, cs.Gamma[0])
	bPrime := math.Pow(b, cs.Gamma[1])
	cPrime := math.Pow(c, cs.Gamma[2])

	x, y, z := cs.Matrix.apply(aPrime, bPrime, cPrime)

	// Bradford chromatic adaptation from the source white to a flat
	// (equal-energy, X=Z=Y) illuminant, skipped if already flat.
	wx, wz := cs.WhitePoint[0], cs.WhitePoint[2]
	if wx != 1 || wz != 1 {
		lx, ly, lz := bradfordScale.apply(x, y, z)
		wl, wm, ws := cs.whiteLMS()
		if wl != 0 {
			lx /= wl
		}
		if wm != 0 {
			ly /= wm
		}
		if ws != 0 {
			lz /= ws
		}
		x, y, z = bradfordScaleInverse.apply(lx, ly, lz)
	}

	x, y, z = compensateBlackPoint(cs.BlackPoint, x, y, z)

	// Adapt flat -> D65 via Bradford.
	lx, ly, lz := bradfordScale.apply(x, y, z)
	lx *= d65X
	ly *= d65Y
	lz *= d65Z
	x, y, z = bradfordScaleInverse.apply(lx, ly, lz)

	linR, linG, linB := srgbD65XYZToRGB.apply(x, y, z)

	r = srgbEncode(linR) * 255
	g = srgbEncode(linG) * 255
	bl = srgbEncode(linB) * 255
	return
}

// compensateBlackPoint implements spec.md §4.6 step 5: black-point
// compensation of (x,y,z) against a destination black of [0,0,0], using
// decodeL's odd-symmetric extension for negative inputs.
func compensateBlackPoint(blackPoint [3]float64, x, y, z float64) (float64, float64, float64) {
	if blackPoint == ([3]float64{}) {
		return x, y, z
	}
	zero := decodeL(0)
	adapt := func(v, wb float64) float64 {
		lwb := decodeL(wb)
		if lwb == zero {
			return v
		}
		scale := (1 - zero) / (1 - lwb)
		offset := 1 - scale
		return v*scale + offset
	}
	return adapt(x, blackPoint[0]), adapt(y, blackPoint[1]), adapt(z, blackPoint[2])
}

func (cs *CalRGB) GetRGBItem(src []float64, srcOff int, dest []byte, destOff int) {
	r, g, b := cs.toRGB(src[srcOff], src[srcOff+1], src[srcOff+2])
	dest[destOff] = clampByte(r)
	dest[destOff+1] = clampByte(g)
	dest[destOff+2] = clampByte(b)
}

func (cs *CalRGB) GetRGBBuffer(src []uint32, srcOff, count int, dest []byte, destOff, bits, alpha01 int) {
	alpha01 = alpha01Normalize(alpha01)
	scale := 1.0 / float64((uint32(1)<<uint(bits))-1)
	so, do := srcOff, destOff
	for i := 0; i < count; i++ {
		r, g, b := cs.toRGB(float64(src[so])*scale, float64(src[so+1])*scale, float64(src[so+2])*scale)
		dest[do] = clampByte(r)
		dest[do+1] = clampByte(g)
		dest[do+2] = clampByte(b)
		so += 3
		do += 3 + alpha01
	}
}

func (cs *CalRGB) GetOutputLength(inputLength, alpha01 int) int {
	return inputLength / 3 * (3 + alpha01Normalize(alpha01))
}

func (cs *CalRGB) IsPassthrough(bits int) bool { return false }
func (cs *CalRGB) UsesZeroToOneRange() bool    { return true }

func (cs *CalRGB) IsDefaultDecode(decode []float64, bpc int) bool {
	return IsDefaultDecode(decode, cs.NumComps())
}
