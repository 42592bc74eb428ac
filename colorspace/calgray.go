package colorspace

import "math"

// CalGray is the CIE-based calibrated gray color space (PDF 32000-1 §8.6.5.2).
type CalGray struct {
	WhitePoint [3]float64 // [XW, YW=1, ZW]
	BlackPoint [3]float64 // default zeros
	Gamma      float64    // default 1, must be >= 1
}

// NewCalGray validates and constructs a CalGray color space. whitePoint and
// blackPoint are [X,Y,Z] triples; blackPoint may be nil for the default.
// gamma <= 0 selects the default of 1.
//
// Per spec.md §3: YW must equal 1 and XW, ZW must be non-negative, else
// parsing fails (FormatError). BlackPoint components below 0 are silently
// reset to 0 (ValidationWarning); a non-default but otherwise valid
// BlackPoint is accepted on the struct but, per spec.md §4.5, ignored by
// GetRGBItem/GetRGBBuffer — only a ValidationInfo note is logged, matching
// the source's documented limitation.
func NewCalGray(whitePoint [3]float64, blackPoint *[3]float64, gamma float64) (*CalGray, error) {
	if whitePoint[1] != 1 {
		return nil, newFormatError("CalGray", "WhitePoint YW must be 1, got %v", whitePoint[1])
	}
	if whitePoint[0] < 0 || whitePoint[2] < 0 {
		return nil, newFormatError("CalGray", "WhitePoint XW/ZW must be non-negative, got %v", whitePoint)
	}

	cs := &CalGray{WhitePoint: whitePoint, Gamma: 1}

	if gamma > 0 {
		cs.Gamma = gamma
	}
	if cs.Gamma < 1 {
		log().Warning("CalGray: Gamma %v < 1, resetting to 1", cs.Gamma)
		cs.Gamma = 1
	}

	if blackPoint != nil {
		bp := *blackPoint
		for i := range bp {
			if bp[i] < 0 {
				log().Warning("CalGray: BlackPoint[%d] %v < 0, resetting to 0", i, bp[i])
				bp[i] = 0
			}
		}
		if bp != [3]float64{0, 0, 0} {
			log().Info("CalGray: non-zero BlackPoint accepted but ignored (unsupported)")
		}
		cs.BlackPoint = bp
	}

	return cs, nil
}

func (cs *CalGray) Name() string  { return "CalGray" }
func (cs *CalGray) NumComps() int { return 1 }

// grayToV implements spec.md §4.5: A' = A^G; L = YW*A'; v = max(0, 295.8 *
// L^(1/3) - 40.8). v is already scaled to roughly [0,255].
func (cs *CalGray) grayToV(a float64) float64 {
	aPrime := math.Pow(a, cs.Gamma)
	l := cs.WhitePoint[1] * aPrime
	v := 295.8*math.Cbrt(l) - 40.8
	if v < 0 {
		v = 0
	}
	return v
}

func (cs *CalGray) GetRGBItem(src []float64, srcOff int, dest []byte, destOff int) {
	v := clampByte(cs.grayToV(src[srcOff]))
	dest[destOff], dest[destOff+1], dest[destOff+2] = v, v, v
}

// GetRGBBuffer has no faster bulk form than per-pixel conversion (the
// 295.8*cbrt(...)-40.8 curve doesn't reduce to a table the way a linear
// scale would), so it uses the scalar-over-buffer fallback.
func (cs *CalGray) GetRGBBuffer(src []uint32, srcOff, count int, dest []byte, destOff, bits, alpha01 int) {
	fillRGBBufferDefault(cs, src, srcOff, count, dest, destOff, bits, alpha01)
}

func (cs *CalGray) GetOutputLength(inputLength, alpha01 int) int {
	return inputLength * (3 + alpha01Normalize(alpha01))
}

func (cs *CalGray) IsPassthrough(bits int) bool { return false }
func (cs *CalGray) UsesZeroToOneRange() bool    { return true }

func (cs *CalGray) IsDefaultDecode(decode []float64, bpc int) bool {
	return IsDefaultDecode(decode, cs.NumComps())
}
