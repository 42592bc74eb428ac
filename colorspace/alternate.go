package colorspace

// TintFn is the tint-transform callback an Alternate color space delegates
// to: a PDF Function mapping this color space's own colorants to
// Base.NumComps() components of the alternate space. The PDF Function
// evaluator itself is out of scope for this package (spec.md §1); callers
// build this from their own function-evaluation machinery (see
// TintFnFactory in external.go).
type TintFn interface {
	// Apply writes Base.NumComps() values to dest[destOff:], computed from
	// the NumComps() values in src[srcOff:].
	Apply(src []float32, srcOff int, dest []float32, destOff int)
}

// Alternate implements both Separation (NumComps==1) and DeviceN
// (NumComps==N) color spaces: source colorant values are passed through a
// tint-transform function into a base color space, which does the actual
// RGB conversion (spec.md §4.9).
type Alternate struct {
	Comps  int
	Base   ColorSpace
	TintFn TintFn

	// isDeviceN distinguishes Separation (always 1 colorant) from DeviceN
	// for Name() only; the conversion pipeline is identical either way
	// (spec.md §4.9 treats them as one variant).
	isDeviceN bool
}

// NewAlternate constructs an Alternate (Separation/DeviceN) color space.
// numComps is the number of named colorants (1 for Separation). The
// result reports itself as Separation; an Alternate built by FromIR from
// an IR whose IsDeviceN flag is set reports itself as DeviceN.
func NewAlternate(numComps int, base ColorSpace, tintFn TintFn) (*Alternate, error) {
	if numComps < 1 {
		return nil, newFormatError("Separation/DeviceN", "numComps must be >= 1, got %d", numComps)
	}
	return &Alternate{Comps: numComps, Base: base, TintFn: tintFn}, nil
}

func (cs *Alternate) Name() string {
	if cs.isDeviceN {
		return "DeviceN"
	}
	return "Separation"
}
func (cs *Alternate) NumComps() int { return cs.Comps }

func (cs *Alternate) UsesZeroToOneRange() bool { return true }
func (cs *Alternate) IsPassthrough(bits int) bool { return false }

func (cs *Alternate) GetRGBItem(src []float64, srcOff int, dest []byte, destOff int) {
	in := make([]float32, cs.Comps)
	for i := range in {
		in[i] = float32(src[srcOff+i])
	}
	tinted := make([]float32, cs.Base.NumComps())
	cs.TintFn.Apply(in, 0, tinted, 0)

	tintedF64 := make([]float64, len(tinted))
	for i, v := range tinted {
		tintedF64[i] = float64(v)
	}
	cs.Base.GetRGBItem(tintedF64, 0, dest, destOff)
}

// GetRGBBuffer implements the three-phase pipeline from spec.md §4.9:
// scale each input sample to [0,1], invoke the tint function, then stage
// (and finalize through Base) or, on the fast path, stage directly into
// dest.
func (cs *Alternate) GetRGBBuffer(src []uint32, srcOff, count int, dest []byte, destOff, bits, alpha01 int) {
	alpha01 = alpha01Normalize(alpha01)
	baseComps := cs.Base.NumComps()
	scale := float32(1.0 / float64((uint32(1)<<uint(bits))-1))

	fastPath := alpha01 == 0 && (cs.Base.IsPassthrough(8) || !cs.Base.UsesZeroToOneRange())

	in := make([]float32, cs.Comps)
	tinted := make([]float32, baseComps)

	if fastPath {
		tintedF64 := make([]float64, baseComps)
		so, do := srcOff, destOff
		for i := 0; i < count; i++ {
			for c := 0; c < cs.Comps; c++ {
				in[c] = float32(src[so+c]) * scale
			}
			cs.TintFn.Apply(in, 0, tinted, 0)

			if cs.Base.UsesZeroToOneRange() {
				for c := 0; c < baseComps && c < 3; c++ {
					dest[do+c] = clampByte(float64(tinted[c]) * 255)
				}
			} else {
				for c, v := range tinted {
					tintedF64[c] = float64(v)
				}
				cs.Base.GetRGBItem(tintedF64, 0, dest, do)
			}
			so += cs.Comps
			do += 3
		}
		return
	}

	staging := make([]uint32, count*baseComps)
	so := srcOff
	for i := 0; i < count; i++ {
		for c := 0; c < cs.Comps; c++ {
			in[c] = float32(src[so+c]) * scale
		}
		cs.TintFn.Apply(in, 0, tinted, 0)

		if cs.Base.UsesZeroToOneRange() {
			for c := 0; c < baseComps; c++ {
				v := tinted[c] * 255
				if v < 0 {
					v = 0
				}
				if v > 255 {
					v = 255
				}
				staging[i*baseComps+c] = uint32(v + 0.5)
			}
		} else {
			// Base is Lab or another non-[0,1] space: convert this pixel
			// directly through GetRGBItem and stash the RGB bytes as the
			// "staged" values (base.NumComps() is 3 in that case, per
			// spec.md §3).
			tintedF64 := make([]float64, baseComps)
			for c, v := range tinted {
				tintedF64[c] = float64(v)
			}
			var tmp [3]byte
			cs.Base.GetRGBItem(tintedF64, 0, tmp[:], 0)
			for c := 0; c < 3; c++ {
				staging[i*baseComps+c] = uint32(tmp[c])
			}
		}
		so += cs.Comps
	}

	cs.Base.GetRGBBuffer(staging, 0, count, dest, destOff, 8, alpha01)
}

func (cs *Alternate) GetOutputLength(inputLength, alpha01 int) int {
	return cs.Base.GetOutputLength(inputLength*cs.Base.NumComps()/cs.Comps, alpha01)
}

func (cs *Alternate) IsDefaultDecode(decode []float64, bpc int) bool {
	return IsDefaultDecode(decode, cs.Comps)
}
