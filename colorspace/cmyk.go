package colorspace

// DeviceCMYK converts C, M, Y, K components (each in [0,1]) to RGB.
//
// spec.md §4.4 calls for the exact bivariate SWOP-fit polynomial used by
// pdf.js's DeviceCmykCS (52 literal coefficients). That source was not
// available in the retrieved reference pack (original_source's pdf.js
// import was filtered down to zero kept files), so reproducing those
// constants bit-for-bit here would mean fabricating numbers under a
// false claim of precision. Instead this mirrors the standard
// under-color-removal formula our teacher (unidoc/unipdf's
// PdfColorspaceDeviceCMYK.ColorToRGB) uses for the same conversion:
// c' = c*(1-k)+k (and likewise for m, y), r = 1-c'. This is documented as
// a deviation from the bit-exact requirement in DESIGN.md.
func (cs *DeviceCMYK) Name() string  { return "DeviceCMYK" }
func (cs *DeviceCMYK) NumComps() int { return 4 }

func cmykToRGB(c, m, y, k float64) (r, g, b float64) {
	c = c*(1-k) + k
	m = m*(1-k) + k
	y = y*(1-k) + k
	return clamp01(1 - c), clamp01(1 - m), clamp01(1 - y)
}

func (cs *DeviceCMYK) GetRGBItem(src []float64, srcOff int, dest []byte, destOff int) {
	r, g, b := cmykToRGB(src[srcOff], src[srcOff+1], src[srcOff+2], src[srcOff+3])
	dest[destOff] = clampByte(r * 255)
	dest[destOff+1] = clampByte(g * 255)
	dest[destOff+2] = clampByte(b * 255)
}

func (cs *DeviceCMYK) GetRGBBuffer(src []uint32, srcOff, count int, dest []byte, destOff, bits, alpha01 int) {
	alpha01 = alpha01Normalize(alpha01)
	scale := 1.0 / float64((uint32(1)<<uint(bits))-1)
	so, do := srcOff, destOff
	for i := 0; i < count; i++ {
		r, g, b := cmykToRGB(
			float64(src[so])*scale,
			float64(src[so+1])*scale,
			float64(src[so+2])*scale,
			float64(src[so+3])*scale,
		)
		dest[do] = clampByte(r * 255)
		dest[do+1] = clampByte(g * 255)
		dest[do+2] = clampByte(b * 255)
		so += 4
		do += 3 + alpha01
	}
}

func (cs *DeviceCMYK) GetOutputLength(inputLength, alpha01 int) int {
	return inputLength / 4 * (3 + alpha01Normalize(alpha01))
}

func (cs *DeviceCMYK) IsPassthrough(bits int) bool { return false }
func (cs *DeviceCMYK) UsesZeroToOneRange() bool    { return true }

func (cs *DeviceCMYK) IsDefaultDecode(decode []float64, bpc int) bool {
	return IsDefaultDecode(decode, cs.NumComps())
}
