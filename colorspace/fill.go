package colorspace

// FillRGB applies cs to a raster image of decoded component samples in
// src, writing RGB(A) bytes into dest, resizing from (originalW,
// originalH) to (w,h) if they differ (spec.md §4.12). actualH is the
// number of source rows actually present in src (it may be less than
// originalH for a partially-decoded image); comps holds count*cs.NumComps()
// integer samples in [0, 2^bpc).
func FillRGB(cs ColorSpace, dest []byte, originalW, originalH, w, h, actualH, bpc int, comps []uint32, alpha01 int) {
	alpha01 = alpha01Normalize(alpha01)
	count := originalW * originalH
	numComponentColors := 1 << uint(bpc)
	needsResizing := originalW != w || originalH != h

	if cs.IsPassthrough(bpc) {
		fillPassthrough(dest, comps, count, alpha01, originalW, originalH, w, h, needsResizing)
		return
	}

	name := cs.Name()
	if cs.NumComps() == 1 && count > numComponentColors && name != "DeviceGray" && name != "DeviceRGB" {
		fillViaColorMap(cs, dest, comps, originalW, originalH, w, h, actualH, bpc, numComponentColors, alpha01, needsResizing)
		return
	}

	if !needsResizing {
		cs.GetRGBBuffer(comps, 0, w*actualH, dest, 0, bpc, alpha01)
		return
	}

	rgbBuf := make([]byte, count*3)
	cs.GetRGBBuffer(comps, 0, originalW*actualH, rgbBuf, 0, bpc, 0)
	resizeRGB(rgbBuf, dest, originalW, originalH, w, h, alpha01)
}

// fillPassthrough handles the IsPassthrough(bpc) case: comps already holds
// the desired output bytes (one uint32 per output byte), so the routine
// only need resize or expand-by-alpha01.
func fillPassthrough(dest []byte, comps []uint32, count, alpha01, originalW, originalH, w, h int, needsResizing bool) {
	if !needsResizing {
		if alpha01 == 0 {
			for i := 0; i < count*3; i++ {
				dest[i] = byte(comps[i])
			}
			return
		}
		so, do := 0, 0
		for i := 0; i < count; i++ {
			dest[do] = byte(comps[so])
			dest[do+1] = byte(comps[so+1])
			dest[do+2] = byte(comps[so+2])
			so += 3
			do += 3 + alpha01
		}
		return
	}

	rgbBuf := make([]byte, count*3)
	for i := 0; i < count*3; i++ {
		rgbBuf[i] = byte(comps[i])
	}
	resizeRGB(rgbBuf, dest, originalW, originalH, w, h, alpha01)
}

// fillViaColorMap is the one-component color-map optimization: a table of
// numComponentColors RGB triples is built once (covering every possible
// sample value at this bit depth), then each source sample is looked up
// instead of converted individually. Worthwhile only when the pixel count
// dwarfs the table size (spec.md §4.12).
func fillViaColorMap(cs ColorSpace, dest []byte, comps []uint32, originalW, originalH, w, h, actualH, bpc, numComponentColors, alpha01 int, needsResizing bool) {
	table := make([]uint32, numComponentColors)
	for i := range table {
		table[i] = uint32(i)
	}
	colorMap := make([]byte, numComponentColors*3)
	cs.GetRGBBuffer(table, 0, numComponentColors, colorMap, 0, bpc, 0)

	count := originalW * originalH
	target := dest
	rgbBuf := dest
	if needsResizing {
		rgbBuf = make([]byte, count*3)
		target = rgbBuf
	}

	destStride := 3
	if !needsResizing {
		destStride = 3 + alpha01
	}

	n := originalW * actualH
	do := 0
	for i := 0; i < n; i++ {
		c := comps[i]
		off := int(c) * 3
		target[do] = colorMap[off]
		target[do+1] = colorMap[off+1]
		target[do+2] = colorMap[off+2]
		do += destStride
	}

	if needsResizing {
		resizeRGB(rgbBuf, dest, originalW, originalH, w, h, alpha01)
	}
}

// resizeRGB nearest-neighbor resamples an (w1 x h1) RGB buffer into a
// (w2 x h2) dest buffer, skipping alpha01 bytes per output pixel
// (spec.md §4.12).
func resizeRGB(src []byte, dest []byte, w1, h1, w2, h2, alpha01 int) {
	alpha01 = alpha01Normalize(alpha01)
	if w1 == 0 || h1 == 0 || w2 == 0 || h2 == 0 {
		return
	}

	colSrcOff := make([]int, w2)
	for j := 0; j < w2; j++ {
		colSrcOff[j] = (j * w1 / w2) * 3
	}

	do := 0
	for i := 0; i < h2; i++ {
		srcRow := i * h1 / h2
		rowOff := srcRow * w1 * 3
		for j := 0; j < w2; j++ {
			so := rowOff + colSrcOff[j]
			dest[do] = src[so]
			dest[do+1] = src[so+1]
			dest[do+2] = src[so+2]
			do += 3 + alpha01
		}
	}
}
