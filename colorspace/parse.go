package colorspace

// This file implements spec.md §4.11: turning a PDF color-space descriptor
// into an IR, then materializing it. Parsing needs the PDF object model
// (Xref, Dict, Stream) and a function-evaluator factory (TintFnFactory);
// both are caller-supplied capabilities (external.go).

// Parse is the convenience composition from_ir(parse_to_ir(...)).
func Parse(cs Object, xref Xref, res Dict, fnFactory TintFnFactory) (ColorSpace, error) {
	ir, err := ParseToIR(cs, xref, res, fnFactory)
	if err != nil {
		return nil, err
	}
	return FromIR(ir)
}

// ParseToIR turns a PDF color-space descriptor into an IR. It is the only
// place in this package that touches the Xref/Dict/Stream/TintFnFactory
// capabilities.
func ParseToIR(cs Object, xref Xref, res Dict, fnFactory TintFnFactory) (*IR, error) {
	cs = xref.FetchIfRef(cs)

	if name, ok := isName(cs); ok {
		return parseNameIR(name, xref, res, fnFactory)
	}

	if arr, ok := isArray(cs); ok {
		return parseArrayIR(arr, xref, res, fnFactory)
	}

	return nil, newFormatError("ColorSpace", "unrecognized descriptor shape %T", cs)
}

// parseNameIR resolves a bare name: a Device* family, Pattern, or a lookup
// in the resource dictionary's ColorSpace sub-dictionary (spec.md §4.11).
func parseNameIR(name Name, xref Xref, res Dict, fnFactory TintFnFactory) (*IR, error) {
	switch name {
	case "DeviceGray", "G":
		return &IR{Tag: IRDeviceGray}, nil
	case "DeviceRGB", "RGB":
		return &IR{Tag: IRDeviceRGB}, nil
	case "DeviceCMYK", "CMYK":
		return &IR{Tag: IRDeviceCMYK}, nil
	case "Pattern":
		return &IR{Tag: IRPattern}, nil
	}

	if res == nil {
		return nil, newFormatError("ColorSpace", "unknown color space name %q and no resource dictionary to resolve it", name)
	}
	csDictObj := res.Get("ColorSpace")
	csDict, ok := isDict(xref.FetchIfRef(csDictObj))
	if !ok {
		return nil, newFormatError("ColorSpace", "unknown color space name %q: resources have no ColorSpace sub-dictionary", name)
	}
	entry := xref.FetchIfRef(csDict.Get(string(name)))
	if entry == nil {
		return nil, newFormatError("ColorSpace", "color space name %q not found in resources", name)
	}
	if again, ok := isName(entry); ok {
		return parseNameIR(again, xref, res, fnFactory)
	}
	return ParseToIR(entry, xref, res, fnFactory)
}

// parseArrayIR dispatches on an array descriptor's mode name.
func parseArrayIR(arr Array, xref Xref, res Dict, fnFactory TintFnFactory) (*IR, error) {
	if len(arr) == 0 {
		return nil, newFormatError("ColorSpace", "empty color space array")
	}
	modeObj := xref.FetchIfRef(arr[0])
	mode, ok := isName(modeObj)
	if !ok {
		return nil, newFormatError("ColorSpace", "color space array's first element is not a name (%T)", modeObj)
	}

	switch mode {
	case "DeviceGray", "G", "DeviceRGB", "RGB", "DeviceCMYK", "CMYK", "Pattern":
		if mode == "Pattern" && len(arr) > 1 {
			return parsePatternIR(arr, xref, res, fnFactory)
		}
		return parseNameIR(mode, xref, res, fnFactory)

	case "CalGray":
		return parseCalGrayIR(arr, xref)

	case "CalRGB":
		return parseCalRGBIR(arr, xref)

	case "Lab":
		return parseLabIR(arr, xref)

	case "ICCBased":
		return parseICCBasedIR(arr, xref, res, fnFactory)

	case "Indexed", "I":
		return parseIndexedIR(arr, xref, res, fnFactory)

	case "Separation", "DeviceN":
		return parseSeparationIR(arr, xref, res, fnFactory, mode == "DeviceN")

	default:
		return nil, newFormatError("ColorSpace", "unrecognized color space mode %q", mode)
	}
}

func dictOrFail(xref Xref, obj Object, csName string) (Dict, error) {
	d, ok := isDict(xref.FetchIfRef(obj))
	if !ok {
		return nil, newFormatError(csName, "expected a parameters dictionary, got %T", obj)
	}
	return d, nil
}

func getFloatArray(xref Xref, d Dict, key string, n int) ([]float64, bool) {
	arr, ok := isArray(xref.FetchIfRef(d.Get(key)))
	if !ok {
		return nil, false
	}
	f, ok := asFloatArray(arr)
	if !ok || (n >= 0 && len(f) != n) {
		return nil, false
	}
	return f, true
}

func parseCalGrayIR(arr Array, xref Xref) (*IR, error) {
	if len(arr) < 2 {
		return nil, newFormatError("CalGray", "missing parameters dictionary")
	}
	d, err := dictOrFail(xref, arr[1], "CalGray")
	if err != nil {
		return nil, err
	}
	wp, ok := getFloatArray(xref, d, "WhitePoint", 3)
	if !ok {
		return nil, newFormatError("CalGray", "missing or malformed WhitePoint")
	}
	ir := &IR{Tag: IRCalGray, WhitePoint: [3]float64{wp[0], wp[1], wp[2]}}
	if bp, ok := getFloatArray(xref, d, "BlackPoint", 3); ok {
		ir.BlackPoint = &[3]float64{bp[0], bp[1], bp[2]}
	}
	if g, ok := asFloat(xref.FetchIfRef(d.Get("Gamma"))); ok {
		ir.Gamma = g
	}
	return ir, nil
}

func parseCalRGBIR(arr Array, xref Xref) (*IR, error) {
	if len(arr) < 2 {
		return nil, newFormatError("CalRGB", "missing parameters dictionary")
	}
	d, err := dictOrFail(xref, arr[1], "CalRGB")
	if err != nil {
		return nil, err
	}
	wp, ok := getFloatArray(xref, d, "WhitePoint", 3)
	if !ok {
		return nil, newFormatError("CalRGB", "missing or malformed WhitePoint")
	}
	ir := &IR{Tag: IRCalRGB, WhitePoint: [3]float64{wp[0], wp[1], wp[2]}}
	if bp, ok := getFloatArray(xref, d, "BlackPoint", 3); ok {
		ir.BlackPoint = &[3]float64{bp[0], bp[1], bp[2]}
	}
	if g, ok := getFloatArray(xref, d, "Gamma", 3); ok {
		ir.GammaRGB = &[3]float64{g[0], g[1], g[2]}
	}
	if m, ok := getFloatArray(xref, d, "Matrix", 9); ok {
		ir.Matrix = &[9]float64{m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]}
	}
	return ir, nil
}

func parseLabIR(arr Array, xref Xref) (*IR, error) {
	if len(arr) < 2 {
		return nil, newFormatError("Lab", "missing parameters dictionary")
	}
	d, err := dictOrFail(xref, arr[1], "Lab")
	if err != nil {
		return nil, err
	}
	wp, ok := getFloatArray(xref, d, "WhitePoint", 3)
	if !ok {
		return nil, newFormatError("Lab", "missing or malformed WhitePoint")
	}
	ir := &IR{Tag: IRLab, WhitePoint: [3]float64{wp[0], wp[1], wp[2]}}
	if bp, ok := getFloatArray(xref, d, "BlackPoint", 3); ok {
		ir.BlackPoint = &[3]float64{bp[0], bp[1], bp[2]}
	}
	if r, ok := getFloatArray(xref, d, "Range", 4); ok {
		ir.Range = &[4]float64{r[0], r[1], r[2], r[3]}
	}
	return ir, nil
}

// parseICCBasedIR implements spec.md §4.11's documented open question: if
// Alternate is present but its component count doesn't match N, the
// alternate is discarded and the parse falls through to a bare Device*
// space keyed only on N. This silently drops the file's intended fallback
// color space; preserved here deliberately (see DESIGN.md) rather than
// "fixed", since spec.md asks for the behavior to be kept and flagged, not
// corrected.
func parseICCBasedIR(arr Array, xref Xref, res Dict, fnFactory TintFnFactory) (*IR, error) {
	if len(arr) < 2 {
		return nil, newFormatError("ICCBased", "missing stream")
	}
	stream, ok := isStream(xref.FetchIfRef(arr[1]))
	if !ok {
		return nil, newFormatError("ICCBased", "expected a stream, got %T", arr[1])
	}
	sd := stream.Dict()
	n, ok := asFloat(xref.FetchIfRef(sd.Get("N")))
	if !ok {
		return nil, newFormatError("ICCBased", "missing N")
	}
	numComps := int(n)

	if altObj := xref.FetchIfRef(sd.Get("Alternate")); altObj != nil {
		altIR, err := ParseToIR(altObj, xref, res, fnFactory)
		if err == nil {
			altCS, err := FromIR(altIR)
			if err == nil && altCS.NumComps() == numComps {
				return altIR, nil
			}
			log().Warning("ICCBased: Alternate component count does not match N=%d; discarding alternate and falling back to N-keyed device space", numComps)
		} else {
			log().Warning("ICCBased: failed to parse Alternate (%v); falling back to N-keyed device space", err)
		}
	}

	switch numComps {
	case 1:
		return &IR{Tag: IRDeviceGray}, nil
	case 3:
		return &IR{Tag: IRDeviceRGB}, nil
	case 4:
		return &IR{Tag: IRDeviceCMYK}, nil
	default:
		return nil, newFormatError("ICCBased", "unsupported component count N=%d and no usable alternate", numComps)
	}
}

func parsePatternIR(arr Array, xref Xref, res Dict, fnFactory TintFnFactory) (*IR, error) {
	baseIR, err := ParseToIR(arr[1], xref, res, fnFactory)
	if err != nil {
		return nil, err
	}
	return &IR{Tag: IRPattern, Base: baseIR}, nil
}

func parseIndexedIR(arr Array, xref Xref, res Dict, fnFactory TintFnFactory) (*IR, error) {
	if len(arr) < 4 {
		return nil, newFormatError("Indexed", "expected 4 array elements, got %d", len(arr))
	}
	baseIR, err := ParseToIR(arr[1], xref, res, fnFactory)
	if err != nil {
		return nil, err
	}
	hiValRaw, ok := asFloat(xref.FetchIfRef(arr[2]))
	if !ok {
		return nil, newFormatError("Indexed", "Hival is not a number")
	}
	lookupObj := xref.FetchIfRef(arr[3])
	lookup, err := asBytes(lookupObj)
	if err != nil {
		return nil, err
	}
	return &IR{Tag: IRIndexed, Base: baseIR, HiVal: int(hiValRaw) + 1, Lookup: lookup}, nil
}

func parseSeparationIR(arr Array, xref Xref, res Dict, fnFactory TintFnFactory, isDeviceN bool) (*IR, error) {
	if len(arr) < 4 {
		return nil, newFormatError("Separation/DeviceN", "expected 4 array elements, got %d", len(arr))
	}

	var numComps int
	namesObj := xref.FetchIfRef(arr[1])
	if _, ok := isName(namesObj); ok {
		numComps = 1
	} else if names, ok := isArray(namesObj); ok {
		numComps = len(names)
	} else {
		return nil, newFormatError("Separation/DeviceN", "colorant names field has unsupported type %T", namesObj)
	}

	altIR, err := ParseToIR(arr[2], xref, res, fnFactory)
	if err != nil {
		return nil, err
	}

	tintFn, err := fnFactory.Create(xref.FetchIfRef(arr[3]))
	if err != nil {
		return nil, err
	}

	return &IR{Tag: IRAlternate, AltComps: numComps, Base: altIR, TintFn: tintFn, IsDeviceN: isDeviceN}, nil
}
