package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillRGBPassthroughNoResize(t *testing.T) {
	cs := RGB()
	comps := []uint32{1, 2, 3, 4, 5, 6}
	dest := make([]byte, 6)
	FillRGB(cs, dest, 2, 1, 2, 1, 1, 8, comps, 0)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, dest)
}

func TestFillRGBPassthroughWithAlpha(t *testing.T) {
	cs := RGB()
	comps := []uint32{1, 2, 3, 4, 5, 6}
	dest := make([]byte, 8)
	FillRGB(cs, dest, 2, 1, 2, 1, 1, 8, comps, 1)
	assert.Equal(t, []byte{1, 2, 3, 0, 4, 5, 6, 0}, dest)
}

func TestFillRGBDeviceGrayNoColorMap(t *testing.T) {
	// DeviceGray is excluded from the one-component color-map optimization
	// even though NumComps()==1.
	cs := Gray()
	count := 20
	comps := make([]uint32, count)
	for i := range comps {
		comps[i] = uint32(i % 2) // 1-bit-ish values but bpc below is small on purpose
	}
	dest := make([]byte, count*3)
	FillRGB(cs, dest, count, 1, count, 1, 1, 1, comps, 0)

	want := make([]byte, count*3)
	cs.GetRGBBuffer(comps, 0, count, want, 0, 1, 0)
	assert.Equal(t, want, dest)
}

func TestFillRGBColorMapOptimizationMatchesDirect(t *testing.T) {
	lookup := []byte{10, 20, 30, 40, 50, 60}
	cs, err := NewIndexed(RGB(), 2, lookup)
	if err != nil {
		t.Fatal(err)
	}
	bpc := 1
	count := 10 // > numComponentColors (2) for bpc=1, triggers the color-map path
	comps := make([]uint32, count)
	for i := range comps {
		comps[i] = uint32(i % 2)
	}
	dest := make([]byte, count*3)
	FillRGB(cs, dest, count, 1, count, 1, 1, bpc, comps, 0)

	want := make([]byte, count*3)
	cs.GetRGBBuffer(comps, 0, count, want, 0, bpc, 0)
	assert.Equal(t, want, dest)
}

func TestResizeRGBNearestNeighborUpscale(t *testing.T) {
	src := []byte{
		255, 0, 0, 0, 255, 0,
	} // 2x1 image: red, green
	dest := make([]byte, 4*3)
	resizeRGB(src, dest, 2, 1, 4, 1, 0)
	assert.Equal(t, []byte{255, 0, 0, 255, 0, 0, 0, 255, 0, 0, 255, 0}, dest)
}

func TestResizeRGBDownscale(t *testing.T) {
	src := []byte{
		255, 0, 0, 0, 255, 0, 0, 0, 255, 10, 10, 10,
	} // 4x1 image
	dest := make([]byte, 2*3)
	resizeRGB(src, dest, 4, 1, 2, 1, 0)
	assert.Equal(t, []byte{255, 0, 0, 0, 0, 255}, dest)
}

func TestResizeRGBAlphaSkip(t *testing.T) {
	src := []byte{255, 0, 0, 0, 255, 0}
	dest := make([]byte, 2*4)
	resizeRGB(src, dest, 2, 1, 2, 1, 1)
	assert.Equal(t, []byte{255, 0, 0, 0, 0, 255, 0, 0}, dest)
}
