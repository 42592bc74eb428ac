package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDefaultDecode(t *testing.T) {
	assert.True(t, IsDefaultDecode(nil, 3))
	assert.True(t, IsDefaultDecode([]float64{}, 1))
	assert.True(t, IsDefaultDecode([]float64{0, 1, 0, 1, 0, 1}, 3))
	assert.False(t, IsDefaultDecode([]float64{1, 0}, 1))
	// Length mismatch logs a warning and is treated as default.
	assert.True(t, IsDefaultDecode([]float64{0, 1, 0, 1}, 3))
}

func TestAlpha01Normalize(t *testing.T) {
	assert.Equal(t, 0, alpha01Normalize(0))
	assert.Equal(t, 1, alpha01Normalize(1))
	assert.Equal(t, 0, alpha01Normalize(2))
	assert.Equal(t, 0, alpha01Normalize(-1))
}

func TestFillRGBBufferDefaultMatchesPerPixel(t *testing.T) {
	cs := Gray()
	src := []uint32{0, 128, 255}
	dest := make([]byte, 9)
	fillRGBBufferDefault(cs, src, 0, 3, dest, 0, 8, 0)

	want := make([]byte, 9)
	cs.GetRGBBuffer(src, 0, 3, want, 0, 8, 0)
	assert.Equal(t, want, dest)
}
