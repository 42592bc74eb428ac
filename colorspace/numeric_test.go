package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampByte(t *testing.T) {
	assert.Equal(t, byte(0), clampByte(-10))
	assert.Equal(t, byte(0), clampByte(0))
	assert.Equal(t, byte(255), clampByte(255))
	assert.Equal(t, byte(255), clampByte(300))
	assert.Equal(t, byte(128), clampByte(127.5))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-1))
	assert.Equal(t, 1.0, clamp01(2))
	assert.Equal(t, 0.5, clamp01(0.5))
}

func TestMat3Apply(t *testing.T) {
	identity := mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	x, y, z := identity.apply(1, 2, 3)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)
	assert.Equal(t, 3.0, z)
}

func TestDecodeLOddSymmetric(t *testing.T) {
	for _, l := range []float64{0.5, 3, 8, 8.0001, 40, 100} {
		assert.InDelta(t, -decodeL(l), decodeL(-l), 1e-12)
	}
}

func TestInterpolate(t *testing.T) {
	assert.Equal(t, 0.0, interpolate(0, 0, 255, 0, 1))
	assert.Equal(t, 1.0, interpolate(255, 0, 255, 0, 1))
	assert.InDelta(t, 0.5, interpolate(127.5, 0, 255, 0, 1), 1e-9)
}

func TestSrgbEncodeBreakpoint(t *testing.T) {
	assert.InDelta(t, 12.92*0.0031308, srgbEncode(0.0031308), 1e-9)
	assert.Greater(t, srgbEncode(0.5), 0.0)
	assert.LessOrEqual(t, srgbEncode(10), 1.0)
}
