package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLabDefaultsRange(t *testing.T) {
	cs, err := NewLab([3]float64{0.9505, 1, 1.089}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, [4]float64{-100, 100, -100, 100}, cs.Range)
}

func TestNewLabResetsInvalidRange(t *testing.T) {
	bad := [4]float64{50, -50, -100, 100}
	cs, err := NewLab([3]float64{0.9505, 1, 1.089}, nil, &bad)
	require.NoError(t, err)
	assert.Equal(t, [4]float64{-100, 100, -100, 100}, cs.Range)
}

func TestLabUsesZeroToOneRangeFalse(t *testing.T) {
	cs, _ := NewLab([3]float64{0.9505, 1, 1.089}, nil, nil)
	assert.False(t, cs.UsesZeroToOneRange())
}

func TestLabWhiteIsWhite(t *testing.T) {
	cs, err := NewLab([3]float64{0.9505, 1, 1.089}, nil, nil)
	require.NoError(t, err)
	dest := make([]byte, 3)
	cs.GetRGBItem([]float64{100, 0, 0}, 0, dest, 0)
	assert.InDelta(t, 255, int(dest[0]), 2)
	assert.InDelta(t, 255, int(dest[1]), 2)
	assert.InDelta(t, 255, int(dest[2]), 2)
}

func TestLabBlackIsBlack(t *testing.T) {
	cs, err := NewLab([3]float64{0.9505, 1, 1.089}, nil, nil)
	require.NoError(t, err)
	dest := make([]byte, 3)
	cs.GetRGBItem([]float64{0, 0, 0}, 0, dest, 0)
	assert.Equal(t, []byte{0, 0, 0}, dest)
}

func TestLabGetRGBBufferAppliesDecodeRemap(t *testing.T) {
	cs, err := NewLab([3]float64{0.9505, 1, 1.089}, nil, nil)
	require.NoError(t, err)
	src := []uint32{255, 127, 127} // maxVal 255 at 8 bits -> L*=100, a*=b*~0
	dest := make([]byte, 3)
	cs.GetRGBBuffer(src, 0, 1, dest, 0, 8, 0)

	want := make([]byte, 3)
	cs.GetRGBItem([]float64{100, interpolateA(127), interpolateA(127)}, 0, want, 0)
	assert.Equal(t, want, dest)
}

func interpolateA(v uint32) float64 {
	return interpolate(float64(v), 0, 255, -100, 100)
}
