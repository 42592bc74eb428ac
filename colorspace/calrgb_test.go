package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalRGBDefaults(t *testing.T) {
	cs, err := NewCalRGB([3]float64{0.9505, 1, 1.089}, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 1, 1}, cs.Gamma)
	assert.Equal(t, [3]float64{0, 0, 0}, cs.BlackPoint)
	assert.Equal(t, mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}, cs.Matrix)
}

func TestNewCalRGBTransposesMatrix(t *testing.T) {
	colMajor := [9]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	cs, err := NewCalRGB([3]float64{0.9505, 1, 1.089}, nil, nil, &colMajor)
	require.NoError(t, err)
	assert.Equal(t, mat3{1, 4, 7, 2, 5, 8, 3, 6, 9}, cs.Matrix)
}

func TestNewCalRGBNegativeGammaResetsWholeTriple(t *testing.T) {
	gamma := [3]float64{2, -1, 2}
	cs, err := NewCalRGB([3]float64{0.9505, 1, 1.089}, nil, &gamma, nil)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 1, 1}, cs.Gamma)
}

func TestCalRGBWhiteAtD65IsWhite(t *testing.T) {
	cs, err := NewCalRGB([3]float64{0.95047, 1, 1.08883}, nil, nil, nil)
	require.NoError(t, err)
	dest := make([]byte, 3)
	cs.GetRGBItem([]float64{1, 1, 1}, 0, dest, 0)
	assert.InDelta(t, 255, int(dest[0]), 1)
	assert.InDelta(t, 255, int(dest[1]), 1)
	assert.InDelta(t, 255, int(dest[2]), 1)
}

func TestCalRGBBlackIsBlack(t *testing.T) {
	cs, err := NewCalRGB([3]float64{0.95047, 1, 1.08883}, nil, nil, nil)
	require.NoError(t, err)
	dest := make([]byte, 3)
	cs.GetRGBItem([]float64{0, 0, 0}, 0, dest, 0)
	assert.Equal(t, []byte{0, 0, 0}, dest)
}

func TestCompensateBlackPointNoOpWhenZero(t *testing.T) {
	x, y, z := compensateBlackPoint([3]float64{}, 0.1, 0.2, 0.3)
	assert.Equal(t, 0.1, x)
	assert.Equal(t, 0.2, y)
	assert.Equal(t, 0.3, z)
}
