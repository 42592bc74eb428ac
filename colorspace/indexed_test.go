package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndexedRejectsBadHiVal(t *testing.T) {
	_, err := NewIndexed(RGB(), 0, nil)
	require.Error(t, err)
	_, err = NewIndexed(RGB(), 300, nil)
	require.Error(t, err)
}

func TestNewIndexedRejectsShortLookup(t *testing.T) {
	_, err := NewIndexed(RGB(), 2, []byte{1, 2, 3})
	require.Error(t, err)
}

func TestNewIndexedTrimsLookup(t *testing.T) {
	cs, err := NewIndexed(RGB(), 2, []byte{1, 2, 3, 4, 5, 6, 99, 99})
	require.NoError(t, err)
	assert.Len(t, cs.Lookup, 6)
}

func TestIndexedOverDeviceRGB(t *testing.T) {
	lookup := []byte{255, 0, 0, 0, 255, 0}
	cs, err := NewIndexed(RGB(), 2, lookup)
	require.NoError(t, err)

	dest := make([]byte, 3)
	cs.GetRGBItem([]float64{0}, 0, dest, 0)
	assert.Equal(t, []byte{255, 0, 0}, dest)

	cs.GetRGBItem([]float64{1}, 0, dest, 0)
	assert.Equal(t, []byte{0, 255, 0}, dest)
}

func TestIndexedGetRGBBuffer(t *testing.T) {
	lookup := []byte{10, 20, 30, 40, 50, 60}
	cs, err := NewIndexed(RGB(), 2, lookup)
	require.NoError(t, err)

	dest := make([]byte, 6)
	cs.GetRGBBuffer([]uint32{1, 0}, 0, 2, dest, 0, 8, 0)
	assert.Equal(t, []byte{40, 50, 60, 10, 20, 30}, dest)
}

func TestIndexedIsDefaultDecode(t *testing.T) {
	cs, _ := NewIndexed(RGB(), 2, []byte{0, 0, 0, 0, 0, 0})
	assert.True(t, cs.IsDefaultDecode(nil, 8))
	assert.True(t, cs.IsDefaultDecode([]float64{0, 255}, 8))
	assert.False(t, cs.IsDefaultDecode([]float64{0, 1}, 8))
}
