package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternNumCompsPanics(t *testing.T) {
	cs := NewPattern(nil)
	assert.Panics(t, func() { cs.NumComps() })
}

func TestPatternGetRGBItemPanics(t *testing.T) {
	cs := NewPattern(RGB())
	assert.Panics(t, func() { cs.GetRGBItem(nil, 0, nil, 0) })
}

func TestPatternCarriesOptionalBase(t *testing.T) {
	cs := NewPattern(RGB())
	assert.Equal(t, RGB(), cs.Base)
	cs2 := NewPattern(nil)
	assert.Nil(t, cs2.Base)
}

func TestPatternName(t *testing.T) {
	assert.Equal(t, "Pattern", NewPattern(nil).Name())
}
