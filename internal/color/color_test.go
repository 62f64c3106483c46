package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToU8ClampsOutOfRangeValues(t *testing.T) {
	assert.Equal(t, uint8(0), ToU8(-1))
	assert.Equal(t, uint8(255), ToU8(2))
	assert.Equal(t, uint8(127), ToU8(127.0/255.0))
}

func TestMulIsComponentWise(t *testing.T) {
	got := New(0.5, 1, 0.25).Mul(New(2, 0.5, 4))
	assert.InDelta(t, 1.0, got.R, 1e-9)
	assert.InDelta(t, 0.5, got.G, 1e-9)
	assert.InDelta(t, 1.0, got.B, 1e-9)
}

func TestLuminanceWeightsGreenMost(t *testing.T) {
	assert.Greater(t, White().Luminance(), 0.0)
	assert.Greater(t, New(0, 1, 0).Luminance(), New(0, 0, 1).Luminance())
	assert.Greater(t, New(0, 1, 0).Luminance(), New(1, 0, 0).Luminance())
}

func TestClamp01BoundsEachChannel(t *testing.T) {
	got := New(-1, 0.5, 2).Clamp01()
	assert.Equal(t, 0.0, got.R)
	assert.Equal(t, 0.5, got.G)
	assert.Equal(t, 1.0, got.B)
}

func TestStringFormatsAsHex(t *testing.T) {
	assert.Equal(t, "#ff0000", Red().String())
	assert.Equal(t, "#000000", Black().String())
}
