package xconn

import (
	"testing"

	"github.com/jezek/xgb/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedConversion(t *testing.T) {
	assert.Equal(t, render.Fixed(65536), DoubleToFixed(1))
	assert.Equal(t, render.Fixed(-65536), DoubleToFixed(-1))
	assert.Equal(t, render.Fixed(32768), DoubleToFixed(0.5))
	assert.Equal(t, 0.5, FixedToDouble(render.Fixed(32768)))
	assert.InDelta(t, 3.25, FixedToDouble(DoubleToFixed(3.25)), 1e-4)
}

func TestConvolutionFilterLayout(t *testing.T) {
	k := Kernel{Width: 3, Height: 3, Data: []float64{
		0, 1, 0,
		1, 0, 1,
		0, 1, 0,
	}}
	buf := ConvolutionFilter(k, 4)

	require.Len(t, buf, 3*3+2)
	assert.Equal(t, DoubleToFixed(3), buf[0])
	assert.Equal(t, DoubleToFixed(3), buf[1])

	// Weights normalize against 4 (center) + 4 (edges) = 8.
	assert.Equal(t, DoubleToFixed(0.5), buf[2+4], "center element")
	assert.Equal(t, DoubleToFixed(0.125), buf[2+1])
	assert.Equal(t, DoubleToFixed(0), buf[2+0])
}

func TestConvolutionFilterNormalizes(t *testing.T) {
	k := Kernel{Width: 3, Height: 1, Data: []float64{2, 0, 2}}
	buf := ConvolutionFilter(k, 4)

	var sum float64
	for _, v := range buf[2:] {
		sum += FixedToDouble(v)
	}
	assert.InDelta(t, 1.0, sum, 1e-3)
}

func TestConvolutionFilterZeroSum(t *testing.T) {
	k := Kernel{Width: 1, Height: 1, Data: []float64{0}}
	buf := ConvolutionFilter(k, 0)

	require.Len(t, buf, 3)
	assert.Equal(t, render.Fixed(0), buf[2])
}
