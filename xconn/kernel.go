package xconn

import "github.com/jezek/xgb/render"

// Kernel is a convolution kernel: Width*Height weights, row major.
type Kernel struct {
	Width, Height int
	Data          []float64
}

// DoubleToFixed converts v to the render extension's 16.16 fixed point
// encoding.
func DoubleToFixed(v float64) render.Fixed {
	return render.Fixed(v * 65536)
}

// FixedToDouble is the inverse of DoubleToFixed.
func FixedToDouble(v render.Fixed) float64 {
	return float64(v) / 65536
}

// ConvolutionFilter serializes kernel for the render convolution
// filter, normalizing the weights so they sum to one. center replaces
// the middle element; legacy kernels keep it separate from the data.
// The first two elements are the kernel width and height, as the
// filter protocol requires.
func ConvolutionFilter(kernel Kernel, center float64) []render.Fixed {
	buf := make([]render.Fixed, kernel.Width*kernel.Height+2)
	buf[0] = DoubleToFixed(float64(kernel.Width))
	buf[1] = DoubleToFixed(float64(kernel.Height))

	sum := center
	for i, v := range kernel.Data {
		if i == kernel.Width*kernel.Height/2 {
			continue
		}
		sum += v
	}

	// For floating point a/b != a*(1/b), but the difference has no
	// visible impact here.
	factor := 1.0
	if sum != 0 {
		factor = 1.0 / sum
	}
	for i, v := range kernel.Data {
		buf[i+2] = DoubleToFixed(v * factor)
	}
	buf[kernel.Height/2*kernel.Width+kernel.Width/2+2] = DoubleToFixed(center * factor)
	return buf
}
