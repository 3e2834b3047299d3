package vtf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPow2Helpers validates the power-of-two rounding primitives.
func TestPow2Helpers(t *testing.T) {
	assert.True(t, IsPow2(1))
	assert.True(t, IsPow2(256))
	assert.False(t, IsPow2(0))
	assert.False(t, IsPow2(100))

	assert.Equal(t, 128, NextPow2(100))
	assert.Equal(t, 256, NextPow2(130))
	assert.Equal(t, 64, PrevPow2(100))
	assert.Equal(t, 128, PrevPow2(130))
	assert.Equal(t, 128, NextPow2(128))
	assert.Equal(t, 128, PrevPow2(128))

	// 100 is closer to 128 than 64; 130 is closer to 128 than 256.
	assert.Equal(t, 128, NearestPow2(100))
	assert.Equal(t, 128, NearestPow2(130))
	// 96 is equidistant between 64 and 128; ties round up.
	assert.Equal(t, 128, NearestPow2(96))
}

// TestResizeMethodApply validates the three rounding rules.
func TestResizeMethodApply(t *testing.T) {
	tests := []struct {
		method ResizeMethod
		in     int
		want   int
	}{
		{ResizeUpPow2, 100, 128},
		{ResizeUpPow2, 130, 256},
		{ResizeDownPow2, 100, 64},
		{ResizeDownPow2, 130, 128},
		{ResizeNearestPow2, 100, 128},
		{ResizeNearestPow2, 130, 128},
		{ResizeUpPow2, 64, 64},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.method.Apply(tc.in), "method %d in %d", tc.method, tc.in)
	}
}

// TestResizeRGBA validates output dimensions and solid-color
// preservation for every filter.
func TestResizeRGBA(t *testing.T) {
	src := make([]byte, 8*8*4)
	for i := 0; i < len(src); i += 4 {
		src[i], src[i+1], src[i+2], src[i+3] = 200, 100, 50, 255
	}

	filters := []ResizeFilter{
		FilterDefault, FilterBox, FilterBilinear, FilterCubicBSpline,
		FilterCatmullRom, FilterMitchell, FilterPointSample, FilterKaiser,
	}
	for _, f := range filters {
		out := resizeRGBA(src, 8, 8, 4, 4, f)
		assert.Len(t, out, 4*4*4, "filter %d", f)
		// A solid image stays solid under any kernel.
		for i := 0; i < len(out); i += 4 {
			assert.InDelta(t, 200, out[i+0], 2, "filter %d red", f)
			assert.InDelta(t, 100, out[i+1], 2, "filter %d green", f)
			assert.InDelta(t, 50, out[i+2], 2, "filter %d blue", f)
			assert.Equal(t, byte(255), out[i+3], "filter %d alpha", f)
		}
	}
}

// TestResizeRGBANoop validates the same-size fast path copies.
func TestResizeRGBANoop(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	out := resizeRGBA(src, 2, 1, 2, 1, FilterDefault)
	assert.Equal(t, src, out)
	out[0] = 99
	assert.Equal(t, byte(1), src[0], "noop resize must not alias the input")
}
