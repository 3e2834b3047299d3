package vtf

import (
	"image"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// ResizeFilter selects the resampling kernel used for mip synthesis,
// thumbnails and power-of-two resizing.
type ResizeFilter int

const (
	// FilterDefault uses the codec's default kernel (Mitchell-Netravali).
	FilterDefault ResizeFilter = iota
	// FilterBox averages the source footprint.
	FilterBox
	// FilterBilinear uses triangle-kernel interpolation.
	FilterBilinear
	// FilterCubicBSpline uses a smooth cubic B-spline kernel.
	FilterCubicBSpline
	// FilterCatmullRom uses the Catmull-Rom cubic kernel.
	FilterCatmullRom
	// FilterMitchell uses the Mitchell-Netravali cubic kernel.
	FilterMitchell
	// FilterPointSample takes the nearest source pixel.
	FilterPointSample
	// FilterKaiser uses a windowed-sinc kernel.
	FilterKaiser
)

// ResizeMethod selects how non-power-of-two dimensions are rounded.
type ResizeMethod int

const (
	// ResizeUpPow2 rounds up to the smallest power of two >= the value.
	ResizeUpPow2 ResizeMethod = iota
	// ResizeDownPow2 rounds down to the largest power of two <= the value.
	ResizeDownPow2
	// ResizeNearestPow2 rounds to the closer power of two, ties up.
	ResizeNearestPow2
)

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPow2 returns the smallest power of two >= n.
func NextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PrevPow2 returns the largest power of two <= n, or 1 for n < 1.
func PrevPow2(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p<<1 <= n {
		p <<= 1
	}
	return p
}

// NearestPow2 returns the power of two with the smaller absolute
// difference from n; ties round up.
func NearestPow2(n int) int {
	lo, hi := PrevPow2(n), NextPow2(n)
	if n-lo < hi-n {
		return lo
	}
	return hi
}

// Apply rounds n according to the method. Values that are already
// powers of two are returned unchanged.
func (m ResizeMethod) Apply(n int) int {
	switch m {
	case ResizeDownPow2:
		return PrevPow2(n)
	case ResizeNearestPow2:
		return NearestPow2(n)
	default:
		return NextPow2(n)
	}
}

// resizeRGBA resamples an RGBA8888 buffer to the target dimensions
// with the requested filter.
//
// Kernels without a direct nfnt/resize equivalent come from
// x/image/draw; Kaiser maps to Lanczos3, the closest windowed sinc
// available.
func resizeRGBA(pix []byte, w, h, tw, th int, filter ResizeFilter) []byte {
	if w == tw && h == th {
		out := make([]byte, len(pix))
		copy(out, pix)
		return out
	}

	src := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(src.Pix, pix)

	switch filter {
	case FilterBox, FilterCatmullRom:
		dst := image.NewRGBA(image.Rect(0, 0, tw, th))
		scaler := xdraw.Scaler(xdraw.CatmullRom)
		if filter == FilterBox {
			scaler = xdraw.BiLinear
		}
		scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		return dst.Pix
	}

	var kernel resize.InterpolationFunction
	switch filter {
	case FilterBilinear:
		kernel = resize.Bilinear
	case FilterCubicBSpline:
		kernel = resize.Bicubic
	case FilterPointSample:
		kernel = resize.NearestNeighbor
	case FilterKaiser:
		kernel = resize.Lanczos3
	default:
		kernel = resize.MitchellNetravali
	}

	scaled := resize.Resize(uint(tw), uint(th), src, kernel)
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.Draw(dst, dst.Bounds(), scaled, image.Point{}, xdraw.Src)
	return dst.Pix
}
