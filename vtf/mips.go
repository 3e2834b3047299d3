package vtf

// RecommendedMipCount returns the size of a full mip chain for the
// given base dimensions: one level per halving of the larger
// dimension, down to 1x1. It never returns less than 1 and is
// monotonically non-increasing as dimensions shrink.
//
// Block formats pad sub-block levels to a whole block on disk, so the
// chain length does not depend on the format.
func RecommendedMipCount(_ ImageFormat, width, height int) int {
	count := 1
	for m := max(width, height); m > 1; m >>= 1 {
		count++
	}
	return count
}

// MipDims returns the dimensions of mip level m for a base of
// width x height. Mip 0 is full resolution; levels never shrink
// below 1.
func MipDims(width, height, m int) (int, int) {
	w := width >> m
	h := height >> m
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
