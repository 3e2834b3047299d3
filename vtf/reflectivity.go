package vtf

import "github.com/chewxy/math32"

// reflectivityGamma linearizes sRGB-ish 8-bit channels before
// averaging, matching how engine tooling derives the vector.
const reflectivityGamma = 2.2

// ComputeReflectivity averages the linearized color of every base
// cell into the reflectivity vector.
func (c *container) ComputeReflectivity() error {
	var sum [3]float32
	var count float32
	for fr := 0; fr < c.frames; fr++ {
		for fa := 0; fa < c.faces; fa++ {
			for s := 0; s < c.sliceCount(0); s++ {
				cell := c.cells[0][fr][fa][s]
				if cell == nil {
					count += float32(c.width * c.height)
					continue
				}
				for i := 0; i < len(cell); i += 4 {
					sum[0] += math32.Pow(float32(cell[i+0])/255, reflectivityGamma)
					sum[1] += math32.Pow(float32(cell[i+1])/255, reflectivityGamma)
					sum[2] += math32.Pow(float32(cell[i+2])/255, reflectivityGamma)
				}
				count += float32(len(cell) / 4)
			}
		}
	}
	if count > 0 {
		c.reflectivity[0] = sum[0] / count
		c.reflectivity[1] = sum[1] / count
		c.reflectivity[2] = sum[2] / count
	}
	return nil
}

// ComputeTransparencyFlags derives the alpha flags from the completed
// pixel data. Mip and resize passes can change the effective alpha
// distribution, so this runs after them.
func (c *container) ComputeTransparencyFlags() error {
	c.flags &^= FlagOneBitAlpha | FlagEightBitAlpha

	if c.format.AlphaBits() == 0 {
		return nil
	}

	binary := true
	translucent := false
	for fr := 0; fr < c.frames && binary; fr++ {
		for fa := 0; fa < c.faces && binary; fa++ {
			for s := 0; s < c.sliceCount(0) && binary; s++ {
				cell := c.cells[0][fr][fa][s]
				for i := 3; i < len(cell); i += 4 {
					switch cell[i] {
					case 0xFF:
					case 0x00:
						translucent = true
					default:
						translucent = true
						binary = false
					}
					if !binary {
						break
					}
				}
			}
		}
	}

	switch {
	case !translucent:
		// Fully opaque, no alpha flag.
	case binary || c.format.AlphaBits() == 1:
		c.flags |= FlagOneBitAlpha
	default:
		c.flags |= FlagEightBitAlpha
	}
	return nil
}
