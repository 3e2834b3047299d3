package vtf

import (
	"encoding/binary"
)

// DXT block compression. The decode side follows the standard S3TC
// palette rules; the encode side is a bounding-box range fit, which is
// exact for solid blocks and adequate for thumbnails and mip tails.

func pack565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

func unpack565(c uint16) (r, g, b uint8) {
	return expand5(uint8(c >> 11 & 0x1F)), expand6(uint8(c >> 5 & 0x3F)), expand5(uint8(c & 0x1F))
}

// colorPalette expands the two block endpoints into the four-entry
// color palette. In the c0 <= c1 mode the fourth entry is transparent
// black when oneBitAlpha is set, opaque black otherwise.
func colorPalette(c0, c1 uint16, oneBitAlpha bool) [4][4]uint8 {
	var p [4][4]uint8
	r0, g0, b0 := unpack565(c0)
	r1, g1, b1 := unpack565(c1)
	p[0] = [4]uint8{r0, g0, b0, 0xFF}
	p[1] = [4]uint8{r1, g1, b1, 0xFF}
	if c0 > c1 {
		p[2] = [4]uint8{lerp3(r0, r1, 2), lerp3(g0, g1, 2), lerp3(b0, b1, 2), 0xFF}
		p[3] = [4]uint8{lerp3(r0, r1, 1), lerp3(g0, g1, 1), lerp3(b0, b1, 1), 0xFF}
	} else {
		p[2] = [4]uint8{avg(r0, r1), avg(g0, g1), avg(b0, b1), 0xFF}
		p[3] = [4]uint8{0, 0, 0, 0xFF}
		if oneBitAlpha {
			p[3][3] = 0
		}
	}
	return p
}

// lerp3 returns (w*a + (3-w)*b) / 3.
func lerp3(a, b uint8, w int) uint8 {
	return uint8((w*int(a) + (3-w)*int(b)) / 3)
}

func avg(a, b uint8) uint8 {
	return uint8((int(a) + int(b)) / 2)
}

// alphaPalette expands the two DXT5 alpha endpoints into the
// eight-entry alpha palette.
func alphaPalette(a0, a1 uint8) [8]uint8 {
	var p [8]uint8
	p[0], p[1] = a0, a1
	if a0 > a1 {
		for i := 2; i < 8; i++ {
			p[i] = uint8(((8-i)*int(a0) + (i-1)*int(a1)) / 7)
		}
	} else {
		for i := 2; i < 6; i++ {
			p[i] = uint8(((6-i)*int(a0) + (i-1)*int(a1)) / 5)
		}
		p[6], p[7] = 0, 0xFF
	}
	return p
}

func setPixel(out []byte, w, h, x, y int, c [4]uint8) {
	if x >= w || y >= h {
		return
	}
	i := (y*w + x) * 4
	out[i+0], out[i+1], out[i+2], out[i+3] = c[0], c[1], c[2], c[3]
}

func decodeDXT1(data []byte, w, h int, oneBitAlpha bool) []byte {
	out := make([]byte, w*h*4)
	bw, bh := (w+3)/4, (h+3)/4
	offset := 0
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			c0 := binary.LittleEndian.Uint16(data[offset:])
			c1 := binary.LittleEndian.Uint16(data[offset+2:])
			indices := binary.LittleEndian.Uint32(data[offset+4:])
			offset += 8

			colors := colorPalette(c0, c1, oneBitAlpha)
			for py := 0; py < 4; py++ {
				for px := 0; px < 4; px++ {
					i := indices >> uint(2*(py*4+px)) & 0x03
					setPixel(out, w, h, bx*4+px, by*4+py, colors[i])
				}
			}
		}
	}
	return out
}

func decodeDXT3(data []byte, w, h int) []byte {
	out := make([]byte, w*h*4)
	bw, bh := (w+3)/4, (h+3)/4
	offset := 0
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			alphaBits := binary.LittleEndian.Uint64(data[offset:])
			c0 := binary.LittleEndian.Uint16(data[offset+8:])
			c1 := binary.LittleEndian.Uint16(data[offset+10:])
			indices := binary.LittleEndian.Uint32(data[offset+12:])
			offset += 16

			colors := colorPalette(c0, c1, false)
			for py := 0; py < 4; py++ {
				for px := 0; px < 4; px++ {
					p := py*4 + px
					c := colors[indices>>uint(2*p)&0x03]
					c[3] = expand4(uint8(alphaBits >> uint(4*p) & 0xF))
					setPixel(out, w, h, bx*4+px, by*4+py, c)
				}
			}
		}
	}
	return out
}

func decodeDXT5(data []byte, w, h int) []byte {
	out := make([]byte, w*h*4)
	bw, bh := (w+3)/4, (h+3)/4
	offset := 0
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			a0, a1 := data[offset], data[offset+1]
			var alphaBits uint64
			for i := 0; i < 6; i++ {
				alphaBits |= uint64(data[offset+2+i]) << (8 * i)
			}
			c0 := binary.LittleEndian.Uint16(data[offset+8:])
			c1 := binary.LittleEndian.Uint16(data[offset+10:])
			indices := binary.LittleEndian.Uint32(data[offset+12:])
			offset += 16

			alpha := alphaPalette(a0, a1)
			colors := colorPalette(c0, c1, false)
			for py := 0; py < 4; py++ {
				for px := 0; px < 4; px++ {
					p := py*4 + px
					c := colors[indices>>uint(2*p)&0x03]
					c[3] = alpha[alphaBits>>uint(3*p)&0x07]
					setPixel(out, w, h, bx*4+px, by*4+py, c)
				}
			}
		}
	}
	return out
}

// gatherBlock copies the 4x4 block at (bx, by) out of an RGBA buffer,
// clamping coordinates at the image edge so partial blocks repeat
// their border pixels.
func gatherBlock(rgba []byte, w, h, bx, by int) [16][4]uint8 {
	var block [16][4]uint8
	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			x, y := bx*4+px, by*4+py
			if x >= w {
				x = w - 1
			}
			if y >= h {
				y = h - 1
			}
			i := (y*w + x) * 4
			block[py*4+px] = [4]uint8{rgba[i], rgba[i+1], rgba[i+2], rgba[i+3]}
		}
	}
	return block
}

// blockEndpoints finds the per-channel bounding box of the block's
// opaque pixels and returns the packed 565 endpoints, max first.
func blockEndpoints(block [16][4]uint8) (uint16, uint16) {
	minC := [3]uint8{0xFF, 0xFF, 0xFF}
	maxC := [3]uint8{}
	seen := false
	for _, px := range block {
		if px[3] < 0x80 {
			continue
		}
		seen = true
		for c := 0; c < 3; c++ {
			if px[c] < minC[c] {
				minC[c] = px[c]
			}
			if px[c] > maxC[c] {
				maxC[c] = px[c]
			}
		}
	}
	if !seen {
		return 0, 0
	}
	return pack565(maxC[0], maxC[1], maxC[2]), pack565(minC[0], minC[1], minC[2])
}

func nearestColor(px [4]uint8, palette [4][4]uint8, n int) uint32 {
	best, bestDist := 0, 1<<31
	for i := 0; i < n; i++ {
		dr := int(px[0]) - int(palette[i][0])
		dg := int(px[1]) - int(palette[i][1])
		db := int(px[2]) - int(palette[i][2])
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint32(best)
}

// encodeColorBlock writes one 8-byte DXT color block. When
// transparent is true the c0 <= c1 three-color mode is used and
// pixels below the alpha threshold get the transparent index.
func encodeColorBlock(dst []byte, block [16][4]uint8, transparent bool) {
	c0, c1 := blockEndpoints(block)
	if transparent {
		if c0 > c1 {
			c0, c1 = c1, c0
		}
	} else if c0 <= c1 {
		if c0 < c1 {
			c0, c1 = c1, c0
		} else if c0 == 0xFFFF {
			c1--
		} else {
			c0++
		}
	}

	palette := colorPalette(c0, c1, transparent)
	paletteSize := 4
	if transparent {
		paletteSize = 3
	}

	var indices uint32
	for p, px := range block {
		var idx uint32
		if transparent && px[3] < 0x80 {
			idx = 3
		} else {
			idx = nearestColor(px, palette, paletteSize)
		}
		indices |= idx << uint(2*p)
	}

	binary.LittleEndian.PutUint16(dst[0:], c0)
	binary.LittleEndian.PutUint16(dst[2:], c1)
	binary.LittleEndian.PutUint32(dst[4:], indices)
}

func encodeDXT1(rgba []byte, w, h int, oneBitAlpha bool) []byte {
	bw, bh := (w+3)/4, (h+3)/4
	out := make([]byte, bw*bh*8)
	offset := 0
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			block := gatherBlock(rgba, w, h, bx, by)
			transparent := false
			if oneBitAlpha {
				for _, px := range block {
					if px[3] < 0x80 {
						transparent = true
						break
					}
				}
			}
			encodeColorBlock(out[offset:], block, transparent)
			offset += 8
		}
	}
	return out
}

func encodeDXT3(rgba []byte, w, h int) []byte {
	bw, bh := (w+3)/4, (h+3)/4
	out := make([]byte, bw*bh*16)
	offset := 0
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			block := gatherBlock(rgba, w, h, bx, by)
			var alphaBits uint64
			for p, px := range block {
				alphaBits |= uint64(px[3]>>4) << uint(4*p)
			}
			binary.LittleEndian.PutUint64(out[offset:], alphaBits)
			encodeColorBlock(out[offset+8:], block, false)
			offset += 16
		}
	}
	return out
}

func encodeDXT5(rgba []byte, w, h int) []byte {
	bw, bh := (w+3)/4, (h+3)/4
	out := make([]byte, bw*bh*16)
	offset := 0
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			block := gatherBlock(rgba, w, h, bx, by)

			a0, a1 := uint8(0), uint8(0xFF)
			for _, px := range block {
				if px[3] > a0 {
					a0 = px[3]
				}
				if px[3] < a1 {
					a1 = px[3]
				}
			}
			out[offset], out[offset+1] = a0, a1

			if a0 > a1 {
				alpha := alphaPalette(a0, a1)
				var alphaBits uint64
				for p, px := range block {
					best, bestDist := 0, 1<<31
					for i, av := range alpha {
						d := int(px[3]) - int(av)
						if d < 0 {
							d = -d
						}
						if d < bestDist {
							best, bestDist = i, d
						}
					}
					alphaBits |= uint64(best) << uint(3*p)
				}
				for i := 0; i < 6; i++ {
					out[offset+2+i] = uint8(alphaBits >> (8 * i))
				}
			}
			// a0 == a1: all-zero indices decode to a0 exactly.

			encodeColorBlock(out[offset+8:], block, false)
			offset += 16
		}
	}
	return out
}
