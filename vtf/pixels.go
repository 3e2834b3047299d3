package vtf

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrUnsupportedConversion is returned when the reference codec is
// asked to convert to or from a format it does not implement (HDR
// float formats, paletted P8, and the BC6H/BC7/ATI block families).
var ErrUnsupportedConversion = errors.New("vtf: unsupported pixel format conversion")

func expand5(v uint8) uint8 { return v<<3 | v>>2 }
func expand6(v uint8) uint8 { return v<<2 | v>>4 }
func expand4(v uint8) uint8 { return v * 17 }

// CanDecode reports whether the reference codec can convert stored
// data in format f to RGBA8888.
func CanDecode(f ImageFormat) bool {
	switch f {
	case FormatRGBA8888, FormatABGR8888, FormatARGB8888, FormatBGRA8888,
		FormatRGB888, FormatBGR888, FormatRGB888Bluescreen, FormatBGR888Bluescreen,
		FormatRGB565, FormatBGR565, FormatBGRX8888, FormatRGBX8888,
		FormatBGRX5551, FormatBGRA5551, FormatBGRA4444,
		FormatI8, FormatIA88, FormatA8, FormatR8, FormatUV88,
		FormatRGBA16161616, FormatEmpty,
		FormatDXT1, FormatDXT1OneBitAlpha, FormatDXT3, FormatDXT5:
		return true
	}
	return false
}

// CanEncode reports whether the reference codec can convert RGBA8888
// data to format f.
func CanEncode(f ImageFormat) bool {
	// The supported sets are symmetric.
	return CanDecode(f)
}

// decodeToRGBA converts stored-format bytes into an RGBA8888 buffer.
func decodeToRGBA(f ImageFormat, data []byte, w, h int) ([]byte, error) {
	if want := f.DataSize(w, h); len(data) < want {
		return nil, errors.Errorf("vtf: %s data truncated: %d bytes, want %d", f, len(data), want)
	}

	switch f {
	case FormatDXT1, FormatDXT1OneBitAlpha:
		return decodeDXT1(data, w, h, f == FormatDXT1OneBitAlpha), nil
	case FormatDXT3:
		return decodeDXT3(data, w, h), nil
	case FormatDXT5:
		return decodeDXT5(data, w, h), nil
	case FormatEmpty:
		return make([]byte, w*h*4), nil
	}

	n := w * h
	out := make([]byte, n*4)
	switch f {
	case FormatRGBA8888:
		copy(out, data[:n*4])
	case FormatABGR8888:
		for i := 0; i < n; i++ {
			out[i*4+0] = data[i*4+3]
			out[i*4+1] = data[i*4+2]
			out[i*4+2] = data[i*4+1]
			out[i*4+3] = data[i*4+0]
		}
	case FormatARGB8888:
		for i := 0; i < n; i++ {
			out[i*4+0] = data[i*4+1]
			out[i*4+1] = data[i*4+2]
			out[i*4+2] = data[i*4+3]
			out[i*4+3] = data[i*4+0]
		}
	case FormatBGRA8888, FormatBGRX8888:
		for i := 0; i < n; i++ {
			out[i*4+0] = data[i*4+2]
			out[i*4+1] = data[i*4+1]
			out[i*4+2] = data[i*4+0]
			out[i*4+3] = data[i*4+3]
			if f == FormatBGRX8888 {
				out[i*4+3] = 0xFF
			}
		}
	case FormatRGBX8888:
		for i := 0; i < n; i++ {
			copy(out[i*4:], data[i*4:i*4+3])
			out[i*4+3] = 0xFF
		}
	case FormatRGB888, FormatBGR888:
		for i := 0; i < n; i++ {
			r, g, b := data[i*3+0], data[i*3+1], data[i*3+2]
			if f == FormatBGR888 {
				r, b = b, r
			}
			out[i*4+0], out[i*4+1], out[i*4+2], out[i*4+3] = r, g, b, 0xFF
		}
	case FormatRGB888Bluescreen, FormatBGR888Bluescreen:
		for i := 0; i < n; i++ {
			r, g, b := data[i*3+0], data[i*3+1], data[i*3+2]
			if f == FormatBGR888Bluescreen {
				r, b = b, r
			}
			if r == 0 && g == 0 && b == 0xFF {
				// Pure blue marks a transparent pixel.
				continue
			}
			out[i*4+0], out[i*4+1], out[i*4+2], out[i*4+3] = r, g, b, 0xFF
		}
	case FormatRGB565, FormatBGR565:
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint16(data[i*2:])
			hi := expand5(uint8(v >> 11))
			mid := expand6(uint8(v >> 5 & 0x3F))
			lo := expand5(uint8(v & 0x1F))
			if f == FormatBGR565 {
				hi, lo = lo, hi
			}
			out[i*4+0], out[i*4+1], out[i*4+2], out[i*4+3] = hi, mid, lo, 0xFF
		}
	case FormatBGRA5551, FormatBGRX5551:
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint16(data[i*2:])
			out[i*4+0] = expand5(uint8(v >> 10 & 0x1F))
			out[i*4+1] = expand5(uint8(v >> 5 & 0x1F))
			out[i*4+2] = expand5(uint8(v & 0x1F))
			out[i*4+3] = 0xFF
			if f == FormatBGRA5551 && v>>15 == 0 {
				out[i*4+3] = 0
			}
		}
	case FormatBGRA4444:
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint16(data[i*2:])
			out[i*4+0] = expand4(uint8(v >> 8 & 0xF))
			out[i*4+1] = expand4(uint8(v >> 4 & 0xF))
			out[i*4+2] = expand4(uint8(v & 0xF))
			out[i*4+3] = expand4(uint8(v >> 12 & 0xF))
		}
	case FormatI8:
		for i := 0; i < n; i++ {
			v := data[i]
			out[i*4+0], out[i*4+1], out[i*4+2], out[i*4+3] = v, v, v, 0xFF
		}
	case FormatIA88:
		for i := 0; i < n; i++ {
			v := data[i*2]
			out[i*4+0], out[i*4+1], out[i*4+2], out[i*4+3] = v, v, v, data[i*2+1]
		}
	case FormatA8:
		for i := 0; i < n; i++ {
			out[i*4+3] = data[i]
		}
	case FormatR8:
		for i := 0; i < n; i++ {
			out[i*4+0] = data[i]
			out[i*4+3] = 0xFF
		}
	case FormatUV88:
		for i := 0; i < n; i++ {
			out[i*4+0] = data[i*2+0]
			out[i*4+1] = data[i*2+1]
			out[i*4+3] = 0xFF
		}
	case FormatRGBA16161616:
		for i := 0; i < n*4; i++ {
			out[i] = uint8(binary.LittleEndian.Uint16(data[i*2:]) >> 8)
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedConversion, "decode %s", f)
	}
	return out, nil
}

// encodeFromRGBA converts an RGBA8888 buffer into stored-format bytes.
func encodeFromRGBA(f ImageFormat, rgba []byte, w, h int) ([]byte, error) {
	if want := w * h * 4; len(rgba) < want {
		return nil, errors.Errorf("vtf: RGBA8888 data truncated: %d bytes, want %d", len(rgba), want)
	}

	switch f {
	case FormatDXT1, FormatDXT1OneBitAlpha:
		return encodeDXT1(rgba, w, h, f == FormatDXT1OneBitAlpha), nil
	case FormatDXT3:
		return encodeDXT3(rgba, w, h), nil
	case FormatDXT5:
		return encodeDXT5(rgba, w, h), nil
	case FormatEmpty:
		return nil, nil
	}

	n := w * h
	out := make([]byte, f.DataSize(w, h))
	switch f {
	case FormatRGBA8888:
		copy(out, rgba[:n*4])
	case FormatABGR8888:
		for i := 0; i < n; i++ {
			out[i*4+0] = rgba[i*4+3]
			out[i*4+1] = rgba[i*4+2]
			out[i*4+2] = rgba[i*4+1]
			out[i*4+3] = rgba[i*4+0]
		}
	case FormatARGB8888:
		for i := 0; i < n; i++ {
			out[i*4+0] = rgba[i*4+3]
			out[i*4+1] = rgba[i*4+0]
			out[i*4+2] = rgba[i*4+1]
			out[i*4+3] = rgba[i*4+2]
		}
	case FormatBGRA8888, FormatBGRX8888:
		for i := 0; i < n; i++ {
			out[i*4+0] = rgba[i*4+2]
			out[i*4+1] = rgba[i*4+1]
			out[i*4+2] = rgba[i*4+0]
			out[i*4+3] = rgba[i*4+3]
			if f == FormatBGRX8888 {
				out[i*4+3] = 0xFF
			}
		}
	case FormatRGBX8888:
		for i := 0; i < n; i++ {
			copy(out[i*4:], rgba[i*4:i*4+3])
			out[i*4+3] = 0xFF
		}
	case FormatRGB888, FormatBGR888:
		for i := 0; i < n; i++ {
			r, g, b := rgba[i*4+0], rgba[i*4+1], rgba[i*4+2]
			if f == FormatBGR888 {
				r, b = b, r
			}
			out[i*3+0], out[i*3+1], out[i*3+2] = r, g, b
		}
	case FormatRGB888Bluescreen, FormatBGR888Bluescreen:
		for i := 0; i < n; i++ {
			r, g, b := rgba[i*4+0], rgba[i*4+1], rgba[i*4+2]
			if rgba[i*4+3] < 0x80 {
				r, g, b = 0, 0, 0xFF
			} else if r == 0 && g == 0 && b == 0xFF {
				// Keep opaque pure blue distinguishable from the key color.
				b = 0xFE
			}
			if f == FormatBGR888Bluescreen {
				r, b = b, r
			}
			out[i*3+0], out[i*3+1], out[i*3+2] = r, g, b
		}
	case FormatRGB565, FormatBGR565:
		for i := 0; i < n; i++ {
			hi, mid, lo := rgba[i*4+0], rgba[i*4+1], rgba[i*4+2]
			if f == FormatBGR565 {
				hi, lo = lo, hi
			}
			v := uint16(hi>>3)<<11 | uint16(mid>>2)<<5 | uint16(lo>>3)
			binary.LittleEndian.PutUint16(out[i*2:], v)
		}
	case FormatBGRA5551, FormatBGRX5551:
		for i := 0; i < n; i++ {
			v := uint16(rgba[i*4+0]>>3)<<10 | uint16(rgba[i*4+1]>>3)<<5 | uint16(rgba[i*4+2]>>3)
			if f == FormatBGRX5551 || rgba[i*4+3] >= 0x80 {
				v |= 1 << 15
			}
			binary.LittleEndian.PutUint16(out[i*2:], v)
		}
	case FormatBGRA4444:
		for i := 0; i < n; i++ {
			v := uint16(rgba[i*4+3]>>4)<<12 | uint16(rgba[i*4+0]>>4)<<8 |
				uint16(rgba[i*4+1]>>4)<<4 | uint16(rgba[i*4+2]>>4)
			binary.LittleEndian.PutUint16(out[i*2:], v)
		}
	case FormatI8:
		for i := 0; i < n; i++ {
			out[i] = luminance(rgba[i*4+0], rgba[i*4+1], rgba[i*4+2])
		}
	case FormatIA88:
		for i := 0; i < n; i++ {
			out[i*2+0] = luminance(rgba[i*4+0], rgba[i*4+1], rgba[i*4+2])
			out[i*2+1] = rgba[i*4+3]
		}
	case FormatA8:
		for i := 0; i < n; i++ {
			out[i] = rgba[i*4+3]
		}
	case FormatR8:
		for i := 0; i < n; i++ {
			out[i] = rgba[i*4+0]
		}
	case FormatUV88:
		for i := 0; i < n; i++ {
			out[i*2+0] = rgba[i*4+0]
			out[i*2+1] = rgba[i*4+1]
		}
	case FormatRGBA16161616:
		for i := 0; i < n*4; i++ {
			// Widen 8 bits to 16 so 0xFF maps to 0xFFFF.
			binary.LittleEndian.PutUint16(out[i*2:], uint16(rgba[i])*257)
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedConversion, "encode %s", f)
	}
	return out, nil
}

// luminance is the BT.601 integer luma approximation.
func luminance(r, g, b uint8) uint8 {
	return uint8((299*int(r) + 587*int(g) + 114*int(b)) / 1000)
}
