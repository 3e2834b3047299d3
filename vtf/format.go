// Package vtf - Valve Texture Format vocabulary and reference codec.
//
// The package defines the VTF image format table, texture flags and
// resize enums, the narrow Codec/Container interfaces consumed by the
// conversion pipelines, and StdCodec, a reference implementation that
// reads and writes VTF 7.0-7.6 containers for the uncompressed packed
// formats and the DXT block family.
package vtf

// ImageFormat identifies one of the fixed VTF pixel or block formats.
//
// Values 0-29 match the Valve engine enum so containers written here
// interoperate with existing tooling; the extended tail is numbered
// sequentially after it.
type ImageFormat int32

const (
	FormatRGBA8888 ImageFormat = iota
	FormatABGR8888
	FormatRGB888
	FormatBGR888
	FormatRGB565
	FormatI8
	FormatIA88
	FormatP8
	FormatA8
	FormatRGB888Bluescreen
	FormatBGR888Bluescreen
	FormatARGB8888
	FormatBGRA8888
	FormatDXT1
	FormatDXT3
	FormatDXT5
	FormatBGRX8888
	FormatBGR565
	FormatBGRX5551
	FormatBGRA4444
	FormatDXT1OneBitAlpha
	FormatBGRA5551
	FormatUV88
	FormatUVWQ8888
	FormatRGBA16161616F
	FormatRGBA16161616
	FormatUVLX8888
	FormatR32F
	FormatRGB323232F
	FormatRGBA32323232F
	FormatRG1616F
	FormatRG3232F
	FormatRGBX8888
	FormatEmpty
	FormatATI2N
	FormatATI1N
	FormatRGBA1010102
	FormatBGRA1010102
	FormatR16F
	FormatConsoleBGRX8888Linear
	FormatConsoleRGBA8888Linear
	FormatConsoleABGR8888Linear
	FormatConsoleARGB8888Linear
	FormatConsoleBGRA8888Linear
	FormatConsoleRGB888Linear
	FormatConsoleBGR888Linear
	FormatConsoleBGRX5551Linear
	FormatConsoleI8Linear
	FormatConsoleRGBA16161616Linear
	FormatConsoleBGRX8888LE
	FormatConsoleBGRA8888LE
	FormatR8
	FormatBC7
	FormatBC6H

	formatCount
)

// formatNone is the on-disk sentinel for "no image data", used by the
// low-res format field when a container carries no thumbnail.
const formatNone int32 = -1

var formatNames = map[ImageFormat]string{
	FormatRGBA8888:                  "RGBA8888",
	FormatABGR8888:                  "ABGR8888",
	FormatRGB888:                    "RGB888",
	FormatBGR888:                    "BGR888",
	FormatRGB565:                    "RGB565",
	FormatI8:                        "I8",
	FormatIA88:                      "IA88",
	FormatP8:                        "P8",
	FormatA8:                        "A8",
	FormatRGB888Bluescreen:          "RGB888_BLUESCREEN",
	FormatBGR888Bluescreen:          "BGR888_BLUESCREEN",
	FormatARGB8888:                  "ARGB8888",
	FormatBGRA8888:                  "BGRA8888",
	FormatDXT1:                      "DXT1",
	FormatDXT3:                      "DXT3",
	FormatDXT5:                      "DXT5",
	FormatBGRX8888:                  "BGRX8888",
	FormatBGR565:                    "BGR565",
	FormatBGRX5551:                  "BGRX5551",
	FormatBGRA4444:                  "BGRA4444",
	FormatDXT1OneBitAlpha:           "DXT1_ONE_BIT_ALPHA",
	FormatBGRA5551:                  "BGRA5551",
	FormatUV88:                      "UV88",
	FormatUVWQ8888:                  "UVWQ8888",
	FormatRGBA16161616F:             "RGBA16161616F",
	FormatRGBA16161616:              "RGBA16161616",
	FormatUVLX8888:                  "UVLX8888",
	FormatR32F:                      "R32F",
	FormatRGB323232F:                "RGB323232F",
	FormatRGBA32323232F:             "RGBA32323232F",
	FormatRG1616F:                   "RG1616F",
	FormatRG3232F:                   "RG3232F",
	FormatRGBX8888:                  "RGBX8888",
	FormatEmpty:                     "EMPTY",
	FormatATI2N:                     "ATI2N",
	FormatATI1N:                     "ATI1N",
	FormatRGBA1010102:               "RGBA1010102",
	FormatBGRA1010102:               "BGRA1010102",
	FormatR16F:                      "R16F",
	FormatConsoleBGRX8888Linear:     "CONSOLE_BGRX8888_LINEAR",
	FormatConsoleRGBA8888Linear:     "CONSOLE_RGBA8888_LINEAR",
	FormatConsoleABGR8888Linear:     "CONSOLE_ABGR8888_LINEAR",
	FormatConsoleARGB8888Linear:     "CONSOLE_ARGB8888_LINEAR",
	FormatConsoleBGRA8888Linear:     "CONSOLE_BGRA8888_LINEAR",
	FormatConsoleRGB888Linear:       "CONSOLE_RGB888_LINEAR",
	FormatConsoleBGR888Linear:       "CONSOLE_BGR888_LINEAR",
	FormatConsoleBGRX5551Linear:     "CONSOLE_BGRX5551_LINEAR",
	FormatConsoleI8Linear:           "CONSOLE_I8_LINEAR",
	FormatConsoleRGBA16161616Linear: "CONSOLE_RGBA16161616_LINEAR",
	FormatConsoleBGRX8888LE:         "CONSOLE_BGRX8888_LE",
	FormatConsoleBGRA8888LE:         "CONSOLE_BGRA8888_LE",
	FormatR8:                        "R8",
	FormatBC7:                       "BC7",
	FormatBC6H:                      "BC6H",
}

// String returns the canonical VTF format name, e.g. "DXT5".
func (f ImageFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "UNKNOWN"
}

// ImageFormatFromString resolves a canonical format name.
//
// Returns:
//   - ImageFormat: The matching format.
//   - bool: Whether the name was recognized.
func ImageFormatFromString(name string) (ImageFormat, bool) {
	for f, n := range formatNames {
		if n == name {
			return f, true
		}
	}
	return FormatEmpty, false
}

// Valid reports whether f is a defined ImageFormat value.
func (f ImageFormat) Valid() bool {
	return f >= 0 && f < formatCount
}

// BitsPerPixel returns the storage cost of one pixel in bits. For
// block-compressed formats this is the amortized per-pixel cost.
func (f ImageFormat) BitsPerPixel() int {
	switch f {
	case FormatRGBA8888, FormatABGR8888, FormatARGB8888, FormatBGRA8888,
		FormatBGRX8888, FormatRGBX8888, FormatUVWQ8888, FormatUVLX8888,
		FormatR32F, FormatRG1616F, FormatRGBA1010102, FormatBGRA1010102,
		FormatConsoleBGRX8888Linear, FormatConsoleRGBA8888Linear,
		FormatConsoleABGR8888Linear, FormatConsoleARGB8888Linear,
		FormatConsoleBGRA8888Linear, FormatConsoleBGRX8888LE,
		FormatConsoleBGRA8888LE:
		return 32
	case FormatRGB888, FormatBGR888, FormatRGB888Bluescreen,
		FormatBGR888Bluescreen, FormatConsoleRGB888Linear,
		FormatConsoleBGR888Linear:
		return 24
	case FormatRGB565, FormatBGR565, FormatIA88, FormatBGRX5551,
		FormatBGRA4444, FormatBGRA5551, FormatUV88, FormatR16F,
		FormatConsoleBGRX5551Linear:
		return 16
	case FormatI8, FormatP8, FormatA8, FormatR8, FormatConsoleI8Linear:
		return 8
	case FormatRGBA16161616F, FormatRGBA16161616, FormatRG3232F,
		FormatConsoleRGBA16161616Linear:
		return 64
	case FormatRGB323232F:
		return 96
	case FormatRGBA32323232F:
		return 128
	case FormatDXT1, FormatDXT1OneBitAlpha, FormatATI1N:
		return 4
	case FormatDXT3, FormatDXT5, FormatATI2N, FormatBC7, FormatBC6H:
		return 8
	case FormatEmpty:
		return 0
	}
	return 0
}

// Compressed reports whether f is a block-compressed format.
func (f ImageFormat) Compressed() bool {
	switch f {
	case FormatDXT1, FormatDXT1OneBitAlpha, FormatDXT3, FormatDXT5,
		FormatATI1N, FormatATI2N, FormatBC7, FormatBC6H:
		return true
	}
	return false
}

// AlphaBits returns the number of alpha bits f can represent per
// pixel. Block formats report their effective alpha precision.
func (f ImageFormat) AlphaBits() int {
	switch f {
	case FormatRGBA8888, FormatABGR8888, FormatARGB8888, FormatBGRA8888,
		FormatA8, FormatIA88, FormatDXT5, FormatUVWQ8888, FormatBC7,
		FormatConsoleRGBA8888Linear, FormatConsoleABGR8888Linear,
		FormatConsoleARGB8888Linear, FormatConsoleBGRA8888Linear,
		FormatConsoleBGRA8888LE:
		return 8
	case FormatRGBA16161616, FormatRGBA16161616F,
		FormatConsoleRGBA16161616Linear:
		return 16
	case FormatRGBA32323232F:
		return 32
	case FormatBGRA4444, FormatDXT3:
		return 4
	case FormatBGRA5551, FormatDXT1OneBitAlpha,
		FormatRGB888Bluescreen, FormatBGR888Bluescreen:
		return 1
	case FormatRGBA1010102, FormatBGRA1010102:
		return 2
	}
	return 0
}

// DataSize returns the number of bytes needed to store a width x
// height image in this format. Block formats round dimensions up to
// whole 4x4 blocks.
func (f ImageFormat) DataSize(width, height int) int {
	if f == FormatEmpty {
		return 0
	}
	if f.Compressed() {
		blocksX := (width + 3) / 4
		blocksY := (height + 3) / 4
		return blocksX * blocksY * 16 * f.BitsPerPixel() / 8
	}
	return width * height * f.BitsPerPixel() / 8
}

// SupportedAtVersion reports whether the format is legal in a VTF of
// the given minor version (7.minor). The extended console and BC
// formats only exist in 7.6 containers; everything in the Valve enum
// is accepted at any 7.x version.
func (f ImageFormat) SupportedAtVersion(minor int) bool {
	if !f.Valid() {
		return false
	}
	if f >= FormatRG1616F {
		return minor >= 6
	}
	return minor >= 0 && minor <= 6
}
