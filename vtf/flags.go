package vtf

// TextureFlags is the container's flag bitset. Values match the VTF
// header's flags field.
type TextureFlags uint32

const (
	FlagPointSample       TextureFlags = 1 << 0
	FlagTrilinear         TextureFlags = 1 << 1
	FlagClampS            TextureFlags = 1 << 2
	FlagClampT            TextureFlags = 1 << 3
	FlagAnisotropic       TextureFlags = 1 << 4
	FlagHintDXT5          TextureFlags = 1 << 5
	FlagSRGB              TextureFlags = 1 << 6
	FlagNormal            TextureFlags = 1 << 7
	FlagNoMip             TextureFlags = 1 << 8
	FlagNoLOD             TextureFlags = 1 << 9
	FlagMinMip            TextureFlags = 1 << 10
	FlagProcedural        TextureFlags = 1 << 11
	FlagOneBitAlpha       TextureFlags = 1 << 12
	FlagEightBitAlpha     TextureFlags = 1 << 13
	FlagEnvMap            TextureFlags = 1 << 14
	FlagRenderTarget      TextureFlags = 1 << 15
	FlagDepthRenderTarget TextureFlags = 1 << 16
	FlagNoDebugOverride   TextureFlags = 1 << 17
	FlagSingleCopy        TextureFlags = 1 << 18
	FlagNoDepthBuffer     TextureFlags = 1 << 23
	FlagClampU            TextureFlags = 1 << 25
	FlagVertexTexture     TextureFlags = 1 << 26
	FlagSSBump            TextureFlags = 1 << 27
	FlagBorder            TextureFlags = 1 << 29
)

// Has reports whether every bit in mask is set.
func (f TextureFlags) Has(mask TextureFlags) bool {
	return f&mask == mask
}
