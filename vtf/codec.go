package vtf

import "io"

// CreationOptions carries construction-time parameters for
// Codec.BuildContainer.
type CreationOptions struct {
	// Minor is the VTF minor version (7.Minor), 0 through 6.
	Minor int
	// Flags is the initial texture flag bitset.
	Flags TextureFlags
	// ResizeMethod is applied to non-power-of-two build dimensions.
	ResizeMethod ResizeMethod
}

// Codec is the narrow boundary to a pixel codec. The conversion
// pipelines depend only on this interface and on Container, so any
// concrete codec can be plugged in; StdCodec is the reference
// implementation shipped with this module.
type Codec interface {
	// ParseContainer parses container bytes into a Container.
	ParseContainer(data []byte) (Container, error)
	// BuildContainer creates an empty container of the given working
	// format and dimensions.
	BuildContainer(format ImageFormat, width, height int, opts CreationOptions) (Container, error)
	// SupportsFormat reports whether the format is legal at the given
	// minor version for this codec.
	SupportsFormat(minor int, format ImageFormat) bool
	// RecommendedMipCount returns the full mip chain length for the
	// given base dimensions.
	RecommendedMipCount(format ImageFormat, width, height int) int
}

// Container is the codec-side view of a texture archive under
// construction or inspection. Pixel data crosses the boundary as
// RGBA8888 regardless of the stored format.
type Container interface {
	Width() int
	Height() int
	Depth() int
	FrameCount() int
	FaceCount() int
	MipCount() int
	Format() ImageFormat
	Flags() TextureFlags
	AddFlags(flags TextureFlags)
	Version() (major, minor int)
	Reflectivity() [3]float32
	BumpScale() float32
	SetBumpScale(scale float32)

	// SetFrameCount sizes the animation axis.
	SetFrameCount(frames int) error
	// SetFaceCount switches the container between the single-face,
	// six-face cube and seven-face cube+sphere layouts.
	SetFaceCount(cube, sphere bool) error
	// SetMipCount sizes the mip axis; mip 0 data is preserved.
	SetMipCount(mips int) error

	// GetPixels returns the cell decoded to RGBA8888. Unassigned cells
	// decode as zeroed pixels.
	GetPixels(mip, frame, face, slice int) ([]byte, error)
	// SetPixels converts buf from src format to the internal RGBA8888
	// representation and stores it in the cell, resampling with filter
	// if the buffer dimensions differ from the cell's.
	SetPixels(buf []byte, src ImageFormat, width, height int, filter ResizeFilter, mip, frame, face, slice int) error

	// ComputeMips synthesizes every mip level below 0 from the level
	// above it.
	ComputeMips(filter ResizeFilter) error
	// ComputeThumbnail synthesizes the low-res thumbnail from mip 0.
	ComputeThumbnail(filter ResizeFilter) error
	// RemoveThumbnail removes the thumbnail entirely.
	RemoveThumbnail()
	// ComputeReflectivity averages the linearized base pixel data into
	// the reflectivity vector.
	ComputeReflectivity() error
	// ComputeTransparencyFlags derives the one-bit/eight-bit alpha
	// flags from the pixel data and the target format.
	ComputeTransparencyFlags() error
	// SetFormat records the format the pixel data is baked to on
	// serialization.
	SetFormat(format ImageFormat, filter ResizeFilter) error

	HasThumbnail() bool
	// Thumbnail reports the thumbnail's format and dimensions.
	Thumbnail() (format ImageFormat, width, height int, ok bool)

	// Serialize writes the container bytes to w.
	Serialize(w io.Writer) error
}

// StdCodec is the reference VTF codec.
type StdCodec struct{}

// ParseContainer parses VTF 7.0-7.6 container bytes.
func (StdCodec) ParseContainer(data []byte) (Container, error) {
	return parseContainer(data)
}

// BuildContainer creates an empty container. Non-power-of-two
// dimensions are rounded with the creation options' resize method.
func (StdCodec) BuildContainer(format ImageFormat, width, height int, opts CreationOptions) (Container, error) {
	return newContainer(format, width, height, opts)
}

// SupportsFormat applies the version gate from the format table.
func (StdCodec) SupportsFormat(minor int, format ImageFormat) bool {
	return minor >= 0 && minor <= 6 && format.SupportedAtVersion(minor)
}

// RecommendedMipCount returns the full mip chain length.
func (StdCodec) RecommendedMipCount(format ImageFormat, width, height int) int {
	return RecommendedMipCount(format, width, height)
}
