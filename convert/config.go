package convert

import (
	"github.com/pkg/errors"

	"github.com/chev2/vtfconv/vtf"
)

// ImageType selects how layers map onto the container's frame and
// face axes. It is a closed variant; the shape assigner is the only
// component that branches on it.
type ImageType int

const (
	// TypeStandard maps each layer to an animation frame.
	TypeStandard ImageType = iota
	// TypeEnvironmentMap maps each layer to a cube/sphere face.
	TypeEnvironmentMap
	// TypeVolumetric is recognized but currently mapped like
	// TypeStandard; depth-slice assignment is not implemented.
	TypeVolumetric
)

// String returns the editor-facing name of the image type.
func (t ImageType) String() string {
	switch t {
	case TypeStandard:
		return "standard"
	case TypeEnvironmentMap:
		return "environment map"
	case TypeVolumetric:
		return "volumetric"
	}
	return "unknown"
}

// MipPolicy decides whether a mip pyramid is generated and with which
// filter.
type MipPolicy struct {
	generate bool
	filter   vtf.ResizeFilter
}

// NoMips disables mip generation; the container keeps exactly one
// level.
func NoMips() MipPolicy {
	return MipPolicy{}
}

// GenerateMips enables mip generation with the given filter.
func GenerateMips(filter vtf.ResizeFilter) MipPolicy {
	return MipPolicy{generate: true, filter: filter}
}

// Generate reports whether a mip pyramid will be built.
func (p MipPolicy) Generate() bool { return p.generate }

// Filter returns the mip resampling filter.
func (p MipPolicy) Filter() vtf.ResizeFilter { return p.filter }

// ExportConfig is the immutable export configuration. Construct it
// once, validate it, and pass it by value through the pipeline.
type ExportConfig struct {
	// Version is the VTF minor version, 0 through 6 (7.0-7.6).
	Version int
	// Format is the target pixel or block format.
	Format vtf.ImageFormat
	// Type selects the frame-vs-face mapping.
	Type ImageType
	// Mipmaps decides mip pyramid generation.
	Mipmaps MipPolicy
	// ResizeMethod is applied when width or height is not a power of
	// two.
	ResizeMethod vtf.ResizeMethod
	// ThumbnailEnabled writes a low-res thumbnail when set; otherwise
	// the container carries none.
	ThumbnailEnabled bool
	// RecomputeReflectivity recomputes the reflectivity vector from
	// the pixel data.
	RecomputeReflectivity bool
	// MergeLayers is recognized for forward compatibility but not
	// implemented; Validate rejects it when set.
	MergeLayers bool
	// BumpScale is the stored bump-map scale, 0 through 10.
	BumpScale float64
}

// DefaultExportConfig mirrors the editor dialog defaults: version
// 7.4, DXT1, standard type, Kaiser mips, round-up resizing, thumbnail
// and reflectivity on, bump scale 1.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Version:               4,
		Format:                vtf.FormatDXT1,
		Type:                  TypeStandard,
		Mipmaps:               GenerateMips(vtf.FilterKaiser),
		ResizeMethod:          vtf.ResizeUpPow2,
		ThumbnailEnabled:      true,
		RecomputeReflectivity: true,
		BumpScale:             1,
	}
}

// Validate checks the configuration's own invariants. Structural
// checks against a concrete image happen separately in the pre-encode
// validator.
func (c ExportConfig) Validate() error {
	if c.Version < 0 || c.Version > 6 {
		return errors.Errorf("convert: version 7.%d out of range (7.0-7.6)", c.Version)
	}
	if !c.Format.Valid() {
		return errors.Errorf("convert: invalid image format %d", int32(c.Format))
	}
	switch c.Type {
	case TypeStandard, TypeEnvironmentMap, TypeVolumetric:
	default:
		return errors.Errorf("convert: unknown image type %d", int(c.Type))
	}
	if c.BumpScale < 0 || c.BumpScale > 10 {
		return errors.Errorf("convert: bump scale %g out of range [0,10]", c.BumpScale)
	}
	if c.MergeLayers {
		return errors.New("convert: merge layers is not implemented")
	}
	return nil
}
