package convert

import (
	"github.com/chev2/vtfconv/raster"
	"github.com/chev2/vtfconv/vtf"
)

// runPlan executes the derived-asset sequence against a freshly built
// container. Step order matters: later steps read state written by
// earlier ones, and the transparency pass must see the completed
// pixel data.
//
//  1. Base pixel assignment for every (frame, face) cell at mip 0,
//     always as RGBA8888; per-cell failures warn and continue.
//  2. Mip pyramid (or a fixed mip count of 1).
//  3. Thumbnail synthesis or explicit removal.
//  4. Reflectivity, if requested.
//  5. Transparency flags, always.
//  6. Bump scale.
//  7. Final bake format.
//
// Failures in steps 2-7 are fatal and abort the export.
func runPlan(c vtf.Container, img *raster.Image, cfg ExportConfig, p encodePlan, codec vtf.Codec) (*Result, error) {
	res := &Result{}

	for i, layer := range img.Layers {
		frame, face := p.shape.cell(i)
		err := c.SetPixels(layer.Pix, vtf.FormatRGBA8888, img.Width, img.Height,
			vtf.FilterDefault, 0, frame, face, 0)
		if err != nil {
			res.Warnings = append(res.Warnings, PixelWarning{Frame: frame, Face: face, Err: err})
		}
	}

	if cfg.Mipmaps.Generate() {
		count := codec.RecommendedMipCount(cfg.Format, c.Width(), c.Height())
		if err := c.SetMipCount(count); err != nil {
			return nil, &DerivedAssetError{Step: "mip allocation", Err: err}
		}
		if err := c.ComputeMips(cfg.Mipmaps.Filter()); err != nil {
			return nil, &DerivedAssetError{Step: "mip generation", Err: err}
		}
	} else if err := c.SetMipCount(1); err != nil {
		return nil, &DerivedAssetError{Step: "mip allocation", Err: err}
	}

	if cfg.ThumbnailEnabled {
		if err := c.ComputeThumbnail(vtf.FilterDefault); err != nil {
			return nil, &DerivedAssetError{Step: "thumbnail", Err: err}
		}
	} else {
		c.RemoveThumbnail()
	}

	if cfg.RecomputeReflectivity {
		if err := c.ComputeReflectivity(); err != nil {
			return nil, &DerivedAssetError{Step: "reflectivity", Err: err}
		}
	}

	if err := c.ComputeTransparencyFlags(); err != nil {
		return nil, &DerivedAssetError{Step: "transparency flags", Err: err}
	}

	c.SetBumpScale(float32(cfg.BumpScale))

	if err := c.SetFormat(cfg.Format, vtf.FilterDefault); err != nil {
		return nil, &DerivedAssetError{Step: "format conversion", Err: err}
	}

	return res, nil
}
