package convert

import (
	"github.com/pkg/errors"

	"github.com/chev2/vtfconv/raster"
	"github.com/chev2/vtfconv/vtf"
)

func errInvalidImageDims(w, h int) error {
	return errors.Errorf("invalid image dimensions %dx%d", w, h)
}

// encodePlan carries the structural decisions made before any codec
// work starts: the shape the layers form and the power-of-two target
// dimensions.
type encodePlan struct {
	shape   shape
	targetW int
	targetH int
}

// validateForEncode enforces every structural invariant up front so a
// failed export never touches the destination: uniform layer
// dimensions, a shape the layer count can fill, a format legal at the
// target version, and power-of-two target dimensions.
func validateForEncode(img *raster.Image, cfg ExportConfig, codec vtf.Codec) (encodePlan, error) {
	s, err := assignShape(cfg.Type, len(img.Layers))
	if err != nil {
		return encodePlan{}, err
	}

	if img.Width < 1 || img.Height < 1 {
		return encodePlan{}, &DimensionMismatchError{
			LayerIndex: 0,
			Detail:     errInvalidImageDims(img.Width, img.Height),
		}
	}
	if idx, err := img.CheckUniform(); err != nil {
		return encodePlan{}, &DimensionMismatchError{LayerIndex: idx, Detail: err}
	}

	if !codec.SupportsFormat(cfg.Version, cfg.Format) {
		return encodePlan{}, &UnsupportedFormatError{Format: cfg.Format, Version: cfg.Version}
	}

	p := encodePlan{shape: s, targetW: img.Width, targetH: img.Height}
	if !vtf.IsPow2(p.targetW) {
		p.targetW = cfg.ResizeMethod.Apply(p.targetW)
	}
	if !vtf.IsPow2(p.targetH) {
		p.targetH = cfg.ResizeMethod.Apply(p.targetH)
	}
	return p, nil
}
