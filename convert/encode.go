package convert

import (
	"os"

	"github.com/chev2/vtfconv/raster"
	"github.com/chev2/vtfconv/vtf"
)

// Encode validates the layered image against the configuration,
// builds a container through the codec, runs the derived-asset plan,
// and writes the container bytes to path.
//
// Validation happens before the destination is touched, so a failed
// export never leaves a partially written file. Per-cell pixel
// failures do not abort the export; they are accumulated in the
// returned Result.
//
// Arguments:
//   - img: The ordered layer sequence to export.
//   - cfg: The export configuration.
//   - path: Destination file path.
//   - codec: The pixel codec to build and serialize with.
//
// Returns:
//   - *Result: Warnings collected during the export.
//   - error: A fatal validation, derived-asset or serialization error.
func Encode(img *raster.Image, cfg ExportConfig, path string, codec vtf.Codec) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := validateForEncode(img, cfg, codec)
	if err != nil {
		return nil, err
	}

	flags := vtf.FlagSRGB
	c, err := codec.BuildContainer(vtf.FormatRGBA8888, p.targetW, p.targetH, vtf.CreationOptions{
		Minor:        cfg.Version,
		Flags:        flags,
		ResizeMethod: cfg.ResizeMethod,
	})
	if err != nil {
		return nil, &DerivedAssetError{Step: "container construction", Err: err}
	}

	if p.shape.cube {
		err = c.SetFaceCount(true, p.shape.sphere)
	} else {
		err = c.SetFrameCount(p.shape.frames)
	}
	if err != nil {
		return nil, &DerivedAssetError{Step: "shape assignment", Err: err}
	}

	res, err := runPlan(c, img, cfg, p, codec)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, &SerializationError{Path: path, Err: err}
	}
	defer f.Close()

	if err := c.Serialize(f); err != nil {
		// Do not leave a partially written container behind.
		f.Close()
		os.Remove(path)
		return nil, &SerializationError{Path: path, Err: err}
	}
	return res, nil
}
