package convert

import (
	"fmt"
	"os"

	"github.com/chev2/vtfconv/raster"
	"github.com/chev2/vtfconv/vtf"
)

// Decode parses the container at path and extracts one layer per
// (frame, face) pair at mip 0, slice 0, decoded to RGBA8888.
//
// Layers are appended in frame-major, face-minor order: the outer
// loop walks frames, the inner loop walks faces. This ordering is a
// hard contract with Encode; changing it would reassign which editor
// layer corresponds to which container cell.
//
// Arguments:
//   - path: Source file path.
//   - codec: The pixel codec to parse with.
//
// Returns:
//   - *raster.Image: The ordered layer sequence, or nil on error.
//   - error: A ParseError if the bytes are malformed or unreadable.
func Decode(path string, codec vtf.Codec) (*raster.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	c, err := codec.ParseContainer(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	img := raster.New(c.Width(), c.Height())
	layerNumber := 0
	for frame := 0; frame < c.FrameCount(); frame++ {
		for face := 0; face < c.FaceCount(); face++ {
			pix, err := c.GetPixels(0, frame, face, 0)
			if err != nil {
				return nil, &ParseError{Path: path, Err: err}
			}
			layerNumber++
			name := fmt.Sprintf("Layer %03d", layerNumber)
			if err := img.AddLayer(name, pix); err != nil {
				return nil, &ParseError{Path: path, Err: err}
			}
		}
	}
	return img, nil
}
