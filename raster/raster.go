// Package raster - layered RGBA image model shared by the VTF
// conversion pipelines.
package raster

import (
	"image"
	"image/draw"

	"github.com/pkg/errors"
)

// BytesPerPixel is the size of one RGBA8888 pixel.
const BytesPerPixel = 4

// Layer represents one editor layer. Its position in the parent
// Image's Layers slice is significant: the encoder maps it onto a
// frame or face of the container by position.
type Layer struct {
	// Name is the editor-facing layer name.
	Name string
	// Pix is the RGBA8888 pixel buffer, row-major, 4 bytes per pixel.
	Pix []byte
}

// Image represents an ordered sequence of equally-sized layers. It is
// owned by a single conversion call and discarded afterwards.
type Image struct {
	// The width shared by every layer, in pixels.
	Width int
	// The height shared by every layer, in pixels.
	Height int
	// The ordered layer sequence, bottom layer first.
	Layers []Layer
}

// New creates an empty layered image with the given dimensions.
//
// Arguments:
//   - width: Layer width in pixels.
//   - height: Layer height in pixels.
//
// Returns:
//   - *Image: The empty image.
func New(width, height int) *Image {
	return &Image{Width: width, Height: height}
}

// AddLayer appends a layer to the image.
//
// Arguments:
//   - name: Editor-facing layer name.
//   - pix: RGBA8888 pixel buffer of exactly width*height*4 bytes.
//
// Returns:
//   - error: An error if the buffer size does not match the image dimensions.
func (m *Image) AddLayer(name string, pix []byte) error {
	if want := m.Width * m.Height * BytesPerPixel; len(pix) != want {
		return errors.Errorf("raster: layer %q has %d bytes, want %d", name, len(pix), want)
	}
	m.Layers = append(m.Layers, Layer{Name: name, Pix: pix})
	return nil
}

// CheckUniform verifies that every layer's pixel buffer matches the
// image dimensions.
//
// Returns:
//   - int: Index of the first offending layer, or -1.
//   - error: An error describing the mismatch, or nil.
func (m *Image) CheckUniform() (int, error) {
	want := m.Width * m.Height * BytesPerPixel
	for i, layer := range m.Layers {
		if len(layer.Pix) != want {
			return i, errors.Errorf("raster: layer %d (%q) has %d bytes, want %d",
				i, layer.Name, len(layer.Pix), want)
		}
	}
	return -1, nil
}

// ToRGBA copies the layer into a stdlib image for editor interop.
//
// Arguments:
//   - width: Layer width in pixels.
//   - height: Layer height in pixels.
//
// Returns:
//   - *image.RGBA: The layer as a stdlib RGBA image.
func (l Layer) ToRGBA(width, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(out.Pix, l.Pix)
	return out
}

// LayerFromImage converts any stdlib image into a Layer.
//
// Arguments:
//   - name: Editor-facing layer name.
//   - src: Source image; drawn over opaque black if not already RGBA.
//
// Returns:
//   - Layer: The converted layer.
func LayerFromImage(name string, src image.Image) Layer {
	b := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) || rgba.Stride != BytesPerPixel*b.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	}
	pix := make([]byte, len(rgba.Pix))
	copy(pix, rgba.Pix)
	return Layer{Name: name, Pix: pix}
}
