package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidPix(w, h int, r, g, b, a byte) []byte {
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
	return pix
}

// TestAddLayer validates buffer-size enforcement when layers are appended.
func TestAddLayer(t *testing.T) {
	img := New(4, 4)

	err := img.AddLayer("Layer 001", solidPix(4, 4, 255, 0, 0, 255))
	require.NoError(t, err)
	assert.Len(t, img.Layers, 1)

	err = img.AddLayer("bad", make([]byte, 7))
	assert.Error(t, err, "mismatched buffer should be rejected")
	assert.Len(t, img.Layers, 1)
}

// TestCheckUniform validates detection of a mis-sized layer.
func TestCheckUniform(t *testing.T) {
	img := New(2, 2)
	require.NoError(t, img.AddLayer("a", solidPix(2, 2, 0, 0, 0, 255)))

	idx, err := img.CheckUniform()
	assert.NoError(t, err)
	assert.Equal(t, -1, idx)

	// Corrupt the second layer directly to bypass AddLayer's check.
	img.Layers = append(img.Layers, Layer{Name: "b", Pix: make([]byte, 3)})
	idx, err = img.CheckUniform()
	assert.Error(t, err)
	assert.Equal(t, 1, idx)
}

// TestLayerImageRoundTrip validates the stdlib image bridge.
func TestLayerImageRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 80), G: uint8(y * 100), B: 7, A: 255})
		}
	}

	layer := LayerFromImage("Layer 001", src)
	require.Len(t, layer.Pix, 3*2*4)

	back := layer.ToRGBA(3, 2)
	assert.Equal(t, src.Pix, back.Pix)
}

// TestLayerFromImageNonRGBA validates conversion from a non-RGBA source.
func TestLayerFromImageNonRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}

	layer := LayerFromImage("Layer 001", src)
	require.Len(t, layer.Pix, 2*2*4)
	assert.Equal(t, byte(255), layer.Pix[0])
	assert.Equal(t, byte(255), layer.Pix[3])
}
