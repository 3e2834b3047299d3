package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chev2/vtfconv/raster"
	"github.com/chev2/vtfconv/vtf"
)

// layerPixels returns a deterministic RGBA8888 buffer, distinct per
// seed, so round trips can verify layer order.
func layerPixels(width, height int, seed byte) []byte {
	pix := make([]byte, width*height*raster.BytesPerPixel)
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = seed
		pix[i+1] = byte(i / 4)
		pix[i+2] = byte(i / 4 >> 8)
		pix[i+3] = 255
	}
	return pix
}

func parseFile(t *testing.T, path string) vtf.Container {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	c, err := vtf.StdCodec{}.ParseContainer(data)
	require.NoError(t, err)
	return c
}

// TestRoundTripLossless verifies that a multi-layer image encoded
// with a lossless format decodes back to the exact same pixel buffers
// in the exact same layer order.
func TestRoundTripLossless(t *testing.T) {
	img := raster.New(32, 16)
	for i := 0; i < 3; i++ {
		require.NoError(t, img.AddLayer("frame", layerPixels(32, 16, byte(10*i+1))))
	}

	cfg := DefaultExportConfig()
	cfg.Format = vtf.FormatRGBA8888
	path := filepath.Join(t.TempDir(), "anim.vtf")

	res, err := Encode(img, cfg, path, vtf.StdCodec{})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	got, err := Decode(path, vtf.StdCodec{})
	require.NoError(t, err)
	assert.Equal(t, 32, got.Width)
	assert.Equal(t, 16, got.Height)
	require.Len(t, got.Layers, 3)
	for i, layer := range got.Layers {
		assert.Equal(t, img.Layers[i].Pix, layer.Pix, "layer %d", i)
	}
	assert.Equal(t, "Layer 001", got.Layers[0].Name)
	assert.Equal(t, "Layer 003", got.Layers[2].Name)
}

func TestRoundTripEnvMap(t *testing.T) {
	img := raster.New(16, 16)
	for i := 0; i < 6; i++ {
		require.NoError(t, img.AddLayer("face", layerPixels(16, 16, byte(40*i))))
	}

	cfg := DefaultExportConfig()
	cfg.Format = vtf.FormatRGBA8888
	cfg.Type = TypeEnvironmentMap
	path := filepath.Join(t.TempDir(), "cube.vtf")

	_, err := Encode(img, cfg, path, vtf.StdCodec{})
	require.NoError(t, err)

	c := parseFile(t, path)
	assert.Equal(t, 6, c.FaceCount())
	assert.Equal(t, 1, c.FrameCount())
	assert.True(t, c.Flags().Has(vtf.FlagEnvMap))

	got, err := Decode(path, vtf.StdCodec{})
	require.NoError(t, err)
	require.Len(t, got.Layers, 6)
	for i, layer := range got.Layers {
		assert.Equal(t, img.Layers[i].Pix, layer.Pix, "face %d", i)
	}
}

// TestEncodeMipPolicy verifies the mip axis follows the policy: a
// full chain when generation is on, a single level when it is off.
func TestEncodeMipPolicy(t *testing.T) {
	img := raster.New(64, 64)
	require.NoError(t, img.AddLayer("base", layerPixels(64, 64, 7)))

	cfg := DefaultExportConfig()
	cfg.Format = vtf.FormatRGBA8888

	withMips := filepath.Join(t.TempDir(), "mips.vtf")
	_, err := Encode(img, cfg, withMips, vtf.StdCodec{})
	require.NoError(t, err)
	assert.Equal(t, 7, parseFile(t, withMips).MipCount())

	cfg.Mipmaps = NoMips()
	without := filepath.Join(t.TempDir(), "nomips.vtf")
	_, err = Encode(img, cfg, without, vtf.StdCodec{})
	require.NoError(t, err)
	c := parseFile(t, without)
	assert.Equal(t, 1, c.MipCount())
	assert.True(t, c.Flags().Has(vtf.FlagNoMip))
}

func TestEncodeThumbnailToggle(t *testing.T) {
	img := raster.New(64, 32)
	require.NoError(t, img.AddLayer("base", layerPixels(64, 32, 3)))

	cfg := DefaultExportConfig()
	cfg.Format = vtf.FormatRGBA8888

	with := filepath.Join(t.TempDir(), "thumb.vtf")
	_, err := Encode(img, cfg, with, vtf.StdCodec{})
	require.NoError(t, err)
	c := parseFile(t, with)
	format, tw, th, ok := c.Thumbnail()
	require.True(t, ok)
	assert.Equal(t, vtf.FormatDXT1, format)
	assert.Equal(t, 16, tw)
	assert.Equal(t, 8, th)

	cfg.ThumbnailEnabled = false
	without := filepath.Join(t.TempDir(), "nothumb.vtf")
	_, err = Encode(img, cfg, without, vtf.StdCodec{})
	require.NoError(t, err)
	assert.False(t, parseFile(t, without).HasThumbnail())
}

// TestEncodeResizesNonPow2 verifies the whole pipeline handles a
// non-power-of-two source by resampling to the rounded dimensions.
func TestEncodeResizesNonPow2(t *testing.T) {
	img := raster.New(100, 130)
	require.NoError(t, img.AddLayer("base", layerPixels(100, 130, 9)))

	cfg := DefaultExportConfig()
	cfg.Format = vtf.FormatRGBA8888
	path := filepath.Join(t.TempDir(), "npot.vtf")

	_, err := Encode(img, cfg, path, vtf.StdCodec{})
	require.NoError(t, err)

	got, err := Decode(path, vtf.StdCodec{})
	require.NoError(t, err)
	assert.Equal(t, 128, got.Width)
	assert.Equal(t, 256, got.Height)
}

func TestEncodeBumpScaleAndReflectivity(t *testing.T) {
	img := raster.New(8, 8)
	pix := make([]byte, 8*8*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = 255
		pix[i+3] = 255
	}
	require.NoError(t, img.AddLayer("red", pix))

	cfg := DefaultExportConfig()
	cfg.Format = vtf.FormatRGBA8888
	cfg.BumpScale = 2.5
	path := filepath.Join(t.TempDir(), "red.vtf")

	_, err := Encode(img, cfg, path, vtf.StdCodec{})
	require.NoError(t, err)

	c := parseFile(t, path)
	assert.InDelta(t, 2.5, c.BumpScale(), 1e-6)
	refl := c.Reflectivity()
	assert.InDelta(t, 1.0, refl[0], 1e-3)
	assert.InDelta(t, 0.0, refl[1], 1e-3)
	assert.InDelta(t, 0.0, refl[2], 1e-3)
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "absent.vtf"), vtf.StdCodec{})
	var parse *ParseError
	assert.ErrorAs(t, err, &parse)
}

func TestDecodeMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.vtf")
	require.NoError(t, os.WriteFile(path, []byte("not a texture"), 0o644))

	_, err := Decode(path, vtf.StdCodec{})
	var parse *ParseError
	require.ErrorAs(t, err, &parse)
	assert.Equal(t, path, parse.Path)
}
