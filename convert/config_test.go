package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chev2/vtfconv/vtf"
)

// TestDefaultExportConfig validates the defaults mirror the editor
// dialog.
func TestDefaultExportConfig(t *testing.T) {
	cfg := DefaultExportConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Version)
	assert.Equal(t, vtf.FormatDXT1, cfg.Format)
	assert.Equal(t, TypeStandard, cfg.Type)
	assert.True(t, cfg.Mipmaps.Generate())
	assert.Equal(t, vtf.FilterKaiser, cfg.Mipmaps.Filter())
	assert.True(t, cfg.ThumbnailEnabled)
	assert.True(t, cfg.RecomputeReflectivity)
	assert.InDelta(t, 1.0, cfg.BumpScale, 1e-9)
}

// TestExportConfigValidate validates each rejection rule.
func TestExportConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ExportConfig)
		ok     bool
	}{
		{"defaults", func(*ExportConfig) {}, true},
		{"version low", func(c *ExportConfig) { c.Version = -1 }, false},
		{"version high", func(c *ExportConfig) { c.Version = 7 }, false},
		{"bad format", func(c *ExportConfig) { c.Format = vtf.ImageFormat(-5) }, false},
		{"bad type", func(c *ExportConfig) { c.Type = ImageType(9) }, false},
		{"bump scale low", func(c *ExportConfig) { c.BumpScale = -0.1 }, false},
		{"bump scale high", func(c *ExportConfig) { c.BumpScale = 11 }, false},
		{"bump scale max", func(c *ExportConfig) { c.BumpScale = 10 }, true},
		{"merge layers", func(c *ExportConfig) { c.MergeLayers = true }, false},
		{"no mips", func(c *ExportConfig) { c.Mipmaps = NoMips() }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultExportConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

// TestImageTypeString validates the editor-facing names.
func TestImageTypeString(t *testing.T) {
	assert.Equal(t, "standard", TypeStandard.String())
	assert.Equal(t, "environment map", TypeEnvironmentMap.String())
	assert.Equal(t, "volumetric", TypeVolumetric.String())
	assert.Equal(t, "unknown", ImageType(42).String())
}
