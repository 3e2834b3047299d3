package convert

import (
	"io"

	"github.com/pkg/errors"

	"github.com/chev2/vtfconv/vtf"
)

// fakeCodec records every container operation in call order so tests
// can assert the planner's sequencing without real pixel math.
type fakeCodec struct {
	built *fakeContainer

	// failSetPixels makes every SetPixels call fail.
	failSetPixels bool
	// failStep makes the named container operation fail.
	failStep string
}

func (c *fakeCodec) ParseContainer(_ []byte) (vtf.Container, error) {
	return nil, errors.New("fake: not implemented")
}

func (c *fakeCodec) BuildContainer(format vtf.ImageFormat, width, height int, opts vtf.CreationOptions) (vtf.Container, error) {
	c.built = &fakeContainer{
		codec:  c,
		format: format,
		width:  width,
		height: height,
		flags:  opts.Flags,
		frames: 1,
		faces:  1,
		mips:   1,
	}
	return c.built, nil
}

func (c *fakeCodec) SupportsFormat(minor int, format vtf.ImageFormat) bool {
	return minor >= 0 && minor <= 6 && format.Valid()
}

func (c *fakeCodec) RecommendedMipCount(format vtf.ImageFormat, width, height int) int {
	return vtf.RecommendedMipCount(format, width, height)
}

type fakeContainer struct {
	codec *fakeCodec
	calls []string

	format    vtf.ImageFormat
	width     int
	height    int
	flags     vtf.TextureFlags
	frames    int
	faces     int
	mips      int
	bumpScale float32
	thumb     bool
}

func (f *fakeContainer) record(name string) error {
	f.calls = append(f.calls, name)
	if f.codec.failStep == name {
		return errors.Errorf("fake: %s failed", name)
	}
	return nil
}

func (f *fakeContainer) Width() int                    { return f.width }
func (f *fakeContainer) Height() int                   { return f.height }
func (f *fakeContainer) Depth() int                    { return 1 }
func (f *fakeContainer) FrameCount() int               { return f.frames }
func (f *fakeContainer) FaceCount() int                { return f.faces }
func (f *fakeContainer) MipCount() int                 { return f.mips }
func (f *fakeContainer) Format() vtf.ImageFormat       { return f.format }
func (f *fakeContainer) Flags() vtf.TextureFlags       { return f.flags }
func (f *fakeContainer) AddFlags(fl vtf.TextureFlags)  { f.flags |= fl }
func (f *fakeContainer) Version() (int, int)           { return 7, 4 }
func (f *fakeContainer) Reflectivity() [3]float32      { return [3]float32{} }
func (f *fakeContainer) BumpScale() float32            { return f.bumpScale }
func (f *fakeContainer) SetBumpScale(s float32) {
	f.record("SetBumpScale")
	f.bumpScale = s
}

func (f *fakeContainer) SetFrameCount(frames int) error {
	f.frames = frames
	return f.record("SetFrameCount")
}

func (f *fakeContainer) SetFaceCount(cube, sphere bool) error {
	f.faces = 1
	if cube {
		f.faces = 6
		if sphere {
			f.faces = 7
		}
	}
	return f.record("SetFaceCount")
}

func (f *fakeContainer) SetMipCount(mips int) error {
	f.mips = mips
	return f.record("SetMipCount")
}

func (f *fakeContainer) GetPixels(_, _, _, _ int) ([]byte, error) {
	return make([]byte, f.width*f.height*4), nil
}

func (f *fakeContainer) SetPixels(_ []byte, _ vtf.ImageFormat, _, _ int, _ vtf.ResizeFilter, _, _, _, _ int) error {
	if err := f.record("SetPixels"); err != nil {
		return err
	}
	if f.codec.failSetPixels {
		return errors.New("fake: cell rejected")
	}
	return nil
}

func (f *fakeContainer) ComputeMips(_ vtf.ResizeFilter) error { return f.record("ComputeMips") }
func (f *fakeContainer) ComputeThumbnail(_ vtf.ResizeFilter) error {
	if err := f.record("ComputeThumbnail"); err != nil {
		return err
	}
	f.thumb = true
	return nil
}
func (f *fakeContainer) RemoveThumbnail() {
	f.record("RemoveThumbnail")
	f.thumb = false
}
func (f *fakeContainer) ComputeReflectivity() error { return f.record("ComputeReflectivity") }
func (f *fakeContainer) ComputeTransparencyFlags() error {
	return f.record("ComputeTransparencyFlags")
}
func (f *fakeContainer) SetFormat(format vtf.ImageFormat, _ vtf.ResizeFilter) error {
	f.format = format
	return f.record("SetFormat")
}
func (f *fakeContainer) HasThumbnail() bool { return f.thumb }
func (f *fakeContainer) Thumbnail() (vtf.ImageFormat, int, int, bool) {
	return vtf.FormatDXT1, 0, 0, f.thumb
}
func (f *fakeContainer) Serialize(w io.Writer) error {
	if err := f.record("Serialize"); err != nil {
		return err
	}
	_, err := w.Write([]byte("fake"))
	return err
}
