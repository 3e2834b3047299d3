package vtf

import (
	"github.com/pkg/errors"
)

// sphereMapSentinel is the first-frame value that marks a seven-face
// environment map; the header has no face count field of its own.
const sphereMapSentinel = 0xFFFF

// thumbnail is the optional low-res image stored alongside the main
// pixel data.
type thumbnail struct {
	format ImageFormat
	width  int
	height int
	data   []byte // stored-format bytes
}

// container is StdCodec's Container implementation. Pixel cells are
// held as RGBA8888 regardless of the bake format; conversion to the
// bake format happens during Serialize, so every intermediate
// computation runs at a known precision.
type container struct {
	minor  int
	width  int
	height int
	depth  int

	flags        TextureFlags
	frames       int
	faces        int
	mips         int
	firstFrame   int
	format       ImageFormat
	bumpScale    float32
	reflectivity [3]float32
	resizeMethod ResizeMethod

	thumb *thumbnail

	// cells[mip][frame][face][slice] -> RGBA8888 buffer, nil when the
	// cell was never assigned (zero pixels).
	cells [][][][][]byte
}

func newContainer(format ImageFormat, width, height int, opts CreationOptions) (*container, error) {
	if opts.Minor < 0 || opts.Minor > 6 {
		return nil, errors.Errorf("vtf: unsupported version 7.%d", opts.Minor)
	}
	if !format.Valid() {
		return nil, errors.Errorf("vtf: invalid image format %d", int32(format))
	}
	if width < 1 || height < 1 {
		return nil, errors.Errorf("vtf: invalid dimensions %dx%d", width, height)
	}
	if !IsPow2(width) {
		width = opts.ResizeMethod.Apply(width)
	}
	if !IsPow2(height) {
		height = opts.ResizeMethod.Apply(height)
	}

	c := &container{
		minor:        opts.Minor,
		width:        width,
		height:       height,
		depth:        1,
		flags:        opts.Flags,
		frames:       1,
		faces:        1,
		mips:         1,
		format:       format,
		bumpScale:    1,
		resizeMethod: opts.ResizeMethod,
	}
	c.alloc()
	return c, nil
}

// alloc resizes the cell store to the current mip/frame/face/depth
// counts, preserving any cells that still fit.
func (c *container) alloc() {
	old := c.cells
	c.cells = make([][][][][]byte, c.mips)
	for m := range c.cells {
		slices := c.depth >> m
		if slices < 1 {
			slices = 1
		}
		c.cells[m] = make([][][][]byte, c.frames)
		for fr := range c.cells[m] {
			c.cells[m][fr] = make([][][]byte, c.faces)
			for fa := range c.cells[m][fr] {
				c.cells[m][fr][fa] = make([][]byte, slices)
				for s := range c.cells[m][fr][fa] {
					if m < len(old) && fr < len(old[m]) && fa < len(old[m][fr]) && s < len(old[m][fr][fa]) {
						c.cells[m][fr][fa][s] = old[m][fr][fa][s]
					}
				}
			}
		}
	}
}

func (c *container) Width() int              { return c.width }
func (c *container) Height() int             { return c.height }
func (c *container) Depth() int              { return c.depth }
func (c *container) FrameCount() int         { return c.frames }
func (c *container) FaceCount() int          { return c.faces }
func (c *container) MipCount() int           { return c.mips }
func (c *container) Format() ImageFormat     { return c.format }
func (c *container) Flags() TextureFlags     { return c.flags }
func (c *container) Reflectivity() [3]float32 { return c.reflectivity }
func (c *container) BumpScale() float32      { return c.bumpScale }

func (c *container) Version() (int, int) { return 7, c.minor }

func (c *container) AddFlags(flags TextureFlags) { c.flags |= flags }

func (c *container) SetBumpScale(scale float32) { c.bumpScale = scale }

// SetFrameCount sizes the animation axis.
func (c *container) SetFrameCount(frames int) error {
	if frames < 1 {
		return errors.Errorf("vtf: invalid frame count %d", frames)
	}
	c.frames = frames
	c.alloc()
	return nil
}

// SetFaceCount switches between the single-face, cube and cube+sphere
// layouts. The seven-face layout is marked with the first-frame
// sentinel so readers can recover the face count.
func (c *container) SetFaceCount(cube, sphere bool) error {
	switch {
	case !cube:
		c.faces = 1
		c.flags &^= FlagEnvMap
		if c.firstFrame == sphereMapSentinel {
			c.firstFrame = 0
		}
	case sphere:
		c.faces = 7
		c.flags |= FlagEnvMap
		c.firstFrame = sphereMapSentinel
	default:
		c.faces = 6
		c.flags |= FlagEnvMap
		if c.firstFrame == sphereMapSentinel {
			c.firstFrame = 0
		}
	}
	c.alloc()
	return nil
}

// SetMipCount sizes the mip axis. Existing data at surviving levels is
// preserved; new levels start out unassigned.
func (c *container) SetMipCount(mips int) error {
	if mips < 1 || mips > RecommendedMipCount(c.format, c.width, c.height) {
		return errors.Errorf("vtf: invalid mip count %d for %dx%d", mips, c.width, c.height)
	}
	c.mips = mips
	c.alloc()
	if mips == 1 {
		c.flags |= FlagNoMip
	} else {
		c.flags &^= FlagNoMip
	}
	return nil
}

func (c *container) sliceCount(mip int) int {
	s := c.depth >> mip
	if s < 1 {
		s = 1
	}
	return s
}

func (c *container) checkCell(mip, frame, face, slice int) error {
	if mip < 0 || mip >= c.mips {
		return errors.Errorf("vtf: mip %d out of range [0,%d)", mip, c.mips)
	}
	if frame < 0 || frame >= c.frames {
		return errors.Errorf("vtf: frame %d out of range [0,%d)", frame, c.frames)
	}
	if face < 0 || face >= c.faces {
		return errors.Errorf("vtf: face %d out of range [0,%d)", face, c.faces)
	}
	if slice < 0 || slice >= c.sliceCount(mip) {
		return errors.Errorf("vtf: slice %d out of range [0,%d)", slice, c.sliceCount(mip))
	}
	return nil
}

// GetPixels returns a copy of the cell decoded to RGBA8888.
func (c *container) GetPixels(mip, frame, face, slice int) ([]byte, error) {
	if err := c.checkCell(mip, frame, face, slice); err != nil {
		return nil, err
	}
	mw, mh := MipDims(c.width, c.height, mip)
	out := make([]byte, mw*mh*4)
	copy(out, c.cells[mip][frame][face][slice])
	return out, nil
}

// SetPixels converts buf from the source format to RGBA8888, resizes
// it to the cell's dimensions if needed, and stores it.
func (c *container) SetPixels(buf []byte, src ImageFormat, width, height int, filter ResizeFilter, mip, frame, face, slice int) error {
	if err := c.checkCell(mip, frame, face, slice); err != nil {
		return err
	}
	if width < 1 || height < 1 {
		return errors.Errorf("vtf: invalid source dimensions %dx%d", width, height)
	}
	rgba, err := decodeToRGBA(src, buf, width, height)
	if err != nil {
		return err
	}
	mw, mh := MipDims(c.width, c.height, mip)
	if width != mw || height != mh {
		rgba = resizeRGBA(rgba, width, height, mw, mh, filter)
	}
	c.cells[mip][frame][face][slice] = rgba
	return nil
}

// ComputeMips synthesizes each mip level from the level above it.
func (c *container) ComputeMips(filter ResizeFilter) error {
	for m := 1; m < c.mips; m++ {
		sw, sh := MipDims(c.width, c.height, m-1)
		tw, th := MipDims(c.width, c.height, m)
		for fr := 0; fr < c.frames; fr++ {
			for fa := 0; fa < c.faces; fa++ {
				for s := 0; s < c.sliceCount(m); s++ {
					src := c.cells[m-1][fr][fa][s]
					if src == nil {
						src = make([]byte, sw*sh*4)
					}
					c.cells[m][fr][fa][s] = resizeRGBA(src, sw, sh, tw, th, filter)
				}
			}
		}
	}
	return nil
}

// SetFormat records the bake format applied during serialization.
func (c *container) SetFormat(format ImageFormat, _ ResizeFilter) error {
	if !format.Valid() {
		return errors.Errorf("vtf: invalid image format %d", int32(format))
	}
	if !CanEncode(format) {
		return errors.Wrapf(ErrUnsupportedConversion, "bake to %s", format)
	}
	c.format = format
	return nil
}

func (c *container) HasThumbnail() bool { return c.thumb != nil }

// Thumbnail reports the thumbnail's format and dimensions.
func (c *container) Thumbnail() (ImageFormat, int, int, bool) {
	if c.thumb == nil {
		return FormatEmpty, 0, 0, false
	}
	return c.thumb.format, c.thumb.width, c.thumb.height, true
}

// RemoveThumbnail removes the thumbnail entirely; the serialized
// container carries no low-res image resource.
func (c *container) RemoveThumbnail() { c.thumb = nil }
