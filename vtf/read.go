package vtf

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// parseContainer parses VTF 7.0-7.6 container bytes into a container
// with every cell decoded to the internal RGBA8888 representation.
func parseContainer(data []byte) (*container, error) {
	r := bytes.NewReader(data)
	var base headerBase
	if err := binary.Read(r, binary.LittleEndian, &base); err != nil {
		return nil, errors.Wrap(err, "vtf: header truncated")
	}
	if base.Signature != signature {
		return nil, errors.New("vtf: bad signature")
	}
	if base.Major != 7 || base.Minor > 6 {
		return nil, errors.Errorf("vtf: unsupported version %d.%d", base.Major, base.Minor)
	}
	minor := int(base.Minor)
	if base.Width < 1 || base.Height < 1 {
		return nil, errors.Errorf("vtf: invalid dimensions %dx%d", base.Width, base.Height)
	}
	if base.Frames < 1 {
		return nil, errors.New("vtf: zero frame count")
	}

	format := ImageFormat(base.HighResFormat)
	if !format.Valid() {
		return nil, errors.Errorf("vtf: invalid image format %d", base.HighResFormat)
	}
	if !CanDecode(format) {
		return nil, errors.Wrapf(ErrUnsupportedConversion, "parse %s", format)
	}

	depth := 1
	if minor >= 2 {
		var d uint16
		if err := binary.Read(r, binary.LittleEndian, &d); err != nil {
			return nil, errors.Wrap(err, "vtf: header truncated")
		}
		if d > 1 {
			depth = int(d)
		}
	}

	c := &container{
		minor:        minor,
		width:        int(base.Width),
		height:       int(base.Height),
		depth:        depth,
		flags:        TextureFlags(base.Flags),
		frames:       int(base.Frames),
		faces:        1,
		mips:         int(base.MipCount),
		firstFrame:   int(base.FirstFrame),
		format:       format,
		bumpScale:    base.BumpScale,
		reflectivity: base.Reflectivity,
	}
	if c.flags.Has(FlagEnvMap) {
		if c.firstFrame == sphereMapSentinel {
			c.faces = 7
		} else {
			c.faces = 6
		}
	}
	if c.mips < 1 {
		c.mips = 1
	}
	if limit := RecommendedMipCount(format, c.width, c.height); c.mips > limit {
		return nil, errors.Errorf("vtf: mip count %d exceeds %d for %dx%d", c.mips, limit, c.width, c.height)
	}

	thumbFormat := ImageFormat(base.LowResFormat)
	hasThumb := base.LowResFormat != formatNone
	if hasThumb && !thumbFormat.Valid() {
		return nil, errors.Errorf("vtf: invalid thumbnail format %d", base.LowResFormat)
	}
	thumbSize := 0
	if hasThumb {
		thumbSize = thumbFormat.DataSize(int(base.LowResWidth), int(base.LowResHeight))
	}

	// Locate the thumbnail and image data, either by resource entry
	// (7.3+) or by fixed position after the header.
	thumbOffset := int(base.HeaderSize)
	imageOffset := thumbOffset + thumbSize
	if minor >= 3 {
		entries, err := readResources(r)
		if err != nil {
			return nil, err
		}
		imageOffset = -1
		thumbOffset = -1
		for _, e := range entries {
			switch e.Tag {
			case tagHighRes:
				imageOffset = int(e.Offset)
			case tagLowRes:
				thumbOffset = int(e.Offset)
			}
		}
		if imageOffset < 0 {
			return nil, errors.New("vtf: missing image data resource")
		}
		if hasThumb && thumbOffset < 0 {
			return nil, errors.New("vtf: missing thumbnail resource")
		}
	}

	if hasThumb {
		if thumbOffset+thumbSize > len(data) {
			return nil, errors.New("vtf: thumbnail data out of bounds")
		}
		c.thumb = &thumbnail{
			format: thumbFormat,
			width:  int(base.LowResWidth),
			height: int(base.LowResHeight),
			data:   append([]byte(nil), data[thumbOffset:thumbOffset+thumbSize]...),
		}
	}

	c.alloc()
	if err := c.readImageData(data, imageOffset); err != nil {
		return nil, err
	}
	return c, nil
}

// readResources reads the 7.3+ resource dictionary following the
// version-specific header fields.
func readResources(r *bytes.Reader) ([]resourceEntry, error) {
	var pad3 [3]byte
	if _, err := r.Read(pad3[:]); err != nil {
		return nil, errors.Wrap(err, "vtf: header truncated")
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "vtf: header truncated")
	}
	var pad8 [8]byte
	if _, err := r.Read(pad8[:]); err != nil {
		return nil, errors.Wrap(err, "vtf: header truncated")
	}
	if count > 64 {
		return nil, errors.Errorf("vtf: implausible resource count %d", count)
	}
	entries := make([]resourceEntry, count)
	for i := range entries {
		if err := binary.Read(r, binary.LittleEndian, &entries[i]); err != nil {
			return nil, errors.Wrap(err, "vtf: resource dictionary truncated")
		}
	}
	return entries, nil
}

// readImageData decodes every cell from on-disk order (smallest mip
// first) into the RGBA8888 cell store.
func (c *container) readImageData(data []byte, offset int) error {
	for m := c.mips - 1; m >= 0; m-- {
		mw, mh := MipDims(c.width, c.height, m)
		cellSize := c.format.DataSize(mw, mh)
		for fr := 0; fr < c.frames; fr++ {
			for fa := 0; fa < c.faces; fa++ {
				for s := 0; s < c.sliceCount(m); s++ {
					if offset+cellSize > len(data) {
						return errors.Errorf("vtf: image data truncated at mip %d frame %d face %d", m, fr, fa)
					}
					rgba, err := decodeToRGBA(c.format, data[offset:offset+cellSize], mw, mh)
					if err != nil {
						return errors.Wrapf(err, "vtf: mip %d frame %d face %d slice %d", m, fr, fa, s)
					}
					c.cells[m][fr][fa][s] = rgba
					offset += cellSize
				}
			}
		}
	}
	return nil
}
