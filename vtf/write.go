package vtf

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Serialize bakes every cell to the container's format and writes the
// container bytes: header, resource dictionary (7.3+), thumbnail,
// then image data smallest mip first, frame-major within a mip.
func (c *container) Serialize(w io.Writer) error {
	imageData, err := c.bakeImageData()
	if err != nil {
		return err
	}

	resources := 1 // high-res image data
	if c.thumb != nil {
		resources++
	}
	hs := headerSize(c.minor, resources)

	thumbSize := 0
	if c.thumb != nil {
		thumbSize = len(c.thumb.data)
	}

	base := headerBase{
		Signature:     signature,
		Major:         7,
		Minor:         uint32(c.minor),
		HeaderSize:    uint32(hs),
		Width:         uint16(c.width),
		Height:        uint16(c.height),
		Flags:         uint32(c.flags),
		Frames:        uint16(c.frames),
		FirstFrame:    uint16(c.firstFrame),
		Reflectivity:  c.reflectivity,
		BumpScale:     c.bumpScale,
		HighResFormat: int32(c.format),
		MipCount:      uint8(c.mips),
		LowResFormat:  formatNone,
	}
	if c.thumb != nil {
		base.LowResFormat = int32(c.thumb.format)
		base.LowResWidth = uint8(c.thumb.width)
		base.LowResHeight = uint8(c.thumb.height)
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, base); err != nil {
		return errors.Wrap(err, "vtf: write header")
	}
	if c.minor >= 2 {
		if err := binary.Write(&buf, binary.LittleEndian, uint16(c.depth)); err != nil {
			return errors.Wrap(err, "vtf: write header")
		}
	}
	if c.minor >= 3 {
		buf.Write(make([]byte, 3))
		if err := binary.Write(&buf, binary.LittleEndian, uint32(resources)); err != nil {
			return errors.Wrap(err, "vtf: write header")
		}
		buf.Write(make([]byte, 8))

		offset := hs
		if c.thumb != nil {
			entry := resourceEntry{Tag: tagLowRes, Offset: uint32(offset)}
			if err := binary.Write(&buf, binary.LittleEndian, entry); err != nil {
				return errors.Wrap(err, "vtf: write resources")
			}
			offset += thumbSize
		}
		entry := resourceEntry{Tag: tagHighRes, Offset: uint32(offset)}
		if err := binary.Write(&buf, binary.LittleEndian, entry); err != nil {
			return errors.Wrap(err, "vtf: write resources")
		}
	}
	if pad := hs - buf.Len(); pad > 0 {
		buf.Write(make([]byte, pad))
	}

	if c.thumb != nil {
		buf.Write(c.thumb.data)
	}
	buf.Write(imageData)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "vtf: write container")
	}
	return nil
}

// bakeImageData converts every cell from the internal RGBA8888
// representation to the bake format, in on-disk order.
func (c *container) bakeImageData() ([]byte, error) {
	var out bytes.Buffer
	for m := c.mips - 1; m >= 0; m-- {
		mw, mh := MipDims(c.width, c.height, m)
		for fr := 0; fr < c.frames; fr++ {
			for fa := 0; fa < c.faces; fa++ {
				for s := 0; s < c.sliceCount(m); s++ {
					cell := c.cells[m][fr][fa][s]
					if cell == nil {
						cell = make([]byte, mw*mh*4)
					}
					enc, err := encodeFromRGBA(c.format, cell, mw, mh)
					if err != nil {
						return nil, errors.Wrapf(err, "vtf: bake mip %d frame %d face %d slice %d", m, fr, fa, s)
					}
					out.Write(enc)
				}
			}
		}
	}
	return out.Bytes(), nil
}
