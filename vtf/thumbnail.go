package vtf

// thumbnailMax is the largest edge a low-res thumbnail may have.
const thumbnailMax = 16

// thumbnailDims halves the base dimensions until both fit the
// thumbnail budget, keeping the power-of-two aspect.
func thumbnailDims(width, height int) (int, int) {
	for width > thumbnailMax || height > thumbnailMax {
		if width > 1 {
			width >>= 1
		}
		if height > 1 {
			height >>= 1
		}
	}
	return width, height
}

// ComputeThumbnail synthesizes the low-res DXT1 thumbnail from the
// first base cell.
func (c *container) ComputeThumbnail(filter ResizeFilter) error {
	src, err := c.GetPixels(0, 0, 0, 0)
	if err != nil {
		return err
	}
	tw, th := thumbnailDims(c.width, c.height)
	small := resizeRGBA(src, c.width, c.height, tw, th, filter)
	data, err := encodeFromRGBA(FormatDXT1, small, tw, th)
	if err != nil {
		return err
	}
	c.thumb = &thumbnail{format: FormatDXT1, width: tw, height: th, data: data}
	return nil
}
