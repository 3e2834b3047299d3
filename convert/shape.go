package convert

// shape is the structural layout a layer sequence maps onto: how many
// frames and faces the container holds and which cell each layer
// position lands in.
type shape struct {
	frames int
	faces  int
	cube   bool
	sphere bool
}

// assignShape maps an ordered layer sequence onto the container's
// frame/face grid for the given image type. It is a pure function of
// (imageType, layerCount).
//
// Standard animates layers as frames. Environment maps hold exactly
// six cube faces, or seven when a sphere-map face is included; the
// seven-face layout is chosen as soon as there are at least seven
// layers. Volumetric is recognized but mapped like Standard: no
// depth-slice semantics are invented here.
func assignShape(t ImageType, layerCount int) (shape, error) {
	if layerCount < 1 {
		return shape{}, &ShapeMismatchError{Type: t, LayerCount: layerCount}
	}
	if t != TypeEnvironmentMap {
		return shape{frames: layerCount, faces: 1}, nil
	}

	faces := 6
	if layerCount >= 7 {
		faces = 7
	}
	if layerCount != faces {
		return shape{}, &ShapeMismatchError{Type: t, LayerCount: layerCount}
	}
	return shape{frames: 1, faces: faces, cube: true, sphere: faces == 7}, nil
}

// cell returns the (frame, face) coordinates for a layer position.
func (s shape) cell(layerIndex int) (frame, face int) {
	if s.cube {
		return 0, layerIndex
	}
	return layerIndex, 0
}
