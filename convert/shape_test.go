package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAssignShapeStandard validates frame-axis mapping.
func TestAssignShapeStandard(t *testing.T) {
	s, err := assignShape(TypeStandard, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.frames)
	assert.Equal(t, 1, s.faces)

	for i := 0; i < 3; i++ {
		frame, face := s.cell(i)
		assert.Equal(t, i, frame)
		assert.Equal(t, 0, face)
	}
}

// TestAssignShapeVolumetric validates the recognized-but-standard
// mapping of the volumetric type.
func TestAssignShapeVolumetric(t *testing.T) {
	s, err := assignShape(TypeVolumetric, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, s.frames)
	assert.Equal(t, 1, s.faces)
	assert.False(t, s.cube)
}

// TestAssignShapeEnvMap validates the 6/7-face boundary and the
// face-axis mapping.
func TestAssignShapeEnvMap(t *testing.T) {
	s, err := assignShape(TypeEnvironmentMap, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, s.faces)
	assert.Equal(t, 1, s.frames)
	assert.False(t, s.sphere)

	frame, face := s.cell(4)
	assert.Equal(t, 0, frame)
	assert.Equal(t, 4, face)

	s, err = assignShape(TypeEnvironmentMap, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, s.faces)
	assert.True(t, s.sphere)
}

// TestAssignShapeMismatch validates rejection of layer counts no face
// count can hold.
func TestAssignShapeMismatch(t *testing.T) {
	for _, count := range []int{0, 1, 5, 8, 12} {
		_, err := assignShape(TypeEnvironmentMap, count)
		require.Error(t, err, "%d layers", count)

		var shapeErr *ShapeMismatchError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, count, shapeErr.LayerCount)
	}

	_, err := assignShape(TypeStandard, 0)
	assert.Error(t, err, "zero layers never form a shape")
}
