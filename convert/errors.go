// Package convert - orchestration of VTF encode and decode: shape
// assignment, pre-encode validation, derived-asset planning, and the
// container assembly and layer extraction pipelines.
package convert

import "fmt"

// ShapeMismatchError reports a layer count incompatible with the
// chosen image type. It is raised before any codec work begins.
type ShapeMismatchError struct {
	// Type is the requested image type.
	Type ImageType
	// LayerCount is the offending layer count.
	LayerCount int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("convert: %d layers cannot form a %s image", e.LayerCount, e.Type)
}

// DimensionMismatchError reports a layer whose dimensions differ from
// the image's. It is raised before any codec work begins.
type DimensionMismatchError struct {
	// LayerIndex is the offending layer's position.
	LayerIndex int
	// Detail describes the mismatch.
	Detail error
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("convert: layer %d dimension mismatch: %v", e.LayerIndex, e.Detail)
}

func (e *DimensionMismatchError) Unwrap() error { return e.Detail }

// UnsupportedFormatError reports an image format that is illegal at
// the target container version.
type UnsupportedFormatError struct {
	Format  fmt.Stringer
	Version int
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("convert: format %s is not supported at version 7.%d", e.Format, e.Version)
}

// ParseError reports malformed container bytes during decoding. No
// partial image is returned alongside it.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("convert: cannot parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DerivedAssetError reports a fatal failure in one of the
// derived-asset steps (mips, thumbnail, reflectivity, transparency,
// final bake). The export is aborted.
type DerivedAssetError struct {
	// Step names the failed planner step.
	Step string
	Err  error
}

func (e *DerivedAssetError) Error() string {
	return fmt.Sprintf("convert: %s failed: %v", e.Step, e.Err)
}

func (e *DerivedAssetError) Unwrap() error { return e.Err }

// SerializationError reports a failure writing the final container
// bytes to the destination.
type SerializationError struct {
	Path string
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("convert: cannot write %s: %v", e.Path, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// PixelWarning records a single cell that failed to accept pixel
// data. The cell stays at its zeroed default and the export
// continues.
type PixelWarning struct {
	// Frame and Face locate the affected cell.
	Frame int
	Face  int
	Err   error
}

func (w PixelWarning) String() string {
	return fmt.Sprintf("frame %d face %d: %v", w.Frame, w.Face, w.Err)
}

// Result is the outcome of a successful (possibly partial) export.
type Result struct {
	// Warnings holds every non-fatal per-cell failure, in layer order,
	// so the caller can present all problems at once.
	Warnings []PixelWarning
}
