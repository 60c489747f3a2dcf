package octree

import (
	"fmt"

	"github.com/pkg/errors"
)

// Axis identifies one coordinate axis of the tree's world space.
type Axis int

// The three axes, in key order.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// AxisNone tags failures not tied to a single axis.
const AxisNone Axis = -1

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ErrNotFound is returned by Search when the requested point falls in an
// unexpanded gap, that is, the node on its path is missing while siblings
// exist at that depth.
var ErrNotFound = errors.New("point lies in an unexpanded region of the octree")

// OutOfBoundsError reports a coordinate, or a key, outside the representable
// range of the tree.
type OutOfBoundsError struct {
	// Axis is the axis whose coordinate failed to quantize, or AxisNone for
	// key-space failures.
	Axis  Axis
	Value float64
}

func (e OutOfBoundsError) Error() string {
	if e.Axis == AxisNone {
		return fmt.Sprintf("key %.0f out of octree bounds", e.Value)
	}
	return fmt.Sprintf("coordinate %v of point out of octree bounds: %v", e.Axis, e.Value)
}

// BoundaryHitError reports that a ray traversal step left the representable
// key range. Unlike OutOfBoundsError it occurs after partial progress:
// the voxels produced before the hit were valid.
type BoundaryHitError struct {
	Axis Axis
}

func (e BoundaryHitError) Error() string {
	return fmt.Sprintf("ray traversal hit the octree boundary in dimension %v", e.Axis)
}
