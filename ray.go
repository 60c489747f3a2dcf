package octree

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// rayParamSentinel marks an axis whose direction component is zero, so that
// axis never yields the smallest exit distance.
const rayParamSentinel = 1e6

// ComputeRay enumerates the centers of the grid cells a segment crosses,
// strictly between the origin's cell and the end's cell, in near-to-far
// order. Both cells themselves are excluded, and two points quantizing to the
// same cell yield an empty result. The walk is a 3D DDA after Amanatides &
// Woo, "A Faster Voxel Traversal Algorithm for Ray Tracing".
//
// Both endpoints must quantize to valid keys or an axis-tagged
// OutOfBoundsError is returned. If a step would leave the representable key
// range, the voxel centers produced so far are returned together with a
// BoundaryHitError.
func (t *Tree) ComputeRay(origin, end r3.Vector) ([]r3.Vector, error) {
	originKeys, err := t.GenKeys(origin)
	if err != nil {
		return nil, errors.Wrap(err, "ray origin out of octree bounds")
	}
	endKeys, err := t.GenKeys(end)
	if err != nil {
		return nil, errors.Wrap(err, "ray endpoint out of octree bounds")
	}

	direction := end.Sub(origin).Normalize()
	maxLength := end.Sub(origin).Norm()

	// Voxel indices are the finest-depth cell coordinates, whether or not a
	// node exists there. Tracked as int so leaving the range is detectable.
	var voxelIdx, endIdx [3]int
	var step [3]int
	var tMax, tDelta [3]float64

	for axis := AxisX; axis <= AxisZ; axis++ {
		voxelIdx[axis] = int(originKeys[axis])
		endIdx[axis] = int(endKeys[axis])

		d := axisComponent(direction, axis)
		switch {
		case d > 0.0:
			step[axis] = 1
		case d < 0.0:
			step[axis] = -1
		default:
			step[axis] = 0
		}

		// world-space boundary of the origin cell on the advancing side
		voxelBorder := float64(voxelIdx[axis]-treeMaxVal) * t.resolution
		if step[axis] > 0 {
			voxelBorder += t.resolution
		}

		if d != 0.0 {
			tMax[axis] = (voxelBorder - axisComponent(origin, axis)) / d
			tDelta[axis] = t.resolution / math.Abs(d)
		} else {
			tMax[axis] = rayParamSentinel
			tDelta[axis] = rayParamSentinel
		}
	}

	// origin and end in the same cell: nothing in between
	if voxelIdx == endIdx {
		return nil, nil
	}

	var ray []r3.Vector
	for {
		// advance the axis with the smallest exit distance; on exact ties the
		// second comparison decides
		var axis Axis
		if tMax[AxisX] < tMax[AxisY] {
			if tMax[AxisX] < tMax[AxisZ] {
				axis = AxisX
			} else {
				axis = AxisZ
			}
		} else {
			if tMax[AxisY] < tMax[AxisZ] {
				axis = AxisY
			} else {
				axis = AxisZ
			}
		}

		voxelIdx[axis] += step[axis]
		if voxelIdx[axis] < 0 || voxelIdx[axis] >= 2*treeMaxVal {
			t.logger.Warnf("ray traversal hit the octree boundary in dimension %v", axis)
			return ray, BoundaryHitError{Axis: axis}
		}
		tMax[axis] += tDelta[axis]

		var center r3.Vector
		for a := AxisX; a <= AxisZ; a++ {
			v, err := t.GenValue(Key(voxelIdx[a]))
			if err != nil {
				return ray, errors.Wrapf(err, "cannot reconstruct voxel center on axis %v", a)
			}
			setAxisComponent(&center, a, v)
		}

		// the first center past the segment length is the overshoot voxel;
		// it and everything beyond (including the end cell) stay excluded
		if center.Sub(origin).Norm() > maxLength {
			return ray, nil
		}
		ray = append(ray, center)
	}
}
