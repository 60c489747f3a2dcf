package octree

import (
	"math"

	"github.com/golang/geo/r3"
)

// Volume describes one cubic cell of the tree: a center relative to the tree
// origin and a world-space edge length.
type Volume struct {
	Center     r3.Vector
	SideLength float64
}

// LeafNodes collects one volume per leaf of the expanded structure, where a
// node counts as a leaf when it has no children or when maxDepth cuts the
// descent off. maxDepth 0 means the full tree depth. A tree holding only its
// root is empty by convention and yields nothing.
//
// LeafNodes panics if no root is attached; that is a contract breach by the
// caller, not an input condition.
func (t *Tree) LeafNodes(maxDepth int) []Volume {
	if t.root == nil {
		panic("octree: LeafNodes called on a tree with no root")
	}
	if t.size <= 1 {
		return nil
	}
	if maxDepth == 0 {
		maxDepth = TreeDepth
	}
	return t.appendLeafVolumes(nil, maxDepth, t.root, 0, t.center)
}

func (t *Tree) appendLeafVolumes(
	volumes []Volume, maxDepth int, node Node, depth int, parentCenter r3.Vector,
) []Volume {
	if depth > maxDepth || node == nil {
		return volumes
	}

	if node.HasChildren() && depth != maxDepth {
		offset := t.center.X / math.Pow(2., float64(depth+1))
		for i := 0; i < 8; i++ {
			if !node.ChildExists(i) {
				continue
			}
			volumes = t.appendLeafVolumes(
				volumes, maxDepth, node.GetChild(i), depth+1, childCenter(parentCenter, offset, i))
		}
		return volumes
	}

	return append(volumes, Volume{
		Center:     parentCenter.Sub(t.center),
		SideLength: t.resolution * math.Pow(2., float64(TreeDepth-depth)),
	})
}

// Voxels collects one volume per unexpanded child slot of every expanded
// node, the implicit space the structure does not resolve further, while
// descending into the children that do exist. The finest level itself is
// never reported. maxDepth 0 means the full tree depth.
//
// Voxels panics if no root is attached, like LeafNodes.
func (t *Tree) Voxels(maxDepth int) []Volume {
	if t.root == nil {
		panic("octree: Voxels called on a tree with no root")
	}
	if maxDepth == 0 {
		maxDepth = TreeDepth
	}
	return t.appendVoxelVolumes(nil, maxDepth, t.root, 0, t.center)
}

func (t *Tree) appendVoxelVolumes(
	volumes []Volume, maxDepth int, node Node, depth int, parentCenter r3.Vector,
) []Volume {
	if depth > maxDepth || node == nil {
		return volumes
	}
	if !node.HasChildren() || depth == maxDepth {
		return volumes
	}

	offset := t.center.X / math.Pow(2., float64(depth+1))
	sideLength := t.resolution * math.Pow(2., float64(TreeDepth-depth))

	for i := 0; i < 8; i++ {
		if node.ChildExists(i) {
			volumes = t.appendVoxelVolumes(
				volumes, maxDepth, node.GetChild(i), depth+1, childCenter(parentCenter, offset, i))
		} else {
			volumes = append(volumes, Volume{
				Center:     parentCenter.Sub(t.center),
				SideLength: sideLength,
			})
		}
	}
	return volumes
}

// childCenter applies a selector's three direction bits to a parent center:
// bit 0 moves x, bit 1 y, bit 2 z; a set bit means +offset.
func childCenter(parent r3.Vector, offset float64, i int) r3.Vector {
	center := parent
	if i&1 != 0 {
		center.X += offset
	} else {
		center.X -= offset
	}
	if i&2 != 0 {
		center.Y += offset
	} else {
		center.Y -= offset
	}
	if i&4 != 0 {
		center.Z += offset
	} else {
		center.Z -= offset
	}
	return center
}
