// Package octree implements the traversal and indexing core of a fixed-depth
// occupancy octree. It quantizes continuous world coordinates into discrete
// per-axis keys, locates the node representing a coordinate in an externally
// owned tree, enumerates the voxels a line segment passes through, and
// reconstructs voxel geometry (center, side length) from tree topology alone.
//
// The tree structure itself is owned by the caller and reached through the
// narrow Node read interface; this package never creates, deletes, or mutates
// nodes and never retains a node reference beyond a single call. All
// operations are synchronous and read-only, and there is no internal locking:
// callers must serialize structural mutation against any in-progress Search,
// ComputeRay, LeafNodes, or Voxels call.
package octree

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Structural constants. Sixteen branch decisions address one cell, so valid
// keys occupy the open range (0, 2*treeMaxVal) and the key origin sits at the
// geometric center of the mapped cube.
const (
	TreeDepth  = 16
	treeMaxVal = 1 << (TreeDepth - 1)
)

// Node is the read capability a tree structure must expose for traversal.
// Child references obtained through GetChild are borrowed; ownership stays
// with the structure owner.
type Node interface {
	// HasChildren reports whether any of the 8 child slots is occupied.
	HasChildren() bool
	// ChildExists reports whether child slot i (0..7) is occupied.
	ChildExists(i int) bool
	// GetChild returns the node in child slot i, or nil if the slot is empty.
	GetChild(i int) Node
}

// MetaData is the running world-space bounding box of the tree's occupied
// volume.
type MetaData struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// NewMetaData returns extents that any merged point will tighten.
func NewMetaData() MetaData {
	return MetaData{
		MinX: math.MaxFloat64,
		MinY: math.MaxFloat64,
		MinZ: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MaxY: -math.MaxFloat64,
		MaxZ: -math.MaxFloat64,
	}
}

// Merge grows the extents to include p.
func (meta *MetaData) Merge(p r3.Vector) {
	if p.X > meta.MaxX {
		meta.MaxX = p.X
	}
	if p.Y > meta.MaxY {
		meta.MaxY = p.Y
	}
	if p.Z > meta.MaxZ {
		meta.MaxZ = p.Z
	}
	if p.X < meta.MinX {
		meta.MinX = p.X
	}
	if p.Y < meta.MinY {
		meta.MinY = p.Y
	}
	if p.Z < meta.MinZ {
		meta.MinZ = p.Z
	}
}

// Tree indexes an externally owned octree structure over continuous space.
// The structure owner attaches the root with SetRoot and keeps the live node
// count current with SetSize; Tree itself only reads.
type Tree struct {
	logger golog.Logger
	root   Node
	size   int

	resolution       float64
	resolutionFactor float64
	center           r3.Vector

	meta        MetaData
	boundsStale bool
}

// New creates a tree index over cells of the given edge length.
func New(resolution float64, logger golog.Logger) (*Tree, error) {
	t := &Tree{logger: logger, meta: NewMetaData()}
	if err := t.SetResolution(resolution); err != nil {
		return nil, err
	}
	return t, nil
}

// SetResolution changes the finest cell edge length and eagerly recomputes
// the cached scale factor and tree center. It does not reindex populated
// structure; reconfigure before attaching a root.
func (t *Tree) SetResolution(resolution float64) error {
	if resolution <= 0 {
		return errors.Errorf("invalid resolution (%.2f) for octree", resolution)
	}
	t.resolution = resolution
	t.resolutionFactor = 1. / resolution
	c := float64(treeMaxVal) * resolution
	t.center = r3.Vector{X: c, Y: c, Z: c}
	return nil
}

// Resolution returns the world edge length of the finest cell.
func (t *Tree) Resolution() float64 {
	return t.resolution
}

// Center returns the world-space offset placing the key origin at the center
// of the mapped cube.
func (t *Tree) Center() r3.Vector {
	return t.center
}

// SetRoot attaches the structure owner's root node and marks the bounding
// extents stale.
func (t *Tree) SetRoot(root Node) {
	t.root = root
	t.boundsStale = true
}

// Root returns the attached root node, if any.
func (t *Tree) Root() Node {
	return t.root
}

// SetSize records the live node count, which is maintained by the structure
// owner. A size of at most 1 means the tree holds only its root.
func (t *Tree) SetSize(size int) {
	t.size = size
}

// Size returns the live node count as last reported by the structure owner.
func (t *Tree) Size() int {
	return t.size
}

// ExpandBounds grows the running extents to include p. Structure owners call
// this as they populate so that MetaData stays current without a full
// recomputation.
func (t *Tree) ExpandBounds(p r3.Vector) {
	t.meta.Merge(p)
}

// MetaData returns the bounding extents of the occupied volume, recomputing
// them from the current leaf volumes if the structure changed since the last
// computation.
func (t *Tree) MetaData() MetaData {
	if t.boundsStale {
		t.refreshMetaData()
	}
	return t.meta
}

func (t *Tree) refreshMetaData() {
	t.meta = NewMetaData()
	if t.root != nil && t.size > 1 {
		for _, v := range t.LeafNodes(0) {
			half := v.SideLength / 2.
			t.meta.Merge(v.Center.Sub(r3.Vector{X: half, Y: half, Z: half}))
			t.meta.Merge(v.Center.Add(r3.Vector{X: half, Y: half, Z: half}))
		}
	}
	t.boundsStale = false
}
