package octree

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestLeafNodes(t *testing.T) {
	t.Run("nil root panics", func(t *testing.T) {
		tree := newTestTree(t, 0.1)
		test.That(t, func() { tree.LeafNodes(0) }, test.ShouldPanic)
	})

	t.Run("root-only tree is empty", func(t *testing.T) {
		tree := newTestTree(t, 0.1)
		tree.SetRoot(NewBasicNode())
		tree.SetSize(1)
		test.That(t, tree.LeafNodes(0), test.ShouldBeEmpty)
	})

	t.Run("one fully expanded level", func(t *testing.T) {
		tree := newTestTree(t, 0.1)
		root := NewBasicNode()
		for i := 0; i < 8; i++ {
			root.NewChild(i)
		}
		tree.SetRoot(root)
		tree.SetSize(9)

		volumes := tree.LeafNodes(0)
		test.That(t, len(volumes), test.ShouldEqual, 8)

		// selector bit i -> +offset on that axis, clear -> -offset
		expected := []r3.Vector{
			{X: -1638.4, Y: -1638.4, Z: -1638.4},
			{X: 1638.4, Y: -1638.4, Z: -1638.4},
			{X: -1638.4, Y: 1638.4, Z: -1638.4},
			{X: 1638.4, Y: 1638.4, Z: -1638.4},
			{X: -1638.4, Y: -1638.4, Z: 1638.4},
			{X: 1638.4, Y: -1638.4, Z: 1638.4},
			{X: -1638.4, Y: 1638.4, Z: 1638.4},
			{X: 1638.4, Y: 1638.4, Z: 1638.4},
		}
		var sum r3.Vector
		for i, v := range volumes {
			test.That(t, v.SideLength, test.ShouldAlmostEqual, 0.1*float64(int(1)<<(TreeDepth-1)))
			almostSame(t, v.Center, expected[i])
			sum = sum.Add(v.Center)
		}
		// centers are symmetric about the tree origin
		almostSame(t, sum, r3.Vector{})
	})

	t.Run("depth cutoff", func(t *testing.T) {
		tree := newTestTree(t, 0.1)
		root := NewBasicNode()
		root.NewChild(0).NewChild(0).NewChild(0)
		tree.SetRoot(root)
		tree.SetSize(4)

		volumes := tree.LeafNodes(0)
		test.That(t, len(volumes), test.ShouldEqual, 1)
		test.That(t, volumes[0].SideLength, test.ShouldAlmostEqual, 0.1*float64(int(1)<<(TreeDepth-3)))
		almostSame(t, volumes[0].Center, r3.Vector{X: -2867.2, Y: -2867.2, Z: -2867.2})

		volumes = tree.LeafNodes(1)
		test.That(t, len(volumes), test.ShouldEqual, 1)
		test.That(t, volumes[0].SideLength, test.ShouldAlmostEqual, 0.1*float64(int(1)<<(TreeDepth-1)))
		almostSame(t, volumes[0].Center, r3.Vector{X: -1638.4, Y: -1638.4, Z: -1638.4})
	})
}

func TestVoxels(t *testing.T) {
	t.Run("nil root panics", func(t *testing.T) {
		tree := newTestTree(t, 0.1)
		test.That(t, func() { tree.Voxels(0) }, test.ShouldPanic)
	})

	t.Run("one volume per missing child slot", func(t *testing.T) {
		tree := newTestTree(t, 0.1)
		root := NewBasicNode()
		for _, i := range []int{0, 3, 5} {
			root.NewChild(i)
		}
		tree.SetRoot(root)
		tree.SetSize(4)

		volumes := tree.Voxels(0)
		test.That(t, len(volumes), test.ShouldEqual, 5)
		for _, v := range volumes {
			test.That(t, v.SideLength, test.ShouldAlmostEqual, 0.1*float64(int(1)<<TreeDepth))
			almostSame(t, v.Center, r3.Vector{})
		}
	})

	t.Run("depth cutoff stops emission", func(t *testing.T) {
		tree := newTestTree(t, 0.1)
		root := NewBasicNode()
		root.NewChild(0).NewChild(0)
		tree.SetRoot(root)
		tree.SetSize(3)

		// only the root is expanded above the cutoff
		volumes := tree.Voxels(1)
		test.That(t, len(volumes), test.ShouldEqual, 7)
	})

	t.Run("single chain to the finest depth", func(t *testing.T) {
		tree := newTestTree(t, 0.1)
		root := NewBasicNode()
		cur := root
		for depth := 0; depth < TreeDepth; depth++ {
			cur = cur.NewChild(0)
		}
		tree.SetRoot(root)
		tree.SetSize(TreeDepth + 1)

		// each of the 16 expanded nodes reports its 7 empty slots; the node
		// at the finest depth reports nothing
		volumes := tree.Voxels(0)
		test.That(t, len(volumes), test.ShouldEqual, 7*TreeDepth)
	})
}
