package octree

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Search descends from the root to the node representing the cell containing
// p. If an unexpanded subtree is reached before the finest depth, that node
// is returned: in a sparse octree an absent subtree means its nearest
// existing ancestor represents the entire region. If instead a node on the
// path is missing while siblings exist, Search returns ErrNotFound. Out of
// range coordinates return an axis-tagged OutOfBoundsError.
func (t *Tree) Search(p r3.Vector) (Node, error) {
	if t.root == nil {
		return nil, errors.New("octree has no root")
	}

	keys, err := t.GenKeys(p)
	if err != nil {
		t.logger.Debugf("octree search skipped: %v", err)
		return nil, errors.Wrap(err, "cannot search octree")
	}

	curNode := t.root
	for level := TreeDepth - 1; level >= 0; level-- {
		pos := childIndex(keys, level)
		if curNode.ChildExists(pos) {
			curNode = curNode.GetChild(pos)
			continue
		}
		if !curNode.HasChildren() {
			// resolution limit of the expanded structure reached
			return curNode, nil
		}
		return nil, ErrNotFound
	}
	return curNode, nil
}
