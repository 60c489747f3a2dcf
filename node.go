package octree

// BasicNode is a minimal concrete Node backed by a fixed array of optional
// child slots. It carries no occupancy payload; structure owners that need
// one embed BasicNode in their own node type or provide their own Node
// implementation. When and why children are allocated is entirely up to the
// owner; this package only ever reads the slots.
type BasicNode struct {
	children [8]*BasicNode
}

// NewBasicNode returns a childless node.
func NewBasicNode() *BasicNode {
	return &BasicNode{}
}

// HasChildren reports whether any child slot is occupied.
func (n *BasicNode) HasChildren() bool {
	for _, child := range n.children {
		if child != nil {
			return true
		}
	}
	return false
}

// ChildExists reports whether child slot i is occupied.
func (n *BasicNode) ChildExists(i int) bool {
	return i >= 0 && i < 8 && n.children[i] != nil
}

// GetChild returns the node in child slot i, or nil if the slot is empty.
func (n *BasicNode) GetChild(i int) Node {
	if !n.ChildExists(i) {
		return nil
	}
	return n.children[i]
}

// Child is the concrete-typed accessor for structure owners.
func (n *BasicNode) Child(i int) *BasicNode {
	if !n.ChildExists(i) {
		return nil
	}
	return n.children[i]
}

// NewChild allocates child slot i if it is empty and returns its node.
func (n *BasicNode) NewChild(i int) *BasicNode {
	if n.children[i] == nil {
		n.children[i] = NewBasicNode()
	}
	return n.children[i]
}
