// file:strie/pkg/x_trie/node.go
package x_trie

//---------------------
// Node (child-sibling)
//---------------------

// node is one byte position of a key path. Its children form their own
// sibling chain reachable through child; next links it into the chain
// of its parent.
type node[V any] struct {
	value V
	child *node[V] // head of the children's sibling chain
	next  *node[V] // next node in the same sibling chain
	set   bool     // value holds a stored entry
	c     byte
}

// newNode allocates a node for c with no value and no links.
func newNode[V any](c byte) *node[V] {
	return &node[V]{c: c}
}

// sibling scans the chain starting at n for a node matching c.
// skip is excluded from matching (the unmatched root).
func (n *node[V]) sibling(c byte, skip *node[V]) *node[V] {
	for ; n != nil; n = n.next {
		if n != skip && n.c == c {
			return n
		}
	}
	return nil
}

// addSibling splices a new node for c right after n.
func (n *node[V]) addSibling(c byte) *node[V] {
	nn := newNode[V](c)
	nn.next = n.next
	n.next = nn
	return nn
}

// clear drops the stored value.
func (n *node[V]) clear() (V, bool) {
	var zero V
	old, had := n.value, n.set
	n.value, n.set = zero, false
	return old, had
}

//---------------------
// Node View
//---------------------

// Node is a read-only view of a trie node passed to Traverse visitors.
type Node[V any] struct {
	n    *node[V]
	root bool
}

// Byte returns the key byte this node matches.
func (v Node[V]) Byte() byte { return v.n.c }

// Value returns the stored value and whether one is present.
func (v Node[V]) Value() (V, bool) { return v.n.value, v.n.set }

// HasChild reports whether the node has at least one child.
func (v Node[V]) HasChild() bool { return v.n.child != nil }

// HasSibling reports whether another node follows in the same chain.
func (v Node[V]) HasSibling() bool { return v.n.next != nil }

// IsRoot reports whether the node is the trie root.
func (v Node[V]) IsRoot() bool { return v.root }
