// file:strie/pkg/x_trie/trie.go
package x_trie

//---------------------
// Trie
//---------------------

// Trie is an associative container keyed by byte strings. Every branching
// level is a singly linked sibling chain scanned linearly, so a node needs
// only two links regardless of its fan-out.
//
// A Trie is not safe for concurrent use.
type Trie[V any] struct {
	root  *node[V]
	size  int
	nodes int
	opts  options[V]
}

// New creates an empty trie.
func New[V any](opts ...Option[V]) *Trie[V] {
	t := &Trie[V]{}
	for _, opt := range opts {
		opt(&t.opts)
	}
	t.reset()
	return t
}

func (t *Trie[V]) reset() {
	t.root = newNode[V](t.opts.rootByte)
	t.size, t.nodes = 0, 1
}

// skip returns the node that must never match a key byte.
func (t *Trie[V]) skip() *node[V] {
	if t.opts.matchRoot {
		return nil
	}
	return t.root
}

// Len returns the number of stored values.
func (t *Trie[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// NodeCount returns the number of live nodes, root included.
func (t *Trie[V]) NodeCount() int {
	if t == nil {
		return 0
	}
	return t.nodes
}

//---------------------
// Lookup / Mutation
//---------------------

// Get returns the value stored under key.
func (t *Trie[V]) Get(key []byte) (V, bool) {
	var zero V
	if t == nil {
		return zero, false
	}
	n := t.resolve(key, false)
	if n == nil || !n.set {
		return zero, false
	}
	return n.value, true
}

// Set stores value under key, creating the missing path nodes.
func (t *Trie[V]) Set(key []byte, value V) {
	n := t.resolve(key, true)
	if !n.set {
		t.size++
	}
	n.value, n.set = value, true
}

// Delete removes key and returns the value it held. A matched node is
// unlinked only when it has no children; ancestors left without a value
// are kept in place.
func (t *Trie[V]) Delete(key []byte) (V, bool) {
	var zero V
	if t == nil {
		return zero, false
	}
	var (
		n    *node[V]
		link **node[V]
	)
	skip := t.skip()
	chain := &t.root
	if len(key) == 0 {
		n = t.root
	}
	for _, c := range key {
		link = chain
		for *link != nil && (*link == skip || (*link).c != c) {
			link = &(*link).next
		}
		if *link == nil {
			return zero, false
		}
		n = *link
		chain = &n.child
	}

	old, had := n.clear()
	if !had {
		return zero, false
	}
	t.size--
	if n.child == nil && n != t.root {
		*link = n.next
		n.next = nil
		t.nodes--
	}
	return old, true
}

// GetString is Get for string keys.
func (t *Trie[V]) GetString(key string) (V, bool) { return t.Get([]byte(key)) }

// SetString is Set for string keys.
func (t *Trie[V]) SetString(key string, value V) { t.Set([]byte(key), value) }

// DeleteString is Delete for string keys.
func (t *Trie[V]) DeleteString(key string) (V, bool) { return t.Delete([]byte(key)) }

//---------------------
// Internal
//---------------------

// resolve walks key down the sibling/child chains. With create set,
// missing bytes get new nodes and the walk always succeeds. The empty
// key resolves to the root.
func (t *Trie[V]) resolve(key []byte, create bool) *node[V] {
	skip := t.skip()
	cur, head := t.root, t.root
	for _, c := range key {
		if head == nil {
			if !create {
				return nil
			}
			cur.child = newNode[V](c)
			t.nodes++
			cur, head = cur.child, nil
			continue
		}
		n := head.sibling(c, skip)
		if n == nil {
			if !create {
				return nil
			}
			n = head.addSibling(c)
			t.nodes++
		}
		cur, head = n, n.child
	}
	return cur
}
