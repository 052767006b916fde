// file:strie/pkg/x_trie/traverse.go
package x_trie

//---------------------
// Whole-tree Traversal
//---------------------

// Traverse calls visit once for every live node. A node is visited only
// after its sibling chain tail and its children; no other ordering is
// guaranteed. visit must not mutate the trie.
func (t *Trie[V]) Traverse(visit func(Node[V])) {
	if t == nil || visit == nil {
		return
	}
	t.traverse(t.root, func(n *node[V]) {
		visit(Node[V]{n: n, root: n == t.root})
	})
}

func (t *Trie[V]) traverse(n *node[V], fn func(*node[V])) {
	if n.next != nil {
		t.traverse(n.next, fn)
	}
	if n.child != nil {
		t.traverse(n.child, fn)
	}
	fn(n)
}

// Walk calls fn for every stored value together with its key. The key
// slice is reused between calls. Walk stops when fn returns false.
func (t *Trie[V]) Walk(fn func(key []byte, value V) bool) {
	if t == nil || fn == nil {
		return
	}
	if t.root.set && !fn([]byte{}, t.root.value) {
		return
	}
	var pre [64]byte
	t.walk(t.root, pre[:0], fn)
}

func (t *Trie[V]) walk(n *node[V], prefix []byte, fn func([]byte, V) bool) bool {
	for ; n != nil; n = n.next {
		if n == t.root {
			// root value is reported under the empty key
			if t.opts.matchRoot && n.child != nil {
				if !t.walk(n.child, append(prefix, n.c), fn) {
					return false
				}
			}
			continue
		}
		key := append(prefix, n.c)
		if n.set && !fn(key, n.value) {
			return false
		}
		if n.child != nil && !t.walk(n.child, key, fn) {
			return false
		}
	}
	return true
}

// Release tears the trie down node by node, handing every stored value
// to the release hook. The trie is empty and usable afterwards.
func (t *Trie[V]) Release() {
	if t == nil {
		return
	}
	hook := t.opts.onRelease
	t.traverse(t.root, func(n *node[V]) {
		if v, ok := n.clear(); ok && hook != nil {
			hook(v)
		}
		n.child, n.next = nil, nil
	})
	t.reset()
}

//---------------------
// Stats
//---------------------

// Stats describes the shape of a trie.
type Stats struct {
	Nodes    int `json:"nodes"`
	Values   int `json:"values"`
	MaxDepth int `json:"max_depth"`
	MaxChain int `json:"max_chain"`
}

// Stats walks the trie and reports its shape.
func (t *Trie[V]) Stats() Stats {
	var s Stats
	if t == nil {
		return s
	}
	t.stats(t.root, 0, &s)
	return s
}

func (t *Trie[V]) stats(head *node[V], depth int, s *Stats) {
	chain := 0
	for n := head; n != nil; n = n.next {
		chain++
		s.Nodes++
		if n.set {
			s.Values++
		}
		d := depth
		if n != t.root {
			d++
		}
		s.MaxDepth = max(s.MaxDepth, d)
		if n.child != nil {
			// only a matchable root has children; they sit at depth 2
			below := d
			if n == t.root {
				below = 1
			}
			t.stats(n.child, below, s)
		}
	}
	s.MaxChain = max(s.MaxChain, chain)
}
