// file:strie/pkg/x_trie/dump.go
package x_trie

import (
	"fmt"
	"io"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

// Dump writes a visual tree representation to w.
func (t *Trie[V]) Dump(w io.Writer) {
	if t == nil {
		fmt.Fprintln(w, "EMPTY")
		return
	}
	t.dump(w, t.root, 0)
	fmt.Fprintln(w)
}

// dump writes one sibling chain and, below each entry, its children.
func (t *Trie[V]) dump(w io.Writer, n *node[V], depth int) {
	for ; n != nil; n = n.next {
		label := fmt.Sprintf("%q", n.c)
		if n == t.root {
			label = "ROOT"
			if t.opts.matchRoot {
				label += fmt.Sprintf(" %q", n.c)
			}
		}
		if n.set {
			fmt.Fprintf(w, "%s%s Value: %+v\n", dumpPre(depth), label, n.value)
		} else {
			fmt.Fprintf(w, "%s%s\n", dumpPre(depth), label)
		}
		if n.child != nil {
			t.dump(w, n.child, depth+1)
		}
	}
}

func dumpPre(depth int) string {
	if depth == 0 {
		return "-- "
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__ ")
	return b.String()
}
