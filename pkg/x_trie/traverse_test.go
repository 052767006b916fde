package x_trie

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrie() *Trie[int] {
	tr := New[int]()
	for i, k := range []string{"bat", "ball", "bun", "cat", "car", ""} {
		tr.SetString(k, i+1)
	}
	return tr
}

// TestTraverseOrder checks that every node is visited once and only
// after its sibling tail and its children.
func TestTraverseOrder(t *testing.T) {
	tr := sampleTrie()

	order := map[*node[int]]int{}
	tr.Traverse(func(n Node[int]) {
		_, seen := order[n.n]
		require.False(t, seen, "node %q visited twice", n.Byte())
		order[n.n] = len(order)
	})
	require.Equal(t, tr.NodeCount(), len(order))

	for n, pos := range order {
		if n.next != nil {
			assert.Less(t, order[n.next], pos)
		}
		if n.child != nil {
			assert.Less(t, order[n.child], pos)
		}
	}
	// the root heads the top chain, so it comes last
	assert.Equal(t, len(order)-1, order[tr.root])
}

func TestTraverseNodeView(t *testing.T) {
	tr := New[string]()
	tr.SetString("ab", "x")

	var roots, values int
	tr.Traverse(func(n Node[string]) {
		if n.IsRoot() {
			roots++
			assert.True(t, n.HasSibling())
			assert.False(t, n.HasChild())
			return
		}
		if v, ok := n.Value(); ok {
			values++
			assert.Equal(t, byte('b'), n.Byte())
			assert.Equal(t, "x", v)
			assert.False(t, n.HasChild())
		} else {
			assert.Equal(t, byte('a'), n.Byte())
			assert.True(t, n.HasChild())
		}
	})
	assert.Equal(t, 1, roots)
	assert.Equal(t, 1, values)
}

func TestWalk(t *testing.T) {
	tr := sampleTrie()

	got := map[string]int{}
	tr.Walk(func(k []byte, v int) bool {
		got[string(k)] = v
		return true
	})
	assert.Equal(t, map[string]int{
		"bat": 1, "ball": 2, "bun": 3, "cat": 4, "car": 5, "": 6,
	}, got)
}

func TestWalkStop(t *testing.T) {
	tr := sampleTrie()

	calls := 0
	tr.Walk(func([]byte, int) bool {
		calls++
		return calls < 3
	})
	assert.Equal(t, 3, calls)
}

func TestRelease(t *testing.T) {
	var released []int
	tr := New(WithReleaseHook(func(v int) {
		released = append(released, v)
	}))
	for i, k := range []string{"bat", "ball", "bun", ""} {
		tr.SetString(k, i+1)
	}
	old := tr.root

	tr.Release()

	sort.Ints(released)
	assert.Equal(t, []int{1, 2, 3, 4}, released)
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 1, tr.NodeCount())
	assert.Nil(t, old.next)
	assert.Nil(t, old.child)

	// usable after release
	tr.SetString("bat", 9)
	v, ok := tr.GetString("bat")
	require.True(t, ok)
	assert.Equal(t, 9, v)
	_, ok = tr.GetString("bun")
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	tr := New[int]()
	assert.Equal(t, Stats{Nodes: 1, MaxChain: 1}, tr.Stats())

	tr.SetString("a", 1)
	tr.SetString("b", 2)
	tr.SetString("abc", 3)
	s := tr.Stats()
	assert.Equal(t, tr.NodeCount(), s.Nodes)
	assert.Equal(t, 3, s.Values)
	assert.Equal(t, 3, s.MaxDepth)
	assert.Equal(t, 3, s.MaxChain) // root, b, a
}

func TestDump(t *testing.T) {
	tr := New[int]()
	tr.SetString("ab", 1)

	var buf bytes.Buffer
	tr.Dump(&buf)
	out := buf.String()
	assert.Contains(t, out, "-- ROOT")
	assert.Contains(t, out, "-- 'a'")
	assert.Contains(t, out, "  |__ 'b' Value: 1")
}
