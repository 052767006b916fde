// Package x_trie implements a byte-keyed trie in child-sibling form.
//
// Each node carries two links: the head of its children's sibling chain
// and the next node of its own chain. Lookups scan each chain linearly,
// which keeps nodes small for sparse, unbounded fan-out.
//
// Deleting a key unlinks its node only when the node has no children.
// Ancestors that are left without a value and with a single child are not
// collapsed, so a trie that had all of its keys deleted may still hold
// internal nodes.
package x_trie
