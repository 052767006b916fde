// file:strie/pkg/x_trie/options.go
package x_trie

// Option configures a Trie at construction time.
type Option[V any] func(*options[V])

type options[V any] struct {
	rootByte  byte
	matchRoot bool
	onRelease func(V)
}

// WithRootByte makes the root answer to b as a first key byte.
// Keys starting with b then share the root with the empty key.
func WithRootByte[V any](b byte) Option[V] {
	return func(o *options[V]) {
		o.rootByte = b
		o.matchRoot = true
	}
}

// WithReleaseHook registers fn to be called for every stored value
// when the trie is released.
func WithReleaseHook[V any](fn func(V)) Option[V] {
	return func(o *options[V]) {
		o.onRelease = fn
	}
}
