// Package x_bench times the trie against a Go map on the
// insert / lookup / delete workload the trie was built for.
package x_bench

import (
	"context"
	"fmt"
	"time"

	"github.com/rskv-p/strie/pkg/x_log"
	"github.com/rskv-p/strie/pkg/x_trie"
)

// checkEvery is how many operations run between context checks.
const checkEvery = 4096

// Options configures a run.
type Options struct {
	Count       int
	KeyFormat   string // must contain %d
	Value       string
	TrieOptions []x_trie.Option[string]
}

// Phase is the timing of one workload step.
type Phase struct {
	Name string        `json:"name"`
	Took time.Duration `json:"took"`
}

// Result is the outcome of running the workload against one store.
type Result struct {
	Store  string        `json:"store"`
	Phases []Phase       `json:"phases"`
	Total  time.Duration `json:"total"`
	Peak   *x_trie.Stats `json:"peak,omitempty"` // trie shape after inserts
	Left   *x_trie.Stats `json:"left,omitempty"` // trie shape after deletes
}

type store interface {
	Set(key, value string)
	Get(key string) (string, bool)
	Delete(key string) (string, bool)
}

type trieStore struct{ t *x_trie.Trie[string] }

func (s trieStore) Set(k, v string)                { s.t.SetString(k, v) }
func (s trieStore) Get(k string) (string, bool)    { return s.t.GetString(k) }
func (s trieStore) Delete(k string) (string, bool) { return s.t.DeleteString(k) }

type mapStore map[string]string

func (s mapStore) Set(k, v string) { s[k] = v }

func (s mapStore) Get(k string) (string, bool) {
	v, ok := s[k]
	return v, ok
}

func (s mapStore) Delete(k string) (string, bool) {
	v, ok := s[k]
	delete(s, k)
	return v, ok
}

// Run executes the workload on a fresh trie and on a map.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Count <= 0 {
		return nil, fmt.Errorf("bench: count must be positive, got %d", opts.Count)
	}
	keys := make([]string, opts.Count)
	for i := range keys {
		keys[i] = fmt.Sprintf(opts.KeyFormat, i+1)
	}

	tr := x_trie.New(opts.TrieOptions...)
	defer tr.Release()

	trieRes := Result{Store: "trie"}
	if err := runStore(ctx, &trieRes, trieStore{tr}, keys, opts.Value, func(phase string) {
		s := tr.Stats()
		if phase == "set" {
			trieRes.Peak = &s
		} else if phase == "delete" {
			trieRes.Left = &s
		}
	}); err != nil {
		return nil, err
	}

	mapRes := Result{Store: "map"}
	if err := runStore(ctx, &mapRes, mapStore{}, keys, opts.Value, nil); err != nil {
		return nil, err
	}
	return []Result{trieRes, mapRes}, nil
}

func runStore(ctx context.Context, res *Result, s store, keys []string, value string, after func(string)) error {
	log := x_log.From(ctx).With().Str("store", res.Store).Logger()

	steps := []struct {
		name string
		op   func(key string) error
	}{
		{"set", func(k string) error {
			s.Set(k, value)
			return nil
		}},
		{"get", func(k string) error {
			if v, ok := s.Get(k); !ok || v != value {
				return fmt.Errorf("bench: %s get %q returned %q, %v", res.Store, k, v, ok)
			}
			return nil
		}},
		{"delete", func(k string) error {
			if _, ok := s.Delete(k); !ok {
				return fmt.Errorf("bench: %s delete %q missed", res.Store, k)
			}
			return nil
		}},
	}

	for _, step := range steps {
		start := time.Now()
		for i, k := range keys {
			if i%checkEvery == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			if err := step.op(k); err != nil {
				return err
			}
		}
		took := time.Since(start)
		res.Phases = append(res.Phases, Phase{Name: step.name, Took: took})
		res.Total += took
		log.Debug().Str("phase", step.name).Dur("took", took).Int("count", len(keys)).Msg("phase done")
		if after != nil {
			after(step.name)
		}
	}

	if _, ok := s.Get(keys[0]); ok {
		return fmt.Errorf("bench: %s still holds %q after delete", res.Store, keys[0])
	}
	return nil
}
