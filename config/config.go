// file: strie/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Config is a flat bag of settings collected from defaults, files and
// the environment. Later options override earlier ones.
type Config struct {
	values map[string]any
}

// New applies opts in order.
func New(opts ...Option) (*Config, error) {
	c := &Config{values: map[string]any{}}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Get returns the raw value for key.
func (c *Config) Get(key string) (any, bool) {
	v, ok := c.values[strings.ToLower(key)]
	return v, ok
}

// Keys returns the known keys, sorted.
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Decode copies the collected values onto out. Fields of out that have
// no matching key keep their current value.
func (c *Config) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("config decoder: %w", err)
	}
	if err := dec.Decode(c.values); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// Dump writes the collected values to w as indented JSON.
func (c *Config) Dump(w io.Writer) error {
	data, err := json.MarshalIndent(c.values, "", "  ")
	if err != nil {
		return fmt.Errorf("dump config: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
