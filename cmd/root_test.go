package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rskv-p/strie/constant"
	"github.com/rskv-p/strie/pkg/x_bench"
	recoverpkg "github.com/rskv-p/strie/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STRIE_CONFIG", "testdata-missing.json")
	t.Cleanup(func() { logLevel = "" })

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBenchJSON(t *testing.T) {
	out, err := run(t, "", "bench", "-n", "500", "--json")
	require.NoError(t, err)

	var results []x_bench.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "trie", results[0].Store)
	assert.Equal(t, 500, results[0].Peak.Values)
}

func TestShellFromStdin(t *testing.T) {
	out, err := run(t, "set bat 1\nget bat\ndel bat\nget bat\n", "shell")
	require.NoError(t, err)
	assert.Equal(t, "OK\n1\n1\n(nil)\n", out)
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "", "shell", "--log-level", "loud")
	assert.Error(t, err)
}

func TestConfigDump(t *testing.T) {
	t.Setenv("STRIE_BENCH_VALUE", "salty")
	out, err := run(t, "", "config")
	require.NoError(t, err)

	var values map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	assert.Equal(t, "salty", values["bench_value"])
	assert.Equal(t, constant.DefaultBenchKeyFormat, values["bench_key_format"])
}

func TestConfigKey(t *testing.T) {
	out, err := run(t, "", "config", "prompt")
	require.NoError(t, err)
	assert.Equal(t, constant.DefaultPrompt+"\n", out)

	_, err = run(t, "", "config", "nope")
	assert.ErrorIs(t, err, constant.ErrBadArgs)
}

func TestRecoveredPanicFailsRun(t *testing.T) {
	t.Cleanup(func() { panicked.Store(false) })
	assert.NoError(t, result(nil))

	recoverpkg.Safe("test", func() { panic("boom") })

	assert.ErrorIs(t, result(nil), constant.ErrRecovered)
	plain := assert.AnError
	assert.ErrorIs(t, result(plain), plain)
}
