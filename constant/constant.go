// file: strie/constant/constant.go
package constant

import "errors"

// ----------------------------------------------------
// Standard errors
// ----------------------------------------------------

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("wrong number of arguments")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrQuit           = errors.New("quit")
	ErrRecovered      = errors.New("recovered from panic")
)

// ----------------------------------------------------
// Config paths & keys
// ----------------------------------------------------

const (
	EnvPrefix         = "STRIE_"
	EnvConfigPath     = "STRIE_CONFIG"
	DefaultConfigFile = "strie.json"
	ServiceName       = "strie"
)

// ----------------------------------------------------
// Defaults
// ----------------------------------------------------

const (
	DefaultBenchCount     = 1000000
	DefaultBenchKeyFormat = "item %d"
	DefaultBenchValue     = "sweet"
	DefaultPrompt         = "strie> "
)
