package x_log

//
// ---------- Config ----------

// Config describes where and how log records are written.
type Config struct {
	Level       string `json:"level" mapstructure:"level"`               // debug, info, warn, error
	LogFile     string `json:"log_file" mapstructure:"log_file"`         // rotated file path
	ToConsole   bool   `json:"to_console" mapstructure:"to_console"`     // write to stderr
	ToFile      bool   `json:"to_file" mapstructure:"to_file"`           // write to LogFile
	ColoredFile bool   `json:"colored_file" mapstructure:"colored_file"` // console format in file
	Style       string `json:"style" mapstructure:"style"`               // dark or light
	MaxSize     int    `json:"max_size" mapstructure:"max_size"`         // MB
	MaxBackups  int    `json:"max_backups" mapstructure:"max_backups"`   // rotated files
	MaxAge      int    `json:"max_age" mapstructure:"max_age"`           // days
	Compress    bool   `json:"compress" mapstructure:"compress"`
}

//
// ---------- Defaults ----------

var defaultConfig = Config{
	Level:       "info",
	LogFile:     "logs/strie.log",
	ToConsole:   true,
	ToFile:      false,
	ColoredFile: false,
	Style:       "dark",
	MaxSize:     10, // MB
	MaxBackups:  5,  // rotated files
	MaxAge:      7,  // days
	Compress:    true,
}

// DefaultConfig returns a copy of the default logging config.
func DefaultConfig() Config {
	return defaultConfig
}

//
// ---------- Defaults Fill ----------

// ApplyDefaults fills missing config values from the defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Level == "" {
		cfg.Level = defaultConfig.Level
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultConfig.LogFile
	}
	if cfg.Style == "" {
		cfg.Style = defaultConfig.Style
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultConfig.MaxSize
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = defaultConfig.MaxBackups
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultConfig.MaxAge
	}
}
