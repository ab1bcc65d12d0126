package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "stopwatch.json"

// Config holds runtime configuration for the window and the refresh loop.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug    bool   `json:"debug"`
	LogLevel string `json:"log_level"`

	// Window
	Title    string `json:"title"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	DarkMode bool   `json:"dark_mode"`

	// Refresh cadence while the stopwatch runs.
	TickMillis int `json:"tick_millis"`
}

const (
	minTickMillis = 10
	maxTickMillis = 1000
)

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:      false,
		LogLevel:   "info",
		Title:      "Stopwatch",
		Width:      400,
		Height:     640,
		DarkMode:   true,
		TickMillis: 100,
	}
}

// Validate clamps/normalizes values to safe ranges. The returned error lists
// every field that had to be adjusted; the config is usable either way.
func (c *Config) Validate() error {
	var result *multierror.Error
	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width <= 0 {
		result = multierror.Append(result, fmt.Errorf("width %d out of range, using %d", c.Width, def.Width))
		c.Width = def.Width
	}
	if c.Height <= 0 {
		result = multierror.Append(result, fmt.Errorf("height %d out of range, using %d", c.Height, def.Height))
		c.Height = def.Height
	}
	if c.TickMillis < minTickMillis || c.TickMillis > maxTickMillis {
		result = multierror.Append(result, fmt.Errorf("tick_millis %d outside [%d, %d], using %d", c.TickMillis, minTickMillis, maxTickMillis, def.TickMillis))
		c.TickMillis = def.TickMillis
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		result = multierror.Append(result, fmt.Errorf("unknown log_level %q, using %q", c.LogLevel, def.LogLevel))
		c.LogLevel = def.LogLevel
	}
	return result.ErrorOrNil()
}

// Level returns the slog level named by LogLevel; Debug forces debug.
func (c *Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
// Validation adjustments are not reported here; call Validate to see them.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
