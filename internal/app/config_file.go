package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML settings file. It carries durable
// preferences only; the input to parse always comes from flags.
type FileConfig struct {
	UserAgent string
	Timeout   time.Duration
	Vocab     string

	Cache struct {
		Dir    string
		MaxAge time.Duration
		Clear  bool
	}

	Verbose bool
}

// fileConfigYAML is the raw on-disk shape. Durations are strings so users
// can write "15s" or "24h".
type fileConfigYAML struct {
	UserAgent string `yaml:"userAgent"`
	Timeout   string `yaml:"timeout"`
	Vocab     string `yaml:"vocab"`

	Cache struct {
		Dir    string `yaml:"dir"`
		MaxAge string `yaml:"maxAge"`
		Clear  bool   `yaml:"clear"`
	} `yaml:"cache"`

	Verbose bool `yaml:"verbose"`
}

// LoadFileConfig reads and decodes the YAML file at path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	var raw fileConfigYAML
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return fc, fmt.Errorf("decode config: %w", err)
	}

	fc.UserAgent = raw.UserAgent
	fc.Vocab = raw.Vocab
	fc.Cache.Dir = raw.Cache.Dir
	fc.Cache.Clear = raw.Cache.Clear
	fc.Verbose = raw.Verbose
	if fc.Timeout, err = parseDuration(raw.Timeout, "timeout"); err != nil {
		return fc, err
	}
	if fc.Cache.MaxAge, err = parseDuration(raw.Cache.MaxAge, "cache.maxAge"); err != nil {
		return fc, err
	}
	return fc, nil
}

func parseDuration(s, field string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("config %s: %w", field, err)
	}
	return d, nil
}

// ApplyFile fills any Config field the flags left at its zero value from
// the settings file, so explicit flags always win.
func (c *Config) ApplyFile(fc FileConfig) {
	if c.UserAgent == "" {
		c.UserAgent = fc.UserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = fc.Timeout
	}
	if c.VocabPath == "" {
		c.VocabPath = fc.Vocab
	}
	if c.CacheDir == "" {
		c.CacheDir = fc.Cache.Dir
	}
	if c.CacheMaxAge == 0 {
		c.CacheMaxAge = fc.Cache.MaxAge
	}
	if !c.CacheClear {
		c.CacheClear = fc.Cache.Clear
	}
	if !c.Verbose {
		c.Verbose = fc.Verbose
	}
}
