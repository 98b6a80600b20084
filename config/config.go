package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultLimit = 50_000_000

	VariantArray     = "array"
	VariantSet       = "set"
	VariantGenerator = "generator"
)

var (
	ErrNegativeLimit    = errors.New("limit must not be negative")
	ErrUnknownVariant   = errors.New("unknown variant")
	ErrNoVariants       = errors.New("no variants configured")
	ErrDuplicateVariant = errors.New("duplicate variant")
)

type Config struct {
	Limit    int      `toml:"limit"`
	Variants []string `toml:"variants"`
	LogLevel string   `toml:"log_level"`
}

// Default runs every variant, in the order array, set, generator.
func Default() *Config {
	return &Config{
		Limit:    DefaultLimit,
		Variants: []string{VariantArray, VariantSet, VariantGenerator},
		LogLevel: log.InfoLevel.String(),
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (*Config, error) {
	config := Default()
	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLimit, c.Limit)
	}
	if len(c.Variants) == 0 {
		return ErrNoVariants
	}
	seen := make(map[string]bool, len(c.Variants))
	for _, v := range c.Variants {
		switch v {
		case VariantArray, VariantSet, VariantGenerator:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownVariant, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: %q", ErrDuplicateVariant, v)
		}
		seen[v] = true
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level is the parsed log level; it falls back to info if LogLevel is invalid.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
