package rectmorph

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/lvmorph/matrix"
)

// Config is the file form of the engine settings.
//
//	multithreading = true
//	continuation   = "mirror"   # none | cyclic | pseudo-cyclic | mirror | zero
type Config struct {
	Multithreading bool   `toml:"multithreading"`
	Continuation   string `toml:"continuation"`
}

// DefaultConfig mirrors the construction defaults.
func DefaultConfig() Config {
	return Config{
		Multithreading: DefaultMultithreading,
		Continuation:   DefaultContinuation.String(),
	}
}

// LoadConfig reads a TOML file. Keys absent from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load rectmorph config: %w", err)
	}

	return overlay(raw, meta)
}

// ParseConfig is LoadConfig for in-memory TOML.
func ParseConfig(data string) (Config, error) {
	var raw Config
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse rectmorph config: %w", err)
	}

	return overlay(raw, meta)
}

func overlay(raw Config, meta toml.MetaData) (Config, error) {
	cfg := DefaultConfig()
	if meta.IsDefined("multithreading") {
		cfg.Multithreading = raw.Multithreading
	}
	if meta.IsDefined("continuation") {
		cfg.Continuation = raw.Continuation
	}
	if _, err := matrix.ParseContinuation(cfg.Continuation); err != nil {
		return Config{}, fmt.Errorf("parse continuation: %w", err)
	}

	return cfg, nil
}

// Options converts c into construction options.
func (c Config) Options() ([]Option, error) {
	mode, err := matrix.ParseContinuation(c.Continuation)
	if err != nil {
		return nil, err
	}

	return []Option{WithMultithreading(c.Multithreading), WithContinuation(mode)}, nil
}
