package cmd

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gordian-engine/cmerkle"
	"github.com/gordian-engine/cmerkle/cmhash"
	"github.com/gordian-engine/cmerkle/cmhash/cmkeccak"

	// Registers the sha256 hasher for selection by name.
	_ "github.com/gordian-engine/cmerkle/cmhash/cmsha256"
)

// Config is the on-disk configuration of the cmerkle command.
// Command line flags override any value set in the file.
type Config struct {
	// Hash is the registered name of the hasher for items and nodes.
	Hash string `toml:"hash"`

	// OddTail is "self-pair" or "promote".
	OddTail string `toml:"odd_tail"`

	// LogLevel is one of "debug", "info", "warn", or "error".
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration that reproduces
// existing Keccak-256 trees byte for byte.
func DefaultConfig() Config {
	return Config{
		Hash:     cmkeccak.Name,
		OddTail:  cmerkle.OddTailSelfPair.String(),
		LogLevel: "info",
	}
}

// LoadConfig reads a TOML configuration file.
// Keys missing from the file keep their default values,
// and unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf(
			"unknown keys in config %s: %s", path, strings.Join(keys, ", "),
		)
	}

	return cfg, nil
}

// WriteConfig encodes cfg as TOML to path.
// It refuses to overwrite an existing file.
func WriteConfig(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return f.Close()
}

// TreeConfig resolves the configured hasher and odd tail mode.
func (c Config) TreeConfig() (cmerkle.TreeConfig, error) {
	r, err := cmhash.ByName(c.Hash)
	if err != nil {
		return cmerkle.TreeConfig{}, fmt.Errorf(
			"%w (available: %s)", err, strings.Join(cmhash.Names(), ", "),
		)
	}

	oddTail, err := cmerkle.ParseOddTail(c.OddTail)
	if err != nil {
		return cmerkle.TreeConfig{}, err
	}

	return cmerkle.TreeConfig{
		Hasher:   r.Hasher,
		HashSize: r.HashSize,
		OddTail:  oddTail,
	}, nil
}

// Level parses the configured log level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
