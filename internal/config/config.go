// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config manages the TOML config of the sabdkosh command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	// ErrConfig is the parent error for config errors.
	ErrConfig = errors.New("config")

	// ErrUnknownKey indicates that the config file contains an unknown key.
	ErrUnknownKey = fmt.Errorf("%w: unknown key", ErrConfig)

	// ErrInvalid indicates that a config value is out of range.
	ErrInvalid = fmt.Errorf("%w: invalid value", ErrConfig)
)

// Config holds the entire config structure.
type Config struct {
	Data   DataConfig   `toml:"data"`
	View   ViewConfig   `toml:"view"`
	Search SearchConfig `toml:"search"`
	Log    LogConfig    `toml:"log"`
}

// DataConfig holds dataset options.
type DataConfig struct {
	// Path is the dataset file or directory.
	Path string `toml:"path"`
}

// ViewConfig holds options for the interactive viewer.
type ViewConfig struct {
	// ItemHeight is the number of terminal rows per list item.
	ItemHeight int `toml:"item_height"`

	// Buffer is the number of items rendered above and below the viewport.
	Buffer int `toml:"buffer"`

	// Debounce is how long input must be quiet before a search is issued.
	Debounce Duration `toml:"debounce"`
}

// SearchConfig holds search options.
type SearchConfig struct {
	// CacheSize is the number of recent search results kept by the worker.
	CacheSize int `toml:"cache_size"`

	// Limit is the default number of rows printed by the search command.
	// Zero prints all rows.
	Limit int `toml:"limit"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// Duration is a time.Duration written as a string such as "250ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		View: ViewConfig{
			ItemHeight: 2,
			Buffer:     10,
			Debounce:   Duration{250 * time.Millisecond},
		},
		Search: SearchConfig{
			CacheSize: 64,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that config values are in range.
func (c *Config) Validate() error {
	if c.View.ItemHeight < 1 {
		return fmt.Errorf("%w: view.item_height: %d", ErrInvalid, c.View.ItemHeight)
	}
	if c.View.Buffer < 0 {
		return fmt.Errorf("%w: view.buffer: %d", ErrInvalid, c.View.Buffer)
	}
	if c.View.Debounce.Duration < 0 {
		return fmt.Errorf("%w: view.debounce: %v", ErrInvalid, c.View.Debounce)
	}
	if c.Search.CacheSize < 0 {
		return fmt.Errorf("%w: search.cache_size: %d", ErrInvalid, c.Search.CacheSize)
	}
	if c.Search.Limit < 0 {
		return fmt.Errorf("%w: search.limit: %d", ErrInvalid, c.Search.Limit)
	}
	return nil
}

// Decode reads a TOML config from r. Values missing from r keep their
// defaults.
func Decode(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(c)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the TOML config file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return c, nil
}

// DefaultPath returns the default config file path,
// [os.UserConfigDir]/sabdkosh/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return filepath.Join(dir, "sabdkosh", "config.toml"), nil
}

// LoadWithPriority loads config with priority:
//  1. Custom path (e.g. from the --config flag). It must exist.
//  2. Default path, if the file exists.
//  3. Builtin defaults.
//
// It returns the config along with the path it was loaded from, or "" for
// the builtin defaults.
func LoadWithPriority(customPath string) (*Config, string, error) {
	if customPath != "" {
		c, err := Load(customPath)
		if err != nil {
			return nil, "", err
		}
		return c, customPath, nil
	}

	defaultPath, err := DefaultPath()
	if err != nil {
		//nolint:nilerr // Fall back to defaults when there is no config dir.
		return DefaultConfig(), "", nil
	}
	if _, err := os.Stat(defaultPath); err != nil {
		return DefaultConfig(), "", nil
	}

	c, err := Load(defaultPath)
	if err != nil {
		return nil, "", err
	}
	return c, defaultPath, nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("%w: encoding: %w", ErrConfig, err)
	}
	return nil
}
