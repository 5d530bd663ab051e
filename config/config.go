// fen2eps - tools for chess diagram font description files
// Copyright (C) 2003-2026  Dirk Baechle <dl9obn@darc.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the settings of the fen2eps-fed tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/n1tehawk/fen2eps/fed"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config holds all settings.
type Config struct {
	// Keys lists the FontInfo tags which are read from FED files.
	Keys []string `yaml:"keys"`

	// Required lists the tags which must be present in every FED file.
	Required []string `yaml:"required"`

	// Charset is the character encoding of FED files, using the names
	// from the WHATWG encoding standard (e.g. "utf-8", "latin1").
	Charset string `yaml:"charset"`

	// Collation is the language tag used to sort font names.
	Collation string `yaml:"collation"`

	FontList FontListConfig `yaml:"fontlist"`
}

// FontListConfig configures the generated font list.
type FontListConfig struct {
	// Glob selects the FED files to include.
	Glob string `yaml:"glob"`

	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Date     string `yaml:"date"`
	Abstract string `yaml:"abstract"`

	// BoardsDir is the directory, relative to the list, which holds the
	// rendered example boards.
	BoardsDir string `yaml:"boards_dir"`

	// Output is the file name of the generated list.  "-" selects
	// standard output.
	Output string `yaml:"output"`

	// Workers limits the number of FED files parsed in parallel.
	Workers int `yaml:"workers"`
}

// Environment variables which override values from the config file.
const (
	EnvGlob    = "FEN2EPS_FED_GLOB"
	EnvCharset = "FEN2EPS_CHARSET"
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Keys:      fed.DefaultKeys().Keys(),
		Required:  []string{fed.FontName, fed.FontAuthor, fed.FontDate},
		Charset:   "utf-8",
		Collation: "und",
		FontList: FontListConfig{
			Glob:   filepath.Join("rsc", "addons", "fed", "fed", "*.fed"),
			Title:  "Fontlist for Fen2eps v1.1",
			Author: "Dirk Baechle",
			Date:   "2010-06-20",
			Abstract: `This text lists the various chess fonts, currently available
for \\Fen2eps\\. Please, note that the EPS files for the single
boards have been converted to the PNG format. This means that the
displayed images do not show the highest quality possible.`,
			BoardsDir: "boards",
			Output:    "fontlist.wiki",
			Workers:   4,
		},
	}
}

// Load reads the configuration from a YAML file.  Fields which are not
// set in the file keep their default values.  If the file does not
// exist, the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvGlob); v != "" {
		c.FontList.Glob = v
	}
	if v := os.Getenv(EnvCharset); v != "" {
		c.Charset = v
	}
}

// Validate checks that the configuration can be used.
func (c *Config) Validate() error {
	if len(c.Keys) == 0 {
		return errors.New("config: no FontInfo keys configured")
	}
	if _, err := c.Encoding(); err != nil {
		return err
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	if c.FontList.Workers < 0 {
		return fmt.Errorf("config: invalid number of workers %d", c.FontList.Workers)
	}
	return nil
}

// KeySet returns the configured FontInfo keys.  Required keys are always
// included.
func (c *Config) KeySet() fed.KeySet {
	return fed.NewKeySet(c.Keys...).Union(fed.NewKeySet(c.Required...))
}

// Encoding returns the character encoding of FED files.  The result is
// nil for UTF-8, in which case no decoding is necessary.
func (c *Config) Encoding() (encoding.Encoding, error) {
	name := strings.TrimSpace(c.Charset)
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("config: unknown charset %q: %w", c.Charset, err)
	}
	if enc == encoding.Nop {
		return nil, nil
	}
	if canonical, _ := htmlindex.Name(enc); canonical == "utf-8" {
		return nil, nil
	}
	return enc, nil
}

// Language returns the language used to sort font names.
func (c *Config) Language() (language.Tag, error) {
	if c.Collation == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(c.Collation)
	if err != nil {
		return language.Und, fmt.Errorf("config: invalid collation %q: %w", c.Collation, err)
	}
	return tag, nil
}

// Parser returns a FED parser for the configured keys and charset.
func (c *Config) Parser() (*fed.Parser, error) {
	enc, err := c.Encoding()
	if err != nil {
		return nil, err
	}
	p := fed.NewParser(c.KeySet())
	p.Charset = enc
	return p, nil
}
