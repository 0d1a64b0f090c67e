// seehuhn.de/go/dxf - a library for reading DXF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package config reads the YAML configuration files used by the DXF tools.
//
// A configuration file looks like this:
//
//	encoding: CP1252
//	header_only: false
//	log_level: debug
//	tables: [layers, ltypes]
//	options:
//	  INLINE_BLOCKS: "NO"
//	  HATCH_TOLERANCE: ${TOLERANCE}
//
// References of the form ${VAR} are only expanded if this is requested.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/drone/envsubst"
	"github.com/spf13/afero"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/dxf"
)

// Tables lists the table names accepted in the "tables" field.
var Tables = []string{"header", "layers", "ltypes", "styles", "dimstyles"}

// Config is the contents of a configuration file.
type Config struct {
	// Encoding overrides the character encoding given in the file header.
	Encoding string `yaml:"encoding"`

	// HeaderOnly stops reading after the symbol tables.
	HeaderOnly bool `yaml:"header_only"`

	// LogLevel is one of "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`

	// Tables selects the tables shown by dxf-inspect.
	Tables []string `yaml:"tables"`

	// Options holds additional reader options, using the names understood
	// by dxf.Options.Set.
	Options map[string]string `yaml:"options"`
}

var errUnknownLevel = errors.New("unknown log level")

// Parse decodes a configuration file.  If lookup is not nil, ${VAR}
// references are replaced by the values lookup returns before the YAML is
// decoded.  Unset variables expand to the empty string.
func Parse(data []byte, lookup func(string) (string, bool)) (*Config, error) {
	if lookup != nil {
		expanded, err := envsubst.Eval(string(data), func(name string) string {
			val, _ := lookup(name)
			return val
		})
		if err != nil {
			return nil, fmt.Errorf("expanding variables: %w", err)
		}
		data = []byte(expanded)
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the named configuration file from fs.
func Load(fs afero.Fs, fname string, lookup func(string) (string, bool)) (*Config, error) {
	data, err := afero.ReadFile(fs, fname)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data, lookup)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// Validate checks the log level, the table names and the option names.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w %q", errUnknownLevel, c.LogLevel)
	}

	for _, name := range c.Tables {
		if !isTable(name) {
			return fmt.Errorf("unknown table %q", name)
		}
	}

	return c.Apply(dxf.DefaultOptions())
}

// Apply copies the settings from the configuration into opt.
func (c *Config) Apply(opt *dxf.Options) error {
	if c.Encoding != "" {
		opt.Encoding = c.Encoding
	}
	if c.HeaderOnly {
		opt.HeaderOnly = true
	}
	for _, name := range sortedNames(c.Options) {
		err := opt.Set(name, c.Options[name])
		if err != nil {
			return err
		}
	}
	return nil
}

func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func isTable(name string) bool {
	for _, t := range Tables {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}
