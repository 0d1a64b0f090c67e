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

package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"seehuhn.de/go/dxf"
)

const example = `
encoding: CP1251
log_level: debug
tables: [layers, LTYPES]
options:
  INLINE_BLOCKS: "NO"
  HATCH_TOLERANCE: ${TOLERANCE}
`

func lookupMap(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		val, ok := env[name]
		return val, ok
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(example), lookupMap(map[string]string{"TOLERANCE": "0.25"}))
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{
		Encoding: "CP1251",
		LogLevel: "debug",
		Tables:   []string{"layers", "LTYPES"},
		Options: map[string]string{
			"INLINE_BLOCKS":   "NO",
			"HATCH_TOLERANCE": "0.25",
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config differs (-want +got):\n%s", diff)
	}

	opt := dxf.DefaultOptions()
	err = cfg.Apply(opt)
	if err != nil {
		t.Fatal(err)
	}
	if opt.Encoding != "CP1251" || opt.InlineBlocks || opt.HatchTolerance != 0.25 {
		t.Errorf("options not applied: %+v", opt)
	}
	if !opt.MergeBlockGeometries {
		t.Error("unrelated option changed")
	}
}

func TestParseNoExpansion(t *testing.T) {
	_, err := Parse([]byte(example), nil)
	if err == nil {
		t.Error("unexpanded variable accepted as a number")
	}

	cfg, err := Parse([]byte("encoding: ${X}\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Encoding != "${X}" {
		t.Errorf("unexpected encoding %q", cfg.Encoding)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("config differs (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"log_level: loud\n",
		"tables: [blocks]\n",
		"options:\n  NO_SUCH_OPTION: 1\n",
		"unknown_field: 1\n",
		"encoding: [a, b]\n",
	}
	for _, c := range cases {
		_, err := Parse([]byte(c), nil)
		if err == nil {
			t.Errorf("%q: no error", c)
		}
	}

	_, err := Parse([]byte("log_level: loud\n"), nil)
	if !errors.Is(err, errUnknownLevel) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/etc/dxf.yaml", []byte("header_only: true\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(fs, "/etc/dxf.yaml", nil)
	if err != nil {
		t.Fatal(err)
	}
	opt := dxf.DefaultOptions()
	if err := cfg.Apply(opt); err != nil {
		t.Fatal(err)
	}
	if !opt.HeaderOnly {
		t.Error("header_only not applied")
	}

	_, err = Load(fs, "/etc/missing.yaml", nil)
	if err == nil {
		t.Error("missing file accepted")
	}
}
