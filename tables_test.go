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

package dxf

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/dxf/dimstyle"
)

// withTables wraps the given table definitions in a minimal document.
func withTables(tables string) string {
	return "0 SECTION\n2 TABLES\n" + tables + "\n0 ENDSEC\n" +
		"0 SECTION\n2 ENTITIES\n0 ENDSEC\n0 EOF\n"
}

func TestLayerDefinition(t *testing.T) {
	d := openASCII(t, withTables(`
		0 TABLE
		2 LAYER
		0 LAYER
		2 Roads
		62 -5
		0 LAYER
		2 Frozen1
		70 1
		62 -3
		0 LAYER
		2 Frozen2
		62 -3
		70 1
		6 DASHED
		370 25
		420 16711680
		440 33554559
		0 LAYER
		2 Visible
		62 7
		70 0
		0 ENDTAB`), nil)

	cases := map[string]map[string]string{
		"Roads": {"Exists": "1", "Color": "-5", "Hidden": LayerOff},
		"Frozen1": {
			"Exists": "1", "Color": "-3", "Flags": "1", "Hidden": LayerFrozen,
		},
		"Frozen2": {
			"Exists": "1", "Color": "-3", "Flags": "1", "Hidden": LayerFrozen,
			"Linetype": "DASHED", "LineWeight": "25",
			"TrueColor": "16711680", "Transparency": "33554559",
		},
		"Visible": {"Exists": "1", "Color": "7", "Flags": "0", "Hidden": LayerVisible},
	}
	for name, want := range cases {
		if diff := cmp.Diff(want, d.layers[name]); diff != "" {
			t.Errorf("layer %s differs (-want +got):\n%s", name, diff)
		}
	}

	if v, ok := d.LookupLayerProperty("Roads", "Color"); !ok || v != "-5" {
		t.Errorf("Roads color: %q %t", v, ok)
	}
	if _, ok := d.LookupLayerProperty("Roads", "Linetype"); ok {
		t.Error("missing property reported as present")
	}
	if _, ok := d.LookupLayerProperty("Lakes", "Exists"); ok {
		t.Error("missing layer reported as present")
	}
	want := []string{"Frozen1", "Frozen2", "Roads", "Visible"}
	if diff := cmp.Diff(want, d.LayerNames()); diff != "" {
		t.Errorf("layer names differ (-want +got):\n%s", diff)
	}
}

func TestLineTypeDefinition(t *testing.T) {
	d := openASCII(t, withTables(`
		0 TABLE
		2 LTYPE
		0 LTYPE
		2 CONTINUOUS
		3 Solid line
		72 65
		73 0
		40 0.0
		0 LTYPE
		2 MERGED
		73 3
		49 0.5
		49 0.25
		49 -0.1
		0 LTYPE
		2 GAPFIRST
		49 -0.2
		49 0.5
		0 LTYPE
		2 ODD
		49 0.5
		49 -0.25
		49 0.25
		0 ENDTAB`), nil)

	cases := []struct {
		name string
		want []float64
	}{
		{"CONTINUOUS", nil},
		{"MERGED", []float64{0.75, -0.1}},
		{"GAPFIRST", []float64{0.5, -0.2}},
		{"ODD", []float64{0.75, -0.25}},
		{"UNKNOWN", nil},
	}
	for _, c := range cases {
		got := d.LookupLineType(c.name)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%s differs (-want +got):\n%s", c.name, diff)
		}
	}

	p := d.LookupLineType("MERGED")
	p[0] = 100
	if d.LookupLineType("MERGED")[0] != 0.75 {
		t.Error("LookupLineType returned internal storage")
	}

	want := []string{"GAPFIRST", "MERGED", "ODD"}
	if diff := cmp.Diff(want, d.LineTypeNames()); diff != "" {
		t.Errorf("line type names differ (-want +got):\n%s", diff)
	}
}

// TestLineTypePatterns checks the invariants of stored dash patterns for
// random lists of dash lengths.
func TestLineTypePatterns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		n := rng.Intn(8)
		var b strings.Builder
		b.WriteString("0 TABLE\n2 LTYPE\n0 LTYPE\n2 L\n")
		sum := 0.0
		for j := 0; j < n; j++ {
			// Multiples of 1/8 keep the sums exact.
			x := float64(rng.Intn(16)+1) / 8
			if rng.Intn(2) == 0 {
				x = -x
			}
			sum += x
			b.WriteString("49 " + strconv.FormatFloat(x, 'g', -1, 64) + "\n")
		}
		b.WriteString("0 ENDTAB")

		d := openASCII(t, withTables(b.String()), nil)
		p := d.LookupLineType("L")

		if n == 0 {
			if p != nil {
				t.Errorf("%d: pattern for empty line type: %v", i, p)
			}
			continue
		}
		if len(p)%2 != 0 {
			t.Errorf("%d: odd pattern length: %v", i, p)
			continue
		}
		for j, x := range p {
			if (j%2 == 0) != (x > 0) {
				t.Errorf("%d: pattern does not alternate: %v", i, p)
				break
			}
		}
		total := 0.0
		for _, x := range p {
			total += x
		}
		if len(p) > 0 && math.Abs(total-sum) > 1e-9 {
			t.Errorf("%d: pattern sum %g, want %g", i, total, sum)
		}
	}
}

func TestTextStyleDefinition(t *testing.T) {
	d := openASCII(t, withTables(`
		0 TABLE
		2 STYLE
		0 STYLE
		5 11
		2 Standard
		70 0
		41 1.0
		1001 ACAD
		1000 Arial
		1071 33554432
		0 STYLE
		5 12
		2 Shapes
		70 1
		41 2.0
		0 STYLE
		5 13
		2 Plain
		70 0
		1001 OTHERAPP
		1000 Ignored
		1071 16777216
		0 STYLE
		5 14
		2 Slanted
		1001 ACAD
		1071 16777216
		0 ENDTAB`), nil)

	want := map[string]map[string]string{
		"STANDARD": {"Width": "1.0", "Font": "Arial", "Bold": "1", "Italic": "0"},
		"SLANTED":  {"Bold": "0", "Italic": "1"},
	}
	if diff := cmp.Diff(want, d.textStyles); diff != "" {
		t.Errorf("text styles differ (-want +got):\n%s", diff)
	}

	if !d.TextStyleExists("standard") {
		t.Error("style lookup is not case insensitive")
	}
	if d.TextStyleExists("Shapes") {
		t.Error("shape file style was stored")
	}
	if v := d.LookupTextStyleProperty("Standard", "Font", "x"); v != "Arial" {
		t.Errorf("Font = %q", v)
	}
	if v := d.LookupTextStyleProperty("Slanted", "Width", "1"); v != "1" {
		t.Errorf("default not used for missing property: %q", v)
	}
	if v := d.LookupTextStyleProperty("Missing", "Font", "Courier"); v != "Courier" {
		t.Errorf("default not used for missing style: %q", v)
	}

	handles := map[string]string{
		"11": "STANDARD",
		"12": "",
		"13": "",
		"14": "SLANTED",
		"99": "",
	}
	for h, name := range handles {
		if got := d.TextStyleNameByHandle(h); got != name {
			t.Errorf("handle %s: got %q, want %q", h, got, name)
		}
	}

	if diff := cmp.Diff([]string{"SLANTED", "STANDARD"}, d.TextStyleNames()); diff != "" {
		t.Errorf("style names differ (-want +got):\n%s", diff)
	}
}

func TestDimStyleDefinition(t *testing.T) {
	d := openASCII(t, withTables(`
		0 TABLE
		2 DIMSTYLE
		0 DIMSTYLE
		105 27
		2 ISO-25
		41 2.5
		140 2.5
		278 44
		342 1F
		3 ignored
		0 DIMSTYLE
		105 28
		2 Standard
		0 ENDTAB`), nil)

	props, ok := d.LookupDimStyle("ISO-25")
	if !ok {
		t.Fatal("ISO-25 not found")
	}
	for _, p := range dimstyle.Known() {
		if _, ok := props[p.Name]; !ok {
			t.Errorf("property %s missing", p.Name)
		}
	}
	if len(props) != len(dimstyle.Known()) {
		t.Errorf("unexpected extra properties: %v", props)
	}
	checks := map[string]string{
		"DIMASZ":   "2.5",
		"DIMTXT":   "2.5",
		"DIMDSEP":  "44",
		"DIMBLK":   "1F",
		"DIMSCALE": "1",
		"DIMDEC":   "4",
	}
	for name, want := range checks {
		if props[name] != want {
			t.Errorf("%s = %q, want %q", name, props[name], want)
		}
	}

	props["DIMASZ"] = "100"
	again, _ := d.LookupDimStyle("ISO-25")
	if again["DIMASZ"] != "2.5" {
		t.Error("LookupDimStyle returned internal storage")
	}

	std, ok := d.LookupDimStyle("Standard")
	if !ok {
		t.Fatal("Standard not found")
	}
	if diff := cmp.Diff(dimstyle.Defaults(), std); diff != "" {
		t.Errorf("Standard differs from defaults (-want +got):\n%s", diff)
	}

	missing, ok := d.LookupDimStyle("Missing")
	if ok {
		t.Error("missing style reported as present")
	}
	if diff := cmp.Diff(dimstyle.Defaults(), missing); diff != "" {
		t.Errorf("defaults differ (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"ISO-25", "Standard"}, d.DimStyleNames()); diff != "" {
		t.Errorf("dimension style names differ (-want +got):\n%s", diff)
	}
}

func TestUnknownTables(t *testing.T) {
	d := openASCII(t, withTables(`
		0 TABLE
		2 BLOCK_RECORD
		0 BLOCK_RECORD
		2 *Model_Space
		0 ENDTAB
		0 TABLE
		2 APPID
		0 APPID
		2 ACAD
		70 0
		0 ENDTAB
		0 TABLE
		2 LAYER
		0 LAYER
		2 0
		0 ENDTAB`), nil)

	if diff := cmp.Diff([]string{"0"}, d.LayerNames()); diff != "" {
		t.Errorf("layer names differ (-want +got):\n%s", diff)
	}
	if len(d.TextStyleNames()) != 0 || len(d.DimStyleNames()) != 0 || len(d.LineTypeNames()) != 0 {
		t.Error("unexpected table entries")
	}
}
