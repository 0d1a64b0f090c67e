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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/internal/dxftest"
)

const testDocument = `
	0 SECTION
	2 HEADER
	9 $ACADVER
	1 AC1018
	0 ENDSEC
	0 SECTION
	2 TABLES
	0 TABLE
	2 LAYER
	0 LAYER
	2 Roads
	62 -5
	6 DASHED
	0 ENDTAB
	0 TABLE
	2 LTYPE
	0 LTYPE
	2 DASHED
	49 0.5
	49 -0.25
	0 ENDTAB
	0 TABLE
	2 STYLE
	0 STYLE
	2 Standard
	1001 ACAD
	1000 Arial
	0 ENDTAB
	0 TABLE
	2 DIMSTYLE
	0 DIMSTYLE
	2 ISO-25
	278 44
	0 ENDTAB
	0 ENDSEC
	0 SECTION
	2 ENTITIES
	0 ENDSEC
	0 SECTION
	2 ACDSDATA
	0 ACDSRECORD
	320 2A
	2 ASM_Data
	94 3
	310 414243
	0 ENDSEC
	0 EOF
`

func openTest(t *testing.T) *dxf.Document {
	t.Helper()
	color.NoColor = true
	d, err := dxf.NewReader(dxftest.NewASCII(testDocument), nil)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestPrintTables(t *testing.T) {
	d := openTest(t)

	cases := map[string][]string{
		"header":    {"$ACADVER", "AC1018"},
		"layers":    {"Roads", "off", "DASHED"},
		"ltypes":    {"DASHED", "0.5 -0.25", "0.75"},
		"styles":    {"STANDARD", "Arial"},
		"dimstyles": {"ISO-25", `","`, "DIMSCALE"},
	}
	for name, want := range cases {
		buf := &bytes.Buffer{}
		err := printTable(buf, d, name)
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range want {
			if !strings.Contains(buf.String(), s) {
				t.Errorf("%s: %q missing from output:\n%s", name, s, buf)
			}
		}
	}

	err := printTable(&bytes.Buffer{}, d, "blocks")
	if err == nil {
		t.Error("unknown table accepted")
	}
}

func TestPrintSolid(t *testing.T) {
	d := openTest(t)

	buf := &bytes.Buffer{}
	printSolid(buf, d, "2A")
	if !strings.Contains(buf.String(), "|ABC|") {
		t.Errorf("hex dump missing:\n%s", buf)
	}

	buf.Reset()
	printSolid(buf, d, "*")
	if !strings.Contains(buf.String(), "2A") || !strings.Contains(buf.String(), "3 B") {
		t.Errorf("record list incomplete:\n%s", buf)
	}

	buf.Reset()
	printSolid(buf, d, "FF")
	if !strings.Contains(buf.String(), "no ACIS data") {
		t.Errorf("missing record not reported:\n%s", buf)
	}
}

func TestDecimalSeparator(t *testing.T) {
	cases := map[string]string{
		"46": `"."`,
		"44": `","`,
		"":   "",
		"0":  "0",
	}
	for in, want := range cases {
		if got := decimalSeparator(in); got != want {
			t.Errorf("decimalSeparator(%q) = %q, want %q", in, got, want)
		}
	}
}
