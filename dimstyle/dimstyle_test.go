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

package dimstyle

import (
	"testing"
)

func TestKnownSorted(t *testing.T) {
	all := Known()
	if len(all) == 0 {
		t.Fatal("no known properties")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Code >= all[i].Code {
			t.Errorf("codes not increasing: %d, %d", all[i-1].Code, all[i].Code)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, p := range Known() {
		if got := PropertyName(p.Code); got != p.Name {
			t.Errorf("PropertyName(%d) = %q, want %q", p.Code, got, p.Name)
		}
		if got := Default(p.Code); got != p.Default {
			t.Errorf("Default(%d) = %q, want %q", p.Code, got, p.Default)
		}
	}
	for _, code := range []int{0, 2, 5, 70, 100, 105, 1001} {
		if got := PropertyName(code); got != "" {
			t.Errorf("PropertyName(%d) = %q, want empty", code, got)
		}
	}
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	if len(d) != len(Known()) {
		t.Errorf("got %d defaults, want %d", len(d), len(Known()))
	}
	if d["DIMSCALE"] != "1" || d["DIMDEC"] != "4" {
		t.Errorf("unexpected defaults %v", d)
	}

	// the result must be a fresh copy
	d["DIMSCALE"] = "42"
	if Defaults()["DIMSCALE"] != "1" {
		t.Error("Defaults returned a shared map")
	}
}
