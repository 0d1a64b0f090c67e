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
	"seehuhn.de/go/dxf/tag"
)

// readLineTypeDefinition reads one entry of the LTYPE table.
//
// The dash lengths (group code 49) are stored as a pattern of alternating
// dashes (positive) and gaps (negative).  Adjacent elements of the same
// sign are merged.  Since the pattern is cyclic, an odd final element is
// merged into the first one, and a leading gap is rotated to the end.
// Continuous line types, without any dashes, are not stored.
func (d *Document) readLineTypeDefinition() error {
	var name string
	var pattern []float64

	err := d.readEntry(func(p tag.Pair) bool {
		switch p.Code {
		case 2:
			name = d.recode(p.Value)
		case 49:
			x := atof(p.Value)
			n := len(pattern)
			if n > 0 && (x < 0) == (pattern[n-1] < 0) {
				pattern[n-1] += x
			} else {
				pattern = append(pattern, x)
			}
		}
		return true
	})
	if err != nil {
		return err
	}

	if n := len(pattern); n%2 == 1 {
		pattern[0] += pattern[n-1]
		pattern = pattern[:n-1]
	}

	if len(pattern) > 0 {
		if pattern[0] < 0 {
			pattern = append(pattern[1:], pattern[0])
		}
		d.lineTypes[name] = pattern
	}
	return nil
}

// LookupLineType returns the dash pattern of the named line type.
// Positive entries are dashes, negative entries are gaps.
// The result is nil for continuous lines and for unknown line types.
func (d *Document) LookupLineType(name string) []float64 {
	pattern, ok := d.lineTypes[name]
	if !ok {
		return nil
	}
	return append([]float64(nil), pattern...)
}

// LineTypeNames returns the names of all line types with a dash pattern,
// in sorted order.
func (d *Document) LineTypeNames() []string {
	return sortedKeys(d.lineTypes)
}
