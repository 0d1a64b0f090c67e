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
	"golang.org/x/exp/maps"

	"seehuhn.de/go/dxf/dimstyle"
	"seehuhn.de/go/dxf/tag"
)

// readDimStyleDefinition reads one entry of the DIMSTYLE table.  Every
// stored style has a value for every property in dimstyle.Known(); values
// not given in the file are set to their defaults.
func (d *Document) readDimStyleDefinition() error {
	props := dimstyle.Defaults()
	var name string

	err := d.readEntry(func(p tag.Pair) bool {
		if p.Code == 2 {
			name = d.recode(p.Value)
		} else if key := dimstyle.PropertyName(p.Code); key != "" {
			props[key] = p.Value
		}
		return true
	})
	if err != nil {
		return err
	}

	d.dimStyles[name] = props
	return nil
}

// LookupDimStyle returns the properties of the named dimension style.
// If the style does not exist, the default properties are returned and the
// second return value is false.  The returned map is a copy and may be
// modified by the caller.
func (d *Document) LookupDimStyle(name string) (map[string]string, bool) {
	props, ok := d.dimStyles[name]
	if !ok {
		return dimstyle.Defaults(), false
	}
	return maps.Clone(props), true
}

// DimStyleNames returns the names of all dimension styles, in sorted
// order.
func (d *Document) DimStyleNames() []string {
	return sortedKeys(d.dimStyles)
}
