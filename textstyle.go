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
	"strings"

	"seehuhn.de/go/dxf/tag"
)

// Flags in the ACAD extended data (group code 1071) of a text style.
const (
	fontFlagItalic = 0x1000000
	fontFlagBold   = 0x2000000
)

// readTextStyleDefinition reads one entry of the STYLE table.
//
// Styles are stored under their upper-case name.  The recorded properties
// are Width (group code 41) and, from the ACAD extended data, Font, Bold
// and Italic.  Entries which describe shape files are ignored.
//
// The width factor applies to MTEXT entities only; TEXT entities carry
// their own width.
func (d *Document) readTextStyleDefinition() error {
	var handle, name string
	props := make(map[string]string)
	insideAcad := false
	isShape := false

	err := d.readEntry(func(p tag.Pair) bool {
		switch p.Code {
		case 5:
			handle = p.Value
		case 2:
			name = strings.ToUpper(d.recode(p.Value))
		case 70:
			if atoi(p.Value)&1 != 0 {
				isShape = true
				return false
			}
		case 41:
			props["Width"] = p.Value
		case 1001:
			insideAcad = isMarker(p.Value, "ACAD")
		case 1000:
			if insideAcad {
				props["Font"] = p.Value
			}
		case 1071:
			if insideAcad {
				flags := atoi(p.Value)
				props["Bold"] = boolString(flags&fontFlagBold != 0)
				props["Italic"] = boolString(flags&fontFlagItalic != 0)
			}
		}
		return true
	})
	if err != nil || isShape {
		return err
	}

	if len(props) == 0 {
		return nil
	}
	d.textStyles[name] = props
	if handle != "" {
		d.textStyleHandles[handle] = name
	}
	return nil
}

func boolString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// TextStyleExists reports whether a text style with the given name exists.
// Names are compared without regard to case.
func (d *Document) TextStyleExists(name string) bool {
	_, ok := d.textStyles[strings.ToUpper(name)]
	return ok
}

// LookupTextStyleProperty returns a property of the named text style.
// If the style or the property does not exist, def is returned.
func (d *Document) LookupTextStyleProperty(name, property, def string) string {
	props, ok := d.textStyles[strings.ToUpper(name)]
	if !ok {
		return def
	}
	val, ok := props[property]
	if !ok {
		return def
	}
	return val
}

// TextStyleNameByHandle returns the name of the text style with the given
// STYLE table handle.  If there is no such style, the empty string is
// returned.
func (d *Document) TextStyleNameByHandle(handle string) string {
	return d.textStyleHandles[handle]
}

// TextStyleNames returns the (upper-case) names of all text styles, in
// sorted order.
func (d *Document) TextStyleNames() []string {
	return sortedKeys(d.textStyles)
}
