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
	"golang.org/x/exp/slices"

	"seehuhn.de/go/dxf/tag"
)

// Values of the "Hidden" layer property.
const (
	LayerVisible = "0"
	LayerOff     = "1"
	LayerFrozen  = "2"
)

// readLayerDefinition reads one entry of the LAYER table.
//
// The following properties are recorded: Exists, Hidden, Linetype, Color,
// TrueColor, Transparency, Flags and LineWeight.  Hidden is always set; it
// is LayerOff if the color number is negative and LayerFrozen if bit 0 of
// the flags is set.  Frozen takes precedence over off.
func (d *Document) readLayerDefinition() error {
	props := map[string]string{
		"Hidden": LayerVisible,
	}
	var name string

	err := d.readEntry(func(p tag.Pair) bool {
		switch p.Code {
		case 2:
			name = d.recode(p.Value)
			props["Exists"] = "1"
		case 6:
			props["Linetype"] = d.recode(p.Value)
		case 62:
			props["Color"] = p.Value
			if atoi(p.Value) < 0 && props["Hidden"] != LayerFrozen {
				props["Hidden"] = LayerOff
			}
		case 420:
			props["TrueColor"] = p.Value
		case 440:
			props["Transparency"] = p.Value
		case 70:
			props["Flags"] = p.Value
			if atoi(p.Value)&1 != 0 {
				props["Hidden"] = LayerFrozen
			}
		case 370, 39:
			props["LineWeight"] = p.Value
		}
		return true
	})
	if err != nil {
		return err
	}

	d.layers[name] = props
	return nil
}

// LookupLayerProperty returns a property of the named layer.  The second
// return value is false if either the layer or the property does not exist.
func (d *Document) LookupLayerProperty(layer, property string) (string, bool) {
	props, ok := d.layers[layer]
	if !ok {
		return "", false
	}
	val, ok := props[property]
	return val, ok
}

// LayerNames returns the names of all layers in the LAYER table, in
// sorted order.
func (d *Document) LayerNames() []string {
	return sortedKeys(d.layers)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
