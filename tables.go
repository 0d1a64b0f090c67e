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

	"github.com/go-kit/log/level"

	"seehuhn.de/go/dxf/tag"
)

// readTablesSection reads the symbol tables.  The cursor must be positioned
// after the section name.  On return, the final ENDSEC marker has been
// consumed.
//
// Only the LAYER, LTYPE, STYLE and DIMSTYLE tables are interpreted, all
// other tables are skipped.
func (d *Document) readTablesSection() error {
	for {
		p, err := d.next()
		if err != nil {
			return err
		}
		if p.Code == 0 && isMarker(p.Value, "ENDSEC") {
			break
		}
		if p.Code != 0 || !isMarker(p.Value, "TABLE") {
			continue
		}

		// The table name is not used: the entries carry their own type.
		p, err = d.next()
		if err != nil {
			return err
		}
		if p.Code != 2 {
			continue
		}

		err = d.readTable()
		if err != nil {
			return err
		}
	}

	level.Debug(d.logger).Log("msg", "read symbol tables",
		"layers", len(d.layers),
		"linetypes", len(d.lineTypes),
		"textstyles", len(d.textStyles),
		"dimstyles", len(d.dimStyles))
	return nil
}

// readTable reads the entries of one table, up to and including the ENDTAB
// marker.
func (d *Document) readTable() error {
	for {
		p, err := d.next()
		if err != nil {
			return err
		}
		if p.Code != 0 {
			continue
		}

		switch strings.ToUpper(p.Value) {
		case "ENDTAB":
			return nil
		case "LAYER":
			err = d.readLayerDefinition()
		case "LTYPE":
			err = d.readLineTypeDefinition()
		case "STYLE":
			err = d.readTextStyleDefinition()
		case "DIMSTYLE":
			err = d.readDimStyleDefinition()
		}
		if err != nil {
			return err
		}
	}
}

// readEntry calls fn for every pair of a table entry.  The entry ends at
// the next pair with group code 0, which is pushed back, since it starts
// the next entry.  If fn returns false, the
// remaining pairs of the entry are left unread.
func (d *Document) readEntry(fn func(p tag.Pair) bool) error {
	for {
		p, err := d.next()
		if err != nil {
			return err
		}
		if p.Code == 0 {
			d.cur.Unread()
			return nil
		}
		if !fn(p) {
			return nil
		}
	}
}
