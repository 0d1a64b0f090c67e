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
	"golang.org/x/exp/maps"

	"seehuhn.de/go/dxf/internal/codepage"
)

// readHeaderSection reads the header variables, and chooses the character
// encoding for the file.  The cursor must be positioned after the section
// name.  On return, the final ENDSEC marker has been consumed.
func (d *Document) readHeaderSection() error {
	err := d.readHeaderVariables()
	if err != nil {
		return err
	}

	// Files written by dxflib may have a spurious ENDSEC in the middle of
	// the header variables.
	p, err := d.next()
	if err != nil {
		return err
	}
	d.cur.Unread()
	if p.Code == 9 && strings.HasPrefix(p.Value, "$") {
		err = d.readHeaderVariables()
		if err != nil {
			return err
		}
	}

	level.Debug(d.logger).Log("msg", "read header variables", "count", len(d.header))

	codePage := d.Variable("$DWGCODEPAGE", "ANSI_1252")
	encoding := codepage.FromHeader(codePage, d.Variable("$ACADVER", ""))
	if d.opt.Encoding != "" {
		encoding = d.opt.Encoding
	}
	d.setEncoding(encoding)
	if d.encoding != codepage.Latin1 {
		level.Debug(d.logger).Log("msg", "using non-default encoding",
			"encoding", d.encoding, "dwgcodepage", codePage)
	}
	return nil
}

// readHeaderVariables reads "9 <name>" / value pairs until the next ENDSEC
// marker.  All other pairs are ignored.
func (d *Document) readHeaderVariables() error {
	for {
		p, err := d.next()
		if err != nil {
			return err
		}
		if p.Code == 0 && isMarker(p.Value, "ENDSEC") {
			return nil
		}
		if p.Code != 9 {
			continue
		}

		name := p.Value
		p, err = d.next()
		if err != nil {
			return err
		}
		d.header[name] = p.Value
	}
}

// Variable returns the value of a header variable, for example
// "$ACADVER".  If the variable is not set in the file, def is returned.
func (d *Document) Variable(name, def string) string {
	val, ok := d.header[name]
	if !ok {
		return def
	}
	return val
}

// HeaderVariables returns a copy of all header variables.
func (d *Document) HeaderVariables() map[string]string {
	return maps.Clone(d.header)
}
