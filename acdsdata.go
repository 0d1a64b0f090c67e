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
	"encoding/hex"

	"github.com/go-kit/log/level"
)

// maxSolidDataSize is the largest ACDSRECORD payload which is accepted.
const maxSolidDataSize = 1 << 20

// EntryFromAcDsData returns the ACIS data which the ACDSDATA section stores
// for the entity with the given handle.  The result is nil if there is no
// such data.
//
// The ACDSDATA section is located by scanning forward from the current
// cursor position.  On the first successful scan the data of all entities
// is cached, later calls only consult the cache.  If the section is not
// found, nothing is cached and the next call scans again.  In all cases
// the cursor position is restored before the method returns.
//
// The returned slice is shared with the cache and must not be modified.
func (d *Document) EntryFromAcDsData(handle string) []byte {
	if d.haveReadSolidData {
		return d.solidData[handle]
	}

	saved := d.cur.Pos()
	defer func() {
		err := d.cur.Reset(saved)
		if err != nil {
			level.Error(d.logger).Log("msg", "cannot restore read position",
				"offset", saved.Offset, "err", err)
		}
	}()

	if !d.findSection("ACDSDATA") {
		return nil
	}
	if d.readAcDsData() {
		d.haveReadSolidData = true
	}

	return d.solidData[handle]
}

// SolidHandles returns the handles of all entities with cached ACIS data,
// in sorted order.
func (d *Document) SolidHandles() []string {
	return sortedKeys(d.solidData)
}

// findSection advances the cursor to just after the name of the next
// section with the given name.  It returns false if the end of the file,
// a read error or a negative group code is reached first.
func (d *Document) findSection(name string) bool {
	for {
		p, err := d.cur.Next()
		if err != nil || p.Code < 0 {
			return false
		}
		if p.Code != 0 || !isMarker(p.Value, "SECTION") {
			continue
		}

		p, err = d.cur.Next()
		if err != nil || p.Code < 0 {
			return false
		}
		if p.Code == 2 && isMarker(p.Value, name) {
			return true
		}
	}
}

// readAcDsData reads the ACDSRECORD entries of an ACDSDATA section into the
// cache.  It returns true if the end of the section was reached.
func (d *Document) readAcDsData() bool {
	inRecord := false
	gotAsmData := false
	var recordHandle string

	for {
		p, err := d.cur.Next()
		if err != nil || p.Code < 0 {
			return false
		}

		switch {
		case p.Code == 0 && isMarker(p.Value, "ENDSEC"):
			return true
		case p.Code == 0:
			inRecord = isMarker(p.Value, "ACDSRECORD")
			gotAsmData = false
			recordHandle = ""
		case inRecord && p.Code == 320:
			recordHandle = p.Value
		case inRecord && p.Code == 2:
			gotAsmData = isMarker(p.Value, "ASM_Data")
		case inRecord && gotAsmData && p.Code == 94:
			n := atoi(p.Value)
			if n <= 0 || n > maxSolidDataSize {
				level.Warn(d.logger).Log("msg", "ACDSRECORD data has invalid size and was skipped",
					"handle", recordHandle, "size", n)
				continue
			}
			d.solidData[recordHandle] = d.readSolidChunks(recordHandle, n)
		}
	}
}

// readSolidChunks reads the hex-encoded chunks (group code 310) following
// the length of an ACDSRECORD payload.  At most n bytes are kept.
func (d *Document) readSolidChunks(handle string, n int) []byte {
	data := make([]byte, n)
	pos := 0
	for {
		p, err := d.cur.Next()
		if err != nil {
			break
		}
		if p.Code != 310 {
			// the caller handles markers and negative codes
			d.cur.Unread()
			break
		}

		chunk, err := hex.DecodeString(p.Value)
		if err != nil {
			level.Warn(d.logger).Log("msg", "invalid hex data in ACDSRECORD",
				"handle", handle, "err", err)
		}
		if pos+len(chunk) > n {
			pos += copy(data[pos:], chunk)
			level.Warn(d.logger).Log("msg", "too many bytes in ACDSRECORD data, is the length (group code 94) correct?",
				"handle", handle, "size", n)
			break
		}
		pos += copy(data[pos:], chunk)
	}
	return data
}
