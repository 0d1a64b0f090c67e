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

// Package codepage maps the character set names used in DXF files to text
// encodings.
package codepage

import (
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// These are the encoding names used for the two most common cases.
const (
	Latin1 = "ISO-8859-1"
	UTF8   = "UTF-8"
)

// firstUTF8Version is the first $ACADVER value for files written in UTF-8
// (AutoCAD 2007).
const firstUTF8Version = "AC1021"

// ErrUnknown is returned by Lookup for unsupported encoding names.
var ErrUnknown = errors.New("unknown character encoding")

var windows = map[string]encoding.Encoding{
	"CP437":  charmap.CodePage437,
	"CP850":  charmap.CodePage850,
	"CP852":  charmap.CodePage852,
	"CP855":  charmap.CodePage855,
	"CP866":  charmap.CodePage866,
	"CP874":  charmap.Windows874,
	"CP932":  japanese.ShiftJIS,
	"CP936":  simplifiedchinese.GBK,
	"CP949":  korean.EUCKR,
	"CP950":  traditionalchinese.Big5,
	"CP1250": charmap.Windows1250,
	"CP1251": charmap.Windows1251,
	"CP1252": charmap.Windows1252,
	"CP1253": charmap.Windows1253,
	"CP1254": charmap.Windows1254,
	"CP1255": charmap.Windows1255,
	"CP1256": charmap.Windows1256,
	"CP1257": charmap.Windows1257,
	"CP1258": charmap.Windows1258,
}

// FromHeader returns the name of the encoding used for strings in a file,
// given the values of the $DWGCODEPAGE and $ACADVER header variables.
//
// Files from AutoCAD 2007 onwards ($ACADVER AC1021 or later) are always
// read as UTF-8, whatever $DWGCODEPAGE says.  Readers which only look at
// $DWGCODEPAGE decode such files differently; use Options.Encoding in the
// dxf package to force the older behaviour.  For older files, ANSI_1252 is
// treated as ISO-8859-1 and ANSI_nnn as code page nnn.  Everything else
// falls back to ISO-8859-1.
func FromHeader(dwgCodePage, acadVer string) string {
	if strings.HasPrefix(strings.ToUpper(acadVer), "AC") &&
		strings.ToUpper(acadVer) >= firstUTF8Version {
		return UTF8
	}

	cp := strings.ToUpper(strings.TrimSpace(dwgCodePage))
	switch {
	case cp == "ANSI_1252":
		return Latin1
	case strings.HasPrefix(cp, "ANSI_") && len(cp) > 5:
		return "CP" + cp[5:]
	default:
		return Latin1
	}
}

// Lookup returns the encoding with the given name.  Names of the form
// "CPnnn" are understood for the code pages used by AutoCAD, all other
// names are resolved using the IANA registry.
func Lookup(name string) (encoding.Encoding, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	switch upper {
	case UTF8, "UTF8":
		return unicode.UTF8, nil
	case Latin1, "LATIN1":
		return charmap.ISO8859_1, nil
	}
	if enc, ok := windows[upper]; ok {
		return enc, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, ErrUnknown
	}
	return enc, nil
}

// Decoder converts strings from a file encoding to UTF-8.
// The zero value, and a nil *Decoder, leave strings unchanged.
type Decoder struct {
	dec *encoding.Decoder
}

// NewDecoder returns a decoder for the named encoding.  For UTF-8 the
// returned decoder passes strings through unchanged.
func NewDecoder(name string) (*Decoder, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return &Decoder{}, nil
	}
	return &Decoder{dec: enc.NewDecoder()}, nil
}

// String converts s to UTF-8.  If s cannot be decoded, it is returned
// unchanged.
func (d *Decoder) String(s string) string {
	if d == nil || d.dec == nil || isASCII(s) {
		return s
	}
	res, err := d.dec.String(s)
	if err != nil {
		return s
	}
	return res
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
