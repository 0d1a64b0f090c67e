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

package dxftest

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/dxf/tag"
)

// Parse converts a textual description into a list of pairs.  Every
// non-empty line holds a group code, optionally followed by a single space
// and the value.  Leading and trailing white space on each line is ignored.
//
// Parse panics if a line does not start with an integer.
func Parse(text string) []tag.Pair {
	var res []tag.Pair
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		codeText, value, _ := strings.Cut(line, " ")
		code, err := strconv.Atoi(codeText)
		if err != nil {
			panic(fmt.Sprintf("dxftest: invalid line %q", line))
		}
		res = append(res, tag.Pair{Code: code, Value: value})
	}
	return res
}

// ASCII returns a new file which contains the given pairs in ASCII format.
func ASCII(pairs []tag.Pair) *File {
	f := &File{}
	for _, p := range pairs {
		fmt.Fprintf(f, "%3d\n%s\n", p.Code, p.Value)
	}
	f.Offset = 0
	return f
}

// Binary returns a new file which contains the given pairs in binary
// format.  Values must be valid for the value type of their group code.
//
// Binary panics if a value cannot be converted.
func Binary(pairs []tag.Pair) *File {
	f := &File{}
	f.Write(tag.BinarySignature)
	for _, p := range pairs {
		f.Write(binary.LittleEndian.AppendUint16(nil, uint16(int16(p.Code))))
		f.Write(encodeValue(p))
	}
	f.Offset = 0
	return f
}

// NewASCII is a shortcut for ASCII(Parse(text)).
func NewASCII(text string) *File {
	return ASCII(Parse(text))
}

// NewBinary is a shortcut for Binary(Parse(text)).
func NewBinary(text string) *File {
	return Binary(Parse(text))
}

func encodeValue(p tag.Pair) []byte {
	var buf []byte
	switch tag.TypeOf(p.Code) {
	case tag.Binary:
		data, err := hex.DecodeString(p.Value)
		if err != nil || len(data) > 255 {
			panic(fmt.Sprintf("dxftest: invalid binary chunk %q", p.Value))
		}
		buf = append(buf, byte(len(data)))
		buf = append(buf, data...)
	case tag.Float:
		x := mustParseFloat(p.Value)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(x))
	case tag.Int16:
		buf = binary.LittleEndian.AppendUint16(buf, uint16(mustParseInt(p.Value, 16)))
	case tag.Int32:
		buf = binary.LittleEndian.AppendUint32(buf, uint32(mustParseInt(p.Value, 32)))
	case tag.Int64:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(mustParseInt(p.Value, 64)))
	case tag.Bool:
		if mustParseInt(p.Value, 8) != 0 {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	default:
		buf = append(buf, p.Value...)
		buf = append(buf, 0)
	}
	return buf
}

func mustParseFloat(s string) float64 {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(fmt.Sprintf("dxftest: invalid number %q", s))
	}
	return x
}

func mustParseInt(s string, bits int) int64 {
	x, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		panic(fmt.Sprintf("dxftest: invalid integer %q", s))
	}
	return x
}
