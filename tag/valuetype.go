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

package tag

// ValueType describes how the value of a group code is encoded in a binary
// DXF file.
type ValueType int

// These are the value types used in binary DXF files.
const (
	String  ValueType = iota // zero-terminated string
	Binary                   // length byte followed by raw data
	Float                    // 8-byte IEEE 754 double
	Int16                    // 2-byte integer
	Int32                    // 4-byte integer
	Int64                    // 8-byte integer
	Bool                     // single byte
)

func (t ValueType) String() string {
	switch t {
	case String:
		return "string"
	case Binary:
		return "binary"
	case Float:
		return "float"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// TypeOf returns the value type for a group code.  Unknown group codes are
// treated as strings.
func TypeOf(code int) ValueType {
	switch {
	case code >= 310 && code <= 319, code == 1004:
		return Binary
	case code >= 10 && code <= 59,
		code >= 110 && code <= 149,
		code >= 210 && code <= 239,
		code >= 460 && code <= 469,
		code >= 1010 && code <= 1059:
		return Float
	case code >= 60 && code <= 79,
		code >= 170 && code <= 179,
		code >= 270 && code <= 289,
		code >= 370 && code <= 389,
		code >= 400 && code <= 409,
		code >= 1060 && code <= 1070:
		return Int16
	case code >= 90 && code <= 99,
		code >= 420 && code <= 429,
		code >= 440 && code <= 459,
		code == 1071:
		return Int32
	case code >= 160 && code <= 169:
		return Int64
	case code >= 290 && code <= 299:
		return Bool
	default:
		return String
	}
}
