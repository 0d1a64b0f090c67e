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

// Package dimstyle lists the dimension style properties which are
// understood by the DXF reader, together with their default values.
//
// Only the properties needed to render DIMENSION and LEADER entities are
// included.  All other DIMSTYLE group codes are ignored.
package dimstyle

// Property describes a dimension style variable.
type Property struct {
	Code    int    // group code in the DIMSTYLE table entry
	Name    string // name of the corresponding header variable
	Default string // value used when a style does not set the property
}

var known = []Property{
	{40, "DIMSCALE", "1"},
	{41, "DIMASZ", "0.18"},
	{42, "DIMEXO", "0.0625"},
	{44, "DIMEXE", "0.18"},
	{75, "DIMSE1", "0"},
	{76, "DIMSE2", "0"},
	{77, "DIMTAD", "0"},
	{140, "DIMTXT", "0.18"},
	{141, "DIMCEN", "0.09"},
	{144, "DIMLFAC", "1"},
	{147, "DIMGAP", "0.09"},
	{173, "DIMSAH", "0"},
	{176, "DIMCLRD", "0"},
	{177, "DIMCLRE", "0"},
	{178, "DIMCLRT", "0"},
	{271, "DIMDEC", "4"},
	{278, "DIMDSEP", "46"}, // character code of '.'
	{341, "DIMLDRBLK", ""},
	{342, "DIMBLK", ""},
	{343, "DIMBLK1", ""},
	{344, "DIMBLK2", ""},
}

var byCode map[int]*Property

func init() {
	byCode = make(map[int]*Property, len(known))
	for i := range known {
		byCode[known[i].Code] = &known[i]
	}
}

// Known returns all known properties, in order of increasing group code.
func Known() []Property {
	res := make([]Property, len(known))
	copy(res, known)
	return res
}

// PropertyName returns the name of the property stored under the given
// group code.  The empty string is returned for unknown group codes.
func PropertyName(code int) string {
	p, ok := byCode[code]
	if !ok {
		return ""
	}
	return p.Name
}

// Default returns the default value of the property stored under the given
// group code.  The empty string is returned for unknown group codes.
func Default(code int) string {
	p, ok := byCode[code]
	if !ok {
		return ""
	}
	return p.Default
}

// Defaults returns a new map which contains the default value of every
// known property, keyed by property name.
func Defaults() map[string]string {
	res := make(map[string]string, len(known))
	for _, p := range known {
		res[p.Name] = p.Default
	}
	return res
}
