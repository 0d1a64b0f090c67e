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

// Package dxf reads the structure of DXF drawing interchange files.
//
// A DXF file is a sequence of (group code, value) pairs, organised into
// sections.  This package reads the HEADER and TABLES sections, and locates
// the start of the ENTITIES section:
//
//	doc, err := dxf.Open("drawing.dxf", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Close()
//
//	hidden, _ := doc.LookupLayerProperty("Roads", "Hidden")
//	dashes := doc.LookupLineType("DASHED")
//	...
//
// The following symbol tables are read:
//
//	LAYER     see LookupLayerProperty
//	LTYPE     see LookupLineType
//	STYLE     see TextStyleExists, LookupTextStyleProperty
//	DIMSTYLE  see LookupDimStyle
//
// Entities are not interpreted by this package.  Use Document.Entities to
// obtain a cursor positioned at the start of the ENTITIES section.  ACIS
// data for 3D solids, stored in the ACDSDATA section, can be retrieved by
// entity handle using Document.EntryFromAcDsData.
//
// Both ASCII and binary DXF files are supported; see package
// seehuhn.de/go/dxf/tag for the low-level reader.
package dxf
