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
	"fmt"
	"strconv"
	"strings"

	"github.com/go-kit/log"

	"seehuhn.de/go/dxf/tag"
)

// Options controls how a DXF file is read.  A nil *Options is equivalent to
// the value returned by DefaultOptions.
type Options struct {
	// HeaderOnly stops reading after the BLOCKS section.  The ENTITIES
	// section is not located, and Entities cannot be used.
	HeaderOnly bool

	// Encoding, if set, overrides the character encoding derived from the
	// $DWGCODEPAGE header variable.
	Encoding string

	// ReadBlocks is called with the cursor positioned just after the name
	// of the BLOCKS section.  It must consume the section including the
	// final ENDSEC marker.  If ReadBlocks is nil, the section is skipped.
	ReadBlocks func(c tag.Cursor) error

	// Logger receives warnings and debug messages.  If Logger is nil, no
	// messages are logged.
	Logger log.Logger

	// The following fields are not used while opening a file.  They are
	// kept on the Document for the code which converts entities.

	// InlineBlocks expands INSERT entities into the geometry of the
	// referenced block.
	InlineBlocks bool

	// MergeBlockGeometries merges the geometries of an inlined block into a
	// single feature.
	MergeBlockGeometries bool

	// TranslateEscapeSequences converts MTEXT control sequences into plain
	// text.
	TranslateEscapeSequences bool

	// IncludeRawCodeValues keeps the raw group codes of every entity.
	IncludeRawCodeValues bool

	// ExtensibleMode3D keeps the ACIS data of 3D solids, see
	// Document.EntryFromAcDsData.
	ExtensibleMode3D bool

	// ClosedLineAsPolygon turns closed polylines into polygons.
	ClosedLineAsPolygon bool

	// HatchTolerance is the tolerance used when joining hatch boundary
	// segments.  Negative values select an automatic tolerance.
	HatchTolerance float64
}

// DefaultOptions returns the options used when nil is passed to Open.
func DefaultOptions() *Options {
	return &Options{
		InlineBlocks:             true,
		MergeBlockGeometries:     true,
		TranslateEscapeSequences: true,
		HatchTolerance:           -1,
	}
}

// Set changes the option with the given name, for example "INLINE_BLOCKS"
// or "HATCH_TOLERANCE".  Boolean options are true unless the value is one of
// "NO", "FALSE", "OFF" or "0".
func (opt *Options) Set(name, value string) error {
	switch strings.ToUpper(name) {
	case "HEADER_ONLY":
		opt.HeaderOnly = testBool(value)
	case "ENCODING":
		opt.Encoding = value
	case "INLINE_BLOCKS":
		opt.InlineBlocks = testBool(value)
	case "MERGE_BLOCK_GEOMETRIES":
		opt.MergeBlockGeometries = testBool(value)
	case "TRANSLATE_ESCAPE_SEQUENCES":
		opt.TranslateEscapeSequences = testBool(value)
	case "INCLUDE_RAW_CODE_VALUES":
		opt.IncludeRawCodeValues = testBool(value)
	case "3D_EXTENSIBLE_MODE":
		opt.ExtensibleMode3D = testBool(value)
	case "CLOSED_LINE_AS_POLYGON":
		opt.ClosedLineAsPolygon = testBool(value)
	case "HATCH_TOLERANCE":
		x, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
		opt.HatchTolerance = x
	default:
		return fmt.Errorf("unknown option %q", name)
	}
	return nil
}

// envNames lists the options which can be set using environment variables.
// The variable names are the option names with a "DXF_" prefix.
var envNames = []string{
	"HEADER_ONLY",
	"ENCODING",
	"INLINE_BLOCKS",
	"MERGE_BLOCK_GEOMETRIES",
	"TRANSLATE_ESCAPE_SEQUENCES",
	"INCLUDE_RAW_CODE_VALUES",
	"3D_EXTENSIBLE_MODE",
	"CLOSED_LINE_AS_POLYGON",
	"HATCH_TOLERANCE",
}

// SetFromEnv sets all options for which lookup returns a value.  The lookup
// function is called with the option names prefixed by "DXF_".  Normally,
// os.LookupEnv is used.
func (opt *Options) SetFromEnv(lookup func(string) (string, bool)) error {
	for _, name := range envNames {
		value, ok := lookup("DXF_" + name)
		if !ok {
			continue
		}
		err := opt.Set(name, value)
		if err != nil {
			return err
		}
	}
	return nil
}

func testBool(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NO", "FALSE", "OFF", "0":
		return false
	default:
		return true
	}
}
