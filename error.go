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
	"errors"
	"strconv"
)

var (
	// ErrNotDXF is returned by Open if the file does not start with a
	// HEADER, TABLES or ENTITIES section.
	ErrNotDXF = errors.New("not a recognized DXF document")

	// ErrNoEntities is returned by Entities if the ENTITIES section has not
	// been located.
	ErrNoEntities = errors.New("ENTITIES section not located")

	errUnexpectedSection = errors.New("unexpected section")
	errNegativeCode      = errors.New("negative group code")
)

// MalformedFileError indicates that the DXF file could not be parsed.
type MalformedFileError struct {
	Pos     int64  // byte offset of the problem, if known
	Line    int    // line number of the problem, if known
	Content string // the offending value, if available
	Err     error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Line > 0 {
		tail = " (at line " + strconv.Itoa(err.Line) + ")"
	} else if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	if err.Content != "" {
		tail += ": " + strconv.Quote(err.Content)
	}
	return "not a valid DXF file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}
