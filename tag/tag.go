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

// Package tag reads the (group code, value) pairs which make up a DXF file.
//
// Both the ASCII and the binary variant of the file format are supported.
// Values are always returned as strings; for binary files numbers are
// formatted the way they would appear in an ASCII file, and binary chunks
// (group codes 310-319 and 1004) are returned as hexadecimal text.
package tag

import (
	"bytes"
	"errors"
	"io"
	"strconv"
)

// BinarySignature is the sentinel at the start of a binary DXF file.
var BinarySignature = []byte("AutoCAD Binary DXF\r\n\x1a\x00")

// Pair is a single group code together with its value.
type Pair struct {
	Code  int
	Value string
}

// Position identifies a place in a DXF file.
type Position struct {
	// Offset is the byte offset of the next pair in the file.
	Offset int64

	// Line is the number of lines read before the next pair.
	// For binary files, every group code and every value count as one line.
	Line int
}

// Cursor reads pairs sequentially from a DXF file.
type Cursor interface {
	// Next returns the next pair.  At the end of the file, io.EOF is
	// returned.
	Next() (Pair, error)

	// Unread pushes back the pair most recently returned by Next, so that
	// the next call to Next returns it again.  Only one pair can be pushed
	// back; calling Unread twice without a call to Next in between has no
	// further effect.
	Unread()

	// Pos returns the position of the next pair which will be returned by
	// Next.
	Pos() Position

	// Reset moves the cursor to a position previously obtained from Pos.
	// Any pushed back pair is discarded.
	Reset(Position) error
}

// ErrLineTooLong is wrapped in a SyntaxError when a line (or a string value
// in a binary file) exceeds 65536 bytes.
var ErrLineTooLong = errors.New("line too long")

// SyntaxError is returned when a pair cannot be decoded.
type SyntaxError struct {
	Pos     int64
	Line    int
	Content string
	Err     error
}

func (err *SyntaxError) Error() string {
	msg := "syntax error"
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	if err.Line > 0 {
		msg += " at line " + strconv.Itoa(err.Line)
	}
	if err.Content != "" {
		msg += " (" + strconv.Quote(err.Content) + ")"
	}
	return msg
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

// NewReader returns a Cursor which reads from r, starting at the beginning
// of the file.  Binary files are detected by the presence of
// BinarySignature.
func NewReader(r io.ReadSeeker) (Cursor, error) {
	_, err := r.Seek(0, io.SeekStart)
	if err != nil {
		return nil, err
	}

	head := make([]byte, len(BinarySignature))
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	if n == len(head) && bytes.Equal(head, BinarySignature) {
		return newBinaryCursor(r, int64(n)), nil
	}

	_, err = r.Seek(0, io.SeekStart)
	if err != nil {
		return nil, err
	}
	return newASCIICursor(r), nil
}

// pushback implements the one-slot lookahead shared by both cursor types.
type pushback struct {
	last    Pair
	lastPos Position
	valid   bool // last/lastPos hold the most recent pair
	pending bool // last has been pushed back
}

func (p *pushback) Unread() {
	if p.valid {
		p.pending = true
	}
}

func (p *pushback) remember(pair Pair, pos Position) {
	p.last = pair
	p.lastPos = pos
	p.valid = true
	p.pending = false
}

// take returns the pushed back pair, if any.
func (p *pushback) take() (Pair, bool) {
	if !p.pending {
		return Pair{}, false
	}
	p.pending = false
	return p.last, true
}

func (p *pushback) clear() {
	*p = pushback{}
}
