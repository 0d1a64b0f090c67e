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

import (
	"bytes"
	"io"
	"strconv"
)

// CommentCode is the group code of comment lines.  Comments are skipped by
// the readers in this package.
const CommentCode = 999

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type asciiCursor struct {
	pushback
	buf  *buffer
	line int
}

func newASCIICursor(r io.ReadSeeker) *asciiCursor {
	return &asciiCursor{
		buf: newBuffer(r, 0),
	}
}

func (c *asciiCursor) Pos() Position {
	if c.pending {
		return c.lastPos
	}
	return Position{Offset: c.buf.pos(), Line: c.line}
}

func (c *asciiCursor) Reset(pos Position) error {
	err := c.buf.seek(pos.Offset)
	if err != nil {
		return err
	}
	c.line = pos.Line
	c.clear()
	return nil
}

func (c *asciiCursor) Next() (Pair, error) {
	if pair, ok := c.take(); ok {
		return pair, nil
	}

	start := c.Pos()
	for {
		codePos := c.buf.pos()
		codeLine, err := c.buf.readLine()
		if err != nil {
			return Pair{}, c.lineError(err, codePos, c.line+1)
		}
		if codePos == 0 {
			codeLine = bytes.TrimPrefix(codeLine, utf8BOM)
		}
		c.line++
		codeText := string(bytes.TrimSpace(codeLine))
		code, err := strconv.Atoi(codeText)
		if err != nil {
			return Pair{}, &SyntaxError{
				Pos:     codePos,
				Line:    c.line,
				Content: codeText,
				Err:     err,
			}
		}

		valuePos := c.buf.pos()
		valueLine, err := c.buf.readLine()
		if err == io.EOF {
			return Pair{}, io.ErrUnexpectedEOF
		} else if err != nil {
			return Pair{}, c.lineError(err, valuePos, c.line+1)
		}
		c.line++

		if code == CommentCode {
			continue
		}

		valueLine = bytes.TrimRight(valueLine, "\r")
		if t := TypeOf(code); t != String && t != Binary {
			// numbers are often padded with spaces
			valueLine = bytes.TrimSpace(valueLine)
		}
		pair := Pair{Code: code, Value: string(valueLine)}
		c.remember(pair, start)
		return pair, nil
	}
}

func (c *asciiCursor) lineError(err error, pos int64, line int) error {
	if err != ErrLineTooLong {
		return err
	}
	return &SyntaxError{Pos: pos, Line: line, Err: err}
}
