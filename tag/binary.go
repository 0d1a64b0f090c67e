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
	"encoding/binary"
	"encoding/hex"
	"io"
	"math"
	"strconv"
	"strings"
)

type binaryCursor struct {
	pushback
	buf  *buffer
	line int
}

func newBinaryCursor(r io.ReadSeeker, start int64) *binaryCursor {
	return &binaryCursor{
		buf: newBuffer(r, start),
	}
}

func (c *binaryCursor) Pos() Position {
	if c.pending {
		return c.lastPos
	}
	return Position{Offset: c.buf.pos(), Line: c.line}
}

func (c *binaryCursor) Reset(pos Position) error {
	err := c.buf.seek(pos.Offset)
	if err != nil {
		return err
	}
	c.line = pos.Line
	c.clear()
	return nil
}

func (c *binaryCursor) Next() (Pair, error) {
	if pair, ok := c.take(); ok {
		return pair, nil
	}

	start := c.Pos()
	for {
		buf, err := c.buf.readFull(2)
		if err != nil {
			return Pair{}, err
		}
		code := int(int16(binary.LittleEndian.Uint16(buf)))
		c.line++

		valuePos := c.buf.pos()
		value, err := c.readValue(code)
		if err == io.EOF {
			return Pair{}, io.ErrUnexpectedEOF
		} else if err == ErrLineTooLong {
			return Pair{}, &SyntaxError{Pos: valuePos, Line: c.line + 1, Err: err}
		} else if err != nil {
			return Pair{}, err
		}
		c.line++

		if code == CommentCode {
			continue
		}

		pair := Pair{Code: code, Value: value}
		c.remember(pair, start)
		return pair, nil
	}
}

func (c *binaryCursor) readValue(code int) (string, error) {
	switch TypeOf(code) {
	case Binary:
		n, err := c.buf.readFull(1)
		if err != nil {
			return "", err
		}
		data, err := c.buf.readFull(int(n[0]))
		if err != nil {
			return "", err
		}
		return strings.ToUpper(hex.EncodeToString(data)), nil
	case Float:
		buf, err := c.buf.readFull(8)
		if err != nil {
			return "", err
		}
		x := math.Float64frombits(binary.LittleEndian.Uint64(buf))
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case Int16:
		buf, err := c.buf.readFull(2)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(int(int16(binary.LittleEndian.Uint16(buf)))), nil
	case Int32:
		buf, err := c.buf.readFull(4)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(int(int32(binary.LittleEndian.Uint32(buf)))), nil
	case Int64:
		buf, err := c.buf.readFull(8)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(binary.LittleEndian.Uint64(buf)), 10), nil
	case Bool:
		buf, err := c.buf.readFull(1)
		if err != nil {
			return "", err
		}
		if buf[0] != 0 {
			return "1", nil
		}
		return "0", nil
	default:
		buf, err := c.buf.readCString()
		if err != nil {
			return "", err
		}
		return string(buf), nil
	}
}
