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
)

const (
	bufferSize    = 4096
	maxLineLength = 1 << 16 // longest line or string value accepted
)

// buffer is a read buffer over a seekable file, which keeps track of the
// absolute file position of the buffered data.
//
// Slices returned by the read methods point into the buffer and are only
// valid until the next call.
type buffer struct {
	file    io.ReadSeeker
	filePos int64 // file position corresponding to the start of buf
	buf     []byte
	bufPos  int // current position within buf
	bufEnd  int // end of valid data within buf
}

func newBuffer(file io.ReadSeeker, filePos int64) *buffer {
	return &buffer{
		file:    file,
		filePos: filePos,
		buf:     make([]byte, bufferSize),
	}
}

// pos returns the file position of the next unread byte.
func (b *buffer) pos() int64 {
	return b.filePos + int64(b.bufPos)
}

// seek discards all buffered data and moves to the given absolute position.
func (b *buffer) seek(pos int64) error {
	_, err := b.file.Seek(pos, io.SeekStart)
	if err != nil {
		return err
	}
	b.filePos = pos
	b.bufPos = 0
	b.bufEnd = 0
	return nil
}

// refill reads more data into the buffer.  If the buffer is full, it is
// grown up to maxLineLength bytes; beyond this, ErrLineTooLong is returned.
// At the end of the file, io.EOF is returned.
func (b *buffer) refill() error {
	// move the remaining data to the beginning of the buffer
	b.filePos += int64(b.bufPos)
	copy(b.buf, b.buf[b.bufPos:b.bufEnd])
	b.bufEnd -= b.bufPos
	b.bufPos = 0

	if b.bufEnd == len(b.buf) {
		if len(b.buf) >= maxLineLength {
			return ErrLineTooLong
		}
		newBuf := make([]byte, min(2*len(b.buf), maxLineLength))
		copy(newBuf, b.buf[:b.bufEnd])
		b.buf = newBuf
	}

	n, err := b.file.Read(b.buf[b.bufEnd:])
	b.bufEnd += n
	if n > 0 && err == io.EOF {
		err = nil
	}
	return err
}

// readLine returns the next line, without the terminating newline.
// A final line without a newline is returned as is.
func (b *buffer) readLine() ([]byte, error) {
	for {
		i := bytes.IndexByte(b.buf[b.bufPos:b.bufEnd], '\n')
		if i >= 0 {
			line := b.buf[b.bufPos : b.bufPos+i]
			b.bufPos += i + 1
			return line, nil
		}

		err := b.refill()
		if err == io.EOF {
			if b.bufPos < b.bufEnd {
				line := b.buf[b.bufPos:b.bufEnd]
				b.bufPos = b.bufEnd
				return line, nil
			}
			return nil, io.EOF
		} else if err != nil {
			return nil, err
		}
	}
}

// readFull returns the next n bytes.  If the file ends before any byte
// could be read, io.EOF is returned; if it ends after a partial read,
// io.ErrUnexpectedEOF is returned.
func (b *buffer) readFull(n int) ([]byte, error) {
	for b.bufEnd-b.bufPos < n {
		err := b.refill()
		if err == io.EOF {
			if b.bufPos == b.bufEnd {
				return nil, io.EOF
			}
			return nil, io.ErrUnexpectedEOF
		} else if err != nil {
			return nil, err
		}
	}
	res := b.buf[b.bufPos : b.bufPos+n]
	b.bufPos += n
	return res, nil
}

// readCString returns the bytes up to the next zero byte.  The zero byte is
// consumed but not included in the result.
func (b *buffer) readCString() ([]byte, error) {
	for {
		i := bytes.IndexByte(b.buf[b.bufPos:b.bufEnd], 0)
		if i >= 0 {
			res := b.buf[b.bufPos : b.bufPos+i]
			b.bufPos += i + 1
			return res, nil
		}

		err := b.refill()
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		} else if err != nil {
			return nil, err
		}
	}
}
