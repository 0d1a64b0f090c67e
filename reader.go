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
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"

	"seehuhn.de/go/dxf/internal/codepage"
	"seehuhn.de/go/dxf/tag"
)

// Document represents a DXF file opened for reading.  Use Open, OpenFS or
// NewReader to create a Document.
//
// The symbol tables are read when the file is opened and do not change
// afterwards.  A Document must not be used concurrently from different
// goroutines.
type Document struct {
	opt    Options
	logger log.Logger

	cur    tag.Cursor
	closer io.Closer
	last   tag.Pair // most recent pair, for error messages

	encoding string
	dec      *codepage.Decoder

	header           map[string]string
	layers           map[string]map[string]string
	lineTypes        map[string][]float64
	textStyles       map[string]map[string]string
	textStyleHandles map[string]string
	dimStyles        map[string]map[string]string

	entities      tag.Position
	foundEntities bool

	solidData         map[string][]byte
	haveReadSolidData bool
}

// Open opens the named DXF file for reading.  After use, Close() must be
// called to close the file.
func Open(fname string, opt *Options) (*Document, error) {
	return OpenFS(afero.NewOsFs(), fname, opt)
}

// OpenFS opens a DXF file from the given file system.  After use, Close()
// must be called to close the file.
func OpenFS(fs afero.Fs, fname string, opt *Options) (*Document, error) {
	fd, err := fs.Open(fname)
	if err != nil {
		return nil, err
	}
	d, err := NewReader(fd, opt)
	if err != nil {
		fd.Close()
		return nil, err
	}
	d.closer = fd
	return d, nil
}

// NewReader reads the structure of a DXF file.  The header, the symbol
// tables and (unless opt.HeaderOnly is set) the location of the ENTITIES
// section are determined before NewReader returns.
//
// The reader r must not be used by the caller while the Document is in use.
func NewReader(r io.ReadSeeker, opt *Options) (*Document, error) {
	if opt == nil {
		opt = DefaultOptions()
	}

	cur, err := tag.NewReader(r)
	if err != nil {
		return nil, err
	}

	d := &Document{
		opt:    *opt,
		logger: opt.Logger,
		cur:    cur,

		header:           make(map[string]string),
		layers:           make(map[string]map[string]string),
		lineTypes:        make(map[string][]float64),
		textStyles:       make(map[string]map[string]string),
		textStyleHandles: make(map[string]string),
		dimStyles:        make(map[string]map[string]string),
		solidData:        make(map[string][]byte),
	}
	if d.logger == nil {
		d.logger = log.NewNopLogger()
	}
	d.setEncoding(codepage.Latin1)

	err = d.open()
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Close closes the file underlying the document.  This only has an effect
// if the Document was created using Open or OpenFS.
func (d *Document) Close() error {
	if d.closer == nil {
		return nil
	}
	err := d.closer.Close()
	d.closer = nil
	return err
}

// Options returns the options the document was opened with.
func (d *Document) Options() Options {
	return d.opt
}

// Encoding returns the name of the character encoding used to convert
// names in the file to UTF-8.
func (d *Document) Encoding() string {
	return d.encoding
}

// EntitiesStart returns the position just after the start of the ENTITIES
// section.  The second return value is false if the section has not been
// located, for example because the document was opened with HeaderOnly.
func (d *Document) EntitiesStart() (tag.Position, bool) {
	return d.entities, d.foundEntities
}

// Entities moves the cursor to the start of the ENTITIES section and
// returns it.  The first pair read from the cursor is the first pair after
// the section name.
func (d *Document) Entities() (tag.Cursor, error) {
	if !d.foundEntities {
		return nil, ErrNoEntities
	}
	err := d.cur.Reset(d.entities)
	if err != nil {
		return nil, err
	}
	return d.cur, nil
}

// open runs through the sections of the file up to the start of the
// ENTITIES section.
func (d *Document) open() error {
	p, err := d.next()
	if err != nil {
		return err
	}
	if p.Code != 0 || !isMarker(p.Value, "SECTION") {
		return d.structureError(ErrNotDXF)
	}

	p, err = d.next()
	if err != nil {
		return err
	}
	if p.Code != 2 || !(isMarker(p.Value, "HEADER") ||
		isMarker(p.Value, "ENTITIES") || isMarker(p.Value, "TABLES")) {
		return d.structureError(ErrNotDXF)
	}

	entitiesOnly := false
	switch {
	case isMarker(p.Value, "ENTITIES"):
		entitiesOnly = true

	case isMarker(p.Value, "TABLES"):
		// Some files have no header and start directly with the tables.
		if d.opt.Encoding != "" {
			d.setEncoding(d.opt.Encoding)
		}
		err = d.readTablesSection()
		if err != nil {
			return err
		}
		p, err = d.next()
		if err != nil {
			return err
		}

	default: // HEADER
		err = d.readHeaderSection()
		if err != nil {
			return err
		}
		p, err = d.next()
		if err != nil {
			return err
		}

		p, err = d.skipToSectionName(p)
		if err != nil {
			return err
		}
		if isMarker(p.Value, "CLASSES") {
			err = d.skipSection()
			if err != nil {
				return err
			}
			p = d.last
		}

		p, err = d.skipToSectionName(p)
		if err != nil {
			return err
		}
		if isMarker(p.Value, "TABLES") {
			err = d.readTablesSection()
			if err != nil {
				return err
			}
			p, err = d.next()
			if err != nil {
				return err
			}
		}
	}

	if !entitiesOnly {
		p, err = d.skipToSectionName(p)
		if err != nil {
			return err
		}
		if isMarker(p.Value, "BLOCKS") {
			err = d.readBlocksSection()
			if err != nil {
				return err
			}
			p, err = d.next()
			if err != nil {
				return err
			}
		}
	}

	if d.opt.HeaderOnly {
		return nil
	}

	p, err = d.skipToSectionName(p)
	if err != nil {
		return err
	}
	if !isMarker(p.Value, "ENTITIES") {
		return d.structureError(errUnexpectedSection)
	}

	d.entities = d.cur.Pos()
	d.foundEntities = true
	return nil
}

// skipToSectionName skips over the ENDSEC marker of the previous section
// and the SECTION marker of the next one, if present.  The returned pair
// normally holds the name of the next section.
func (d *Document) skipToSectionName(p tag.Pair) (tag.Pair, error) {
	var err error
	if isMarker(p.Value, "ENDSEC") {
		p, err = d.next()
		if err != nil {
			return p, err
		}
	}
	if isMarker(p.Value, "SECTION") {
		p, err = d.next()
	}
	return p, err
}

// skipSection consumes all pairs up to and including the next ENDSEC
// marker.
func (d *Document) skipSection() error {
	for {
		p, err := d.next()
		if err != nil {
			return err
		}
		if p.Code == 0 && isMarker(p.Value, "ENDSEC") {
			return nil
		}
	}
}

func (d *Document) readBlocksSection() error {
	if d.opt.ReadBlocks == nil {
		return d.skipSection()
	}
	err := d.opt.ReadBlocks(d.cur)
	if err != nil {
		return d.wrapError(err)
	}
	return nil
}

// next reads the next pair.  Any read error, including the end of the
// file and negative group codes, is returned as a *MalformedFileError.
func (d *Document) next() (tag.Pair, error) {
	p, err := d.cur.Next()
	if err != nil {
		return p, d.wrapError(err)
	}
	d.last = p
	if p.Code < 0 {
		return p, d.structureError(errNegativeCode)
	}
	return p, nil
}

// wrapError converts errors from the cursor into a *MalformedFileError.
func (d *Document) wrapError(err error) error {
	var malformed *MalformedFileError
	if errors.As(err, &malformed) {
		return err
	}

	var syntaxErr *tag.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &MalformedFileError{
			Pos:     syntaxErr.Pos,
			Line:    syntaxErr.Line,
			Content: syntaxErr.Content,
			Err:     err,
		}
	}

	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	pos := d.cur.Pos()
	res := &MalformedFileError{
		Pos:     pos.Offset,
		Line:    pos.Line,
		Content: d.last.Value,
		Err:     err,
	}
	level.Debug(d.logger).Log("msg", "error parsing DXF file", "err", res)
	return res
}

// structureError reports an unexpected pair, using the most recently read
// pair as the offending content.
func (d *Document) structureError(err error) error {
	pos := d.cur.Pos()
	return &MalformedFileError{
		Pos:     pos.Offset,
		Line:    pos.Line,
		Content: d.last.Value,
		Err:     err,
	}
}

// setEncoding selects the character encoding used for names.  Unknown
// encodings are reported and replaced by ISO-8859-1.
func (d *Document) setEncoding(name string) {
	dec, err := codepage.NewDecoder(name)
	if err != nil {
		level.Warn(d.logger).Log("msg", "unsupported character encoding, using ISO-8859-1",
			"encoding", name)
		name = codepage.Latin1
		dec, _ = codepage.NewDecoder(name)
	}
	d.encoding = name
	d.dec = dec
}

// recode converts a string from the file encoding to UTF-8.
func (d *Document) recode(s string) string {
	return d.dec.String(s)
}
