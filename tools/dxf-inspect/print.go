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

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/dxf"
)

var (
	headerClr = color.New(color.FgGreen, color.Bold)
	warnClr   = color.New(color.FgYellow)
)

func printSummary(w io.Writer, fname string, d *dxf.Document) {
	headerClr.Fprintf(w, "%s\n", fname)
	fmt.Fprintf(w, "version %s, encoding %s\n",
		d.Variable("$ACADVER", "unknown"), d.Encoding())
	if pos, ok := d.EntitiesStart(); ok {
		fmt.Fprintf(w, "ENTITIES section at line %d (byte %s)\n",
			pos.Line, humanize.Comma(pos.Offset))
	}
	fmt.Fprintln(w)
}

func printTable(w io.Writer, d *dxf.Document, name string) error {
	switch strings.ToLower(name) {
	case "header":
		printHeader(w, d)
	case "layers":
		printLayers(w, d)
	case "ltypes":
		printLineTypes(w, d)
	case "styles":
		printTextStyles(w, d)
	case "dimstyles":
		printDimStyles(w, d)
	default:
		return fmt.Errorf("unknown table %q", name)
	}
	fmt.Fprintln(w)
	return nil
}

func printHeader(w io.Writer, d *dxf.Document) {
	vars := d.HeaderVariables()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	slices.Sort(names)

	headerClr.Fprintf(w, "header variables (%d)\n", len(names))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Variable", "Value"})
	for _, name := range names {
		table.Append([]string{name, vars[name]})
	}
	table.Render()
}

var hiddenNames = map[string]string{
	dxf.LayerVisible: "visible",
	dxf.LayerOff:     "off",
	dxf.LayerFrozen:  "frozen",
}

func printLayers(w io.Writer, d *dxf.Document) {
	names := d.LayerNames()
	headerClr.Fprintf(w, "layers (%d)\n", len(names))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "State", "Color", "Linetype", "Lineweight"})
	for _, name := range names {
		prop := func(key string) string {
			val, _ := d.LookupLayerProperty(name, key)
			return val
		}
		table.Append([]string{
			name,
			hiddenNames[prop("Hidden")],
			prop("Color"),
			prop("Linetype"),
			prop("LineWeight"),
		})
	}
	table.Render()
}

func printLineTypes(w io.Writer, d *dxf.Document) {
	names := d.LineTypeNames()
	headerClr.Fprintf(w, "line types (%d)\n", len(names))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Pattern", "Period"})
	for _, name := range names {
		pattern := d.LookupLineType(name)
		parts := make([]string, len(pattern))
		period := 0.0
		for i, x := range pattern {
			parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
			if x < 0 {
				x = -x
			}
			period += x
		}
		table.Append([]string{
			name,
			strings.Join(parts, " "),
			strconv.FormatFloat(period, 'g', 6, 64),
		})
	}
	table.Render()
}

func printTextStyles(w io.Writer, d *dxf.Document) {
	names := d.TextStyleNames()
	headerClr.Fprintf(w, "text styles (%d)\n", len(names))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Font", "Width", "Bold", "Italic"})
	for _, name := range names {
		table.Append([]string{
			name,
			d.LookupTextStyleProperty(name, "Font", ""),
			d.LookupTextStyleProperty(name, "Width", "1"),
			d.LookupTextStyleProperty(name, "Bold", "0"),
			d.LookupTextStyleProperty(name, "Italic", "0"),
		})
	}
	table.Render()
}

var dimColumns = []string{"DIMSCALE", "DIMASZ", "DIMTXT", "DIMGAP", "DIMDEC", "DIMDSEP", "DIMBLK"}

func printDimStyles(w io.Writer, d *dxf.Document) {
	names := d.DimStyleNames()
	headerClr.Fprintf(w, "dimension styles (%d)\n", len(names))
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(append([]string{"Name"}, dimColumns...))
	for _, name := range names {
		props, _ := d.LookupDimStyle(name)
		row := []string{name}
		for _, key := range dimColumns {
			val := props[key]
			if key == "DIMDSEP" {
				val = decimalSeparator(val)
			}
			row = append(row, val)
		}
		table.Append(row)
	}
	table.Render()
}

// decimalSeparator shows a DIMDSEP character code as the character.
func decimalSeparator(code string) string {
	c, err := strconv.Atoi(code)
	if err != nil || c <= ' ' || c > '~' {
		return code
	}
	return strconv.Quote(string(rune(c)))
}

func printSolid(w io.Writer, d *dxf.Document, handle string) {
	if handle == "*" {
		d.EntryFromAcDsData("")
		handles := d.SolidHandles()
		headerClr.Fprintf(w, "ACDSDATA records (%d)\n", len(handles))
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Handle", "Size"})
		for _, h := range handles {
			size := len(d.EntryFromAcDsData(h))
			table.Append([]string{h, humanize.Bytes(uint64(size))})
		}
		table.Render()
		return
	}

	data := d.EntryFromAcDsData(handle)
	if data == nil {
		warnClr.Fprintf(w, "no ACIS data for handle %s\n", handle)
		return
	}
	headerClr.Fprintf(w, "ACIS data for handle %s (%s)\n", handle, humanize.Bytes(uint64(len(data))))
	fmt.Fprint(w, hex.Dump(data))
}
